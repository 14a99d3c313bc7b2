package label

import "github.com/jetbrains-academy/pullrequest-labeler-action/gateway"

// AuthorReviews is the review history of a single user.
type AuthorReviews struct {
	Author *gateway.User

	// Reviews by Author, oldest first.
	Reviews []*gateway.PullRequestReview
}

// GroupByAuthor partitions reviews by their authors. Authors are returned in
// the order of their first review and each author's reviews retain their
// original relative order.
func GroupByAuthor(reviews []*gateway.PullRequestReview) []*AuthorReviews {
	var groups []*AuthorReviews
	byID := make(map[int64]*AuthorReviews)
	for _, review := range reviews {
		g, ok := byID[review.User.ID]
		if !ok {
			g = &AuthorReviews{Author: review.User}
			byID[review.User.ID] = g
			groups = append(groups, g)
		}
		g.Reviews = append(g.Reviews, review)
	}
	return groups
}

// IsWaiting reports whether the author of the given reviews is still waiting
// for changes: their most recent request for changes has not been followed by
// an approval.
//
// Reviews must belong to a single author, oldest first. Reviews other than
// approvals and change requests are ignored. IsWaiting panics if reviews is
// empty.
func IsWaiting(reviews []*gateway.PullRequestReview) bool {
	if len(reviews) == 0 {
		panic("IsWaiting requires at least one review")
	}

	approved, changesRequested := -1, -1
	for i, review := range reviews {
		switch review.Status {
		case gateway.PullRequestApproved:
			approved = i
		case gateway.PullRequestChangesRequested:
			changesRequested = i
		}
	}
	return approved < changesRequested
}
