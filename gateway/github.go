package gateway

import (
	"context"
	"errors"
)

// ErrNotFound is returned by the gateway when the requested object does not
// exist on GitHub.
var ErrNotFound = errors.New("not found")

// PullRequestReviewState indicates whether a PR has been accepted or not.
type PullRequestReviewState string

const (
	// PullRequestApproved indicates that a pull request was accepted.
	PullRequestApproved PullRequestReviewState = "APPROVED"

	// PullRequestCommented indicates that someone commented on a pull
	// request without an explicit approval or changes-requested.
	PullRequestCommented PullRequestReviewState = "COMMENTED"

	// PullRequestChangesRequested indicates that changes were requested for a
	// pull request.
	PullRequestChangesRequested PullRequestReviewState = "CHANGES_REQUESTED"

	// PullRequestDismissed indicates that an earlier review was dismissed.
	PullRequestDismissed PullRequestReviewState = "DISMISSED"

	// PullRequestPending indicates a review that was started but not yet
	// submitted.
	PullRequestPending PullRequestReviewState = "PENDING"
)

// User is a GitHub user.
//
// Users are compared by ID. Logins may change and are kept for display only.
type User struct {
	ID    int64
	Login string
}

func (u *User) String() string {
	return u.Login
}

// PullRequestReview is a review of a pull request.
type PullRequestReview struct {
	// User who did the review.
	User *User

	// Whether they approved or requested changes.
	Status PullRequestReviewState
}

// RequestedReviewers lists the reviewers that were asked to review a pull
// request and have not submitted a review since.
type RequestedReviewers struct {
	Users []*User

	// Slugs of requested teams.
	Teams []string
}

// GitHub is a gateway that provides access to GitHub operations on a specific
// repository.
type GitHub interface {
	// Lists the members of the given team in the given organization.
	//
	// ErrNotFound is returned if the team does not exist.
	ListTeamMembers(ctx context.Context, org, team string) ([]*User, error)

	// Lists the names of labels currently applied to a pull request.
	ListPullRequestLabels(ctx context.Context, number int) ([]string, error)

	// Lists the users and teams with outstanding review requests.
	ListRequestedReviewers(ctx context.Context, number int) (*RequestedReviewers, error)

	// Lists reviews for a pull request, oldest first.
	ListPullRequestReviews(ctx context.Context, number int) ([]*PullRequestReview, error)

	// Adds a label to a pull request. Adding a label that is already present
	// is a no-op.
	AddPullRequestLabel(ctx context.Context, number int, label string) error

	// Removes a label from a pull request. Removing a label that is not
	// present is a no-op.
	RemovePullRequestLabel(ctx context.Context, number int, label string) error
}

//go:generate mockgen -package=gatewaytest -destination=gatewaytest/mocks.go github.com/jetbrains-academy/pullrequest-labeler-action/gateway GitHub
