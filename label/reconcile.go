package label

import (
	"strings"

	"github.com/jetbrains-academy/pullrequest-labeler-action/gateway"
	"github.com/jetbrains-academy/pullrequest-labeler-action/service"
)

// Role is a team of reviewers whose collective approval is represented by a
// label.
type Role struct {
	// Name of the team.
	Name  string
	Label string

	// Members of the team, keyed by user ID.
	Members map[int64]*gateway.User
}

// NewRole builds a Role from the given team members.
func NewRole(name, label string, members []*gateway.User) *Role {
	m := make(map[int64]*gateway.User, len(members))
	for _, u := range members {
		m[u.ID] = u
	}
	return &Role{Name: name, Label: label, Members: m}
}

// IsMember checks if the given user belongs to this role.
func (r *Role) IsMember(u *gateway.User) bool {
	_, ok := r.Members[u.ID]
	return ok
}

// Snapshot is the state of a pull request that a role is reconciled against.
type Snapshot struct {
	// Names of labels on the pull request.
	Labels []string

	// Users with outstanding review requests.
	Requesters []*gateway.User

	// All reviews on the pull request, oldest first.
	Reviews []*gateway.PullRequestReview
}

// HasLabel checks if the pull request has the given label. Label names are
// case-insensitive on GitHub.
func (s *Snapshot) HasLabel(name string) bool {
	for _, l := range s.Labels {
		if strings.EqualFold(l, name) {
			return true
		}
	}
	return false
}

// Decision is the outcome of reconciling a role against a pull request.
type Decision struct {
	Action service.LabelAction
	Reason service.Reason

	// Logins of reviewing members who are blocking the label, in the order
	// of their first review.
	Blocking []string
}

// Reconcile decides what should happen to the role's label on a pull request
// with the given state.
//
// A role's label is wanted when at least one member has reviewed the pull
// request, no member has an outstanding review request, and the latest
// verdict of every reviewing member is an approval.
func Reconcile(role *Role, pr *Snapshot) *Decision {
	requested := make(map[int64]struct{})
	for _, u := range pr.Requesters {
		if role.IsMember(u) {
			requested[u.ID] = struct{}{}
		}
	}

	// A new review request invalidates earlier approvals.
	if len(requested) > 0 {
		return &Decision{
			Action: removeIfPresent(role, pr),
			Reason: service.ReasonPendingRequest,
		}
	}

	var memberReviews []*gateway.PullRequestReview
	for _, review := range pr.Reviews {
		if role.IsMember(review.User) {
			memberReviews = append(memberReviews, review)
		}
	}

	authors := GroupByAuthor(memberReviews)
	if len(authors) == 0 {
		return &Decision{Action: service.LabelNone, Reason: service.ReasonNoActivity}
	}

	var blocking []string
	for _, a := range authors {
		_, isRequested := requested[a.Author.ID]
		if isRequested || IsWaiting(a.Reviews) {
			blocking = append(blocking, a.Author.Login)
		}
	}

	if len(blocking) == 0 {
		return &Decision{Action: service.LabelAdd, Reason: service.ReasonApproved}
	}

	return &Decision{
		Action:   removeIfPresent(role, pr),
		Reason:   service.ReasonChangesRequested,
		Blocking: blocking,
	}
}

func removeIfPresent(role *Role, pr *Snapshot) service.LabelAction {
	if pr.HasLabel(role.Label) {
		return service.LabelRemove
	}
	return service.LabelNone
}
