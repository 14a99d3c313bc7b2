package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jetbrains-academy/pullrequest-labeler-action/entity"

	"go.uber.org/multierr"
)

// ErrInvalidRequest is wrapped by errors caused by an incomplete or
// malformed SyncRequest.
var ErrInvalidRequest = errors.New("invalid request")

// Rule maps a GitHub team to the label that marks the team's approval.
type Rule struct {
	// Slug of the team in the organization.
	Team string `mapstructure:"team"`

	// Label applied when all reviewing team members are satisfied.
	Label string `mapstructure:"label"`
}

func (r Rule) String() string {
	return fmt.Sprintf("%v -> %v", r.Team, r.Label)
}

// LabelAction is the change a role requires of its label.
type LabelAction int

// All possible LabelActions.
const (
	LabelNone LabelAction = iota
	LabelAdd
	LabelRemove
)

func (a LabelAction) String() string {
	switch a {
	case LabelNone:
		return "none"
	case LabelAdd:
		return "add"
	case LabelRemove:
		return "remove"
	default:
		return fmt.Sprintf("LabelAction(%d)", int(a))
	}
}

// Reason explains why a LabelAction was chosen.
type Reason string

// All possible Reasons.
const (
	// A member of the role has an outstanding review request.
	ReasonPendingRequest Reason = "pending-request"

	// No member of the role has reviewed the pull request.
	ReasonNoActivity Reason = "no-activity"

	// Every reviewing member's latest verdict is an approval.
	ReasonApproved Reason = "approved"

	// At least one reviewing member is still waiting on changes.
	ReasonChangesRequested Reason = "changes-requested"
)

// SyncRequest is a request to reconcile the review labels of a single pull
// request.
type SyncRequest struct {
	// Organization that owns the teams named in Rules.
	Org string

	// Repository of the pull request.
	Repo *entity.Repo

	// Pull request number.
	Number int

	// Team to label rules, processed in order.
	Rules []Rule

	// If set, decisions are computed and reported but labels are left
	// untouched.
	DryRun bool
}

// Validate checks that all required fields of the request are present. All
// problems are reported together.
func (r *SyncRequest) Validate() error {
	var err error
	if r.Org == "" {
		err = multierr.Append(err, errors.New("organization is required"))
	}
	if r.Repo == nil || r.Repo.Owner == "" || r.Repo.Name == "" {
		err = multierr.Append(err, errors.New("repository is required"))
	}
	if r.Number <= 0 {
		err = multierr.Append(err,
			fmt.Errorf("pull request number must be positive, got %v", r.Number))
	}
	if len(r.Rules) == 0 {
		err = multierr.Append(err, errors.New("at least one rule is required"))
	}
	for i, rule := range r.Rules {
		if rule.Team == "" {
			err = multierr.Append(err, fmt.Errorf("rule %v: team is required", i))
		}
		if rule.Label == "" {
			err = multierr.Append(err, fmt.Errorf("rule %v: label is required", i))
		}
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return nil
}

// RoleResult is the outcome of reconciling a single role.
type RoleResult struct {
	// Team the role was built from.
	Role  string
	Label string

	Action LabelAction
	Reason Reason

	// Logins of reviewing members who are blocking the label.
	Blocking []string

	// Whether the action was successfully applied to the pull request. This
	// is false for LabelNone and for dry runs.
	Applied bool
}

// SyncResponse is the response of a Sync request.
type SyncResponse struct {
	// Results in the order of the request's rules. If Sync failed partway,
	// this holds the roles processed before the failure.
	Results []*RoleResult
}

// Label is the service that keeps review labels in sync with reviews.
type Label interface {
	// Reconciles the labels of a pull request against its reviews.
	Sync(context.Context, *SyncRequest) (*SyncResponse, error)
}

//go:generate mockgen -package=servicetest -destination=servicetest/mocks.go github.com/jetbrains-academy/pullrequest-labeler-action/service Label
