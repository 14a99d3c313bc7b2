package label

import (
	"context"
	"fmt"

	"github.com/jetbrains-academy/pullrequest-labeler-action/gateway"
	"github.com/jetbrains-academy/pullrequest-labeler-action/service"

	"go.uber.org/zap"
)

// ServiceConfig specifies the different parameters for a label service.
type ServiceConfig struct {
	GitHub gateway.GitHub

	// Defaults to a no-op logger.
	Logger *zap.SugaredLogger
}

// Service reconciles review labels on pull requests.
type Service struct {
	gh  gateway.GitHub
	log *zap.SugaredLogger
}

var _ service.Label = (*Service)(nil)

// NewService builds a new label service with the given configuration.
func NewService(cfg ServiceConfig) *Service {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Service{gh: cfg.GitHub, log: log}
}

// Sync reconciles the label of every rule in the request against the
// current reviews of the pull request.
//
// Teams are resolved and the pull request is read before any label is
// changed. Roles are then processed in order and the first failure stops
// processing; the results of roles processed until then are returned with
// the error.
func (s *Service) Sync(ctx context.Context, req *service.SyncRequest) (*service.SyncResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	log := s.log.With("pr", req.Repo.PullRequestURL(req.Number))
	for _, rule := range req.Rules {
		log.Infow("rule", "team", rule.Team, "label", rule.Label)
	}

	roles, err := LoadRoles(ctx, s.gh, req.Org, req.Rules)
	if err != nil {
		return nil, err
	}

	snap, err := s.snapshot(ctx, log, req.Number)
	if err != nil {
		return nil, err
	}

	var res service.SyncResponse
	for _, role := range roles {
		result, err := s.syncRole(ctx, log, req, role, snap)
		if result != nil {
			res.Results = append(res.Results, result)
		}
		if err != nil {
			return &res, fmt.Errorf("failed to sync label %q for team %q: %w", role.Label, role.Name, err)
		}
	}
	return &res, nil
}

func (s *Service) snapshot(ctx context.Context, log *zap.SugaredLogger, number int) (*Snapshot, error) {
	labels, err := s.gh.ListPullRequestLabels(ctx, number)
	if err != nil {
		return nil, err
	}

	requested, err := s.gh.ListRequestedReviewers(ctx, number)
	if err != nil {
		return nil, err
	}
	if requested == nil {
		requested = &gateway.RequestedReviewers{}
	}

	reviews, err := s.gh.ListPullRequestReviews(ctx, number)
	if err != nil {
		return nil, err
	}

	log.Infow("pull request state",
		"labels", labels,
		"requested_reviewers", requested.Users,
		"reviews", len(reviews),
	)
	if len(requested.Teams) > 0 {
		// Only individual requests are considered.
		log.Debugw("ignoring requested teams", "teams", requested.Teams)
	}

	return &Snapshot{
		Labels:     labels,
		Requesters: requested.Users,
		Reviews:    reviews,
	}, nil
}

func (s *Service) syncRole(
	ctx context.Context,
	log *zap.SugaredLogger,
	req *service.SyncRequest,
	role *Role,
	snap *Snapshot,
) (*service.RoleResult, error) {
	log = log.With("team", role.Name, "label", role.Label)

	d, err := reconcile(role, snap)
	if err != nil {
		return nil, err
	}

	result := &service.RoleResult{
		Role:     role.Name,
		Label:    role.Label,
		Action:   d.Action,
		Reason:   d.Reason,
		Blocking: d.Blocking,
	}
	log.Infow("decision",
		"action", d.Action.String(),
		"reason", d.Reason,
		"blocking", d.Blocking,
	)

	if d.Action == service.LabelNone || req.DryRun {
		return result, nil
	}

	switch d.Action {
	case service.LabelAdd:
		err = s.gh.AddPullRequestLabel(ctx, req.Number, role.Label)
	case service.LabelRemove:
		err = s.gh.RemovePullRequestLabel(ctx, req.Number, role.Label)
	}
	if err != nil {
		return result, err
	}

	result.Applied = true
	return result, nil
}

// reconcile calls Reconcile, turning panics into errors.
func reconcile(role *Role, snap *Snapshot) (_ *Decision, err error) {
	defer func() {
		if x := recover(); x != nil {
			if e, ok := x.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("panic: %v", x)
			}
		}
	}()

	return Reconcile(role, snap), nil
}
