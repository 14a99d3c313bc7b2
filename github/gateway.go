package github

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/jetbrains-academy/pullrequest-labeler-action/entity"
	"github.com/jetbrains-academy/pullrequest-labeler-action/gateway"

	"github.com/codeGROOVE-dev/retry"
	"github.com/google/go-github/v66/github"
	"go.uber.org/zap"
)

const (
	_perPage = 100

	_defaultAttempts   = 4
	_defaultRetryDelay = time.Second
	_maxRetryDelay     = 30 * time.Second
)

// teamsService is the GitHub Teams client.
type teamsService interface {
	ListTeamMembersBySlug(
		ctx context.Context, org, slug string, opts *github.TeamListTeamMembersOptions,
	) ([]*github.User, *github.Response, error)
}

var _ teamsService = (*github.TeamsService)(nil)

// pullRequestsService is the GitHub PullRequests client.
type pullRequestsService interface {
	ListReviewers(
		ctx context.Context, owner string, repo string, number int, opts *github.ListOptions,
	) (*github.Reviewers, *github.Response, error)

	ListReviews(
		ctx context.Context, owner string, repo string, number int, opts *github.ListOptions,
	) ([]*github.PullRequestReview, *github.Response, error)
}

var _ pullRequestsService = (*github.PullRequestsService)(nil)

// issuesService is the GitHub Issues client. Pull request labels are managed
// through it.
type issuesService interface {
	ListLabelsByIssue(
		ctx context.Context, owner string, repo string, number int, opts *github.ListOptions,
	) ([]*github.Label, *github.Response, error)

	AddLabelsToIssue(
		ctx context.Context, owner string, repo string, number int, labels []string,
	) ([]*github.Label, *github.Response, error)

	RemoveLabelForIssue(
		ctx context.Context, owner string, repo string, number int, label string,
	) (*github.Response, error)
}

var _ issuesService = (*github.IssuesService)(nil)

// Gateway is a GitHub gateway that makes actual requests to GitHub.
type Gateway struct {
	owner  string
	repo   string
	teams  teamsService
	pulls  pullRequestsService
	issues issuesService
	log    *zap.SugaredLogger

	// Read requests that fail with transient errors are attempted up to
	// this many times.
	attempts   uint
	retryDelay time.Duration
}

var _ gateway.GitHub = (*Gateway)(nil)

// NewGatewayForRepository builds a new GitHub gateway for the given GitHub
// repository.
func NewGatewayForRepository(client *github.Client, repo *entity.Repo, log *zap.SugaredLogger) *Gateway {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Gateway{
		owner:      repo.Owner,
		repo:       repo.Name,
		teams:      client.Teams,
		pulls:      client.PullRequests,
		issues:     client.Issues,
		log:        log,
		attempts:   _defaultAttempts,
		retryDelay: _defaultRetryDelay,
	}
}

func (g *Gateway) urlFor(number int) string {
	return fmt.Sprintf("https://github.com/%v/%v/pull/%v", g.owner, g.repo, number)
}

// read runs a read-only request, retrying it if it fails with a transient
// error.
func (g *Gateway) read(ctx context.Context, operation string, fn func() error) error {
	attempts := g.attempts
	if attempts == 0 {
		attempts = 1
	}
	log := g.log
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return retry.Do(
		fn,
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.DelayType(retry.BackOffDelay),
		retry.Delay(g.retryDelay),
		retry.MaxDelay(_maxRetryDelay),
		retry.RetryIf(isTransient),
		retry.OnRetry(func(n uint, err error) {
			log.Warnw("retrying request",
				"operation", operation, "attempt", n+1, "max_attempts", attempts, "error", err)
		}),
		retry.LastErrorOnly(true),
	)
}

// ListTeamMembers lists all members of the given team.
func (g *Gateway) ListTeamMembers(ctx context.Context, org, team string) ([]*gateway.User, error) {
	var members []*gateway.User
	opts := github.TeamListTeamMembersOptions{
		ListOptions: github.ListOptions{PerPage: _perPage},
	}
	for {
		var (
			page []*github.User
			resp *github.Response
		)
		err := g.read(ctx, "list team members", func() (err error) {
			page, resp, err = g.teams.ListTeamMembersBySlug(ctx, org, team, &opts)
			return err
		})
		if err != nil {
			if isNotFound(err) {
				return nil, fmt.Errorf("team %v/%v: %w", org, team, gateway.ErrNotFound)
			}
			return nil, fmt.Errorf("failed to list members of team %v/%v: %w", org, team, err)
		}

		for _, u := range page {
			members = append(members, toUser(u))
		}
		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return members, nil
}

// ListPullRequestLabels lists the names of the labels on a pull request.
func (g *Gateway) ListPullRequestLabels(ctx context.Context, number int) ([]string, error) {
	labels := []string{}
	opts := github.ListOptions{PerPage: _perPage}
	for {
		var (
			page []*github.Label
			resp *github.Response
		)
		err := g.read(ctx, "list labels", func() (err error) {
			page, resp, err = g.issues.ListLabelsByIssue(ctx, g.owner, g.repo, number, &opts)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list labels of %v: %w", g.urlFor(number), err)
		}

		for _, l := range page {
			labels = append(labels, l.GetName())
		}
		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return labels, nil
}

// ListRequestedReviewers lists the users and teams whose reviews were
// requested on a pull request.
func (g *Gateway) ListRequestedReviewers(ctx context.Context, number int) (*gateway.RequestedReviewers, error) {
	var result gateway.RequestedReviewers
	opts := github.ListOptions{PerPage: _perPage}
	for {
		var (
			page *github.Reviewers
			resp *github.Response
		)
		err := g.read(ctx, "list requested reviewers", func() (err error) {
			page, resp, err = g.pulls.ListReviewers(ctx, g.owner, g.repo, number, &opts)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf(
				"failed to list requested reviewers of %v: %w", g.urlFor(number), err)
		}

		if page != nil {
			for _, u := range page.Users {
				result.Users = append(result.Users, toUser(u))
			}
			for _, t := range page.Teams {
				result.Teams = append(result.Teams, t.GetSlug())
			}
		}
		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return &result, nil
}

// ListPullRequestReviews lists reviews for a pull request, oldest first.
func (g *Gateway) ListPullRequestReviews(ctx context.Context, number int) ([]*gateway.PullRequestReview, error) {
	reviews := []*gateway.PullRequestReview{}
	opts := github.ListOptions{PerPage: _perPage}
	for {
		var (
			page []*github.PullRequestReview
			resp *github.Response
		)
		err := g.read(ctx, "list reviews", func() (err error) {
			page, resp, err = g.pulls.ListReviews(ctx, g.owner, g.repo, number, &opts)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list reviews of %v: %w", g.urlFor(number), err)
		}

		for _, r := range page {
			// Reviews by deleted accounts have no author.
			if r.User == nil {
				continue
			}
			reviews = append(reviews, &gateway.PullRequestReview{
				User:   toUser(r.User),
				Status: gateway.PullRequestReviewState(r.GetState()),
			})
		}
		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return reviews, nil
}

// AddPullRequestLabel adds a label to a pull request.
func (g *Gateway) AddPullRequestLabel(ctx context.Context, number int, label string) error {
	_, _, err := g.issues.AddLabelsToIssue(ctx, g.owner, g.repo, number, []string{label})
	if err != nil {
		return fmt.Errorf("failed to add label %q to %v: %w", label, g.urlFor(number), err)
	}
	return nil
}

// RemovePullRequestLabel removes a label from a pull request. Removing a
// label that is not on the pull request succeeds.
func (g *Gateway) RemovePullRequestLabel(ctx context.Context, number int, label string) error {
	_, err := g.issues.RemoveLabelForIssue(ctx, g.owner, g.repo, number, label)
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to remove label %q from %v: %w", label, g.urlFor(number), err)
	}
	return nil
}

func toUser(u *github.User) *gateway.User {
	return &gateway.User{ID: u.GetID(), Login: u.GetLogin()}
}

func isNotFound(err error) bool {
	var respErr *github.ErrorResponse
	return errors.As(err, &respErr) &&
		respErr.Response != nil &&
		respErr.Response.StatusCode == http.StatusNotFound
}

// isTransient reports whether a request that failed with the given error
// may succeed if it is tried again.
func isTransient(err error) bool {
	var (
		rateErr  *github.RateLimitError
		abuseErr *github.AbuseRateLimitError
		respErr  *github.ErrorResponse
		netErr   net.Error
	)
	switch {
	case errors.As(err, &rateErr), errors.As(err, &abuseErr):
		return true
	case errors.As(err, &respErr):
		return respErr.Response != nil && respErr.Response.StatusCode >= http.StatusInternalServerError
	case errors.As(err, &netErr):
		return true
	default:
		return false
	}
}
