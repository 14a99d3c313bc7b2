// Package event reads the GitHub Actions event that triggered a run.
package event

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jetbrains-academy/pullrequest-labeler-action/entity"

	"github.com/google/go-github/v66/github"
	"go.uber.org/multierr"
)

// PullRequest identifies the pull request an event was raised for.
type PullRequest struct {
	// Login of the organization that owns the repository.
	Org    string
	Repo   *entity.Repo
	Number int
}

// payload holds the fields shared by the pull_request, pull_request_review
// and pull_request_target event payloads.
type payload struct {
	Organization *github.Organization `json:"organization"`
	Repo         *github.Repository   `json:"repository"`
	PullRequest  *github.PullRequest  `json:"pull_request"`
}

// Load reads the event payload at the given path.
func Load(path string) (*PullRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read event payload: %w", err)
	}

	pr, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid event payload %v: %w", path, err)
	}
	return pr, nil
}

// Parse parses a pull request event payload.
func Parse(data []byte) (*PullRequest, error) {
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}

	var err error
	if p.Organization.GetLogin() == "" {
		err = multierr.Append(err, errors.New("organization is missing"))
	}
	if p.Repo.GetName() == "" || p.Repo.GetOwner().GetLogin() == "" {
		err = multierr.Append(err, errors.New("repository is missing"))
	}
	if p.PullRequest.GetNumber() == 0 {
		err = multierr.Append(err, errors.New("pull request is missing"))
	}
	if err != nil {
		return nil, err
	}

	return &PullRequest{
		Org: p.Organization.GetLogin(),
		Repo: &entity.Repo{
			Owner: p.Repo.GetOwner().GetLogin(),
			Name:  p.Repo.GetName(),
		},
		Number: p.PullRequest.GetNumber(),
	}, nil
}
