package clitest

import (
	"github.com/jetbrains-academy/pullrequest-labeler-action/cli"
	"github.com/jetbrains-academy/pullrequest-labeler-action/entity"
	"github.com/jetbrains-academy/pullrequest-labeler-action/event"
	"github.com/jetbrains-academy/pullrequest-labeler-action/gateway"

	"go.uber.org/zap"
)

// ConfigBuilder may be used to build a cli.Config from static values.
type ConfigBuilder struct {
	Event  *event.PullRequest
	Repo   *entity.Repo
	GitHub gateway.GitHub

	// Defaults to a no-op logger.
	Logger *zap.SugaredLogger
}

// Build the cli.Config. This function may also be used as a
// cli.ConfigBuilder.
func (c *ConfigBuilder) Build() (cli.Config, error) {
	// We never return an error. It's used only to satisfy the
	// cli.ConfigBuilder signature.
	return &config{*c}, nil
}

type config struct{ data ConfigBuilder }

func (c *config) Event() *event.PullRequest {
	return c.data.Event
}

func (c *config) Repo() *entity.Repo {
	if c.data.Repo == nil && c.data.Event != nil {
		return c.data.Event.Repo
	}
	return c.data.Repo
}

func (c *config) GitHub() gateway.GitHub {
	return c.data.GitHub
}

func (c *config) Logger() *zap.SugaredLogger {
	if c.data.Logger == nil {
		return zap.NewNop().Sugar()
	}
	return c.data.Logger
}
