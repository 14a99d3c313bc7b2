package cli

import (
	"context"
	"net/http"

	"github.com/jetbrains-academy/pullrequest-labeler-action/entity"
	"github.com/jetbrains-academy/pullrequest-labeler-action/event"
	"github.com/jetbrains-academy/pullrequest-labeler-action/gateway"
	ghgateway "github.com/jetbrains-academy/pullrequest-labeler-action/github"
	"github.com/jetbrains-academy/pullrequest-labeler-action/repo"

	"github.com/google/go-github/v66/github"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// Config is the common configuration for all programs in this package.
type Config interface {
	// Pull request that triggered this run.
	Event() *event.PullRequest

	Repo() *entity.Repo
	GitHub() gateway.GitHub
	Logger() *zap.SugaredLogger
}

// ConfigBuilder builds a configuration lazily.
type ConfigBuilder func() (Config, error)

type globalConfig struct {
	GitHubToken string `short:"t" long:"token" env:"GITHUB_TOKEN" value-name:"TOKEN" required:"yes" description:"GitHub token used to make requests."`
	EventPath   string `short:"e" long:"event" env:"GITHUB_EVENT_PATH" value-name:"FILE" required:"yes" description:"Path to the JSON payload of the pull request event that triggered this run."`
	RepoName    string `short:"r" long:"repo" value-name:"OWNER/REPO" description:"Name of the GitHub repository in the format 'owner/repo'. Defaults to the repository in the event payload."`
	LogLevel    string `long:"log-level" env:"LOG_LEVEL" value-name:"LEVEL" default:"info" description:"Minimum level of log messages: debug, info, warn or error."`

	event        *event.PullRequest
	repo         *entity.Repo
	log          *zap.SugaredLogger
	httpClient   *http.Client
	githubClient *github.Client
	gateway      *ghgateway.Gateway
}

var _ Config = (*globalConfig)(nil)

// globalConfig.Build is a ConfigBuilder
func (g *globalConfig) Build() (_ Config, err error) {
	g.log, err = newLogger(g.LogLevel)
	if err != nil {
		return nil, err
	}

	g.event, err = event.Load(g.EventPath)
	if err != nil {
		return nil, err
	}

	g.repo = g.event.Repo
	if g.RepoName != "" {
		g.repo, err = repo.Parse(g.RepoName)
		if err != nil {
			return nil, err
		}
	}

	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: g.GitHubToken})
	g.httpClient = oauth2.NewClient(context.Background(), tokenSource)
	g.githubClient = github.NewClient(g.httpClient)
	g.gateway = ghgateway.NewGatewayForRepository(g.githubClient, g.repo, g.log)

	return g, nil
}

func (g *globalConfig) Event() *event.PullRequest {
	return g.event
}

func (g *globalConfig) Repo() *entity.Repo {
	return g.repo
}

func (g *globalConfig) GitHub() gateway.GitHub {
	return g.gateway
}

func (g *globalConfig) Logger() *zap.SugaredLogger {
	return g.log
}
