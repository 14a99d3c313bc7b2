package main

import (
	"github.com/jetbrains-academy/pullrequest-labeler-action/cli"
	"github.com/jetbrains-academy/pullrequest-labeler-action/label"
	"github.com/jetbrains-academy/pullrequest-labeler-action/service"
)

// Common config for pullrequest-labeler commands.
type config struct {
	cli.Config

	Service service.Label
}

type configBuilder func() (config, error)

func newConfigBuilder(cb cli.ConfigBuilder) configBuilder {
	return func() (config, error) {
		cfg, err := cb()
		if err != nil {
			return config{}, err
		}

		return config{
			Config: cfg,
			Service: label.NewService(label.ServiceConfig{
				GitHub: cfg.GitHub(),
				Logger: cfg.Logger(),
			}),
		}, nil
	}
}
