package main

import (
	"github.com/jetbrains-academy/pullrequest-labeler-action/cli/clitest"
	"github.com/jetbrains-academy/pullrequest-labeler-action/service"
)

type fakeConfigBuilder struct {
	clitest.ConfigBuilder

	Service service.Label
}

func (f *fakeConfigBuilder) Build() (config, error) {
	c, err := f.ConfigBuilder.Build()
	if err != nil {
		return config{}, err
	}

	return config{Config: c, Service: f.Service}, nil
}
