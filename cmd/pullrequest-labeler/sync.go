package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jetbrains-academy/pullrequest-labeler-action/cli"
	"github.com/jetbrains-academy/pullrequest-labeler-action/rules"
	"github.com/jetbrains-academy/pullrequest-labeler-action/service"

	"github.com/jessevdk/go-flags"
)

type syncCmd struct {
	Rules     string `long:"rules" env:"RULES" value-name:"JSON" description:"Team to label rules as a JSON list of [team, label] pairs."`
	RulesFile string `long:"rules-file" env:"RULES_FILE" value-name:"FILE" description:"YAML, JSON or TOML file listing the team to label rules under the 'rules' key."`
	DryRun    bool   `short:"n" long:"dry-run" description:"Report the label changes without making them."`

	getConfig  configBuilder
	parseRules func([]byte) ([]service.Rule, error)
	loadRules  func(string) ([]service.Rule, error)
}

func newSyncCommand(cbuild cli.ConfigBuilder) flags.Commander {
	return &syncCmd{
		getConfig:  newConfigBuilder(cbuild),
		parseRules: rules.Parse,
		loadRules:  rules.Load,
	}
}

func (s *syncCmd) Execute([]string) error {
	ruleSet, err := s.readRules()
	if err != nil {
		return err
	}

	cfg, err := s.getConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ev := cfg.Event()
	req := service.SyncRequest{
		Org:    ev.Org,
		Repo:   cfg.Repo(),
		Number: ev.Number,
		Rules:  ruleSet,
		DryRun: s.DryRun,
	}

	url := req.Repo.PullRequestURL(req.Number)
	log.Println("Syncing labels of", url)
	res, err := cfg.Service.Sync(ctx, &req)
	if res != nil {
		for _, r := range res.Results {
			log.Println(" -", formatResult(r, s.DryRun))
		}
	}
	if err != nil {
		return fmt.Errorf("failed to sync labels of %v: %v", url, err)
	}
	return nil
}

func (s *syncCmd) readRules() ([]service.Rule, error) {
	switch {
	case s.Rules != "" && s.RulesFile != "":
		return nil, errors.New("only one of --rules and --rules-file may be specified")
	case s.Rules != "":
		return s.parseRules([]byte(s.Rules))
	case s.RulesFile != "":
		return s.loadRules(s.RulesFile)
	default:
		return nil, errors.New("rules must be specified with --rules or --rules-file")
	}
}

func formatResult(r *service.RoleResult, dryRun bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v (%v): %v [%v]", r.Label, r.Role, r.Action, r.Reason)
	if len(r.Blocking) > 0 {
		fmt.Fprintf(&b, " blocked by %v", strings.Join(r.Blocking, ", "))
	}
	if dryRun && r.Action != service.LabelNone {
		b.WriteString(" (dry run)")
	}
	return b.String()
}
