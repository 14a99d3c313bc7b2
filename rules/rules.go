// Package rules loads the team to label rules that drive labeling.
//
// Rules may be given inline as JSON, the format used by the RULES
// environment variable:
//
//	[["backend-team", "backend-approved"], ["docs-team", "docs-approved"]]
//
// or as objects:
//
//	[{"team": "backend-team", "label": "backend-approved"}]
//
// Rules files are read with viper and may be YAML, JSON or TOML:
//
//	rules:
//	  - team: backend-team
//	    label: backend-approved
package rules

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jetbrains-academy/pullrequest-labeler-action/service"

	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

// Parse parses rules from JSON.
func Parse(data []byte) ([]service.Rule, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("rules must be a JSON list: %w", err)
	}

	rules := make([]service.Rule, 0, len(entries))
	for i, entry := range entries {
		rule, err := parseEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("rule %v: %w", i, err)
		}
		rules = append(rules, rule)
	}

	if err := validate(rules); err != nil {
		return nil, err
	}
	return rules, nil
}

func parseEntry(data json.RawMessage) (service.Rule, error) {
	var pair []string
	if err := json.Unmarshal(data, &pair); err == nil {
		if len(pair) != 2 {
			return service.Rule{}, fmt.Errorf(
				"expected a [team, label] pair, got %v elements", len(pair))
		}
		return service.Rule{Team: pair[0], Label: pair[1]}, nil
	}

	var obj struct {
		Team  string `json:"team"`
		Label string `json:"label"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return service.Rule{}, fmt.Errorf(
			"expected a [team, label] pair or a {team, label} object: %s", data)
	}
	return service.Rule{Team: obj.Team, Label: obj.Label}, nil
}

// Load reads rules from the given file. The format is determined by the
// file extension.
func Load(path string) ([]service.Rule, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read rules file %v: %w", path, err)
	}

	var file struct {
		Rules []service.Rule `mapstructure:"rules"`
	}
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("failed to decode rules file %v: %w", path, err)
	}

	if err := validate(file.Rules); err != nil {
		return nil, fmt.Errorf("invalid rules file %v: %w", path, err)
	}
	return file.Rules, nil
}

func validate(rules []service.Rule) error {
	if len(rules) == 0 {
		return errors.New("no rules specified")
	}

	var err error
	for i, r := range rules {
		if r.Team == "" {
			err = multierr.Append(err, fmt.Errorf("rule %v: team cannot be empty", i))
		}
		if r.Label == "" {
			err = multierr.Append(err, fmt.Errorf("rule %v: label cannot be empty", i))
		}
	}
	return err
}
