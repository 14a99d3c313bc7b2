package main

import (
	"errors"
	"testing"

	"github.com/jetbrains-academy/pullrequest-labeler-action/cli/clitest"
	"github.com/jetbrains-academy/pullrequest-labeler-action/entity"
	"github.com/jetbrains-academy/pullrequest-labeler-action/event"
	"github.com/jetbrains-academy/pullrequest-labeler-action/gateway/gatewaytest"
	"github.com/jetbrains-academy/pullrequest-labeler-action/rules"
	"github.com/jetbrains-academy/pullrequest-labeler-action/service"
	"github.com/jetbrains-academy/pullrequest-labeler-action/service/servicetest"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestSyncCmd(t *testing.T) {
	backend := service.Rule{Team: "backend", Label: "backend-approved"}

	tests := []struct {
		Desc string

		Rules     string
		RulesFile string
		DryRun    bool

		// Rules returned by the rules file loader.
		FileRules []service.Rule

		ExpectSyncRequest  *service.SyncRequest
		ReturnSyncResponse *service.SyncResponse
		ReturnSyncError    error

		// If non-empty, an error with a message matching this will be
		// expected
		WantError string
	}{
		{
			Desc:      "no rules",
			WantError: "rules must be specified with --rules or --rules-file",
		},
		{
			Desc:      "both rule sources",
			Rules:     `[["backend", "backend-approved"]]`,
			RulesFile: "rules.yaml",
			WantError: "only one of --rules and --rules-file may be specified",
		},
		{
			Desc:      "malformed rules",
			Rules:     `[["backend"]]`,
			WantError: "expected a [team, label] pair",
		},
		{
			Desc:  "inline rules",
			Rules: `[["backend", "backend-approved"]]`,
			ExpectSyncRequest: &service.SyncRequest{
				Org:    "acme",
				Repo:   &entity.Repo{Owner: "acme", Name: "widgets"},
				Number: 42,
				Rules:  []service.Rule{backend},
			},
			ReturnSyncResponse: &service.SyncResponse{
				Results: []*service.RoleResult{{
					Role:    "backend",
					Label:   "backend-approved",
					Action:  service.LabelAdd,
					Reason:  service.ReasonApproved,
					Applied: true,
				}},
			},
		},
		{
			Desc:      "rules file dry run",
			RulesFile: "rules.yaml",
			DryRun:    true,
			FileRules: []service.Rule{backend},
			ExpectSyncRequest: &service.SyncRequest{
				Org:    "acme",
				Repo:   &entity.Repo{Owner: "acme", Name: "widgets"},
				Number: 42,
				Rules:  []service.Rule{backend},
				DryRun: true,
			},
			ReturnSyncResponse: &service.SyncResponse{},
		},
		{
			Desc:  "sync failure",
			Rules: `[["backend", "backend-approved"]]`,
			ExpectSyncRequest: &service.SyncRequest{
				Org:    "acme",
				Repo:   &entity.Repo{Owner: "acme", Name: "widgets"},
				Number: 42,
				Rules:  []service.Rule{backend},
			},
			ReturnSyncError: errors.New("great sadness"),
			WantError:       "failed to sync labels of https://github.com/acme/widgets/pull/42: great sadness",
		},
	}

	for _, tt := range tests {
		t.Run(tt.Desc, func(t *testing.T) {
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()

			svc := servicetest.NewMockLabel(mockCtrl)
			cb := &fakeConfigBuilder{
				ConfigBuilder: clitest.ConfigBuilder{
					Event: &event.PullRequest{
						Org:    "acme",
						Repo:   &entity.Repo{Owner: "acme", Name: "widgets"},
						Number: 42,
					},
					GitHub: gatewaytest.NewMockGitHub(mockCtrl),
				},
				Service: svc,
			}
			cmd := syncCmd{
				Rules:      tt.Rules,
				RulesFile:  tt.RulesFile,
				DryRun:     tt.DryRun,
				getConfig:  cb.Build,
				parseRules: rules.Parse,
				loadRules: func(path string) ([]service.Rule, error) {
					assert.Equal(t, tt.RulesFile, path)
					return tt.FileRules, nil
				},
			}

			if tt.ExpectSyncRequest != nil {
				svc.EXPECT().Sync(gomock.Any(), tt.ExpectSyncRequest).
					Return(tt.ReturnSyncResponse, tt.ReturnSyncError)
			}

			err := cmd.Execute(nil)
			if tt.WantError != "" {
				assert.Error(t, err, "expected failure")
				assert.Contains(t, err.Error(), tt.WantError)
			} else {
				assert.NoError(t, err, "command sync failed")
			}
		})
	}
}

func TestFormatResult(t *testing.T) {
	tests := []struct {
		desc   string
		give   service.RoleResult
		dryRun bool
		want   string
	}{
		{
			desc: "added",
			give: service.RoleResult{
				Role: "backend", Label: "backend-approved",
				Action: service.LabelAdd, Reason: service.ReasonApproved,
			},
			want: "backend-approved (backend): add [approved]",
		},
		{
			desc: "blocked",
			give: service.RoleResult{
				Role: "docs", Label: "docs-approved",
				Action: service.LabelRemove, Reason: service.ReasonChangesRequested,
				Blocking: []string{"alice", "bob"},
			},
			dryRun: true,
			want:   "docs-approved (docs): remove [changes-requested] blocked by alice, bob (dry run)",
		},
		{
			desc: "untouched",
			give: service.RoleResult{
				Role: "qa", Label: "qa-approved",
				Action: service.LabelNone, Reason: service.ReasonNoActivity,
			},
			dryRun: true,
			want:   "qa-approved (qa): none [no-activity]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			assert.Equal(t, tt.want, formatResult(&tt.give, tt.dryRun))
		})
	}
}
