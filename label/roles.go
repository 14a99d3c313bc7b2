package label

import (
	"context"
	"errors"
	"fmt"

	"github.com/jetbrains-academy/pullrequest-labeler-action/gateway"
	"github.com/jetbrains-academy/pullrequest-labeler-action/service"
)

// ErrUnknownTeam is wrapped by errors for rules that name a team which does
// not exist in the organization.
var ErrUnknownTeam = errors.New("unknown team")

// LoadRoles resolves the members of the teams named in the given rules.
//
// Roles are returned in the order of the rules. The first team that cannot
// be resolved fails the whole operation.
func LoadRoles(ctx context.Context, gh gateway.GitHub, org string, rules []service.Rule) ([]*Role, error) {
	roles := make([]*Role, 0, len(rules))
	for _, rule := range rules {
		members, err := gh.ListTeamMembers(ctx, org, rule.Team)
		if err != nil {
			if errors.Is(err, gateway.ErrNotFound) {
				return nil, fmt.Errorf(
					"%w %q in organization %v (label %q)", ErrUnknownTeam, rule.Team, org, rule.Label)
			}
			return nil, fmt.Errorf("failed to resolve team %q: %w", rule.Team, err)
		}
		roles = append(roles, NewRole(rule.Team, rule.Label, members))
	}
	return roles, nil
}
