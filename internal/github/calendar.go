package github

import (
	"context"
	"strings"

	"github.com/cli/go-gh/v2/pkg/api"

	"github.com/diverger/gh-holiday/internal/classify"
)

// calendarQuery asks the GraphQL API for the rendered calendar colors. The
// API reports the exact hex value github.com paints each day with, which
// makes it an alternative sampler source when a token is available (it always
// is inside Actions).
const calendarQuery = `query($login: String!) {
  user(login: $login) {
    contributionsCollection {
      contributionCalendar {
        weeks {
          contributionDays {
            color
            contributionLevel
          }
        }
      }
    }
  }
}`

var contributionLevels = map[string]int{
	"NONE":            0,
	"FIRST_QUARTILE":  1,
	"SECOND_QUARTILE": 2,
	"THIRD_QUARTILE":  3,
	"FOURTH_QUARTILE": 4,
}

// CalendarColors samples per-level calendar colors through the GraphQL API.
// It returns an error when no token is configured or the query fails; callers
// treat that as "no signal" and continue with the anonymous HTML path.
func CalendarColors(ctx context.Context, username string) (classify.Palette, error) {
	client, err := api.DefaultGraphQLClient()
	if err != nil {
		return nil, err
	}

	var resp struct {
		User struct {
			ContributionsCollection struct {
				ContributionCalendar struct {
					Weeks []struct {
						ContributionDays []struct {
							Color             string
							ContributionLevel string
						}
					}
				}
			}
		}
	}

	vars := map[string]interface{}{"login": username}
	if err := client.DoWithContext(ctx, calendarQuery, vars, &resp); err != nil {
		return nil, err
	}

	palette := classify.Palette{}

	for _, week := range resp.User.ContributionsCollection.ContributionCalendar.Weeks {
		for _, day := range week.ContributionDays {
			level, ok := contributionLevels[day.ContributionLevel]
			if !ok {
				continue
			}

			if _, seen := palette[level]; seen {
				continue
			}

			color := strings.ToLower(day.Color)
			if color == "" || color == "#000000" {
				continue
			}

			palette[level] = color
		}
	}

	return palette, nil
}
