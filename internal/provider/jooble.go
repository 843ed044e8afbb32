package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/MrJJimenez/jobagg/internal/models"
	"github.com/MrJJimenez/jobagg/internal/network"
)

const joobleBaseURL = "https://jooble.org/api"

// Jooble queries the Jooble POST API per requested country. Jooble has
// no reliable country field in its responses, so records carry an
// unknown country and survive the country filter by design.
type Jooble struct {
	client *network.Client
	apiKey string
}

func NewJooble(client *network.Client, apiKey string) *Jooble {
	return &Jooble{client: client, apiKey: apiKey}
}

func (j *Jooble) Name() string {
	return SourceJooble
}

type joobleRequest struct {
	Keywords string `json:"keywords"`
	Location string `json:"location"`
}

type joobleResponse struct {
	Jobs []joobleJob `json:"jobs"`
}

type joobleJob struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Link     string `json:"link"`
}

func (j *Jooble) Fetch(ctx context.Context, query Query) ([]models.Job, error) {
	if j.apiKey == "" {
		return nil, ErrNotConfigured
	}

	keywords := strings.Join(append(append([]string{}, query.Skills...), query.Levels...), " ")

	var jobs []models.Job
	for _, country := range query.Countries {
		// Jooble only narrows by the free-text location; fall back to
		// the country name when no city was requested.
		location := query.Location
		if location == "" {
			location = country
		}

		var decoded joobleResponse
		target := fmt.Sprintf("%s/%s", joobleBaseURL, j.apiKey)
		err := j.client.PostJSON(ctx, target, nil, joobleRequest{
			Keywords: keywords,
			Location: location,
		}, &decoded)
		if err != nil {
			return jobs, err
		}

		for _, raw := range decoded.Jobs {
			if raw.Title == "" {
				continue
			}
			jobs = append(jobs, models.Job{
				Source:   SourceJooble,
				Skill:    JoinSkills(query.Skills),
				Title:    raw.Title,
				Company:  raw.Company,
				Location: raw.Location,
				WorkMode: WorkModeFromText(raw.Title),
				ApplyURL: raw.Link,
			})
		}
	}

	return jobs, nil
}
