package provider

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MrJJimenez/jobagg/internal/models"
	"github.com/MrJJimenez/jobagg/internal/network"
)

const (
	adzunaBaseURL  = "https://api.adzuna.com/v1/api/jobs"
	adzunaPageSize = 20
)

// Adzuna queries the Adzuna search API once per requested country that
// has a known market code.
type Adzuna struct {
	client *network.Client
	appID  string
	appKey string
}

func NewAdzuna(client *network.Client, appID, appKey string) *Adzuna {
	return &Adzuna{client: client, appID: appID, appKey: appKey}
}

func (a *Adzuna) Name() string {
	return SourceAdzuna
}

type adzunaResponse struct {
	Results []adzunaResult `json:"results"`
}

type adzunaResult struct {
	Title       string         `json:"title"`
	Company     adzunaCompany  `json:"company"`
	Location    adzunaLocation `json:"location"`
	RedirectURL string         `json:"redirect_url"`
	Created     string         `json:"created"`
}

type adzunaCompany struct {
	DisplayName string `json:"display_name"`
}

type adzunaLocation struct {
	DisplayName string `json:"display_name"`
}

func (a *Adzuna) Fetch(ctx context.Context, query Query) ([]models.Job, error) {
	if a.appID == "" || a.appKey == "" {
		return nil, ErrNotConfigured
	}

	var jobs []models.Job
	for _, country := range query.Countries {
		code, ok := MarketCode(country)
		if !ok {
			continue
		}

		values := url.Values{}
		values.Set("app_id", a.appID)
		values.Set("app_key", a.appKey)
		values.Set("what", strings.Join(append(append([]string{}, query.Skills...), query.Levels...), " OR "))
		values.Set("where", query.Location)
		values.Set("results_per_page", fmt.Sprintf("%d", adzunaPageSize))

		target := fmt.Sprintf("%s/%s/search/1?%s", adzunaBaseURL, code, values.Encode())

		var decoded adzunaResponse
		if err := a.client.GetJSON(ctx, target, nil, &decoded); err != nil {
			return jobs, err
		}

		for _, raw := range decoded.Results {
			if raw.Title == "" {
				continue
			}
			job := models.Job{
				Source:      SourceAdzuna,
				Skill:       JoinSkills(query.Skills),
				Title:       raw.Title,
				Company:     raw.Company.DisplayName,
				Location:    raw.Location.DisplayName,
				Country:     country,
				WorkMode:    WorkModeFromText(raw.Title),
				PostedAtRaw: raw.Created,
				ApplyURL:    raw.RedirectURL,
			}
			if ts, err := ParsePostedAt(raw.Created); err == nil {
				job.PostedAt = ts
			}
			jobs = append(jobs, job)
		}
	}

	return jobs, nil
}
