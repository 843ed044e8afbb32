package provider

import (
	"context"

	"github.com/MrJJimenez/jobagg/internal/models"
	"github.com/MrJJimenez/jobagg/internal/network"
)

const arbeitnowURL = "https://www.arbeitnow.com/api/job-board-api"

// Arbeitnow serves a public EU-centric job feed. It plays two roles:
// country-safe (once per run, gated on an EU country being requested)
// and remote-oriented (remote-flagged listings only, countries ignored).
type Arbeitnow struct {
	client     *network.Client
	remoteOnly bool
}

func NewArbeitnow(client *network.Client, remoteOnly bool) *Arbeitnow {
	return &Arbeitnow{client: client, remoteOnly: remoteOnly}
}

func (a *Arbeitnow) Name() string {
	return SourceArbeitnow
}

type arbeitnowResponse struct {
	Data []arbeitnowJob `json:"data"`
}

type arbeitnowJob struct {
	Title    string `json:"title"`
	Company  string `json:"company_name"`
	Location string `json:"location"`
	Remote   bool   `json:"remote"`
	URL      string `json:"url"`
}

func (a *Arbeitnow) Fetch(ctx context.Context, query Query) ([]models.Job, error) {
	if !a.remoteOnly && !a.anyEURequested(query) {
		return nil, nil
	}

	var decoded arbeitnowResponse
	if err := a.client.GetJSON(ctx, arbeitnowURL, nil, &decoded); err != nil {
		return nil, err
	}

	var jobs []models.Job
	for _, raw := range decoded.Data {
		if a.remoteOnly && !raw.Remote {
			continue
		}
		for _, skill := range query.Skills {
			if !SkillMatch(raw.Title, skill) {
				continue
			}

			job := models.Job{
				Source:   SourceArbeitnow,
				Skill:    skill,
				Title:    raw.Title,
				Company:  raw.Company,
				Location: raw.Location,
				WorkMode: models.WorkModeOnSite,
				ApplyURL: raw.URL,
			}
			if raw.Remote {
				job.WorkMode = models.WorkModeRemote
			}
			if a.remoteOnly {
				job.Country = models.CountryRemote
			}
			jobs = append(jobs, job)
		}
	}

	return jobs, nil
}

func (a *Arbeitnow) anyEURequested(query Query) bool {
	for _, country := range query.Countries {
		if IsEU(country) {
			return true
		}
	}
	return false
}
