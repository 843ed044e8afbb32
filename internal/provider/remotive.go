package provider

import (
	"context"

	"github.com/MrJJimenez/jobagg/internal/models"
	"github.com/MrJJimenez/jobagg/internal/network"
)

const remotiveURL = "https://remotive.com/api/remote-jobs"

// Remotive serves the public Remotive remote-jobs API. One HTTP call
// covers all skills; matching happens locally against titles.
type Remotive struct {
	client *network.Client
}

func NewRemotive(client *network.Client) *Remotive {
	return &Remotive{client: client}
}

func (r *Remotive) Name() string {
	return SourceRemotive
}

type remotiveResponse struct {
	Jobs []remotiveJob `json:"jobs"`
}

type remotiveJob struct {
	Title           string `json:"title"`
	Company         string `json:"company_name"`
	URL             string `json:"url"`
	PublicationDate string `json:"publication_date"`
}

func (r *Remotive) Fetch(ctx context.Context, query Query) ([]models.Job, error) {
	var decoded remotiveResponse
	if err := r.client.GetJSON(ctx, remotiveURL, nil, &decoded); err != nil {
		return nil, err
	}

	var jobs []models.Job
	for _, raw := range decoded.Jobs {
		for _, skill := range query.Skills {
			if !SkillMatch(raw.Title, skill) {
				continue
			}

			job := models.Job{
				Source:      SourceRemotive,
				Skill:       skill,
				Title:       raw.Title,
				Company:     raw.Company,
				Location:    "Remote",
				Country:     models.CountryRemote,
				WorkMode:    models.WorkModeRemote,
				PostedAtRaw: raw.PublicationDate,
				ApplyURL:    raw.URL,
			}
			if ts, err := ParsePostedAt(raw.PublicationDate); err == nil {
				job.PostedAt = ts
			}
			jobs = append(jobs, job)
		}
	}

	return jobs, nil
}
