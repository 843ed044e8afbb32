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
	jsearchURL  = "https://jsearch.p.rapidapi.com/search"
	jsearchHost = "jsearch.p.rapidapi.com"
)

// JSearch queries the RapidAPI JSearch aggregator. In remote mode the
// query is rephrased as a remote-job search and results are pinned to
// the remote sentinel country.
type JSearch struct {
	client *network.Client
	apiKey string
	remote bool
}

func NewJSearch(client *network.Client, apiKey string, remote bool) *JSearch {
	return &JSearch{client: client, apiKey: apiKey, remote: remote}
}

func (j *JSearch) Name() string {
	return SourceJSearch
}

type jsearchResponse struct {
	Data []jsearchJob `json:"data"`
}

type jsearchJob struct {
	Publisher      string `json:"job_publisher"`
	Title          string `json:"job_title"`
	Employer       string `json:"employer_name"`
	City           string `json:"job_city"`
	Country        string `json:"job_country"`
	Description    string `json:"job_description"`
	IsRemote       bool   `json:"job_is_remote"`
	PostedAtRaw    string `json:"job_posted_at_datetime_utc"`
	ApplyLink      string `json:"job_apply_link"`
	EmploymentType string `json:"job_employment_type"`
}

func (j *JSearch) Fetch(ctx context.Context, query Query) ([]models.Job, error) {
	if j.apiKey == "" {
		return nil, ErrNotConfigured
	}

	var jobs []models.Job
	for _, skill := range query.Skills {
		var decoded jsearchResponse
		target := fmt.Sprintf("%s?%s", jsearchURL, j.queryValues(skill, query).Encode())
		err := j.client.GetJSON(ctx, target, map[string]string{
			"x-rapidapi-key":  j.apiKey,
			"x-rapidapi-host": jsearchHost,
		}, &decoded)
		if err != nil {
			return jobs, err
		}

		for _, raw := range decoded.Data {
			job, ok := j.normalize(raw, skill)
			if !ok {
				continue
			}
			jobs = append(jobs, job)
		}
	}

	return jobs, nil
}

func (j *JSearch) queryValues(skill string, query Query) url.Values {
	values := url.Values{}
	if j.remote {
		terms := []string{skill}
		if len(query.Levels) > 0 {
			terms = append(terms, query.Levels[0])
		}
		terms = append(terms, "remote job")
		values.Set("query", strings.Join(terms, " "))
	} else {
		values.Set("query", strings.TrimSpace(fmt.Sprintf("%s job %s", skill, query.Location)))
		values.Set("page", "1")
	}
	values.Set("num_pages", "1")
	return values
}

func (j *JSearch) normalize(raw jsearchJob, skill string) (models.Job, bool) {
	if raw.Title == "" {
		return models.Job{}, false
	}

	if j.remote {
		// Remote queries come back noisy; keep only listings that
		// actually mention the skill.
		if !SkillMatch(raw.Title+" "+raw.Description, skill) {
			return models.Job{}, false
		}
		job := models.Job{
			Source:      SourceJSearch,
			Skill:       skill,
			Title:       raw.Title,
			Company:     raw.Employer,
			Location:    "Remote",
			Country:     models.CountryRemote,
			WorkMode:    models.WorkModeRemote,
			PostedAtRaw: raw.PostedAtRaw,
			ApplyURL:    raw.ApplyLink,
		}
		if raw.Publisher != "" {
			job.Source = raw.Publisher
		}
		if ts, err := ParsePostedAt(raw.PostedAtRaw); err == nil {
			job.PostedAt = ts
		}
		return job, true
	}

	workMode := WorkModeFromText(raw.Title)
	if raw.IsRemote {
		workMode = models.WorkModeRemote
	}
	job := models.Job{
		Source:      SourceJSearch,
		Skill:       skill,
		Title:       raw.Title,
		Company:     raw.Employer,
		Location:    raw.City,
		Country:     raw.Country,
		WorkMode:    workMode,
		PostedAtRaw: raw.PostedAtRaw,
		ApplyURL:    raw.ApplyLink,
	}
	if ts, err := ParsePostedAt(raw.PostedAtRaw); err == nil {
		job.PostedAt = ts
	}
	return job, true
}
