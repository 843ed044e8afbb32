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
	usajobsURL      = "https://data.usajobs.gov/api/search"
	usajobsPageSize = 25
	usajobsCountry  = "UNITED STATES"
)

// USAJobs queries the US government job board. It is country-safe: the
// engine calls it once per run and the adapter self-gates on whether
// the United States was requested at all.
type USAJobs struct {
	client *network.Client
	email  string
	apiKey string
}

func NewUSAJobs(client *network.Client, email, apiKey string) *USAJobs {
	return &USAJobs{client: client, email: email, apiKey: apiKey}
}

func (u *USAJobs) Name() string {
	return SourceUSAJobs
}

type usajobsResponse struct {
	SearchResult usajobsSearchResult `json:"SearchResult"`
}

type usajobsSearchResult struct {
	Items []usajobsItem `json:"SearchResultItems"`
}

type usajobsItem struct {
	Descriptor usajobsDescriptor `json:"MatchedObjectDescriptor"`
}

type usajobsDescriptor struct {
	PositionTitle    string            `json:"PositionTitle"`
	OrganizationName string            `json:"OrganizationName"`
	PositionURI      string            `json:"PositionURI"`
	PublicationDate  string            `json:"PublicationStartDate"`
	Locations        []usajobsLocation `json:"PositionLocation"`
}

type usajobsLocation struct {
	LocationName string `json:"LocationName"`
}

func (u *USAJobs) Fetch(ctx context.Context, query Query) ([]models.Job, error) {
	if !query.HasCountry("United States") {
		return nil, nil
	}
	if u.email == "" || u.apiKey == "" {
		return nil, ErrNotConfigured
	}

	var jobs []models.Job
	for _, skill := range query.Skills {
		values := url.Values{}
		values.Set("Keyword", skill)
		values.Set("ResultsPerPage", fmt.Sprintf("%d", usajobsPageSize))

		var decoded usajobsResponse
		err := u.client.GetJSON(ctx, usajobsURL+"?"+values.Encode(), map[string]string{
			"User-Agent":        u.email,
			"Authorization-Key": u.apiKey,
		}, &decoded)
		if err != nil {
			return jobs, err
		}

		for _, item := range decoded.SearchResult.Items {
			d := item.Descriptor
			if d.PositionTitle == "" {
				continue
			}
			job := models.Job{
				Source:      SourceUSAJobs,
				Skill:       skill,
				Title:       d.PositionTitle,
				Company:     d.OrganizationName,
				Location:    joinLocations(d.Locations),
				Country:     usajobsCountry,
				WorkMode:    models.WorkModeOnSite,
				PostedAtRaw: d.PublicationDate,
				ApplyURL:    d.PositionURI,
			}
			if ts, err := ParsePostedAt(d.PublicationDate); err == nil {
				job.PostedAt = ts
			}
			jobs = append(jobs, job)
		}
	}

	return jobs, nil
}

func joinLocations(locations []usajobsLocation) string {
	names := make([]string, 0, len(locations))
	for _, loc := range locations {
		if loc.LocationName != "" {
			names = append(names, loc.LocationName)
		}
	}
	return strings.Join(names, ", ")
}
