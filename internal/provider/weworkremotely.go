package provider

import (
	"context"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/MrJJimenez/jobagg/internal/models"
	"github.com/MrJJimenez/jobagg/internal/network"
)

var wwrFeeds = []string{
	"https://weworkremotely.com/categories/remote-programming-jobs.rss",
	"https://weworkremotely.com/categories/remote-management-jobs.rss",
}

// WeWorkRemotely reads the WWR category RSS feeds. Feed items title
// listings as "Company: Role", which the normalizer splits apart.
type WeWorkRemotely struct {
	client *network.Client
	feeds  []string
}

func NewWeWorkRemotely(client *network.Client) *WeWorkRemotely {
	return &WeWorkRemotely{client: client, feeds: wwrFeeds}
}

func (w *WeWorkRemotely) Name() string {
	return SourceWWR
}

func (w *WeWorkRemotely) Fetch(ctx context.Context, query Query) ([]models.Job, error) {
	parser := gofeed.NewParser()

	var jobs []models.Job
	var lastErr error
	for _, feedURL := range w.feeds {
		body, err := w.client.GetBody(ctx, feedURL, map[string]string{"Accept": "application/rss+xml"})
		if err != nil {
			lastErr = err
			continue
		}
		feed, err := parser.ParseString(string(body))
		if err != nil {
			lastErr = err
			continue
		}

		for _, item := range feed.Items {
			company, title := splitWWRTitle(item.Title)
			for _, skill := range query.Skills {
				if !SkillMatch(title, skill) {
					continue
				}

				job := models.Job{
					Source:   SourceWWR,
					Skill:    skill,
					Title:    title,
					Company:  company,
					Location: "Remote",
					Country:  models.CountryRemote,
					WorkMode: models.WorkModeRemote,
					ApplyURL: item.Link,
				}
				if item.PublishedParsed != nil {
					job.PostedAt = *item.PublishedParsed
					job.PostedAtRaw = item.Published
				}
				jobs = append(jobs, job)
			}
		}
	}

	// One dead feed should not hide the other's results.
	if len(jobs) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return jobs, nil
}

func splitWWRTitle(raw string) (company string, title string) {
	raw = cleanText(raw)
	if idx := strings.Index(raw, ":"); idx > 0 {
		return strings.TrimSpace(raw[:idx]), strings.TrimSpace(raw[idx+1:])
	}
	return "", raw
}
