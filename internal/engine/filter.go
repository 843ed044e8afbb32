package engine

import (
	"strings"
	"time"

	"github.com/MrJJimenez/jobagg/internal/models"
)

// FilterRecency drops records posted before the cutoff. Records with an
// unknown posting date are kept: unknown age is not grounds for
// exclusion.
func FilterRecency(jobs []models.Job, cutoff time.Time) []models.Job {
	out := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if job.HasPostedAt() && job.PostedAt.Before(cutoff) {
			continue
		}
		out = append(out, job)
	}
	return out
}

// FilterCountry drops records whose country is known, not the remote
// sentinel, and not among the allowed countries. Comparison is
// case-insensitive.
func FilterCountry(jobs []models.Job, allowed []string) []models.Job {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, country := range allowed {
		allowedSet[strings.ToUpper(strings.TrimSpace(country))] = struct{}{}
	}

	out := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		country := strings.ToUpper(strings.TrimSpace(job.Country))
		if country != "" && country != models.CountryRemote {
			if _, ok := allowedSet[country]; !ok {
				continue
			}
		}
		out = append(out, job)
	}
	return out
}
