package engine

import (
	"strings"

	"github.com/MrJJimenez/jobagg/internal/models"
)

// CityMatch reports whether any requested city appears in the record's
// location as a case-insensitive substring.
func CityMatch(location string, cities []string) bool {
	if strings.TrimSpace(location) == "" {
		return false
	}
	lowered := strings.ToLower(location)
	for _, city := range cities {
		city = strings.TrimSpace(city)
		if city == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(city)) {
			return true
		}
	}
	return false
}

func filterByCity(jobs []models.Job, cities []string) []models.Job {
	out := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if CityMatch(job.Location, cities) {
			out = append(out, job)
		}
	}
	return out
}
