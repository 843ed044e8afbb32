package models

import (
	"fmt"
	"sort"
	"strings"
)

const (
	DefaultPostedDays = 7
	MaxPostedDays     = 60
	DefaultPageSize   = 25
	MaxPageSize       = 50
)

// SearchRequest captures one validated aggregation query.
// It is built once per incoming call and never persisted.
type SearchRequest struct {
	Skills     []string `json:"skills"`
	Levels     []string `json:"levels,omitempty"`
	Locations  []string `json:"locations,omitempty"`
	Countries  []string `json:"countries,omitempty"`
	PostedDays int      `json:"posted_days"`
	IsRemote   bool     `json:"is_remote"`
	Page       int      `json:"page"`
	PageSize   int      `json:"page_size"`
}

// Normalize trims inputs, drops empty entries, dedupes skills
// case-insensitively, sorts countries, and applies defaults. Locations
// are defaulted to a single empty entry meaning "no city constraint".
// Must be called before Validate or CacheKey.
func (r *SearchRequest) Normalize() {
	r.Skills = dedupeTrimmed(r.Skills)
	r.Levels = dedupeTrimmed(r.Levels)
	r.Locations = dedupeTrimmed(r.Locations)
	if len(r.Locations) == 0 {
		r.Locations = []string{""}
	}

	r.Countries = dedupeTrimmed(r.Countries)
	sort.Slice(r.Countries, func(i, j int) bool {
		return strings.ToLower(r.Countries[i]) < strings.ToLower(r.Countries[j])
	})

	if r.PostedDays <= 0 {
		r.PostedDays = DefaultPostedDays
	}
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.PageSize <= 0 {
		r.PageSize = DefaultPageSize
	}
	if r.PageSize > MaxPageSize {
		r.PageSize = MaxPageSize
	}
}

// Validate enforces the boundary rules. Providers are never contacted
// for an invalid request.
func (r *SearchRequest) Validate() error {
	if len(r.Skills) == 0 {
		return fmt.Errorf("at least one skill is required")
	}
	if !r.IsRemote && len(r.Countries) == 0 {
		return fmt.Errorf("country is required unless the search is remote")
	}
	if r.PostedDays < 1 || r.PostedDays > MaxPostedDays {
		return fmt.Errorf("posted_days must be between 1 and %d", MaxPostedDays)
	}
	if r.Page < 1 {
		return fmt.Errorf("page must be >= 1")
	}
	if r.PageSize < 1 || r.PageSize > MaxPageSize {
		return fmt.Errorf("page_size must be between 1 and %d", MaxPageSize)
	}
	return nil
}

// Cities returns the non-empty requested locations.
func (r *SearchRequest) Cities() []string {
	cities := make([]string, 0, len(r.Locations))
	for _, loc := range r.Locations {
		if strings.TrimSpace(loc) != "" {
			cities = append(cities, loc)
		}
	}
	return cities
}

// CountryWide returns a copy of the request with the city constraint
// cleared, used for the country-level fallback rerun.
func (r *SearchRequest) CountryWide() SearchRequest {
	wide := *r
	wide.Locations = []string{""}
	wide.Skills = append([]string(nil), r.Skills...)
	wide.Levels = append([]string(nil), r.Levels...)
	wide.Countries = append([]string(nil), r.Countries...)
	return wide
}

func dedupeTrimmed(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		key := strings.ToLower(value)
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, value)
	}
	return out
}
