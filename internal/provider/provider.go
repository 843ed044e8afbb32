package provider

import (
	"context"
	"errors"

	"github.com/MrJJimenez/jobagg/internal/models"
)

// ErrNotConfigured is returned by adapters whose credentials are missing.
// The engine treats it like any other provider failure: the provider
// contributes zero records and the run continues.
var ErrNotConfigured = errors.New("provider not configured")

// Query is the one capability every adapter implements. City-scoped
// providers receive a single skill per call; country-safe providers
// receive the full skill list once per run.
type Query struct {
	Skills     []string
	Levels     []string
	Countries  []string
	Location   string
	PostedDays int
}

// Provider fetches listings for a query. Adapters own their request
// construction and must degrade failures to an error return; they never
// panic past this boundary.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, query Query) ([]models.Job, error)
}

// Skill returns the primary search term of the query.
func (q Query) Skill() string {
	if len(q.Skills) == 0 {
		return ""
	}
	return q.Skills[0]
}

// HasCountry reports whether name is among the requested countries,
// compared case-insensitively.
func (q Query) HasCountry(name string) bool {
	for _, country := range q.Countries {
		if equalFold(country, name) {
			return true
		}
	}
	return false
}
