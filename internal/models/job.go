package models

import "time"

// CountryRemote marks a listing that is not scoped to any country.
// It always passes the country filter.
const CountryRemote = "REMOTE"

// Work modes derived from provider data or title heuristics.
const (
	WorkModeRemote = "Remote"
	WorkModeHybrid = "Hybrid"
	WorkModeOnSite = "On-site"
)

// Job is the canonical listing produced by provider normalization.
// Records are immutable once built; the engine only selects and drops.
type Job struct {
	Source      string    `json:"source"`
	Skill       string    `json:"skill,omitempty"`
	Title       string    `json:"title"`
	Company     string    `json:"company,omitempty"`
	Location    string    `json:"location,omitempty"`
	Country     string    `json:"country,omitempty"`
	WorkMode    string    `json:"work_mode,omitempty"`
	PostedAt    time.Time `json:"posted_at,omitempty"`
	PostedAtRaw string    `json:"posted_at_raw,omitempty"`
	ApplyURL    string    `json:"apply_url,omitempty"`
}

// HasPostedAt reports whether the posting date was parseable.
// A zero PostedAt means unknown age: never dropped by recency, sorted last.
func (j Job) HasPostedAt() bool {
	return !j.PostedAt.IsZero()
}
