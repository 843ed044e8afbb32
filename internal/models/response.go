package models

import "time"

// JobRow is the display-safe projection of a Job returned to callers.
type JobRow struct {
	Source   string `json:"source"`
	Skill    string `json:"skill,omitempty"`
	Title    string `json:"title"`
	Company  string `json:"company,omitempty"`
	Location string `json:"location,omitempty"`
	WorkMode string `json:"work_mode,omitempty"`
	Posted   string `json:"posted,omitempty"`
	ApplyURL string `json:"apply_url,omitempty"`
}

// SearchResponse is one paginated answer to a SearchRequest.
type SearchResponse struct {
	Total    int      `json:"total"`
	Returned int      `json:"returned"`
	Page     int      `json:"page"`
	PageSize int      `json:"page_size"`
	Fallback bool     `json:"fallback"`
	Rows     []JobRow `json:"rows"`
}

// NewJobRow projects a canonical Job for output. Unknown posting dates
// become an empty string rather than a zero timestamp.
func NewJobRow(job Job) JobRow {
	posted := ""
	if job.HasPostedAt() {
		posted = job.PostedAt.UTC().Format(time.RFC3339)
	}
	return JobRow{
		Source:   job.Source,
		Skill:    job.Skill,
		Title:    job.Title,
		Company:  job.Company,
		Location: job.Location,
		WorkMode: job.WorkMode,
		Posted:   posted,
		ApplyURL: job.ApplyURL,
	}
}
