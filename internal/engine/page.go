package engine

import "github.com/MrJJimenez/jobagg/internal/models"

// PageSlice returns the 1-based page of jobs for the given page size.
// Pages past the end are empty, never an error.
func PageSlice(jobs []models.Job, page, pageSize int) []models.Job {
	start := (page - 1) * pageSize
	if start >= len(jobs) {
		return []models.Job{}
	}
	end := start + pageSize
	if end > len(jobs) {
		end = len(jobs)
	}
	return jobs[start:end]
}

// Paginate projects one page of a result into the response shape.
func Paginate(result *Result, page, pageSize int) models.SearchResponse {
	pageJobs := PageSlice(result.Jobs, page, pageSize)

	rows := make([]models.JobRow, 0, len(pageJobs))
	for _, job := range pageJobs {
		rows = append(rows, models.NewJobRow(job))
	}

	return models.SearchResponse{
		Total:    len(result.Jobs),
		Returned: len(rows),
		Page:     page,
		PageSize: pageSize,
		Fallback: result.Fallback,
		Rows:     rows,
	}
}
