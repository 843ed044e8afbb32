package engine

import (
	"strings"

	"github.com/MrJJimenez/jobagg/internal/models"
)

const keySeparator = "::"

// normalizeKeyPart lowercases and collapses whitespace so cosmetic
// differences between providers don't defeat deduplication.
func normalizeKeyPart(value string) string {
	return strings.Join(strings.Fields(strings.ToLower(value)), " ")
}

func intraPassKey(job models.Job) string {
	return normalizeKeyPart(job.Title) + keySeparator +
		normalizeKeyPart(job.Company) + keySeparator +
		normalizeKeyPart(job.Location)
}

func crossPassKey(job models.Job) string {
	return intraPassKey(job) + keySeparator + normalizeKeyPart(job.Source)
}

// intraPassDedupe collapses duplicates within a single provider fetch:
// one page of results must not report the same listing twice. The key
// is source-agnostic because a single fetch has a single source.
func intraPassDedupe(jobs []models.Job) []models.Job {
	return dedupeBy(jobs, intraPassKey)
}

// crossPassDedupe collapses duplicate fetches of the same listing after
// the merge. Source stays in the key so the same listing surfaced by
// two providers is kept once per provider.
func crossPassDedupe(jobs []models.Job) []models.Job {
	return dedupeBy(jobs, crossPassKey)
}

// First-seen record wins; fields are never merged across duplicates.
func dedupeBy(jobs []models.Job, keyFn func(models.Job) string) []models.Job {
	seen := make(map[string]struct{}, len(jobs))
	out := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		key := keyFn(job)
		if strings.Trim(key, keySeparator) == "" {
			// Every key part empty: nothing identifies the record.
			continue
		}
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, job)
	}
	return out
}
