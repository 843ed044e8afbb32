package engine

import (
	"testing"

	"github.com/MrJJimenez/jobagg/internal/models"
)

func TestIntraPassDedupe(t *testing.T) {
	jobs := []models.Job{
		{Title: "Backend Engineer", Company: "Acme", Location: "Mumbai", ApplyURL: "https://a"},
		{Title: "backend  engineer", Company: "ACME", Location: " mumbai ", ApplyURL: "https://b"},
		{Title: "Backend Engineer", Company: "Globex", Location: "Mumbai"},
	}

	out := intraPassDedupe(jobs)
	if len(out) != 2 {
		t.Fatalf("got %d jobs, want 2", len(out))
	}
	// First-seen wins, fields are not merged.
	if out[0].ApplyURL != "https://a" {
		t.Fatalf("kept %q, want the first-seen record", out[0].ApplyURL)
	}
}

func TestCrossPassDedupeKeepsDistinctSources(t *testing.T) {
	jobs := []models.Job{
		{Source: "jsearch", Title: "Backend Engineer", Company: "Acme", Location: "Mumbai"},
		{Source: "adzuna", Title: "Backend Engineer", Company: "Acme", Location: "Mumbai"},
		{Source: "jsearch", Title: "Backend Engineer", Company: "Acme", Location: "Mumbai"},
	}

	out := crossPassDedupe(jobs)
	if len(out) != 2 {
		t.Fatalf("got %d jobs, want one per source", len(out))
	}
}

func TestDedupeSkipsUnidentifiableRecords(t *testing.T) {
	jobs := []models.Job{
		{ApplyURL: "https://a"},
		{ApplyURL: "https://b"},
	}
	if out := intraPassDedupe(jobs); len(out) != 0 {
		t.Fatalf("kept %d records with every key part empty", len(out))
	}
}
