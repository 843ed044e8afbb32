package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/MrJJimenez/jobagg/internal/models"
)

func TestJSearchRequiresCredentials(t *testing.T) {
	j := NewJSearch(nil, "", false)
	_, err := j.Fetch(context.Background(), Query{Skills: []string{"Go"}})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
}

func TestJSearchNormalizeScoped(t *testing.T) {
	j := &JSearch{}
	raw := jsearchJob{
		Title:       "Backend Engineer",
		Employer:    "Acme",
		City:        "Mumbai",
		Country:     "India",
		IsRemote:    true,
		PostedAtRaw: "2024-03-14T10:00:00Z",
		ApplyLink:   "https://example.com/1",
	}

	job, ok := j.normalize(raw, "Go")
	if !ok {
		t.Fatalf("record rejected")
	}
	if job.Source != SourceJSearch {
		t.Fatalf("Source = %q", job.Source)
	}
	if job.WorkMode != models.WorkModeRemote {
		t.Fatalf("WorkMode = %q, want remote when the listing says so", job.WorkMode)
	}
	if !job.HasPostedAt() {
		t.Fatalf("posted time not parsed")
	}

	if _, ok := j.normalize(jsearchJob{Employer: "Acme"}, "Go"); ok {
		t.Fatalf("record without a title accepted")
	}
}

func TestJSearchNormalizeRemote(t *testing.T) {
	j := &JSearch{remote: true}

	matching := jsearchJob{
		Publisher:   "LinkedIn",
		Title:       "Senior Go Engineer",
		Employer:    "Acme",
		ApplyLink:   "https://example.com/1",
		PostedAtRaw: "2024-03-14",
	}
	job, ok := j.normalize(matching, "Go")
	if !ok {
		t.Fatalf("matching record rejected")
	}
	if job.Source != "LinkedIn" {
		t.Fatalf("Source = %q, want the publisher", job.Source)
	}
	if job.Country != models.CountryRemote || job.WorkMode != models.WorkModeRemote {
		t.Fatalf("record not pinned to remote: country=%q mode=%q", job.Country, job.WorkMode)
	}

	offTopic := jsearchJob{Title: "Accountant", Description: "Ledger work"}
	if _, ok := j.normalize(offTopic, "Go"); ok {
		t.Fatalf("off-topic record accepted in remote mode")
	}
}

func TestQueryHelpers(t *testing.T) {
	q := Query{Skills: []string{"Go", "Rust"}, Countries: []string{"India", "United States"}}
	if q.Skill() != "Go" {
		t.Fatalf("Skill() = %q", q.Skill())
	}
	if !q.HasCountry("united states") {
		t.Fatalf("HasCountry is not case-insensitive")
	}
	if q.HasCountry("Germany") {
		t.Fatalf("HasCountry matched an absent country")
	}
	if (Query{}).Skill() != "" {
		t.Fatalf("Skill() on empty query should be empty")
	}
}
