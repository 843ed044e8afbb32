package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/MrJJimenez/jobagg/internal/models"
)

func sampleJobs() []models.Job {
	return []models.Job{
		{
			Source:   "adzuna",
			Skill:    "Go",
			Title:    "Backend Engineer",
			Company:  "Acme",
			Location: "Mumbai",
			Country:  "India",
			WorkMode: models.WorkModeOnSite,
			PostedAt: time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC),
			ApplyURL: "https://example.com/jobs/1",
		},
		{
			Source:   "remotive",
			Skill:    "Go",
			Title:    "Go Developer",
			Company:  "Globex",
			Location: "Remote",
			Country:  models.CountryRemote,
			WorkMode: models.WorkModeRemote,
			ApplyURL: "https://example.com/jobs/2",
		},
	}
}

func TestWriteJobsCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJobs(&buf, sampleJobs(), FormatCSV, WriteOptions{}); err != nil {
		t.Fatalf("WriteJobs: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header plus 2 rows", len(lines))
	}
	if lines[0] != "source,skill,title,company,location,country,work_mode,posted,apply_url" {
		t.Fatalf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "2024-03-14T10:00:00Z") {
		t.Fatalf("row missing RFC3339 posted time: %q", lines[1])
	}
	// Unknown posting dates render as an empty field, not a zero time.
	if strings.Contains(lines[2], "0001-01-01") {
		t.Fatalf("zero time leaked into output: %q", lines[2])
	}
}

func TestWriteJobsJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJobs(&buf, sampleJobs(), FormatJSON, WriteOptions{}); err != nil {
		t.Fatalf("WriteJobs: %v", err)
	}

	var rows []models.JobRow
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Posted != "2024-03-14T10:00:00Z" {
		t.Fatalf("Posted = %q", rows[0].Posted)
	}
	if rows[1].Posted != "" {
		t.Fatalf("unknown posting date rendered as %q", rows[1].Posted)
	}
}

func TestWriteJobsTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJobs(&buf, sampleJobs(), FormatTable, WriteOptions{}); err != nil {
		t.Fatalf("WriteJobs: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"source", "Backend Engineer", "Globex", "https://example.com/jobs/1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteJobsMarkdownEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJobs(&buf, nil, FormatMarkdown, WriteOptions{}); err != nil {
		t.Fatalf("WriteJobs: %v", err)
	}
	if !strings.Contains(buf.String(), "No results.") {
		t.Fatalf("empty markdown output = %q", buf.String())
	}
}

func TestShortURLLabel(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"https://www.example.com/jobs/123", "example.com/jobs/123"},
		{"https://example.com/" + strings.Repeat("x", 80), "example.com/" + strings.Repeat("x", 45) + "..."},
	}
	for _, tc := range cases {
		if got := shortURLLabel(tc.raw); got != tc.want {
			t.Errorf("shortURLLabel(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}
