package provider

import (
	"testing"
	"time"

	"github.com/MrJJimenez/jobagg/internal/models"
)

func TestWorkModeFromText(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Fully Remote position", models.WorkModeRemote},
		{"Hybrid (3 days in office)", models.WorkModeHybrid},
		{"Remote or hybrid, your choice", models.WorkModeRemote},
		{"On-site in Mumbai", models.WorkModeOnSite},
		{"", models.WorkModeOnSite},
	}

	for _, tc := range cases {
		if got := WorkModeFromText(tc.text); got != tc.want {
			t.Errorf("WorkModeFromText(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestSkillMatch(t *testing.T) {
	cases := []struct {
		text  string
		skill string
		want  bool
	}{
		{"Senior Golang Developer", "golang", true},
		{"Senior Golang Developer", "GOLANG", true},
		{"Python Engineer", "golang", false},
		{"", "golang", false},
		{"Senior Golang Developer", "", false},
	}

	for _, tc := range cases {
		if got := SkillMatch(tc.text, tc.skill); got != tc.want {
			t.Errorf("SkillMatch(%q, %q) = %v, want %v", tc.text, tc.skill, got, tc.want)
		}
	}
}

func TestParsePostedAt(t *testing.T) {
	cases := []struct {
		value string
		want  time.Time
	}{
		{"2024-03-14T10:30:00Z", time.Date(2024, 3, 14, 10, 30, 0, 0, time.UTC)},
		{"2024-03-14T10:30:00.000Z", time.Date(2024, 3, 14, 10, 30, 0, 0, time.UTC)},
		{"2024-03-14T10:30:00", time.Date(2024, 3, 14, 10, 30, 0, 0, time.UTC)},
		{"2024-03-14 10:30:00", time.Date(2024, 3, 14, 10, 30, 0, 0, time.UTC)},
		{"2024-03-14", time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		got, err := ParsePostedAt(tc.value)
		if err != nil {
			t.Errorf("ParsePostedAt(%q): %v", tc.value, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("ParsePostedAt(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}

	for _, bad := range []string{"", "  ", "yesterday", "14/03/2024"} {
		if _, err := ParsePostedAt(bad); err == nil {
			t.Errorf("ParsePostedAt(%q) succeeded, want error", bad)
		}
	}
}

func TestMarketCode(t *testing.T) {
	if code, ok := MarketCode(" India "); !ok || code != "in" {
		t.Fatalf("MarketCode(India) = %q, %v", code, ok)
	}
	if _, ok := MarketCode("Atlantis"); ok {
		t.Fatalf("MarketCode(Atlantis) reported a market")
	}
}

func TestIsEU(t *testing.T) {
	if !IsEU("Germany") {
		t.Fatalf("Germany not recognized")
	}
	if IsEU("India") {
		t.Fatalf("India wrongly recognized")
	}
}

func TestSplitWWRTitle(t *testing.T) {
	cases := []struct {
		raw         string
		wantCompany string
		wantTitle   string
	}{
		{"Acme Corp: Senior Go Engineer", "Acme Corp", "Senior Go Engineer"},
		{"Acme  Corp:  Senior   Go Engineer", "Acme Corp", "Senior Go Engineer"},
		{"Senior Go Engineer", "", "Senior Go Engineer"},
		{": Orphaned Role", "", ": Orphaned Role"},
	}

	for _, tc := range cases {
		company, title := splitWWRTitle(tc.raw)
		if company != tc.wantCompany || title != tc.wantTitle {
			t.Errorf("splitWWRTitle(%q) = (%q, %q), want (%q, %q)", tc.raw, company, title, tc.wantCompany, tc.wantTitle)
		}
	}
}
