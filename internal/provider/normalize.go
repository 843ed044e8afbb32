package provider

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MrJJimenez/jobagg/internal/models"
)

// WorkModeFromText derives a work mode from free text when the provider
// does not supply one. "remote" beats "hybrid"; everything else is
// on-site.
func WorkModeFromText(text string) string {
	lowered := strings.ToLower(text)
	if strings.Contains(lowered, "remote") {
		return models.WorkModeRemote
	}
	if strings.Contains(lowered, "hybrid") {
		return models.WorkModeHybrid
	}
	return models.WorkModeOnSite
}

// SkillMatch reports whether skill appears in text, case-insensitively.
// Empty inputs never match.
func SkillMatch(text string, skill string) bool {
	if text == "" || skill == "" {
		return false
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(skill))
}

// ParsePostedAt parses the ISO-ish timestamps providers emit. Callers
// treat an error as "posting date unknown".
func ParsePostedAt(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	layouts := []string{
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05-0700",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported time format: %s", value)
}

// JoinSkills renders a multi-skill query as the record's skill field.
func JoinSkills(skills []string) string {
	return strings.Join(skills, ", ")
}

func cleanText(value string) string {
	return strings.Join(strings.Fields(value), " ")
}
