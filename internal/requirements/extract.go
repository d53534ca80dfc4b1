package requirements

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	maxImportance     = 10
	defaultImportance = 5
	occurrenceWeight  = 2
	requiredBonus     = 2
	// contextWindow is how many characters before a skill's first mention
	// are searched for a "required" marker.
	contextWindow = 50
)

var (
	requiredMarkers = []string{"required", "must have", "essential"}

	// Whitespace includes Unicode spaces such as U+00A0.
	yearsPattern = regexp.MustCompile(`(\d+)\+?[\s\p{Zs}]*(?:years|yrs|yr)(?:[\s\p{Zs}]+of[\s\p{Zs}]+|[\s\p{Zs}]+)experience`)
)

// Extract parses a job description into an ordered list of requirements:
// skills, education levels, experience terms, explicit years of experience and
// role keywords, in that order. Matching is case-insensitive substring based.
func Extract(description string) Requirements {
	text := strings.ToLower(description)

	out := make(Requirements, 0)
	out = append(out, extractSkills(text)...)
	out = append(out, extractEducation(text)...)
	out = append(out, extractExperienceTerms(text)...)
	out = append(out, extractYears(text)...)
	out = append(out, extractRoles(text)...)

	return out
}

func extractSkills(text string) Requirements {
	out := make(Requirements, 0)
	for _, skill := range skillVocabulary {
		token := strings.ToLower(skill)
		first := strings.Index(text, token)
		if first < 0 {
			continue
		}

		occurrences := strings.Count(text, token)
		importance := occurrences * occurrenceWeight
		if hasRequiredContext(text, first) {
			importance += requiredBonus
		}
		importance = min(maxImportance, importance)
		if importance <= 0 {
			importance = defaultImportance
		}

		out = append(out, Requirement{Type: TypeSkill, Value: skill, Importance: importance})
	}
	return out
}

func hasRequiredContext(text string, pos int) bool {
	before := []rune(text[:pos])
	window := string(before[max(0, len(before)-contextWindow):])
	for _, marker := range requiredMarkers {
		if strings.Contains(window, marker) {
			return true
		}
	}
	return false
}

func extractEducation(text string) Requirements {
	out := make(Requirements, 0)
	for _, edu := range educationTerms {
		if strings.Contains(text, edu.Term) {
			out = append(out, Requirement{Type: TypeEducation, Value: edu.Level, Importance: edu.Importance})
		}
	}
	return out
}

func extractExperienceTerms(text string) Requirements {
	out := make(Requirements, 0)
	for _, exp := range experienceTerms {
		if strings.Contains(text, exp.Term) {
			out = append(out, Requirement{Type: TypeExperience, Value: exp.Term, Importance: exp.Importance})
		}
	}
	return out
}

func extractYears(text string) Requirements {
	out := make(Requirements, 0)
	for _, match := range yearsPattern.FindAllStringSubmatch(text, -1) {
		digits := match[1]
		importance := maxImportance

		years, err := strconv.Atoi(digits)
		if err == nil {
			digits = strconv.Itoa(years)
			importance = min(maxImportance, years+2)
		}

		out = append(out, Requirement{
			Type:       TypeExperience,
			Value:      fmt.Sprintf("%s+ years of experience", digits),
			Importance: importance,
		})
	}
	return out
}

func extractRoles(text string) Requirements {
	out := make(Requirements, 0)
	for _, role := range roleTerms {
		if strings.Contains(text, role.Term) {
			out = append(out, Requirement{Type: TypeExperience, Value: role.Term, Importance: role.Importance})
		}
	}
	return out
}
