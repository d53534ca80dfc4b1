package scoring

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/spigell/hire-ranker/internal/applicants"
	"github.com/spigell/hire-ranker/internal/requirements"
)

// overqualified lists, per required level, the levels that satisfy it as well.
// Ph.D. and J.D. are siblings and do not satisfy each other.
var overqualified = map[string][]string{
	requirements.LevelBachelor: {requirements.LevelMaster, requirements.LevelPhD, requirements.LevelJD},
	requirements.LevelMaster:   {requirements.LevelPhD, requirements.LevelJD},
}

// MatchResult is the requirement-mode score of one applicant.
// Score is a percentage of matched importance, rounded to one decimal.
type MatchResult struct {
	Score   float64
	Matched requirements.Requirements
}

// ScoreByRequirements scores an applicant against extracted requirements.
// An empty requirement list scores 0. Negative importance counts as 0.
func ScoreByRequirements(applicant *applicants.Applicant, reqs requirements.Requirements) MatchResult {
	total := 0
	matchedWeight := 0
	matched := make(requirements.Requirements, 0)

	for _, req := range reqs {
		weight := max(0, req.Importance)
		total += weight
		if !matchesRequirement(applicant, req) {
			continue
		}
		matchedWeight += weight
		matched = append(matched, req)
	}

	score := 0.0
	if total > 0 {
		score = roundTenth(float64(matchedWeight) / float64(total) * 100)
	}

	return MatchResult{Score: score, Matched: matched}
}

func matchesRequirement(applicant *applicants.Applicant, req requirements.Requirement) bool {
	switch req.Type {
	case requirements.TypeSkill:
		return hasSkill(applicant.Skills, req.Value)
	case requirements.TypeEducation:
		return meetsEducation(applicant.Education.HighestLevel, req.Value)
	case requirements.TypeExperience:
		if strings.Contains(req.Value, "years") {
			years, ok := leadingInt(req.Value)
			return ok && applicant.YearsOfExperience() >= float64(years)
		}
		return hasRole(applicant.WorkExperiences, req.Value)
	default:
		return false
	}
}

func meetsEducation(level, required string) bool {
	if level == required {
		return true
	}
	for _, higher := range overqualified[required] {
		if level == higher {
			return true
		}
	}
	return false
}

func hasRole(experiences []applicants.WorkExperience, value string) bool {
	keyword := strings.ToLower(value)
	for _, exp := range experiences {
		if strings.Contains(strings.ToLower(exp.RoleName), keyword) {
			return true
		}
	}
	return false
}

// leadingInt parses the integer at the start of s, after optional whitespace
// and sign. It reports false when s does not start with a number.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
