// Package scoring scores and ranks applicants, either against manual criteria
// (job type and required skills) or against requirements extracted from a job
// description.
package scoring

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/spigell/hire-ranker/internal/applicants"
	"github.com/spigell/hire-ranker/internal/requirements"
)

const (
	JobTypeTech  = "tech"
	JobTypeLegal = "legal"
)

// Weights used by the manual criteria mode.
const (
	topSchoolBonus = 10
	top25Bonus     = 15
	highGPABonus   = 5
	highGPAMinimum = 3.5

	pointsPerYear     = 5
	relevantRoleBonus = 10

	pointsPerSkill = 8
)

// levelPoints are the base education points per highest attained level.
// Levels not listed score 0.
var levelPoints = map[string]float64{
	requirements.LevelPhD:        25,
	requirements.LevelMaster:     20,
	requirements.LevelJD:         20,
	requirements.LevelBachelor:   15,
	requirements.LevelAssociate:  10,
	requirements.LevelHighSchool: 5,
}

// relevantRoles lists role-name keywords per job type. Job types without an
// entry have no relevant roles.
var relevantRoles = map[string][]string{
	JobTypeTech:  {"Developer", "Engineer", "Software", "Full Stack", "Front End", "Back End", "DevOps", "System"},
	JobTypeLegal: {"Legal", "Attorney", "Lawyer", "Counsel", "Partner"},
}

var gpaRange = regexp.MustCompile(`(\d\.\d)-(\d\.\d)`)

// Breakdown splits a manual-mode score into its components.
type Breakdown struct {
	Education  float64 `json:"education"`
	Experience float64 `json:"experience"`
	Skills     float64 `json:"skills"`
}

func (b Breakdown) Total() float64 {
	return b.Education + b.Experience + b.Skills
}

// Result is the manual-mode score of one applicant. Total is not normalized.
type Result struct {
	Total     float64
	Breakdown Breakdown
}

// ScoreApplicant scores an applicant against a job type and a list of required
// skills. Unknown job types get no relevant-role bonus.
func ScoreApplicant(applicant *applicants.Applicant, jobType string, requiredSkills []string) Result {
	breakdown := Breakdown{
		Education:  scoreEducation(applicant.Education),
		Experience: scoreExperience(applicant, jobType),
		Skills:     scoreSkills(applicant.Skills, requiredSkills),
	}

	return Result{
		Total:     breakdown.Total(),
		Breakdown: breakdown,
	}
}

func scoreEducation(education applicants.Education) float64 {
	score := levelPoints[education.HighestLevel]

	for _, degree := range education.Degrees {
		if degree.IsTop50 {
			score += topSchoolBonus
		}
		if degree.IsTop25 {
			score += top25Bonus
		}
		if parseGPA(degree.GPA) >= highGPAMinimum {
			score += highGPABonus
		}
	}

	return score
}

// parseGPA returns the upper bound of a "X.X-Y.Y" GPA band, or 0.
func parseGPA(band string) float64 {
	match := gpaRange.FindStringSubmatch(band)
	if match == nil {
		return 0
	}

	upper, err := strconv.ParseFloat(match[2], 64)
	if err != nil {
		return 0
	}
	return upper
}

func scoreExperience(applicant *applicants.Applicant, jobType string) float64 {
	score := applicant.YearsOfExperience() * pointsPerYear

	relevant := 0
	for _, exp := range applicant.WorkExperiences {
		if isRelevantRole(exp.RoleName, jobType) {
			relevant++
		}
	}

	return score + float64(relevant)*relevantRoleBonus
}

func isRelevantRole(roleName, jobType string) bool {
	role := strings.ToLower(roleName)
	for _, keyword := range relevantRoles[jobType] {
		if strings.Contains(role, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

func scoreSkills(skills, requiredSkills []string) float64 {
	if len(skills) == 0 {
		return 0
	}

	matches := 0
	for _, required := range requiredSkills {
		if hasSkill(skills, required) {
			matches++
		}
	}

	return float64(matches) * pointsPerSkill
}

// hasSkill reports whether any skill contains required or is contained by it,
// case-insensitively.
func hasSkill(skills []string, required string) bool {
	req := strings.ToLower(required)
	for _, skill := range skills {
		s := strings.ToLower(skill)
		if strings.Contains(s, req) || strings.Contains(req, s) {
			return true
		}
	}
	return false
}
