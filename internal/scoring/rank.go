package scoring

import (
	"sort"

	"github.com/spigell/hire-ranker/internal/applicants"
	"github.com/spigell/hire-ranker/internal/requirements"
)

// DefaultTopCount is how many applicants TopApplicants returns when count is not positive.
const DefaultTopCount = 3

// Scored is an applicant with its score. Breakdown is set in manual mode,
// Matched in requirement mode.
type Scored struct {
	Applicant *applicants.Applicant     `json:"applicant"`
	Score     float64                   `json:"score"`
	Breakdown *Breakdown                `json:"breakdown,omitempty"`
	Matched   requirements.Requirements `json:"matched_requirements,omitempty"`
}

// RankApplicants scores every applicant in manual mode and sorts them by
// descending total. Ties keep input order.
func RankApplicants(items []*applicants.Applicant, jobType string, requiredSkills []string) []Scored {
	scored := make([]Scored, 0, len(items))
	for _, applicant := range items {
		result := ScoreApplicant(applicant, jobType, requiredSkills)
		breakdown := result.Breakdown
		scored = append(scored, Scored{
			Applicant: applicant,
			Score:     result.Total,
			Breakdown: &breakdown,
		})
	}

	sortByScore(scored)
	return scored
}

// TopApplicants returns the best count applicants in manual mode.
func TopApplicants(items []*applicants.Applicant, jobType string, requiredSkills []string, count int) []Scored {
	if count <= 0 {
		count = DefaultTopCount
	}

	scored := RankApplicants(items, jobType, requiredSkills)
	if len(scored) > count {
		scored = scored[:count]
	}
	return scored
}

// RankByRequirements scores every applicant against reqs and sorts them by
// descending score. Ties keep input order.
func RankByRequirements(items []*applicants.Applicant, reqs requirements.Requirements) []Scored {
	scored := make([]Scored, 0, len(items))
	for _, applicant := range items {
		result := ScoreByRequirements(applicant, reqs)
		scored = append(scored, Scored{
			Applicant: applicant,
			Score:     result.Score,
			Matched:   result.Matched,
		})
	}

	sortByScore(scored)
	return scored
}

// TopByJobDescription extracts requirements from description and ranks all
// applicants against them.
func TopByJobDescription(items []*applicants.Applicant, description string) []Scored {
	return RankByRequirements(items, requirements.Extract(description))
}

// RequirementCount is the number of scored applicants that matched a requirement.
type RequirementCount struct {
	Requirement requirements.Requirement `json:"requirement"`
	Count       int                      `json:"count"`
}

// RequirementMatchCounts counts, per requirement, the scored applicants whose
// matched set holds the same type and value.
func RequirementMatchCounts(reqs requirements.Requirements, scored []Scored) []RequirementCount {
	counts := make([]RequirementCount, 0, len(reqs))
	for _, req := range reqs {
		count := 0
		for _, s := range scored {
			if s.Matched.Contains(req.Key()) {
				count++
			}
		}
		counts = append(counts, RequirementCount{Requirement: req, Count: count})
	}
	return counts
}

// Rank returns the 1-based position of the applicant with email in scored, or 0.
// Emails are compared exactly.
func Rank(scored []Scored, email string) int {
	for idx, s := range scored {
		if s.Applicant != nil && s.Applicant.Email == email {
			return idx + 1
		}
	}
	return 0
}

func sortByScore(scored []Scored) {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
}
