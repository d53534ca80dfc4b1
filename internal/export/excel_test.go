package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/spigell/hire-ranker/internal/applicants"
	"github.com/spigell/hire-ranker/internal/requirements"
	"github.com/spigell/hire-ranker/internal/scoring"
)

func fixtureApplicants() []*applicants.Applicant {
	return []*applicants.Applicant{
		{
			Name:            "Clever Monkey",
			Email:           "clever-monkey@example.com",
			Education:       applicants.Education{HighestLevel: requirements.LevelMaster},
			WorkExperiences: []applicants.WorkExperience{{RoleName: "Full Stack Developer"}},
			Skills:          []string{"React"},
		},
		{
			Name:  "Quiet Owl",
			Email: "quiet-owl@example.com",
		},
	}
}

func criteriaReport() *Report {
	skills := []string{"React", "JavaScript"}
	return &Report{
		Mode:           ModeCriteria,
		JobType:        scoring.JobTypeTech,
		RequiredSkills: skills,
		Results:        scoring.RankApplicants(fixtureApplicants(), scoring.JobTypeTech, skills),
	}
}

func descriptionReport() *Report {
	description := "Senior React developer, Master's degree"
	reqs := requirements.Extract(description)
	results := scoring.RankByRequirements(fixtureApplicants(), reqs)
	return &Report{
		Mode:         ModeDescription,
		Description:  description,
		Requirements: reqs,
		Counts:       scoring.RequirementMatchCounts(reqs, results),
		Results:      results,
	}
}

func TestToExcel_AddsExtension(t *testing.T) {
	base := filepath.Join(t.TempDir(), "ranking")

	path, err := ToExcel(criteriaReport(), base)
	require.NoError(t, err)
	assert.Equal(t, base+".xlsx", path)

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestToExcel_KeepsExtension(t *testing.T) {
	base := filepath.Join(t.TempDir(), "ranking.XLSX")

	path, err := ToExcel(criteriaReport(), base)
	require.NoError(t, err)
	assert.Equal(t, base, path)
}

func TestToExcel_CriteriaContent(t *testing.T) {
	path, err := ToExcel(criteriaReport(), filepath.Join(t.TempDir(), "criteria.xlsx"))
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{summarySheet, rankedSheet}, f.GetSheetList())

	name, err := f.GetCellValue(rankedSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Clever Monkey", name)

	header, err := f.GetCellValue(rankedSheet, "E1")
	require.NoError(t, err)
	assert.Equal(t, "Education", header)

	// Master 20 + 1.5 * 5 + 10 relevant role + 8 skill = 45.5
	score, err := f.GetCellValue(rankedSheet, "D2")
	require.NoError(t, err)
	assert.Equal(t, "45.5", score)

	jobType, err := f.GetCellValue(summarySheet, "B4")
	require.NoError(t, err)
	assert.Equal(t, "tech", jobType)
}

func TestToExcel_DescriptionContent(t *testing.T) {
	report := descriptionReport()

	path, err := ToExcel(report, filepath.Join(t.TempDir(), "description.xlsx"))
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{summarySheet, rankedSheet, requirementsSheet}, f.GetSheetList())

	rows, err := f.GetRows(requirementsSheet)
	require.NoError(t, err)
	require.Len(t, rows, len(report.Requirements)+1)
	assert.Equal(t, []string{"skill", "React", "2", "1"}, rows[1])

	matched, err := f.GetCellValue(rankedSheet, "E2")
	require.NoError(t, err)
	assert.Contains(t, matched, "React")
}

func TestToExcel_UnknownMode(t *testing.T) {
	_, err := ToExcel(&Report{Mode: "other"}, filepath.Join(t.TempDir(), "other.xlsx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown report mode")
}

func TestToExcel_EmptyResults(t *testing.T) {
	_, err := ToExcel(&Report{Mode: ModeCriteria}, filepath.Join(t.TempDir(), "empty.xlsx"))
	require.NoError(t, err)
}

func TestDumpToTmpFile(t *testing.T) {
	report := descriptionReport()

	path, err := DumpToTmpFile(report)
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(path) })

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, ModeDescription, decoded.Mode)
	require.Len(t, decoded.Results, 2)
	assert.Equal(t, "clever-monkey@example.com", decoded.Results[0].Applicant.Email)
	assert.Equal(t, report.Requirements, decoded.Requirements)
}
