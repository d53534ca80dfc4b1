package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/hire-ranker/internal/applicants"
	"github.com/spigell/hire-ranker/internal/export"
	"github.com/spigell/hire-ranker/internal/jobdesc"
	"github.com/spigell/hire-ranker/internal/requirements"
	"github.com/spigell/hire-ranker/internal/scoring"
)

func testConfig() *Config {
	return &Config{
		Job:     &JobConfig{},
		Exclude: &ExcludeConfig{},
		Report:  &ReportConfig{},
	}
}

func descriptionReport() *export.Report {
	items := []*applicants.Applicant{
		{Name: "Clever Monkey", Email: "clever-monkey@example.com", Skills: []string{"React"}},
		{Name: "Quiet Owl", Email: "quiet-owl@example.com"},
	}
	reqs := requirements.Extract("React and Docker")
	results := scoring.RankByRequirements(items, reqs)
	return &export.Report{
		Mode:         export.ModeDescription,
		Description:  "React and Docker",
		Requirements: reqs,
		Counts:       scoring.RequirementMatchCounts(reqs, results),
		Results:      results,
	}
}

func TestDedupeSkills(t *testing.T) {
	got := dedupeSkills([]string{" React ", "react", "", "JavaScript", "REACT"})
	assert.Equal(t, []string{"React", "JavaScript"}, got)
	assert.Empty(t, dedupeSkills(nil))
}

func TestLoadDescription(t *testing.T) {
	config := testConfig()

	_, err := loadDescription(zap.NewNop(), config)
	require.ErrorIs(t, err, jobdesc.ErrNotProvided)
	assert.NotEmpty(t, descriptionHint(err))

	config.Job.DescriptionFile = filepath.Join(t.TempDir(), "missing.txt")
	_, err = loadDescription(zap.NewNop(), config)
	require.Error(t, err)
	assert.Empty(t, descriptionHint(err))

	config.Job.DescriptionFile = ""
	config.Job.Description = "  Senior React developer \r\n"

	core, logs := observer.New(zapcore.InfoLevel)
	description, err := loadDescription(zap.New(core), config)
	require.NoError(t, err)
	assert.Equal(t, "Senior React developer", description)
	assert.Equal(t, "inline", logs.FilterMessage("using job description").All()[0].ContextMap()["from"])
}

func TestMenuItems(t *testing.T) {
	config := testConfig()
	report := descriptionReport()

	assert.Equal(t, []string{
		PromptDetails, PromptReportByRequirements, PromptResultsToFile, PromptExportXLSX, PromptExit,
	}, menuItems(config, report))

	config.Exclude.File = "excluded.json"
	report.Mode = export.ModeCriteria
	assert.Equal(t, []string{
		PromptDetails, PromptResultsToFile, PromptExportXLSX, PromptAppendToExcludeFile, PromptExit,
	}, menuItems(config, report))
}

func TestHandleAction_ReportByRequirements(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	err := handleAction(PromptReportByRequirements, zap.New(core), testConfig(), descriptionReport())
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "skill: React", entries[0].Message)
	assert.EqualValues(t, 1, entries[0].ContextMap()["matching applicants"])
	assert.Equal(t, "skill: Docker", entries[1].Message)
	assert.EqualValues(t, 0, entries[1].ContextMap()["matching applicants"])
}

func TestHandleAction_Exit(t *testing.T) {
	err := handleAction(PromptExit, zap.NewNop(), testConfig(), descriptionReport())
	assert.ErrorIs(t, err, errExit)
}

func TestHandleAction_Invalid(t *testing.T) {
	err := handleAction("dance", zap.NewNop(), testConfig(), descriptionReport())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid action")
}

func TestHandleAction_ExportXLSX(t *testing.T) {
	config := testConfig()
	config.Report.XLSX = filepath.Join(t.TempDir(), "report")

	core, logs := observer.New(zapcore.InfoLevel)
	require.NoError(t, handleAction(PromptExportXLSX, zap.New(core), config, descriptionReport()))

	_, err := os.Stat(config.Report.XLSX + ".xlsx")
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("report written").Len())
}

func TestPresent_NonInteractive(t *testing.T) {
	config := testConfig()
	config.Yes = true

	core, logs := observer.New(zapcore.InfoLevel)
	require.NoError(t, present(zap.New(core), config, descriptionReport()))

	ranked := logs.FilterMessage("ranked applicant").All()
	require.Len(t, ranked, 2)
	assert.Equal(t, "clever-monkey@example.com", ranked[0].ContextMap()["email"])
	assert.EqualValues(t, 1, ranked[0].ContextMap()["rank"])
	assert.Equal(t, 0, logs.FilterMessage("report written").Len())
}

func TestAppendToExcludeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "excluded.json")

	require.NoError(t, appendToExcludeFile(zap.NewNop(), path, descriptionReport()))
	require.NoError(t, appendToExcludeFile(zap.NewNop(), path, descriptionReport()))

	excluded, err := applicants.GetExcludedFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"clever-monkey@example.com", "quiet-owl@example.com",
		"clever-monkey@example.com", "quiet-owl@example.com",
	}, excluded.Emails())
}
