package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/hire-ranker/internal/export"
	"github.com/spigell/hire-ranker/internal/requirements"
	"github.com/spigell/hire-ranker/internal/scoring"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank applicants by the requirements found in a job description",
	Run: func(_ *cobra.Command, _ []string) {
		match()
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)
}

func match() {
	ctx := context.Background()

	logger, config := start(export.ModeDescription)

	description, err := loadDescription(logger, config)
	if err != nil {
		descriptionFailed(logger, err)
	}

	reqs := requirements.Extract(description)
	logger.Info("extracted requirements",
		zap.Int("count", reqs.Len()),
		zap.Int("total_importance", reqs.TotalImportance()),
	)

	if reqs.Len() == 0 {
		logger.Warn("no requirements found in job description, every applicant scores 0")
	}

	items, err := loadApplicants(ctx, logger, config)
	if err != nil {
		logger.Fatal("loading applicants", zap.Error(err))
	}

	if items.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no applicants left after filters"))
		return
	}

	results := scoring.RankByRequirements(items.Items, reqs)

	report := &export.Report{
		Mode:         export.ModeDescription,
		Description:  description,
		Requirements: reqs,
		Counts:       scoring.RequirementMatchCounts(reqs, results),
		Results:      results,
	}

	if err := present(logger, config, report); err != nil {
		logger.Fatal("exiting", zap.Error(err))
	}
}
