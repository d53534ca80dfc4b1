package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/hire-ranker/internal/export"
	"github.com/spigell/hire-ranker/internal/scoring"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank applicants by job type and required skills",
	Run: func(_ *cobra.Command, _ []string) {
		rank()
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().IntP("top", "t", 3, "how many top applicants to keep")
	rankCmd.Flags().StringSliceP("skills", "s", nil, "required skills, can be repeated")
	rankCmd.Flags().String("job-type", "", "job type: tech or legal")

	viper.BindPFlag("top", rankCmd.Flags().Lookup("top"))
	viper.BindPFlag("job.skills", rankCmd.Flags().Lookup("skills"))
	viper.BindPFlag("job.type", rankCmd.Flags().Lookup("job-type"))
}

func rank() {
	ctx := context.Background()

	logger, config := start(export.ModeCriteria)

	skills := dedupeSkills(config.Job.Skills)
	if len(skills) == 0 {
		logger.Warn("no required skills configured", zap.String("hint", "set job.skills or pass --skills"))
	}

	items, err := loadApplicants(ctx, logger, config)
	if err != nil {
		logger.Fatal("loading applicants", zap.Error(err))
	}

	if items.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no applicants left after filters"))
		return
	}

	results := scoring.TopApplicants(items.Items, config.Job.Type, skills, config.Top)

	report := &export.Report{
		Mode:           export.ModeCriteria,
		JobType:        config.Job.Type,
		RequiredSkills: skills,
		Results:        results,
	}

	if err := present(logger, config, report); err != nil {
		logger.Fatal("exiting", zap.Error(err))
	}
}
