package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/hire-ranker/internal/logger"
	"github.com/spigell/hire-ranker/internal/requirements"
)

var requirementsCmd = &cobra.Command{
	Use:   "requirements",
	Short: "Print the requirements found in a job description",
	Run: func(_ *cobra.Command, _ []string) {
		showRequirements()
	},
}

func init() {
	rootCmd.AddCommand(requirementsCmd)
}

func showRequirements() {
	lg, config := start("")

	description, err := loadDescription(lg, config)
	if err != nil {
		descriptionFailed(lg, err)
	}

	reqs := requirements.Extract(description)

	for _, kind := range []requirements.Type{requirements.TypeSkill, requirements.TypeEducation, requirements.TypeExperience} {
		for _, req := range reqs.ByType(kind) {
			lg.Info("requirement", logger.RequirementFields(req)...)
		}
	}

	lg.Info("requirements found",
		zap.Int("count", reqs.Len()),
		zap.Int("total_importance", reqs.TotalImportance()),
	)
}
