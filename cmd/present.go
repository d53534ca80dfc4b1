package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/manifoldco/promptui"
	"go.uber.org/zap"

	"github.com/spigell/hire-ranker/internal/applicants"
	"github.com/spigell/hire-ranker/internal/export"
	"github.com/spigell/hire-ranker/internal/logger"
	"github.com/spigell/hire-ranker/internal/scoring"
)

const (
	PromptDetails              = "Show applicant details"
	PromptReportByRequirements = "Report by requirements"
	PromptResultsToFile        = "Dump results to file"
	PromptExportXLSX           = "Export to XLSX"
	PromptAppendToExcludeFile  = "Append ranked applicants to exclude file"
	PromptExit                 = "Exit"
	PromptBack                 = "back"
	defaultXLSXReport          = "ranking.xlsx"
)

var errExit = errors.New("exit requested")

// present logs the ranking and then asks what to do with it until the user exits.
// With --yes it only writes the configured xlsx report.
func present(lg *zap.Logger, config *Config, report *export.Report) error {
	logRanking(lg, report)

	if config.Yes {
		if config.Report.XLSX == "" {
			return nil
		}
		return handleAction(PromptExportXLSX, lg, config, report)
	}

	prompt := promptui.Select{
		Label: "What next?",
		Items: menuItems(config, report),
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			return err
		}

		if err := handleAction(action, lg, config, report); err != nil {
			if errors.Is(err, errExit) {
				return nil
			}
			return err
		}
	}
}

func menuItems(config *Config, report *export.Report) []string {
	items := []string{PromptDetails}
	if report.Mode == export.ModeDescription {
		items = append(items, PromptReportByRequirements)
	}
	items = append(items, PromptResultsToFile, PromptExportXLSX)
	if config.Exclude.File != "" && len(report.Results) != 0 {
		items = append(items, PromptAppendToExcludeFile)
	}
	return append(items, PromptExit)
}

func handleAction(action string, lg *zap.Logger, config *Config, report *export.Report) error {
	switch action {
	case PromptDetails:
		return showDetails(lg, report)
	case PromptReportByRequirements:
		for _, count := range report.Counts {
			lg.Info(fmt.Sprintf("%s: %s", count.Requirement.Type, count.Requirement.Value),
				zap.Int("importance", count.Requirement.Importance),
				zap.Int("matching applicants", count.Count),
			)
		}
		return nil
	case PromptResultsToFile:
		filename, err := export.DumpToTmpFile(report)
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		lg.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptExportXLSX:
		target := config.Report.XLSX
		if target == "" {
			target = defaultXLSXReport
		}
		filename, err := export.ToExcel(report, target)
		if err != nil {
			return fmt.Errorf("export results to xlsx: %w", err)
		}
		lg.Info("report written", zap.String("filename", filename))
		return nil
	case PromptAppendToExcludeFile:
		return appendToExcludeFile(lg, config.Exclude.File, report)
	case PromptExit:
		lg.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func logRanking(lg *zap.Logger, report *export.Report) {
	lg.Info("current list of ranked applicants", zap.Int("count", len(report.Results)))

	for idx, result := range report.Results {
		fields := []zap.Field{
			zap.Int("rank", idx+1),
			zap.Float64("score", result.Score),
		}
		fields = append(fields, logger.ApplicantFields(result.Applicant.Name, result.Applicant.Email)...)
		if result.Breakdown != nil {
			fields = append(fields,
				zap.Float64("education", result.Breakdown.Education),
				zap.Float64("experience", result.Breakdown.Experience),
				zap.Float64("skills", result.Breakdown.Skills),
			)
		}
		if report.Mode == export.ModeDescription {
			fields = append(fields, zap.Int("matched", result.Matched.Len()))
		}
		lg.Info("ranked applicant", fields...)
	}
}

func showDetails(lg *zap.Logger, report *export.Report) error {
	for {
		items := make([]string, 0, len(report.Results)+1)
		for idx, result := range report.Results {
			items = append(items, fmt.Sprintf("%d. %s <%s> %.1f",
				idx+1, result.Applicant.Name, result.Applicant.Email, result.Score,
			))
		}

		applicantPrompt := promptui.Select{
			Label: "Choose an applicant and press ENTER",
			Items: append(items, PromptBack),
		}

		idx, selected, err := applicantPrompt.Run()
		if err != nil {
			return err
		}

		if selected == PromptBack {
			return nil
		}

		result := report.Results[idx]
		pretty, _ := json.MarshalIndent(result, "", "  ")
		lg.Info(string(pretty),
			zap.Int("rank", scoring.Rank(report.Results, result.Applicant.Email)),
			zap.String("full-time salary", result.Applicant.Salary("full-time")),
			zap.Float64("estimated years", result.Applicant.YearsOfExperience()),
		)
	}
}

func appendToExcludeFile(lg *zap.Logger, path string, report *export.Report) error {
	excluded, err := applicants.GetExcludedFromFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		excluded = &applicants.ExcludedApplicants{}
	}

	ranked := make([]*applicants.Applicant, 0, len(report.Results))
	for _, result := range report.Results {
		ranked = append(ranked, result.Applicant)
	}

	excluded.Append(applicants.New(ranked...).ToExcluded())

	if err := excluded.ToFile(path); err != nil {
		return err
	}

	lg.Info("appended to exclude file", zap.String("filename", path), zap.Int("count", len(ranked)))
	return nil
}
