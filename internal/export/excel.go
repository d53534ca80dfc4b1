package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/spigell/hire-ranker/internal/scoring"
)

const (
	summarySheet      = "Summary"
	rankedSheet       = "Ranked Applicants"
	requirementsSheet = "Requirements"
)

var rankedHeaders = map[string][]string{
	ModeCriteria:    {"Rank", "Name", "Email", "Score", "Education", "Experience", "Skills"},
	ModeDescription: {"Rank", "Name", "Email", "Score (%)", "Matched Requirements"},
}

// ToExcel writes the report to an .xlsx workbook at outputPath, adding the
// extension when missing. It returns the path written.
func ToExcel(report *Report, outputPath string) (string, error) {
	if !strings.HasSuffix(strings.ToLower(outputPath), ".xlsx") {
		outputPath += ".xlsx"
	}
	outputPath = filepath.Clean(outputPath)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return "", err
	}

	if err := writeSummary(f, report); err != nil {
		return "", fmt.Errorf("failed to create summary sheet: %w", err)
	}

	if err := writeRanked(f, report); err != nil {
		return "", fmt.Errorf("failed to create ranked applicants sheet: %w", err)
	}

	if report.Mode == ModeDescription {
		if err := writeRequirements(f, report); err != nil {
			return "", fmt.Errorf("failed to create requirements sheet: %w", err)
		}
	}

	if err := f.SaveAs(outputPath); err != nil {
		return "", fmt.Errorf("failed to save excel file: %w", err)
	}

	return outputPath, nil
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
}

func writeHeaders(f *excelize.File, sheet string, headers []string) error {
	style, err := headerStyle(f)
	if err != nil {
		return err
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func setRow(f *excelize.File, sheet string, row int, values ...any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func writeSummary(f *excelize.File, report *Report) error {
	if err := f.SetColWidth(summarySheet, "A", "A", 25); err != nil {
		return err
	}
	if err := f.SetColWidth(summarySheet, "B", "B", 60); err != nil {
		return err
	}

	rows := [][]any{
		{"Applicant Ranking Report"},
		{"Generated:", time.Now().Format("2006-01-02 15:04:05")},
		{"Mode:", report.Mode},
	}

	switch report.Mode {
	case ModeCriteria:
		rows = append(rows,
			[]any{"Job Type:", report.JobType},
			[]any{"Required Skills:", strings.Join(report.RequiredSkills, ", ")},
		)
	case ModeDescription:
		rows = append(rows,
			[]any{"Job Description:", report.Description},
			[]any{"Requirements Found:", len(report.Requirements)},
		)
	}

	rows = append(rows, []any{"Applicants Ranked:", len(report.Results)})
	if len(report.Results) > 0 {
		minScore, maxScore, avg := stats(report.Results)
		rows = append(rows,
			[]any{"Highest Score:", fmt.Sprintf("%.1f", maxScore)},
			[]any{"Lowest Score:", fmt.Sprintf("%.1f", minScore)},
			[]any{"Average Score:", fmt.Sprintf("%.2f", avg)},
		)
	}

	for idx, values := range rows {
		if err := setRow(f, summarySheet, idx+1, values...); err != nil {
			return err
		}
	}

	style, err := headerStyle(f)
	if err != nil {
		return err
	}
	return f.SetCellStyle(summarySheet, "A1", "A1", style)
}

func writeRanked(f *excelize.File, report *Report) error {
	if _, err := f.NewSheet(rankedSheet); err != nil {
		return err
	}

	headers, ok := rankedHeaders[report.Mode]
	if !ok {
		return fmt.Errorf("unknown report mode %q", report.Mode)
	}
	if err := writeHeaders(f, rankedSheet, headers); err != nil {
		return err
	}
	if err := f.SetColWidth(rankedSheet, "B", "C", 30); err != nil {
		return err
	}

	for idx, result := range report.Results {
		values := []any{idx + 1, result.Applicant.Name, result.Applicant.Email, result.Score}

		switch report.Mode {
		case ModeCriteria:
			if result.Breakdown != nil {
				values = append(values, result.Breakdown.Education, result.Breakdown.Experience, result.Breakdown.Skills)
			}
		case ModeDescription:
			matched := make([]string, 0, len(result.Matched))
			for _, req := range result.Matched {
				matched = append(matched, req.Value)
			}
			values = append(values, strings.Join(matched, ", "))
		}

		if err := setRow(f, rankedSheet, idx+2, values...); err != nil {
			return err
		}
	}

	if len(report.Results) > 0 {
		last, err := excelize.CoordinatesToCellName(len(headers), len(report.Results)+1)
		if err != nil {
			return err
		}
		return f.AutoFilter(rankedSheet, "A1:"+last, []excelize.AutoFilterOptions{})
	}

	return nil
}

func writeRequirements(f *excelize.File, report *Report) error {
	if _, err := f.NewSheet(requirementsSheet); err != nil {
		return err
	}

	if err := writeHeaders(f, requirementsSheet, []string{"Type", "Value", "Importance", "Matching Applicants"}); err != nil {
		return err
	}
	if err := f.SetColWidth(requirementsSheet, "B", "B", 30); err != nil {
		return err
	}

	for idx, req := range report.Requirements {
		count := 0
		if idx < len(report.Counts) {
			count = report.Counts[idx].Count
		}
		if err := setRow(f, requirementsSheet, idx+2, string(req.Type), req.Value, req.Importance, count); err != nil {
			return err
		}
	}

	return nil
}

func stats(results []scoring.Scored) (minScore, maxScore, avg float64) {
	minScore = results[0].Score
	maxScore = results[0].Score

	total := 0.0
	for _, r := range results {
		minScore = min(minScore, r.Score)
		maxScore = max(maxScore, r.Score)
		total += r.Score
	}

	return minScore, maxScore, total / float64(len(results))
}
