// Package export writes ranking results to files.
package export

import (
	"encoding/json"
	"os"

	"github.com/spigell/hire-ranker/internal/requirements"
	"github.com/spigell/hire-ranker/internal/scoring"
)

const (
	ModeCriteria    = "criteria"
	ModeDescription = "description"
)

// Report is everything produced by one ranking run.
type Report struct {
	Mode           string                     `json:"mode"`
	JobType        string                     `json:"job_type,omitempty"`
	RequiredSkills []string                   `json:"required_skills,omitempty"`
	Description    string                     `json:"description,omitempty"`
	Requirements   requirements.Requirements  `json:"requirements,omitempty"`
	Counts         []scoring.RequirementCount `json:"requirement_counts,omitempty"`
	Results        []scoring.Scored           `json:"results"`
}

// DumpToTmpFile writes the report as indented JSON to a new temporary file and
// returns its name.
func DumpToTmpFile(report *Report) (string, error) {
	file, err := os.CreateTemp("", "ranking_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return "", err
	}
	return file.Name(), nil
}
