package applicants

import (
	"encoding/json"
	"os"
	"time"
)

// ExcludedApplicants is the content of an exclude file: applicants that must not
// be ranked again.
type ExcludedApplicants struct {
	Items []*ExcludedApplicant
}

type ExcludedApplicant struct {
	Email      string
	Name       string
	ExcludedAt time.Time
}

func (a *Applicants) ToExcluded() *ExcludedApplicants {
	excluded := &ExcludedApplicants{}
	for _, applicant := range a.Items {
		excluded.Items = append(excluded.Items, &ExcludedApplicant{
			Email:      applicant.Email,
			Name:       applicant.Name,
			ExcludedAt: time.Now().UTC(),
		})
	}
	return excluded
}

// GetExcludedFromFile reads an exclude file. An empty file yields an empty list.
func GetExcludedFromFile(path string) (*ExcludedApplicants, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &ExcludedApplicants{}, nil
	}

	var excluded ExcludedApplicants
	if err := json.NewDecoder(file).Decode(&excluded); err != nil {
		return nil, err
	}
	return &excluded, nil
}

func (e *ExcludedApplicants) Append(s *ExcludedApplicants) {
	e.Items = append(e.Items, s.Items...)
}

func (e *ExcludedApplicants) Emails() []string {
	emails := make([]string, 0, len(e.Items))
	for _, applicant := range e.Items {
		emails = append(emails, applicant.Email)
	}
	return emails
}

func (e *ExcludedApplicants) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}
