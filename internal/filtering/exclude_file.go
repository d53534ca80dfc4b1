package filtering

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/hire-ranker/internal/applicants"
)

type excludeFileFilter struct {
	path string
}

// NewExcludeFile creates a filter that removes applicants contained in an exclude file.
// A missing file is treated as empty.
func NewExcludeFile() Filter {
	return &excludeFileFilter{}
}

func (f *excludeFileFilter) Name() string { return "exclude_file" }

func (f *excludeFileFilter) Disable(string) {}

func (f *excludeFileFilter) IsEnabled() bool { return true }

func (f *excludeFileFilter) Validate(cfg *Config) error {
	f.path = ""
	if cfg != nil {
		f.path = strings.TrimSpace(cfg.ExcludeFile)
	}
	return nil
}

func (f *excludeFileFilter) Apply(_ context.Context, deps Deps, a *applicants.Applicants) (*applicants.Applicants, Step, error) {
	initial := a.Len()
	if f.path == "" {
		return a, Step{Initial: initial, Dropped: 0, Left: a.Len()}, nil
	}

	excluded, err := applicants.GetExcludedFromFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return a, Step{Initial: initial, Dropped: 0, Left: a.Len()}, nil
	}
	if err != nil {
		return a, Step{}, fmt.Errorf("getting excluded applicants from file: %w", err)
	}

	removed := a.Exclude(excluded.Emails())
	if deps.Logger != nil && len(removed) > 0 {
		deps.Logger.Info("excluding applicants based on exclude file",
			zap.String("path", f.path),
			zap.Strings("excluded_applicants", removed),
			zap.Int("applicants_left", a.Len()),
		)
	}

	return a, Step{Initial: initial, Dropped: len(removed), Left: a.Len()}, nil
}

func (f *excludeFileFilter) Status() Status {
	details := map[string]string{}
	if f.path != "" {
		details["path"] = f.path
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}
