package filtering

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/hire-ranker/internal/applicants"
)

type excludeEmailsFilter struct {
	emails []string
}

// NewExcludeEmails creates a filter that removes applicants listed in the config.
func NewExcludeEmails() Filter {
	return &excludeEmailsFilter{}
}

func (f *excludeEmailsFilter) Name() string { return "exclude_emails" }

func (f *excludeEmailsFilter) Disable(string) {}

func (f *excludeEmailsFilter) IsEnabled() bool { return true }

func (f *excludeEmailsFilter) Validate(cfg *Config) error {
	f.emails = nil
	if cfg != nil {
		for _, email := range cfg.ExcludeEmails {
			if email = strings.TrimSpace(email); email != "" {
				f.emails = append(f.emails, email)
			}
		}
	}
	return nil
}

func (f *excludeEmailsFilter) Apply(_ context.Context, deps Deps, a *applicants.Applicants) (*applicants.Applicants, Step, error) {
	initial := a.Len()
	if len(f.emails) == 0 {
		return a, Step{Initial: initial, Dropped: 0, Left: a.Len()}, nil
	}

	excluded := a.Exclude(f.emails)
	if deps.Logger != nil && len(excluded) > 0 {
		deps.Logger.Info("excluding applicants by email",
			zap.Strings("excluded_applicants", excluded),
			zap.Int("applicants_left", a.Len()),
		)
	}

	return a, Step{Initial: initial, Dropped: len(excluded), Left: a.Len()}, nil
}

func (f *excludeEmailsFilter) Status() Status {
	details := map[string]string{}
	if len(f.emails) > 0 {
		details["emails"] = strings.Join(f.emails, ",")
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}
