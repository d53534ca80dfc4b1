package filtering

import (
	"context"

	"go.uber.org/zap"

	"github.com/spigell/hire-ranker/internal/applicants"
)

type uniqueEmailFilter struct {
	disabled bool
	reason   string
}

// NewUniqueEmail creates a filter that keeps only the first applicant per email.
func NewUniqueEmail() Filter {
	return &uniqueEmailFilter{}
}

func (f *uniqueEmailFilter) Name() string { return "unique_email" }

func (f *uniqueEmailFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *uniqueEmailFilter) IsEnabled() bool { return !f.disabled }

func (f *uniqueEmailFilter) Validate(*Config) error { return nil }

func (f *uniqueEmailFilter) Apply(_ context.Context, deps Deps, a *applicants.Applicants) (*applicants.Applicants, Step, error) {
	initial := a.Len()
	dropped := a.Dedupe()
	if deps.Logger != nil && len(dropped) > 0 {
		deps.Logger.Warn("dropping applicants with duplicate emails",
			zap.Strings("duplicate_emails", dropped),
			zap.Int("applicants_left", a.Len()),
		)
	}

	return a, Step{Initial: initial, Dropped: len(dropped), Left: a.Len()}, nil
}

func (f *uniqueEmailFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason}
}
