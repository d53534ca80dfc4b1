package applicants

import (
	"sort"
	"strings"
)

// Applicants is an ordered collection of applicants as loaded from the source.
type Applicants struct {
	Items []*Applicant
}

func New(items ...*Applicant) *Applicants {
	return &Applicants{Items: items}
}

func (a *Applicants) Len() int {
	if a == nil {
		return 0
	}
	return len(a.Items)
}

// FindByEmail returns the applicant with the given email, compared case-insensitively.
func (a *Applicants) FindByEmail(email string) *Applicant {
	for _, applicant := range a.Items {
		if strings.EqualFold(applicant.Email, email) {
			return applicant
		}
	}
	return nil
}

func (a *Applicants) Emails() []string {
	emails := make([]string, 0, len(a.Items))
	for _, applicant := range a.Items {
		emails = append(emails, applicant.Email)
	}
	return emails
}

// Skills returns the sorted set of all skill labels across applicants.
func (a *Applicants) Skills() []string {
	set := make(map[string]struct{})
	for _, applicant := range a.Items {
		for _, skill := range applicant.Skills {
			set[skill] = struct{}{}
		}
	}
	return sortedKeys(set)
}

// Roles returns the sorted set of all role names across applicants' work history.
func (a *Applicants) Roles() []string {
	set := make(map[string]struct{})
	for _, applicant := range a.Items {
		for _, exp := range applicant.WorkExperiences {
			set[exp.RoleName] = struct{}{}
		}
	}
	return sortedKeys(set)
}

// Exclude removes applicants whose email matches any of targets and returns
// the removed emails. Order of the remaining applicants is preserved.
func (a *Applicants) Exclude(targets []string) []string {
	if len(targets) == 0 {
		return nil
	}

	drop := make(map[string]struct{}, len(targets))
	for _, target := range targets {
		drop[strings.ToLower(strings.TrimSpace(target))] = struct{}{}
	}

	var excluded []string
	kept := make([]*Applicant, 0, len(a.Items))
	for _, applicant := range a.Items {
		if _, ok := drop[strings.ToLower(applicant.Email)]; ok {
			excluded = append(excluded, applicant.Email)
			continue
		}
		kept = append(kept, applicant)
	}
	a.Items = kept

	return excluded
}

// Dedupe keeps the first applicant for every email and returns the emails of
// dropped duplicates.
func (a *Applicants) Dedupe() []string {
	seen := make(map[string]struct{}, len(a.Items))

	var dropped []string
	kept := make([]*Applicant, 0, len(a.Items))
	for _, applicant := range a.Items {
		key := strings.ToLower(applicant.Email)
		if _, ok := seen[key]; ok {
			dropped = append(dropped, applicant.Email)
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, applicant)
	}
	a.Items = kept

	return dropped
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
