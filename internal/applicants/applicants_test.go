package applicants

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `[
  {
    "name": "Clever Monkey",
    "email": "clever-monkey@example.com",
    "phone": 5582981474204,
    "location": "Maceió",
    "submitted_at": "2025-01-28 09:02:16.000000",
    "work_availability": ["full-time", "part-time"],
    "annual_salary_expectation": {"full-time": "$117548"},
    "work_experiences": [
      {"company": "StarLab Digital Ventures", "roleName": "Full Stack Developer"},
      {"company": "OrbitalLife", "roleName": "Project Manager"}
    ],
    "education": {
      "highest_level": "Bachelor's Degree",
      "degrees": [
        {
          "degree": "Bachelor's Degree",
          "subject": "Computer Science",
          "school": "International Institutions",
          "gpa": "GPA 3.0-3.4",
          "startDate": "2023",
          "endDate": "2027",
          "originalSchool": "Faculdade Descomplica",
          "isTop50": false
        }
      ]
    },
    "skills": ["Project Management", "React"]
  },
  {
    "name": "Quiet Owl",
    "email": "quiet-owl@example.com",
    "education": {"highest_level": "Ph.D.", "degrees": [{"gpa": "GPA 3.5-3.9", "isTop50": true, "isTop25": true}]}
  }
]`

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "applicants.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	loaded, err := Load(writeFile(t, sampleDocument))
	require.NoError(t, err)
	require.Equal(t, 2, loaded.Len())

	first := loaded.Items[0]
	assert.Equal(t, "Clever Monkey", first.Name)
	assert.Equal(t, "5582981474204", first.Phone)
	assert.Equal(t, "$117548", first.Salary("full-time"))
	assert.Empty(t, first.Salary("part-time"))
	assert.Equal(t, []string{"full-time", "part-time"}, first.WorkAvailability)
	require.Len(t, first.WorkExperiences, 2)
	assert.Equal(t, "Project Manager", first.WorkExperiences[1].RoleName)
	require.Len(t, first.Education.Degrees, 1)
	assert.Equal(t, "Faculdade Descomplica", first.Education.Degrees[0].OriginalSchool)
	assert.False(t, first.Education.Degrees[0].IsTop25)

	second := loaded.Items[1]
	assert.Empty(t, second.Skills)
	assert.Empty(t, second.WorkExperiences)
	assert.Zero(t, second.YearsOfExperience())
	assert.True(t, second.Education.Degrees[0].IsTop25)
	assert.Empty(t, second.Salary("full-time"))
}

func TestLoad_WrappedDocument(t *testing.T) {
	loaded, err := Load(writeFile(t, `{"applicants": [{"name": "A", "email": "a@example.com"}]}`))
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Len())
}

func TestLoad_EmptyFile(t *testing.T) {
	loaded, err := Load(writeFile(t, "  \n"))
	require.NoError(t, err)
	assert.Zero(t, loaded.Len())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		message string
	}{
		{
			name:    "no path",
			path:    func(*testing.T) string { return " " },
			message: "applicants file is not configured",
		},
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.json") },
			message: "reading applicants from file",
		},
		{
			name:    "malformed json",
			path:    func(t *testing.T) string { return writeFile(t, "[{") },
			message: "parsing applicants file",
		},
		{
			name:    "skills not a list",
			path:    func(t *testing.T) string { return writeFile(t, `[{"name": "A", "email": "a@example.com", "skills": "React"}]`) },
			message: "does not match the applicants schema",
		},
		{
			name:    "experience not an object",
			path:    func(t *testing.T) string { return writeFile(t, `[{"name": "A", "email": "a@example.com", "work_experiences": ["Developer"]}]`) },
			message: "does not match the applicants schema",
		},
		{
			name:    "missing email",
			path:    func(t *testing.T) string { return writeFile(t, `[{"name": "No Email"}]`) },
			message: "applicant #0: invalid fields: Applicant.Email (required)",
		},
		{
			name:    "invalid email",
			path:    func(t *testing.T) string { return writeFile(t, `[{"name": "A", "email": "a@example.com"}, {"name": "B", "email": "nope"}]`) },
			message: "applicant #1: invalid fields: Applicant.Email (email)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	assert.EqualError(t, Validate(nil), "applicant is nil")
}

func TestApplicants_SkillsAndRoles(t *testing.T) {
	list := New(
		&Applicant{Skills: []string{"React", "Go"}, WorkExperiences: []WorkExperience{{RoleName: "Engineer"}}},
		&Applicant{Skills: []string{"Go", "AWS"}, WorkExperiences: []WorkExperience{{RoleName: "Attorney"}, {RoleName: "Engineer"}}},
		&Applicant{},
	)

	assert.Equal(t, []string{"AWS", "Go", "React"}, list.Skills())
	assert.Equal(t, []string{"Attorney", "Engineer"}, list.Roles())
	assert.Empty(t, New().Skills())
}

func TestApplicants_FindByEmail(t *testing.T) {
	list := New(&Applicant{Email: "a@example.com"}, &Applicant{Email: "b@example.com"})

	require.NotNil(t, list.FindByEmail("B@example.com"))
	assert.Equal(t, "b@example.com", list.FindByEmail("B@example.com").Email)
	assert.Nil(t, list.FindByEmail("c@example.com"))
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, list.Emails())
}

func TestApplicants_ExcludePreservesOrder(t *testing.T) {
	list := New(
		&Applicant{Email: "a@example.com"},
		&Applicant{Email: "b@example.com"},
		&Applicant{Email: "c@example.com"},
		&Applicant{Email: "d@example.com"},
	)

	excluded := list.Exclude([]string{" B@example.com ", "missing@example.com", "a@example.com"})

	assert.Equal(t, []string{"a@example.com", "b@example.com"}, excluded)
	assert.Equal(t, []string{"c@example.com", "d@example.com"}, list.Emails())
	assert.Nil(t, list.Exclude(nil))
}

func TestApplicants_Dedupe(t *testing.T) {
	first := &Applicant{Name: "first", Email: "a@example.com"}
	list := New(first, &Applicant{Email: "b@example.com"}, &Applicant{Name: "second", Email: "A@example.com"})

	dropped := list.Dedupe()

	assert.Equal(t, []string{"A@example.com"}, dropped)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, list.Emails())
	assert.Same(t, first, list.Items[0])
}

func TestYearsOfExperience(t *testing.T) {
	applicant := &Applicant{WorkExperiences: make([]WorkExperience, 3)}
	assert.InDelta(t, 4.5, applicant.YearsOfExperience(), 1e-9)
}

func TestExcludedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "excluded.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	excluded, err := GetExcludedFromFile(path)
	require.NoError(t, err)
	assert.Empty(t, excluded.Items)

	list := New(&Applicant{Name: "A", Email: "a@example.com"}, &Applicant{Name: "B", Email: "b@example.com"})
	excluded.Append(list.ToExcluded())
	require.NoError(t, excluded.ToFile(path))

	reloaded, err := GetExcludedFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, reloaded.Emails())
	assert.Equal(t, "B", reloaded.Items[1].Name)

	_, err = GetExcludedFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
