// Package applicants holds the applicant data model and loads applicant
// documents at the data boundary.
package applicants

// Applicant is a single job applicant. Email is the identity key.
type Applicant struct {
	Name              string            `json:"name" mapstructure:"name" validate:"required"`
	Email             string            `json:"email" mapstructure:"email" validate:"required,email"`
	Phone             string            `json:"phone,omitempty" mapstructure:"phone"`
	Location          string            `json:"location,omitempty" mapstructure:"location"`
	SubmittedAt       string            `json:"submitted_at,omitempty" mapstructure:"submitted_at"`
	WorkAvailability  []string          `json:"work_availability,omitempty" mapstructure:"work_availability"`
	SalaryExpectation map[string]string `json:"annual_salary_expectation,omitempty" mapstructure:"annual_salary_expectation"`
	WorkExperiences   []WorkExperience  `json:"work_experiences" mapstructure:"work_experiences" validate:"dive"`
	Education         Education         `json:"education" mapstructure:"education"`
	Skills            []string          `json:"skills" mapstructure:"skills"`
}

type WorkExperience struct {
	Company  string `json:"company" mapstructure:"company"`
	RoleName string `json:"roleName" mapstructure:"roleName"`
}

type Education struct {
	HighestLevel string   `json:"highest_level" mapstructure:"highest_level"`
	Degrees      []Degree `json:"degrees" mapstructure:"degrees"`
}

type Degree struct {
	Degree         string `json:"degree" mapstructure:"degree"`
	Subject        string `json:"subject" mapstructure:"subject"`
	School         string `json:"school" mapstructure:"school"`
	GPA            string `json:"gpa" mapstructure:"gpa"`
	StartDate      string `json:"startDate,omitempty" mapstructure:"startDate"`
	EndDate        string `json:"endDate,omitempty" mapstructure:"endDate"`
	OriginalSchool string `json:"originalSchool" mapstructure:"originalSchool"`
	IsTop50        bool   `json:"isTop50" mapstructure:"isTop50"`
	IsTop25        bool   `json:"isTop25,omitempty" mapstructure:"isTop25"`
}

// YearsOfExperience estimates experience from the number of positions held.
// No dates are available, so every position counts as 1.5 years.
func (a *Applicant) YearsOfExperience() float64 {
	return float64(len(a.WorkExperiences)) * 1.5
}

// Salary returns the salary expectation for the given availability, e.g. "full-time".
func (a *Applicant) Salary(kind string) string {
	if a.SalaryExpectation == nil {
		return ""
	}
	return a.SalaryExpectation[kind]
}
