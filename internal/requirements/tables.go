package requirements

// Canonical education level labels. Applicant records use the same strings for
// their highest attained level.
const (
	LevelHighSchool = "High School Diploma"
	LevelAssociate  = "Associate's Degree"
	LevelBachelor   = "Bachelor's Degree"
	LevelMaster     = "Master's Degree"
	LevelPhD        = "Ph.D."
	LevelJD         = "Juris Doctor (J.D)"
)

// EducationTerm maps a term found in job text to a canonical education level.
type EducationTerm struct {
	Term       string
	Level      string
	Importance int
}

// ExperienceTerm is a generic seniority word with the years it usually implies.
type ExperienceTerm struct {
	Term       string
	Years      int
	Importance int
}

// RoleTerm is a generic job-role keyword.
type RoleTerm struct {
	Term       string
	Importance int
}

var skillVocabulary = []string{
	"JavaScript", "TypeScript", "React", "Angular", "Vue", "Node", "Express",
	"Python", "Java", "C#", ".NET", "PHP", "Ruby", "SQL", "MongoDB", "PostgreSQL",
	"AWS", "Azure", "DevOps", "Docker", "Kubernetes", "CI/CD", "Git", "Redux",
	"REST", "API", "GraphQL", "HTML", "CSS", "Sass", "LESS", "Webpack", "Babel",
	"Jest", "Testing", "Agile", "Scrum", "Project Management", "UI/UX", "Design",
	"Responsive", "Mobile", "Analytics", "SEO", "Performance", "Security",
	"Microservices", "Architecture", "Cloud", "Serverless", "Next.js", "Laravel",
	"Django", "Flask", "Spring", "Bootstrap", "Tailwind", "Material UI",
	"Communication", "Leadership", "Problem Solving", "Critical Thinking",
	"Data Analysis", "Machine Learning", "AI", "Big Data", "Blockchain", "Cryptocurrency",
}

var educationTerms = []EducationTerm{
	{Term: "bachelor", Level: LevelBachelor, Importance: 6},
	{Term: "master", Level: LevelMaster, Importance: 8},
	{Term: "phd", Level: LevelPhD, Importance: 10},
	{Term: "associate", Level: LevelAssociate, Importance: 4},
	{Term: "juris doctor", Level: LevelJD, Importance: 9},
	{Term: "j.d.", Level: LevelJD, Importance: 9},
	{Term: "law degree", Level: LevelJD, Importance: 9},
	{Term: "mba", Level: LevelMaster, Importance: 8},
	{Term: "high school", Level: LevelHighSchool, Importance: 2},
}

var experienceTerms = []ExperienceTerm{
	{Term: "entry level", Years: 0, Importance: 3},
	{Term: "junior", Years: 1, Importance: 4},
	{Term: "mid level", Years: 3, Importance: 6},
	{Term: "senior", Years: 5, Importance: 8},
	{Term: "lead", Years: 7, Importance: 9},
	{Term: "manager", Years: 5, Importance: 7},
	{Term: "director", Years: 8, Importance: 9},
	{Term: "executive", Years: 10, Importance: 10},
}

var roleTerms = []RoleTerm{
	{Term: "developer", Importance: 7},
	{Term: "engineer", Importance: 7},
	{Term: "designer", Importance: 7},
	{Term: "manager", Importance: 7},
	{Term: "analyst", Importance: 6},
	{Term: "consultant", Importance: 6},
	{Term: "specialist", Importance: 5},
	{Term: "administrator", Importance: 5},
	{Term: "architect", Importance: 8},
	{Term: "scientist", Importance: 8},
	{Term: "attorney", Importance: 9},
	{Term: "lawyer", Importance: 9},
	{Term: "legal", Importance: 8},
}

// SkillVocabulary returns a copy of the skill labels the extractor looks for.
func SkillVocabulary() []string {
	return append([]string(nil), skillVocabulary...)
}

// EducationTerms returns a copy of the education detection table.
func EducationTerms() []EducationTerm {
	return append([]EducationTerm(nil), educationTerms...)
}

// ExperienceTerms returns a copy of the experience-level detection table.
func ExperienceTerms() []ExperienceTerm {
	return append([]ExperienceTerm(nil), experienceTerms...)
}

// RoleTerms returns a copy of the role keyword table.
func RoleTerms() []RoleTerm {
	return append([]RoleTerm(nil), roleTerms...)
}
