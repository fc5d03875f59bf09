//nolint:revive // types is a standard Go package name pattern
package types

// Occupation is the current occupation picked from the questionnaire menu.
type Occupation string

// Occupation menu entries, in menu order.
const (
	OccupationStudent       Occupation = "student"
	OccupationProfessional  Occupation = "professional"
	OccupationUnemployed    Occupation = "unemployed"
	OccupationBusinessOwner Occupation = "business owner"
)

// Occupations lists the menu entries in display order.
func Occupations() []Occupation {
	return []Occupation{OccupationStudent, OccupationProfessional, OccupationUnemployed, OccupationBusinessOwner}
}

// CourseQuestionnaire holds the answers to the six course recommendation questions.
type CourseQuestionnaire struct {
	LearningGoal    string     `json:"learning_goal" validate:"required"`
	LearningLevel   SkillLevel `json:"learning_level" validate:"required,oneof=beginner intermediate advanced"`
	Expectations    string     `json:"expectations"`
	CareerPursuit   bool       `json:"career_pursuit"`
	Occupation      Occupation `json:"occupation" validate:"required"`
	CompletionWeeks int        `json:"completion_time" validate:"gt=0"`
}

// CompletedCourse is one course the user has already finished.
type CompletedCourse struct {
	Name       string     `json:"name" validate:"required"`
	Platform   string     `json:"platform"`
	SkillLevel SkillLevel `json:"skill_level"`
	Topics     []string   `json:"topics"`
}

// CareerInfo is the field and experience level used to pitch project difficulty.
type CareerInfo struct {
	Field           string     `json:"field"`
	ExperienceLevel SkillLevel `json:"experience_level"`
}
