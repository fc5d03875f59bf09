package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-advisor/internal/types"
)

func TestQuestionnaire(t *testing.T) {
	p, out := scripted(
		"Data Science",
		"5", "0",
		"hands-on projects",
		"perhaps", "yes",
		"3",
		"0", "12",
	)

	q, err := Questionnaire(p)
	require.NoError(t, err)

	assert.Equal(t, types.CourseQuestionnaire{
		LearningGoal:    "Data Science",
		LearningLevel:   types.LevelBeginner,
		Expectations:    "hands-on projects",
		CareerPursuit:   true,
		Occupation:      types.OccupationBusinessOwner,
		CompletionWeeks: 12,
	}, q)
	assert.Contains(t, out.String(), "   3 - Business Owner")
	assert.Contains(t, out.String(), "Please enter 0, 1, or 2.")
	assert.Contains(t, out.String(), "Please enter yes or no.")
	assert.Contains(t, out.String(), "Please enter a positive number.")
}

func TestQuestionnaire_Interrupted(t *testing.T) {
	p, _ := scripted("Data Science")

	_, err := Questionnaire(p)
	assert.ErrorIs(t, err, ErrInterrupted)
}

func TestAskSkillsMode(t *testing.T) {
	p, _ := scripted("1")
	mode, err := AskSkillsMode(p)
	require.NoError(t, err)
	assert.Equal(t, ModeDetailed, mode)

	p, _ = scripted("whatever")
	mode, err = AskSkillsMode(p)
	require.NoError(t, err)
	assert.Equal(t, ModeQuick, mode)
}

func TestDetailedSkills(t *testing.T) {
	p, out := scripted(
		"Python 3 advanced",
		"Machine Learning",
		`"Machine Learning" 1`,
		"Python",
		"DONE",
		"Communication",
		"done",
		"Healthcare 5 expert",
		"done",
	)

	profile, err := DetailedSkills(p)
	require.NoError(t, err)

	assert.Equal(t, []types.SkillEntry{
		{Skill: "Python", YearsExperience: ptr(3), ProficiencyLevel: types.ProficiencyAdvanced},
		{Skill: "Machine Learning", YearsExperience: ptr(1)},
		{Skill: "Python"},
	}, profile.TechnicalSkills)
	assert.Equal(t, []types.SkillEntry{{Skill: "Communication"}}, profile.SoftSkills)
	assert.Equal(t, []types.KnowledgeEntry{
		{KnowledgeArea: "Healthcare", YearsExperience: ptr(5), ProficiencyLevel: types.ProficiencyExpert},
	}, profile.IndustryKnowledge)

	assert.Contains(t, out.String(), "Added: Python (3 yrs, advanced)")
	assert.Contains(t, out.String(), `Invalid entry: unexpected "Learning"`)
}

func TestQuickSkills(t *testing.T) {
	p, out := scripted(
		"Python, Go, ",
		"y",
		"3", "ADVANCED",
		"lots", "",
		"Communication, Leadership",
		"Fintech",
		"n",
	)

	profile, err := QuickSkills(p)
	require.NoError(t, err)

	assert.Equal(t, []types.SkillEntry{
		{Skill: "Python", YearsExperience: ptr(3), ProficiencyLevel: types.ProficiencyAdvanced},
		{Skill: "Go"},
	}, profile.TechnicalSkills)
	assert.Len(t, profile.SoftSkills, 2)
	assert.Equal(t, []types.KnowledgeEntry{{KnowledgeArea: "Fintech"}}, profile.IndustryKnowledge)
	assert.Contains(t, out.String(), "Added 2 technical skills.")
	assert.Contains(t, out.String(), "Invalid input, skipping years of experience.")
	assert.Contains(t, out.String(), "Added 1 knowledge areas.")
}

func TestCompletedCourses(t *testing.T) {
	p, _ := scripted(
		"Intro to ML", "Coursera", "expert", "regression, trees,",
		"", "Go Basics", "", "Beginner", "",
		"done",
	)

	courses, err := CompletedCourses(p)
	require.NoError(t, err)
	assert.Equal(t, []types.CompletedCourse{
		{Name: "Intro to ML", Platform: "Coursera", SkillLevel: types.LevelIntermediate, Topics: []string{"regression", "trees"}},
		{Name: "Go Basics", Platform: "", SkillLevel: types.LevelBeginner, Topics: []string{}},
	}, courses)
}

func TestCompletedCourses_NoneEntered(t *testing.T) {
	p, _ := scripted("done")

	courses, err := CompletedCourses(p)
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestCareerInfo(t *testing.T) {
	p, _ := scripted("Backend", "senior")

	info, err := CareerInfo(p)
	require.NoError(t, err)
	assert.Equal(t, types.CareerInfo{Field: "Backend", ExperienceLevel: types.LevelIntermediate}, info)
}

func TestTargetField(t *testing.T) {
	p, out := scripted("Data Engineering")

	field, err := TargetField(p)
	require.NoError(t, err)
	assert.Equal(t, "Data Engineering", field)
	assert.Contains(t, out.String(), "===== CAREER GOAL =====")
}

func TestManualProfile(t *testing.T) {
	p, out := scripted(
		"Go", "Kubernetes", "",
		"Google | Software Engineer | 2.5",
		"Acme - CTO - 4",
		"Acme | CTO | 4",
		"",
	)

	seed := &types.ProfileInput{Name: "Ada Lovelace", Headline: "Engineer"}
	profile, err := ManualProfile(p, seed)
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", profile.Name)
	assert.Equal(t, "Engineer", profile.Headline)
	assert.Equal(t, []string{"Go", "Kubernetes"}, profile.Skills)
	assert.Equal(t, []types.ExperienceEntry{
		{Company: "Google", Title: "Software Engineer", Years: "2.5"},
		{Company: "Acme", Title: "CTO", Years: "4"},
	}, profile.Experience)
	assert.Contains(t, out.String(), ExperienceFormatMessage)
}

func TestManualProfile_Empty(t *testing.T) {
	p, _ := scripted("", "")

	profile, err := ManualProfile(p, nil)
	require.NoError(t, err)
	assert.True(t, profile.IsEmpty())
}
