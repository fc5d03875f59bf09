//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProficiency(t *testing.T) {
	tests := []struct {
		input string
		want  Proficiency
		ok    bool
	}{
		{"advanced", ProficiencyAdvanced, true},
		{"EXPERT", ProficiencyExpert, true},
		{"  Beginner ", ProficiencyBeginner, true},
		{"guru", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseProficiency(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeSkillLevel_DefaultsToIntermediate(t *testing.T) {
	assert.Equal(t, LevelAdvanced, NormalizeSkillLevel("Advanced"))
	assert.Equal(t, LevelBeginner, NormalizeSkillLevel("beginner"))
	assert.Equal(t, LevelIntermediate, NormalizeSkillLevel("expert"))
	assert.Equal(t, LevelIntermediate, NormalizeSkillLevel(""))
}

func TestSkillEntry_JSONOmitsOptionalFields(t *testing.T) {
	data, err := json.Marshal(SkillEntry{Skill: "Communication"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"skill":"Communication"}`, string(data))

	years := 3.0
	data, err = json.Marshal(SkillEntry{Skill: "Python", YearsExperience: &years, ProficiencyLevel: ProficiencyAdvanced})
	require.NoError(t, err)
	assert.JSONEq(t, `{"skill":"Python","years_experience":3,"proficiency_level":"advanced"}`, string(data))
}

func TestSkillEntry_Validation(t *testing.T) {
	validate := validator.New()
	negative := -1.0

	assert.NoError(t, validate.Struct(SkillEntry{Skill: "Go"}))
	assert.Error(t, validate.Struct(SkillEntry{}))
	assert.Error(t, validate.Struct(SkillEntry{Skill: "Go", YearsExperience: &negative}))
	assert.Error(t, validate.Struct(SkillEntry{Skill: "Go", ProficiencyLevel: "guru"}))
}

func TestNewSkillsProfile_MarshalsEmptyLists(t *testing.T) {
	data, err := json.Marshal(NewSkillsProfile())
	require.NoError(t, err)
	assert.JSONEq(t, `{"technical_skills":[],"soft_skills":[],"industry_knowledge":[]}`, string(data))
}

func TestProfileInput_IsEmpty(t *testing.T) {
	var nilProfile *ProfileInput
	assert.True(t, nilProfile.IsEmpty())
	assert.True(t, NewProfileInput().IsEmpty())

	p := NewProfileInput()
	p.Skills = append(p.Skills, "Go")
	assert.False(t, p.IsEmpty())
}
