package intake

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-advisor/internal/types"
)

func ptr(f float64) *float64 { return &f }

func TestParseSkill(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    types.SkillEntry
		wantErr string
	}{
		{
			name:  "name years proficiency",
			input: "Python 3 advanced",
			want:  types.SkillEntry{Skill: "Python", YearsExperience: ptr(3), ProficiencyLevel: types.ProficiencyAdvanced},
		},
		{
			name:  "name only",
			input: "Communication",
			want:  types.SkillEntry{Skill: "Communication"},
		},
		{
			name:  "name and fractional years",
			input: "Go 2.5",
			want:  types.SkillEntry{Skill: "Go", YearsExperience: ptr(2.5)},
		},
		{
			name:  "name and proficiency, case-insensitive",
			input: "Docker EXPERT",
			want:  types.SkillEntry{Skill: "Docker", ProficiencyLevel: types.ProficiencyExpert},
		},
		{
			name:  "quoted multi-word name",
			input: `"Machine Learning" 2 intermediate`,
			want:  types.SkillEntry{Skill: "Machine Learning", YearsExperience: ptr(2), ProficiencyLevel: types.ProficiencyIntermediate},
		},
		{
			name:  "extra whitespace",
			input: "  Rust \t 1   beginner ",
			want:  types.SkillEntry{Skill: "Rust", YearsExperience: ptr(1), ProficiencyLevel: types.ProficiencyBeginner},
		},
		{
			name:    "unquoted multi-word name is rejected",
			input:   "Machine Learning",
			wantErr: `unexpected "Learning"`,
		},
		{
			name:    "unknown proficiency after years",
			input:   "Python 3 guru",
			wantErr: `unexpected "guru"`,
		},
		{
			name:    "negative years",
			input:   "Python -1",
			wantErr: "cannot be negative",
		},
		{
			name:    "trailing token",
			input:   "Python 3 advanced extra",
			wantErr: `unexpected "extra" after the proficiency level`,
		},
		{
			name:    "unterminated quote",
			input:   `"Machine Learning 2`,
			wantErr: "unterminated quote",
		},
		{
			name:    "empty quoted name",
			input:   `"" 2`,
			wantErr: "a name is required",
		},
		{
			name:    "NaN is not a number of years",
			input:   "Python NaN",
			wantErr: `unexpected "NaN"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSkill(tt.input)
			if tt.wantErr != "" {
				var entryErr *EntryError
				require.ErrorAs(t, err, &entryErr)
				assert.Contains(t, entryErr.Error(), tt.wantErr)
				assert.Equal(t, tt.input, entryErr.Input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSkill_OptionalFieldsOmittedFromJSON(t *testing.T) {
	entry, err := ParseSkill("Communication")
	require.NoError(t, err)

	data, err := json.Marshal(entry)
	require.NoError(t, err)
	assert.JSONEq(t, `{"skill": "Communication"}`, string(data))

	entry, err = ParseSkill("Python 3 advanced")
	require.NoError(t, err)
	data, err = json.Marshal(entry)
	require.NoError(t, err)
	assert.JSONEq(t, `{"skill": "Python", "years_experience": 3.0, "proficiency_level": "advanced"}`, string(data))
}

func TestParseSoftSkill(t *testing.T) {
	entry, err := ParseSoftSkill("Leadership Advanced")
	require.NoError(t, err)
	assert.Equal(t, types.SkillEntry{Skill: "Leadership", ProficiencyLevel: types.ProficiencyAdvanced}, entry)

	entry, err = ParseSoftSkill(`"Public Speaking"`)
	require.NoError(t, err)
	assert.Equal(t, "Public Speaking", entry.Skill)

	_, err = ParseSoftSkill("Teamwork 3")
	assert.ErrorContains(t, err, `unexpected "3"`)
}

func TestParseKnowledge(t *testing.T) {
	entry, err := ParseKnowledge("Healthcare 5 expert")
	require.NoError(t, err)
	assert.Equal(t, types.KnowledgeEntry{KnowledgeArea: "Healthcare", YearsExperience: ptr(5), ProficiencyLevel: types.ProficiencyExpert}, entry)

	entry, err = ParseKnowledge(`"Digital Marketing"`)
	require.NoError(t, err)
	assert.Equal(t, types.KnowledgeEntry{KnowledgeArea: "Digital Marketing"}, entry)
}

func TestParseExperience(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    types.ExperienceEntry
		wantErr bool
	}{
		{
			name:  "three fields",
			input: "Google | Software Engineer | 2.5",
			want:  types.ExperienceEntry{Company: "Google", Title: "Software Engineer", Years: "2.5"},
		},
		{
			name:  "years kept as typed",
			input: "Acme|CTO|about 4",
			want:  types.ExperienceEntry{Company: "Acme", Title: "CTO", Years: "about 4"},
		},
		{name: "two fields", input: "Google | Engineer", wantErr: true},
		{name: "four fields", input: "a | b | c | d", wantErr: true},
		{name: "empty field", input: "Google |  | 2", wantErr: true},
		{name: "no separators", input: "Google Engineer 2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseExperience(tt.input)
			if tt.wantErr {
				var entryErr *EntryError
				require.ErrorAs(t, err, &entryErr)
				assert.Equal(t, ExperienceFormatMessage, entryErr.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseList(t *testing.T) {
	assert.Equal(t, []string{"Python", "Go", "SQL"}, ParseList(" Python, Go,,SQL , "))
	assert.Empty(t, ParseList(""))
	assert.NotNil(t, ParseList(""))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "Python (3 yrs, advanced)", Describe("Python", ptr(3), types.ProficiencyAdvanced))
	assert.Equal(t, "Go (2.5 yrs)", Describe("Go", ptr(2.5), ""))
	assert.Equal(t, "Teamwork", Describe("Teamwork", nil, ""))
}
