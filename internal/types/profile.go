// Package types provides type definitions for the transient records collected from users and exchanged with the LLM.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Proficiency is the self-assessed level attached to a skill or knowledge area.
type Proficiency string

// Proficiency vocabulary accepted by the skill grammars.
const (
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyExpert       Proficiency = "expert"
)

// Proficiencies lists the accepted proficiency values in ascending order.
func Proficiencies() []Proficiency {
	return []Proficiency{ProficiencyBeginner, ProficiencyIntermediate, ProficiencyAdvanced, ProficiencyExpert}
}

// ParseProficiency matches s case-insensitively against the proficiency vocabulary.
func ParseProficiency(s string) (Proficiency, bool) {
	p := Proficiency(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Proficiencies() {
		if p == known {
			return p, true
		}
	}
	return "", false
}

// SkillLevel is the three-step level used for courses, learning goals and career experience.
type SkillLevel string

// SkillLevel values. Unknown input falls back to LevelIntermediate.
const (
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
)

// SkillLevels lists the levels in the order used by numeric menus (0, 1, 2).
func SkillLevels() []SkillLevel {
	return []SkillLevel{LevelBeginner, LevelIntermediate, LevelAdvanced}
}

// NormalizeSkillLevel returns the matching level, or LevelIntermediate when s is not recognized.
func NormalizeSkillLevel(s string) SkillLevel {
	l := SkillLevel(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range SkillLevels() {
		if l == known {
			return l
		}
	}
	return LevelIntermediate
}

// SkillEntry is one technical or soft skill. Optional fields are omitted from JSON when unset.
type SkillEntry struct {
	Skill            string      `json:"skill" validate:"required"`
	YearsExperience  *float64    `json:"years_experience,omitempty" validate:"omitempty,gte=0"`
	ProficiencyLevel Proficiency `json:"proficiency_level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced expert"`
}

// KnowledgeEntry is one industry knowledge area.
type KnowledgeEntry struct {
	KnowledgeArea    string      `json:"knowledge_area" validate:"required"`
	YearsExperience  *float64    `json:"years_experience,omitempty" validate:"omitempty,gte=0"`
	ProficiencyLevel Proficiency `json:"proficiency_level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced expert"`
}

// SkillsProfile groups everything the skills assessment collects.
// Duplicate names are allowed in every list.
type SkillsProfile struct {
	TechnicalSkills   []SkillEntry     `json:"technical_skills"`
	SoftSkills        []SkillEntry     `json:"soft_skills"`
	IndustryKnowledge []KnowledgeEntry `json:"industry_knowledge"`
}

// NewSkillsProfile returns a profile whose lists marshal as [] rather than null.
func NewSkillsProfile() *SkillsProfile {
	return &SkillsProfile{
		TechnicalSkills:   []SkillEntry{},
		SoftSkills:        []SkillEntry{},
		IndustryKnowledge: []KnowledgeEntry{},
	}
}

// ExperienceEntry is a single work history line. Years is kept as typed by the user.
type ExperienceEntry struct {
	Company string `json:"company" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Years   string `json:"years" validate:"required"`
}

// ProfileInput is the free-form profile handed to the extraction prompt,
// collected manually or seeded from a LinkedIn profile.
type ProfileInput struct {
	Name       string            `json:"name,omitempty"`
	Headline   string            `json:"headline,omitempty"`
	Skills     []string          `json:"skills"`
	Experience []ExperienceEntry `json:"experience"`
}

// NewProfileInput returns an empty profile with non-nil lists.
func NewProfileInput() *ProfileInput {
	return &ProfileInput{
		Skills:     []string{},
		Experience: []ExperienceEntry{},
	}
}

// IsEmpty reports whether no skills and no experience were collected.
func (p *ProfileInput) IsEmpty() bool {
	return p == nil || (len(p.Skills) == 0 && len(p.Experience) == 0)
}
