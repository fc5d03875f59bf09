package intake

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/career-advisor/internal/types"
)

var validate = validator.New()

// ExperienceFormatMessage is shown for experience lines that do not have three fields.
const ExperienceFormatMessage = "Invalid format. Please use 'Company | Title | Years'"

// tokenize splits a line on whitespace. A double-quoted token may contain spaces.
func tokenize(line string) ([]string, error) {
	var tokens []string
	var current strings.Builder
	inQuotes, quoted := false, false

	flush := func() {
		if current.Len() > 0 || quoted {
			tokens = append(tokens, current.String())
		}
		current.Reset()
		quoted = false
	}

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			quoted = true
		case !inQuotes && (r == ' ' || r == '\t'):
			flush()
		default:
			current.WriteRune(r)
		}
	}
	if inQuotes {
		return nil, &EntryError{Input: line, Message: "unterminated quote"}
	}
	flush()
	return tokens, nil
}

// attributes is the optional tail of a skill or knowledge line.
type attributes struct {
	years *float64
	level types.Proficiency
}

func parseYears(token string) (*float64, bool) {
	years, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(years) || math.IsInf(years, 0) {
		return nil, false
	}
	return &years, true
}

// parseNamed parses `name [years] [proficiency]`, or `name [proficiency]` when
// allowYears is false.
func parseNamed(line string, allowYears bool) (string, attributes, error) {
	var attrs attributes

	tokens, err := tokenize(line)
	if err != nil {
		return "", attrs, err
	}
	if len(tokens) == 0 || strings.TrimSpace(tokens[0]) == "" {
		return "", attrs, &EntryError{Input: line, Message: "a name is required"}
	}
	name, rest := tokens[0], tokens[1:]

	if len(rest) > 0 && allowYears {
		if years, ok := parseYears(rest[0]); ok {
			if *years < 0 {
				return "", attrs, &EntryError{Input: line, Message: "years of experience cannot be negative"}
			}
			attrs.years = years
			rest = rest[1:]
		}
	}
	if len(rest) > 0 {
		level, ok := types.ParseProficiency(rest[0])
		if !ok {
			return "", attrs, &EntryError{
				Input:   line,
				Message: fmt.Sprintf("unexpected %q; use a proficiency (beginner, intermediate, advanced, expert) or quote multi-word names", rest[0]),
			}
		}
		attrs.level = level
		rest = rest[1:]
	}
	if len(rest) > 0 {
		return "", attrs, &EntryError{Input: line, Message: fmt.Sprintf("unexpected %q after the proficiency level", rest[0])}
	}
	return name, attrs, nil
}

func check(line string, entry any) error {
	err := validate.Struct(entry)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &EntryError{Input: line, Message: fmt.Sprintf("%s fails the %q rule", fieldErrs[0].Field(), fieldErrs[0].Tag())}
	}
	return &EntryError{Input: line, Message: "invalid entry", Cause: err}
}

// ParseSkill parses a technical skill line: `name [years] [proficiency]`.
func ParseSkill(line string) (types.SkillEntry, error) {
	name, attrs, err := parseNamed(line, true)
	if err != nil {
		return types.SkillEntry{}, err
	}
	entry := types.SkillEntry{Skill: name, YearsExperience: attrs.years, ProficiencyLevel: attrs.level}
	if err := check(line, entry); err != nil {
		return types.SkillEntry{}, err
	}
	return entry, nil
}

// ParseSoftSkill parses a soft skill line: `name [proficiency]`.
func ParseSoftSkill(line string) (types.SkillEntry, error) {
	name, attrs, err := parseNamed(line, false)
	if err != nil {
		return types.SkillEntry{}, err
	}
	entry := types.SkillEntry{Skill: name, ProficiencyLevel: attrs.level}
	if err := check(line, entry); err != nil {
		return types.SkillEntry{}, err
	}
	return entry, nil
}

// ParseKnowledge parses an industry knowledge line: `area [years] [proficiency]`.
func ParseKnowledge(line string) (types.KnowledgeEntry, error) {
	name, attrs, err := parseNamed(line, true)
	if err != nil {
		return types.KnowledgeEntry{}, err
	}
	entry := types.KnowledgeEntry{KnowledgeArea: name, YearsExperience: attrs.years, ProficiencyLevel: attrs.level}
	if err := check(line, entry); err != nil {
		return types.KnowledgeEntry{}, err
	}
	return entry, nil
}

// ParseExperience parses `Company | Title | Years`. Years is kept as entered.
func ParseExperience(line string) (types.ExperienceEntry, error) {
	fields := strings.Split(line, "|")
	if len(fields) != 3 {
		return types.ExperienceEntry{}, &EntryError{Input: line, Message: ExperienceFormatMessage}
	}
	entry := types.ExperienceEntry{
		Company: strings.TrimSpace(fields[0]),
		Title:   strings.TrimSpace(fields[1]),
		Years:   strings.TrimSpace(fields[2]),
	}
	if err := validate.Struct(entry); err != nil {
		return types.ExperienceEntry{}, &EntryError{Input: line, Message: ExperienceFormatMessage, Cause: err}
	}
	return entry, nil
}

// ParseList splits a comma-separated line, dropping empty items.
func ParseList(line string) []string {
	items := []string{}
	for _, item := range strings.Split(line, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Describe renders an entry the way collectors confirm it, e.g. `Python (3 yrs, advanced)`.
func Describe(name string, years *float64, level types.Proficiency) string {
	var details []string
	if years != nil {
		details = append(details, strconv.FormatFloat(*years, 'f', -1, 64)+" yrs")
	}
	if level != "" {
		details = append(details, string(level))
	}
	if len(details) == 0 {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, strings.Join(details, ", "))
}
