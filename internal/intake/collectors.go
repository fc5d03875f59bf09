package intake

import (
	"errors"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jonathan/career-advisor/internal/types"
)

// SkillsMode selects how the skills assessment is entered.
type SkillsMode int

// Skills input modes offered by AskSkillsMode.
const (
	ModeDetailed SkillsMode = iota + 1
	ModeQuick
)

// Questionnaire asks the six course recommendation questions.
func Questionnaire(p *Prompter) (types.CourseQuestionnaire, error) {
	var q types.CourseQuestionnaire
	p.Println("\n===== COURSE RECOMMENDATION SYSTEM =====")
	p.Println()

	var err error
	if q.LearningGoal, err = p.Ask("1. What do you want to learn? "); err != nil {
		return q, err
	}

	levelIndex, err := p.AskIndex(
		"2. How much do you want to learn? (0 for beginner, 1 for intermediate, 2 for advanced) ",
		len(types.SkillLevels()),
		"Please enter 0, 1, or 2.",
		"Please enter a valid number (0, 1, or 2).",
	)
	if err != nil {
		return q, err
	}
	q.LearningLevel = types.SkillLevels()[levelIndex]

	if q.Expectations, err = p.Ask("3. What are your expectations from this course? "); err != nil {
		return q, err
	}

	if q.CareerPursuit, err = p.AskYesNo("4. Are you planning to pursue your career in the selected field? (yes/no) "); err != nil {
		return q, err
	}

	p.Println("5. Current Occupation:")
	occupations := types.Occupations()
	titles := make([]string, len(occupations))
	caser := cases.Title(language.English)
	for i, o := range occupations {
		titles[i] = caser.String(string(o))
	}
	occupationIndex, err := p.AskChoice("   Enter the number that best describes your occupation: ", titles)
	if err != nil {
		return q, err
	}
	q.Occupation = occupations[occupationIndex]

	if q.CompletionWeeks, err = p.AskPositiveInt("6. How many weeks are you willing to spend to complete this course? "); err != nil {
		return q, err
	}
	return q, nil
}

// AskSkillsMode offers detailed or quick skills entry. Anything but "1" picks quick entry.
func AskSkillsMode(p *Prompter) (SkillsMode, error) {
	p.Println("\nHow would you like to enter your skills?")
	p.Println("1. Detailed input (one by one)")
	p.Println("2. Quick input (comma-separated lists)")
	choice, err := p.Ask("Enter your choice (1 or 2): ")
	if err != nil {
		return 0, err
	}
	if choice == "1" {
		return ModeDetailed, nil
	}
	return ModeQuick, nil
}

// collectEntries reads "> " lines until done, parsing each with parse.
// Lines that fail to parse are reported and skipped.
func collectEntries[T any](p *Prompter, parse func(string) (T, error), describe func(T) string) ([]T, error) {
	entries := []T{}
	for {
		line, err := p.Ask("> ")
		if err != nil {
			return nil, err
		}
		if IsDone(line) {
			return entries, nil
		}
		if line == "" {
			continue
		}

		entry, err := parse(line)
		if err != nil {
			var entryErr *EntryError
			if !errors.As(err, &entryErr) {
				return nil, err
			}
			p.Printf("Invalid entry: %s. Please try again.\n", entryErr.Message)
			continue
		}
		entries = append(entries, entry)
		p.Printf("Added: %s\n", describe(entry))
	}
}

func describeSkill(e types.SkillEntry) string {
	return Describe(e.Skill, e.YearsExperience, e.ProficiencyLevel)
}

func describeKnowledge(e types.KnowledgeEntry) string {
	return Describe(e.KnowledgeArea, e.YearsExperience, e.ProficiencyLevel)
}

// DetailedSkills collects skills one entry per line using the skill grammars.
func DetailedSkills(p *Prompter) (*types.SkillsProfile, error) {
	profile := types.NewSkillsProfile()
	p.Println("\n===== SKILLS ASSESSMENT =====")
	p.Println()

	p.Println("TECHNICAL SKILLS:")
	p.Println("Enter your technical skills one by one (e.g., Python, JavaScript, Docker)")
	p.Println("For each skill, you can optionally add years of experience and proficiency level.")
	p.Println("Format: skill_name [years_experience] [proficiency_level]")
	p.Println(`Example: Python 3 advanced, or "Machine Learning" 2 intermediate`)
	p.Println("Type 'done' when finished with technical skills.")
	technical, err := collectEntries(p, ParseSkill, describeSkill)
	if err != nil {
		return nil, err
	}
	profile.TechnicalSkills = technical

	p.Println("\nSOFT SKILLS:")
	p.Println("Enter your soft skills one by one (e.g., Communication, Leadership, Teamwork)")
	p.Println("Format: skill_name [proficiency_level]")
	p.Println("Example: Communication advanced")
	p.Println("Type 'done' when finished with soft skills.")
	soft, err := collectEntries(p, ParseSoftSkill, describeSkill)
	if err != nil {
		return nil, err
	}
	profile.SoftSkills = soft

	p.Println("\nINDUSTRY KNOWLEDGE:")
	p.Println("Enter your industry knowledge areas one by one (e.g., Healthcare, Fintech, Digital Marketing)")
	p.Println("Format: knowledge_area [years_experience] [proficiency_level]")
	p.Println(`Example: Healthcare 5 expert, or "Digital Marketing" 2`)
	p.Println("Type 'done' when finished with industry knowledge.")
	knowledge, err := collectEntries(p, ParseKnowledge, describeKnowledge)
	if err != nil {
		return nil, err
	}
	profile.IndustryKnowledge = knowledge

	return profile, nil
}

// askDetails asks for the optional years and proficiency of one quick-entry item.
func askDetails(p *Prompter, name string) (*float64, types.Proficiency, error) {
	p.Printf("\nFor %s:\n", name)

	var years *float64
	answer, err := p.Ask("Years of experience (press Enter to skip): ")
	if err != nil {
		return nil, "", err
	}
	if answer != "" {
		if parsed, ok := parseYears(answer); ok && *parsed >= 0 {
			years = parsed
		} else {
			p.Println("Invalid input, skipping years of experience.")
		}
	}

	answer, err = p.Ask("Proficiency level (beginner/intermediate/advanced/expert, press Enter to skip): ")
	if err != nil {
		return nil, "", err
	}
	level, _ := types.ParseProficiency(answer)
	return years, level, nil
}

// QuickSkills collects comma-separated lists, then optional details per item.
func QuickSkills(p *Prompter) (*types.SkillsProfile, error) {
	profile := types.NewSkillsProfile()
	p.Println("\n===== QUICK SKILLS INPUT =====")
	p.Println("This method lets you add multiple skills at once, separated by commas.")

	p.Println("\nTECHNICAL SKILLS (comma-separated):")
	line, err := p.Ask("> ")
	if err != nil {
		return nil, err
	}
	for _, name := range ParseList(line) {
		profile.TechnicalSkills = append(profile.TechnicalSkills, types.SkillEntry{Skill: name})
	}
	p.Printf("Added %d technical skills.\n", len(profile.TechnicalSkills))

	more, err := p.Confirm("\nWould you like to add experience years and proficiency for these skills? (y/n): ")
	if err != nil {
		return nil, err
	}
	if more {
		for i := range profile.TechnicalSkills {
			entry := &profile.TechnicalSkills[i]
			if entry.YearsExperience, entry.ProficiencyLevel, err = askDetails(p, entry.Skill); err != nil {
				return nil, err
			}
		}
	}

	p.Println("\nSOFT SKILLS (comma-separated):")
	if line, err = p.Ask("> "); err != nil {
		return nil, err
	}
	for _, name := range ParseList(line) {
		profile.SoftSkills = append(profile.SoftSkills, types.SkillEntry{Skill: name})
	}
	p.Printf("Added %d soft skills.\n", len(profile.SoftSkills))

	p.Println("\nINDUSTRY KNOWLEDGE (comma-separated):")
	if line, err = p.Ask("> "); err != nil {
		return nil, err
	}
	for _, name := range ParseList(line) {
		profile.IndustryKnowledge = append(profile.IndustryKnowledge, types.KnowledgeEntry{KnowledgeArea: name})
	}
	p.Printf("Added %d knowledge areas.\n", len(profile.IndustryKnowledge))

	more, err = p.Confirm("\nWould you like to add experience years and proficiency for these knowledge areas? (y/n): ")
	if err != nil {
		return nil, err
	}
	if more {
		for i := range profile.IndustryKnowledge {
			entry := &profile.IndustryKnowledge[i]
			if entry.YearsExperience, entry.ProficiencyLevel, err = askDetails(p, entry.KnowledgeArea); err != nil {
				return nil, err
			}
		}
	}

	return profile, nil
}

// TargetField asks which field the skills path should aim at.
func TargetField(p *Prompter) (string, error) {
	p.Println("\n===== CAREER GOAL =====")
	return p.Ask("What field would you like to explore or advance in? ")
}

// CompletedCourses collects finished courses until the name "done" is entered.
func CompletedCourses(p *Prompter) ([]types.CompletedCourse, error) {
	p.Println("\n===== COMPLETED COURSES =====")
	p.Println()
	p.Println("Enter details about the courses you've completed.")

	courses := []types.CompletedCourse{}
	for {
		p.Println("\nEnter course details (or type 'done' to finish):")
		name, err := p.Ask("Course name: ")
		if err != nil {
			return nil, err
		}
		if IsDone(name) {
			return courses, nil
		}
		if name == "" {
			p.Println("Please enter a course name.")
			continue
		}

		course := types.CompletedCourse{Name: name}
		if course.Platform, err = p.Ask("Platform/Provider (e.g., Coursera, Udemy): "); err != nil {
			return nil, err
		}
		if course.SkillLevel, err = p.AskLevel("Skill level (beginner/intermediate/advanced): "); err != nil {
			return nil, err
		}
		topics, err := p.Ask("Main topics covered (comma-separated): ")
		if err != nil {
			return nil, err
		}
		course.Topics = ParseList(topics)

		courses = append(courses, course)
		p.Printf("Added: %s\n", name)
	}
}

// CareerInfo asks for the field and experience level used to pitch projects.
func CareerInfo(p *Prompter) (types.CareerInfo, error) {
	var info types.CareerInfo
	p.Println("\n===== CAREER INFORMATION =====")

	var err error
	if info.Field, err = p.Ask("What field are you working in or aiming for? "); err != nil {
		return info, err
	}
	if info.ExperienceLevel, err = p.AskLevel("Your experience level (beginner/intermediate/advanced): "); err != nil {
		return info, err
	}
	return info, nil
}

// ManualProfile collects skills and work experience until blank lines.
// seed, when non-nil, carries the name and headline from a LinkedIn profile.
func ManualProfile(p *Prompter, seed *types.ProfileInput) (*types.ProfileInput, error) {
	profile := types.NewProfileInput()
	if seed != nil {
		profile.Name = seed.Name
		profile.Headline = seed.Headline
	}

	p.Println("\n--- Please enter your profile information manually ---")
	p.Println("\nEnter your skills (one per line, blank line to finish):")
	skills, err := p.Lines(IsBlank)
	if err != nil {
		return nil, err
	}
	profile.Skills = skills

	p.Println("\nEnter your work experience (format: Company | Title | Years):")
	p.Println("Example: 'Google | Software Engineer | 2.5'")
	p.Println("Enter a blank line to finish")
	for {
		line, err := p.Ask("> ")
		if err != nil {
			return nil, err
		}
		if IsBlank(line) {
			break
		}
		entry, err := ParseExperience(line)
		if err != nil {
			p.Println(ExperienceFormatMessage)
			continue
		}
		profile.Experience = append(profile.Experience, entry)
	}

	return profile, nil
}
