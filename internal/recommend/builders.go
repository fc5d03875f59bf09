package recommend

import (
	"encoding/json"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jonathan/career-advisor/internal/extract"
	"github.com/jonathan/career-advisor/internal/llm"
	"github.com/jonathan/career-advisor/internal/prompts"
	"github.com/jonathan/career-advisor/internal/types"
)

// BuildCoursePlan renders the course plan prompt for a completed questionnaire.
func BuildCoursePlan(q types.CourseQuestionnaire) (llm.RequestEnvelope, error) {
	pursuit := "No"
	if q.CareerPursuit {
		pursuit = "Yes"
	}

	task, err := render("courses.json", "course-plan", map[string]string{
		"LearningGoal":    q.LearningGoal,
		"LearningLevel":   string(q.LearningLevel),
		"Expectations":    q.Expectations,
		"CareerPursuit":   pursuit,
		"Occupation":      cases.Title(language.English).String(string(q.Occupation)),
		"CompletionWeeks": strconv.Itoa(q.CompletionWeeks),
	})
	if err != nil {
		return llm.RequestEnvelope{}, err
	}
	return llm.BuildStructuredPrompt(task, CoursePlanSchema()), nil
}

// BuildSkillsCoursePath renders the learning path prompt for a skills profile.
func BuildSkillsCoursePath(profile *types.SkillsProfile, targetField string) (llm.RequestEnvelope, error) {
	if profile == nil {
		profile = types.NewSkillsProfile()
	}
	profileJSON, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return llm.RequestEnvelope{}, &PromptError{Message: "failed to encode skills profile", Cause: err}
	}

	task, err := render("skills.json", "skills-course-path", map[string]string{
		"SkillsProfile": string(profileJSON),
		"TargetField":   targetField,
	})
	if err != nil {
		return llm.RequestEnvelope{}, err
	}
	return llm.BuildStructuredPrompt(task, SkillsCoursePathSchema()), nil
}

// BuildProjectPlan renders the portfolio project prompt for completed courses.
func BuildProjectPlan(courses []types.CompletedCourse, info types.CareerInfo) (llm.RequestEnvelope, error) {
	if courses == nil {
		courses = []types.CompletedCourse{}
	}
	coursesJSON, err := json.MarshalIndent(courses, "", "  ")
	if err != nil {
		return llm.RequestEnvelope{}, &PromptError{Message: "failed to encode completed courses", Cause: err}
	}

	task, err := render("projects.json", "project-plan", map[string]string{
		"CompletedCourses": string(coursesJSON),
		"Field":            info.Field,
		"ExperienceLevel":  string(info.ExperienceLevel),
	})
	if err != nil {
		return llm.RequestEnvelope{}, err
	}
	return llm.BuildStructuredPrompt(task, ProjectPlanSchema()), nil
}

// BuildProfileExtraction renders the prompt that pulls skills out of a profile.
func BuildProfileExtraction(profile *types.ProfileInput) (llm.RequestEnvelope, error) {
	if profile == nil {
		profile = types.NewProfileInput()
	}
	profileJSON, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return llm.RequestEnvelope{}, &PromptError{Message: "failed to encode profile", Cause: err}
	}

	task, err := render("advisor.json", "extract-profile", map[string]string{
		"Profile": string(profileJSON),
	})
	if err != nil {
		return llm.RequestEnvelope{}, err
	}
	return llm.BuildStructuredPrompt(task, ProfileDataSchema()), nil
}

// BuildJobSuggestions renders the free-text job suggestion prompt.
func BuildJobSuggestions(extracted extract.Record, targetIndustry string) (llm.RequestEnvelope, error) {
	task, err := render("advisor.json", "job-suggestions", map[string]string{
		"ExtractedProfile": extracted.JSON(),
		"TargetIndustry":   targetIndustry,
	})
	if err != nil {
		return llm.RequestEnvelope{}, err
	}
	return llm.RequestEnvelope{Prompt: task}, nil
}

// BuildLearningPath renders the free-text learning path prompt for a chosen job.
func BuildLearningPath(extracted extract.Record, jobChoice string) (llm.RequestEnvelope, error) {
	task, err := render("advisor.json", "learning-path", map[string]string{
		"ExtractedProfile": extracted.JSON(),
		"JobChoice":        jobChoice,
	})
	if err != nil {
		return llm.RequestEnvelope{}, err
	}
	return llm.RequestEnvelope{Prompt: task}, nil
}

func render(file, key string, data map[string]string) (string, error) {
	task, err := prompts.Render(file, key, data)
	if err != nil {
		return "", &PromptError{Message: "failed to render " + key + " prompt", Cause: err}
	}
	return task, nil
}
