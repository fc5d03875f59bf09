// Package recommend builds the career prompts and turns completions into records.
package recommend

import "github.com/jonathan/career-advisor/internal/llm"

// Schema keys used by Schemas and the validate command.
const (
	SchemaCourses  = "courses"
	SchemaSkills   = "skills"
	SchemaProjects = "projects"
	SchemaProfile  = "profile"
)

var levels = []string{"beginner", "intermediate", "advanced"}

// CoursePlanSchema is the shape of a questionnaire-driven course plan.
func CoursePlanSchema() llm.OutputSchema {
	return llm.OutputSchema{
		Name: "CoursePlan",
		Fields: []llm.Field{
			llm.String("needs_analysis"),
			llm.ArrayOf("recommended_courses", llm.Object("",
				llm.String("title"),
				llm.String("platform"),
				llm.String("description"),
				llm.Number("duration_weeks"),
				llm.String("skill_level"),
				llm.Boolean("includes_projects"),
				llm.Boolean("certification"),
				llm.ArrayOf("key_topics", llm.String("")),
			)),
			llm.Object("learning_schedule",
				llm.ArrayOf("weekly_breakdown", llm.Object("",
					llm.Number("week"),
					llm.String("focus"),
					llm.Number("hours_required"),
					llm.ArrayOf("goals", llm.String("")),
				)),
				llm.Number("total_hours_weekly"),
			),
			llm.ArrayOf("additional_resources", llm.Object("",
				llm.String("type"),
				llm.String("name"),
				llm.String("url").Opt(),
			)).Opt(),
			llm.ArrayOf("next_steps", llm.String("")),
		},
	}
}

// SkillsCoursePathSchema is the shape of a skills-profile learning path.
func SkillsCoursePathSchema() llm.OutputSchema {
	return llm.OutputSchema{
		Name: "SkillsCoursePath",
		Fields: []llm.Field{
			llm.String("assessment"),
			llm.ArrayOf("skill_gaps", llm.String("")),
			llm.ArrayOf("learning_path", llm.Object("",
				llm.Enum("level", levels...),
				llm.ArrayOf("courses", llm.Object("",
					llm.String("title"),
					llm.String("platform"),
					llm.String("description"),
					llm.String("estimated_duration"),
					llm.ArrayOf("key_topics", llm.String("")),
				)),
			)),
			llm.String("estimated_timeline"),
			llm.ArrayOf("recommended_platforms", llm.String("")),
			llm.ArrayOf("next_steps", llm.String("")),
		},
	}
}

// ProjectPlanSchema is the shape of a portfolio project plan.
func ProjectPlanSchema() llm.OutputSchema {
	return llm.OutputSchema{
		Name: "ProjectPlan",
		Fields: []llm.Field{
			llm.ArrayOf("recommended_projects", llm.Object("",
				llm.String("title"),
				llm.String("description"),
				llm.ArrayOf("skills_demonstrated", llm.String("")),
				llm.String("estimated_time"),
				llm.Enum("difficulty", levels...),
				llm.ArrayOf("key_features", llm.String("")),
				llm.String("portfolio_value"),
				llm.ArrayOf("resources_needed", llm.String("")),
				llm.ArrayOf("learning_outcomes", llm.String("")),
			)),
			llm.String("learning_progression"),
			llm.ArrayOf("project_selection_tips", llm.String("")),
			llm.ArrayOf("additional_resources", llm.String("")).Opt(),
		},
	}
}

// ProfileDataSchema is the shape of the skills extracted from a profile.
func ProfileDataSchema() llm.OutputSchema {
	level := llm.String("")
	return llm.OutputSchema{
		Name: "ProfileData",
		Fields: []llm.Field{
			llm.ArrayOf("technical_skills", llm.String("")),
			llm.ArrayOf("soft_skills", llm.String("")),
			llm.ArrayOf("industry_knowledge", llm.String("")),
			llm.MapOf("years_of_experience", nil).Opt().Describe("skill name to years"),
			llm.MapOf("proficiency_levels", &level).Opt().Describe("skill name to level"),
		},
	}
}

// Schemas returns every structured output schema by key.
func Schemas() map[string]llm.OutputSchema {
	return map[string]llm.OutputSchema{
		SchemaCourses:  CoursePlanSchema(),
		SchemaSkills:   SkillsCoursePathSchema(),
		SchemaProjects: ProjectPlanSchema(),
		SchemaProfile:  ProfileDataSchema(),
	}
}
