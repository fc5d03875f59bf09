package recommend

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-advisor/internal/extract"
	"github.com/jonathan/career-advisor/internal/llm"
	"github.com/jonathan/career-advisor/internal/llm/llmtest"
	"github.com/jonathan/career-advisor/internal/observability"
	"github.com/jonathan/career-advisor/internal/types"
)

const validCoursePlan = `{
  "needs_analysis": "Needs a gentle start.",
  "recommended_courses": [
    {"title": "Python for Everybody", "platform": "Coursera", "description": "Basics", "duration_weeks": 6,
     "skill_level": "beginner", "includes_projects": true, "certification": true, "key_topics": ["python"]}
  ],
  "learning_schedule": {"weekly_breakdown": [{"week": 1, "focus": "Setup", "hours_required": 4, "goals": ["install"]}], "total_hours_weekly": 5},
  "additional_resources": [{"type": "book", "name": "Think Python"}],
  "next_steps": ["Build a project"]
}`

// sparseCoursePlan leaves out additional_resources and gives durations as strings.
const sparseCoursePlan = `{
  "needs_analysis": "Needs a gentle start.",
  "recommended_courses": [
    {"title": "Python for Everybody", "platform": "Coursera", "description": "Basics", "duration_weeks": "6",
     "skill_level": "beginner", "includes_projects": true, "certification": true, "key_topics": ["python"]}
  ],
  "learning_schedule": {"weekly_breakdown": [{"week": 1, "focus": "Setup", "hours_required": "4", "goals": ["install"]}], "total_hours_weekly": 5},
  "next_steps": ["Build a project"]
}`

const validProfileData = `{"technical_skills": ["Go"], "soft_skills": ["Mentoring"], "industry_knowledge": ["Payments"]}`

func newTestService(t *testing.T, client llm.Client, opts ...Option) *Service {
	t.Helper()
	svc, err := NewService(client, opts...)
	require.NoError(t, err)
	return svc
}

func TestService_CoursePlan(t *testing.T) {
	tests := []struct {
		name         string
		response     llmtest.Response
		wantStrategy string
		wantDegraded bool
	}{
		{
			name:         "bare JSON text",
			response:     llmtest.Text(validCoursePlan),
			wantStrategy: "direct",
		},
		{
			name:         "fenced JSON split across parts",
			response:     llmtest.Candidates("Here you go:\n```json\n", validCoursePlan, "\n```\n"),
			wantStrategy: "fenced",
		},
		{
			name:         "optional sections and numeric strings",
			response:     llmtest.Text(sparseCoursePlan),
			wantStrategy: "direct",
		},
		{
			name:         "prose only",
			response:     llmtest.Text("I recommend taking some courses."),
			wantStrategy: extract.NoStrategy,
			wantDegraded: true,
		},
		{
			name:         "JSON with the wrong shape",
			response:     llmtest.Text(`{"needs_analysis": 42}`),
			wantStrategy: extract.NoStrategy,
			wantDegraded: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := llmtest.New(tt.response)
			svc := newTestService(t, client)

			result, err := svc.CoursePlan(context.Background(), sampleQuestionnaire())
			require.NoError(t, err)

			assert.Equal(t, tt.wantStrategy, result.Strategy)
			assert.Equal(t, tt.wantDegraded, result.Record.IsDegraded())
			if tt.wantDegraded {
				assert.Equal(t, extract.RecommendationsMessage, result.Record.ErrorMessage())
				assert.Equal(t, tt.response.Completion.Content(), result.Record.RawResponse())
			} else {
				assert.Equal(t, "Needs a gentle start.", result.Record.String("needs_analysis"))
			}
			require.Len(t, client.Requests, 1)
			assert.Contains(t, client.LastPrompt(), "Data Science")
		})
	}
}

func TestService_CoursePlanWithoutAdditionalResources(t *testing.T) {
	svc := newTestService(t, llmtest.New(llmtest.Text(sparseCoursePlan)))

	result, err := svc.CoursePlan(context.Background(), sampleQuestionnaire())
	require.NoError(t, err)

	require.False(t, result.Record.IsDegraded(), "attempts: %v", result.Attempts)
	assert.False(t, result.Record.Has("additional_resources"))
	assert.Empty(t, result.Record.Records("additional_resources"))

	courses := result.Record.Records("recommended_courses")
	require.Len(t, courses, 1)
	weeks, ok := courses[0].Float("duration_weeks")
	assert.True(t, ok)
	assert.Equal(t, 6.0, weeks)
}

func TestService_TransportErrorIsReturned(t *testing.T) {
	svc := newTestService(t, llmtest.New(llmtest.Fail("quota exceeded")))

	_, err := svc.SkillsCoursePath(context.Background(), types.NewSkillsProfile(), "Cloud")
	require.Error(t, err)
	assert.True(t, llm.IsTransportError(err))
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestService_ProjectPlanDegradesWithProjectsMessage(t *testing.T) {
	svc := newTestService(t, llmtest.New(llmtest.Text("no json here")))

	result, err := svc.ProjectPlan(context.Background(),
		[]types.CompletedCourse{{Name: "Go Basics"}},
		types.CareerInfo{Field: "Backend", ExperienceLevel: types.LevelIntermediate})
	require.NoError(t, err)
	assert.Equal(t, extract.ProjectsMessage, result.Record.ErrorMessage())
}

func TestService_ExtractProfileUsesBraceSpan(t *testing.T) {
	client := llmtest.New(llmtest.Text("Sure! " + validProfileData + " Hope this helps."))
	svc := newTestService(t, client)

	profile := types.NewProfileInput()
	profile.Skills = []string{"Go"}
	result, err := svc.ExtractProfile(context.Background(), profile)
	require.NoError(t, err)

	assert.Equal(t, "brace-span", result.Strategy)
	assert.Equal(t, []string{"Go"}, result.Record.Strings("technical_skills"))
	assert.Equal(t, []string{"direct", "fenced", "brace-span"}, svc.Extractor(SchemaProfile).Strategies())
}

func TestService_FreeText(t *testing.T) {
	client := llmtest.New(
		llmtest.Text("  1. Backend Engineer\n2. SRE  \n"),
		llmtest.Candidates("Learn ", "Kubernetes."),
	)
	svc := newTestService(t, client)
	extracted := extract.Record{"technical_skills": []any{"Go"}}

	jobs, err := svc.JobSuggestions(context.Background(), extracted, "Cloud")
	require.NoError(t, err)
	assert.Equal(t, "1. Backend Engineer\n2. SRE", jobs)

	path, err := svc.LearningPath(context.Background(), extracted, "SRE")
	require.NoError(t, err)
	assert.Equal(t, "Learn Kubernetes.", path)

	require.Len(t, client.Requests, 2)
	assert.Contains(t, client.Requests[1].Prompt, "chosen career path: SRE")
}

func TestService_VerbosePrinter(t *testing.T) {
	var buf bytes.Buffer
	svc := newTestService(t, llmtest.New(llmtest.Text(validCoursePlan)),
		WithPrinter(observability.NewPrinter(&buf)))

	_, err := svc.CoursePlan(context.Background(), sampleQuestionnaire())
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "PROMPT (expects CoursePlan)")
	assert.Contains(t, output, "COMPLETION (text)")
	assert.Contains(t, output, "Strategy: direct")
}

func TestService_ContextCanceled(t *testing.T) {
	svc := newTestService(t, llmtest.New(llmtest.Text(validCoursePlan)))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.CoursePlan(ctx, sampleQuestionnaire())
	assert.True(t, llm.IsTransportError(err))
}
