package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-advisor/internal/llm/llmtest"
)

const projectPlanJSON = `{
  "recommended_projects": [{
    "title": "Budget Tracker", "description": "Track spending", "skills_demonstrated": ["SQL"],
    "estimated_time": "2 weeks", "difficulty": "intermediate", "key_features": ["charts"],
    "portfolio_value": "Shows full stack", "resources_needed": ["Postgres"], "learning_outcomes": ["schema design"]
  }],
  "learning_progression": "Start small.",
  "project_selection_tips": ["Pick what excites you"]
}`

func TestProjects_SavesPlan(t *testing.T) {
	setupEnv(t, llmEnv())
	client := newFake(t, llmtest.Candidates("```json\n", projectPlanJSON, "\n```"))
	path := filepath.Join(t.TempDir(), "projects.json")

	stdin := lines(
		"", "Databases 101", "Coursera", "expert", "SQL, indexing",
		"done",
		"Data engineering", "intermediate",
		"yes",
	)
	output, err := runCommand(t, stdin, "projects", "--out", path)
	require.NoError(t, err)

	assert.Contains(t, output, "====== PROJECT RECOMMENDATION SYSTEM ======")
	assert.Contains(t, output, "Please enter a course name.")
	assert.Contains(t, output, "Added: Databases 101")
	assert.Contains(t, output, "1. Budget Tracker")
	assert.Contains(t, output, "Recommendations saved to "+path)

	prompt := client.LastPrompt()
	assert.Contains(t, prompt, "Databases 101")
	assert.Contains(t, prompt, "Data engineering")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, projectPlanJSON, string(data))
}

func TestProjects_NoCourses(t *testing.T) {
	setupEnv(t, llmEnv())
	client := newFake(t)

	output, err := runCommand(t, lines("DONE"), "projects")
	require.NoError(t, err)
	assert.Contains(t, output, "No courses entered. Exiting...")
	assert.Empty(t, client.Requests)
}

func TestProjects_DegradedUsesProjectsMessage(t *testing.T) {
	setupEnv(t, llmEnv())
	newFake(t, llmtest.Text("no json here"))
	path := filepath.Join(t.TempDir(), "projects.json")

	stdin := lines("Go Basics", "Udemy", "beginner", "syntax", "done", "Backend", "beginner", "y")
	output, err := runCommand(t, stdin, "projects", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, output, "Error generating project recommendations:")
	assert.Contains(t, output, "Could not generate proper project recommendations. Please try again.")
	assert.Contains(t, output, "save these recommendations")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"error": "Could not generate proper project recommendations. Please try again.", "raw_response": "no json here"}`, string(data))
}
