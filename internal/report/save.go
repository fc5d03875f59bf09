package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/career-advisor/internal/extract"
)

// Default file names offered when saving a report.
const (
	CoursePlanFile       = "course_recommendations.json"
	SkillsCoursePathFile = "skills_course_path.json"
	ProjectPlanFile      = "project_recommendations.json"
)

// Save writes the record verbatim as indented JSON.
func Save(r extract.Record, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
