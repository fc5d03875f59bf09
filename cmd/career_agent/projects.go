package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/career-advisor/internal/extract"
	"github.com/jonathan/career-advisor/internal/intake"
	"github.com/jonathan/career-advisor/internal/report"
)

var projectsOutputFile string

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Suggest portfolio projects from the courses you have completed",
	Long: "Collects completed courses until you type 'done', asks for your field and experience level, " +
		"and prints three to five portfolio projects with a learning progression.",
	Args: cobra.NoArgs,
	RunE: runProjects,
}

func init() {
	projectsCmd.Flags().StringVarP(&projectsOutputFile, "out", "o", report.ProjectPlanFile, "File the projects are saved to when you choose to save them")
	rootCmd.AddCommand(projectsCmd)
}

func runProjects(cmd *cobra.Command, _ []string) error {
	return runInteractive(cmd, requireLLM, func(s *script) error {
		s.println("\n====== PROJECT RECOMMENDATION SYSTEM ======")
		s.println("This tool suggests projects based on courses you've completed.")

		courses, err := intake.CompletedCourses(s.prompter)
		if err != nil {
			return err
		}
		if len(courses) == 0 {
			s.println("No courses entered. Exiting...")
			return nil
		}

		info, err := intake.CareerInfo(s.prompter)
		if err != nil {
			return err
		}

		s.println("\nGenerating project recommendations...")
		result, ok, err := retry(s, "project recommendations", func() (extract.Result, error) {
			return s.service.ProjectPlan(s.ctx, courses, info)
		})
		if !ok {
			return err
		}

		s.report.ProjectPlan(result.Record)
		return s.offerSave(result.Record, projectsOutputFile)
	})
}
