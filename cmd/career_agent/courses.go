package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/career-advisor/internal/extract"
	"github.com/jonathan/career-advisor/internal/intake"
	"github.com/jonathan/career-advisor/internal/report"
)

var coursesOutputFile string

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "Recommend courses from a six-question learning questionnaire",
	Long: "Asks what you want to learn, how deep, what you expect, whether it is a career move, " +
		"your occupation and how many weeks you have, then prints a course plan with a weekly schedule.",
	Args: cobra.NoArgs,
	RunE: runCourses,
}

func init() {
	coursesCmd.Flags().StringVarP(&coursesOutputFile, "out", "o", report.CoursePlanFile, "File the plan is saved to when you choose to save it")
	rootCmd.AddCommand(coursesCmd)
}

func runCourses(cmd *cobra.Command, _ []string) error {
	return runInteractive(cmd, requireLLM, func(s *script) error {
		q, err := intake.Questionnaire(s.prompter)
		if err != nil {
			return err
		}

		s.println("\nGenerating personalized course recommendations...")
		result, ok, err := retry(s, "recommendations", func() (extract.Result, error) {
			return s.service.CoursePlan(s.ctx, q)
		})
		if !ok {
			return err
		}

		s.report.CoursePlan(result.Record)
		return s.offerSave(result.Record, coursesOutputFile)
	})
}
