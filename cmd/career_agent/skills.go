package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/career-advisor/internal/extract"
	"github.com/jonathan/career-advisor/internal/intake"
	"github.com/jonathan/career-advisor/internal/report"
	"github.com/jonathan/career-advisor/internal/types"
)

var skillsOutputFile string

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Recommend a leveled course path from your current skills",
	Long: "Collects technical skills, soft skills and industry knowledge (one by one or as comma-separated lists), " +
		"asks for a target field and prints a skills assessment with a beginner-to-advanced course path.",
	Args: cobra.NoArgs,
	RunE: runSkills,
}

func init() {
	skillsCmd.Flags().StringVarP(&skillsOutputFile, "out", "o", report.SkillsCoursePathFile, "File the path is saved to when you choose to save it")
	rootCmd.AddCommand(skillsCmd)
}

func runSkills(cmd *cobra.Command, _ []string) error {
	return runInteractive(cmd, requireLLM, func(s *script) error {
		s.println("\n====== SKILLS-BASED COURSE RECOMMENDER ======")
		s.println()
		s.println("This tool will help you find courses based on your current skills and career goals.")

		mode, err := intake.AskSkillsMode(s.prompter)
		if err != nil {
			return err
		}

		var profile *types.SkillsProfile
		if mode == intake.ModeDetailed {
			profile, err = intake.DetailedSkills(s.prompter)
		} else {
			profile, err = intake.QuickSkills(s.prompter)
		}
		if err != nil {
			return err
		}

		s.report.SkillsSummary(profile)

		field, err := intake.TargetField(s.prompter)
		if err != nil {
			return err
		}

		s.println("\nGenerating personalized course recommendations...")
		result, ok, err := retry(s, "recommendations", func() (extract.Result, error) {
			return s.service.SkillsCoursePath(s.ctx, profile, field)
		})
		if !ok {
			return err
		}

		s.report.SkillsCoursePath(result.Record)
		return s.offerSave(result.Record, skillsOutputFile)
	})
}
