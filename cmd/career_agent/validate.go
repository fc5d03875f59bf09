package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-advisor/internal/recommend"
	"github.com/jonathan/career-advisor/internal/schemas"
)

var (
	validateSchema string
	validateJSON   string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a saved report against its schema",
	Long: "Checks a JSON file, such as a saved course, skills or project plan, against the schema " +
		"the model is asked to fill. Exits with status 1 when validation fails.",
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Schema key: "+strings.Join(schemaKeys(), ", ")+" (required)")
	validateCmd.Flags().StringVar(&validateJSON, "json", "", "Path to the JSON file to validate (required)")
	_ = validateCmd.MarkFlagRequired("schema")
	_ = validateCmd.MarkFlagRequired("json")
	rootCmd.AddCommand(validateCmd)
}

func schemaKeys() []string {
	keys := make([]string, 0, len(recommend.Schemas()))
	for key := range recommend.Schemas() {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func runValidate(cmd *cobra.Command, _ []string) error {
	output, ok := recommend.Schemas()[validateSchema]
	if !ok {
		return fmt.Errorf("unknown schema %q (expected one of: %s)", validateSchema, strings.Join(schemaKeys(), ", "))
	}

	schema, err := schemas.Compile(validateSchema, output.JSONSchema())
	if err != nil {
		return err
	}
	if err := schema.ValidateFile(validateJSON); err != nil {
		return fmt.Errorf("Validation failed for %s: %w", validateJSON, err) //nolint:staticcheck // user-facing message
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Validation passed: %s matches the %s schema\n", validateJSON, validateSchema) //nolint:errcheck // terminal output
	return nil
}
