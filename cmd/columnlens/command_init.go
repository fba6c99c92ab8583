package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
)

// ErrConfigExists is returned when init would overwrite an existing config
var ErrConfigExists = errors.New("columnlens.yaml already exists")

const sampleConfig = `# columnlens configuration
dialect:
  # Function names recognized without parentheses, such as SESSION_USER.
  # Parenthesized calls like SUM(amount) need no registration.
  functions: []
  # Additional reserved words to discard during extraction.
  keywords: []

catalog:
  # Catalog and schema used to complete partially qualified table names
  # in generated system catalog queries.
  default_catalog: hive_metastore
  default_schema: default

report:
  # Output directory for generated artifacts.
  output_dir: ./output
  # Default output format: sql, python, or both.
  format: sql
`

// InitCmd represents the init command
type InitCmd struct{}

// Run executes the init command
func (cmd *InitCmd) Run(ctx *Context) error {
	if _, err := os.Stat("columnlens.yaml"); err == nil {
		return ErrConfigExists
	}

	if err := os.WriteFile("columnlens.yaml", []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("failed to create columnlens.yaml: %w", err)
	}

	if !ctx.Quiet {
		color.Green("Created columnlens.yaml")
		fmt.Println("\nNext steps:")
		fmt.Println("1. Export your dashboard as JSON from the dashboard UI")
		fmt.Println("2. Run 'columnlens analyze <dashboard.json>'")
		fmt.Println("3. Review the generated queries in the output directory")
	}

	return nil
}
