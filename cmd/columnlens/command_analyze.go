package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/shibukawa/columnlens"
	"github.com/shibukawa/columnlens/dashboard"
	"github.com/shibukawa/columnlens/extractor"
	"github.com/shibukawa/columnlens/report"
	"github.com/shibukawa/columnlens/tokenizer"
)

// AnalyzeCmd represents the analyze command
type AnalyzeCmd struct {
	Dashboard string `arg:"" help:"Path to the dashboard export JSON file" type:"path"`
	Format    string `short:"f" help:"Output format: sql, python, or both (default from config)"`
	Output    string `short:"o" help:"Output directory for generated artifacts (default from config)"`
	NoSave    bool   `help:"Print artifacts to console only, do not save to files"`
}

// Run executes the analyze command
func (cmd *AnalyzeCmd) Run(ctx *Context) error {
	config, err := columnlens.LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	format, err := report.ParseFormat(pickFirst(cmd.Format, config.Report.Format))
	if err != nil {
		return err
	}

	outputDir := pickFirst(cmd.Output, config.Report.OutputDir)

	if ctx.Verbose {
		color.Blue("Loading dashboard from: %s", cmd.Dashboard)
	}

	doc, err := dashboard.Load(cmd.Dashboard)
	if err != nil {
		return err
	}

	dialect := tokenizer.NewDialect().
		WithFunctions(config.Dialect.Functions...).
		WithKeywords(config.Dialect.Keywords...)

	if ctx.Verbose {
		color.Blue("Extracting columns from dashboard...")
	}

	analysis := dashboard.Analyze(doc, extractor.New(dialect))

	reporter := report.NewReporter(analysis, report.Options{
		DefaultCatalog: config.Catalog.DefaultCatalog,
		DefaultSchema:  config.Catalog.DefaultSchema,
	})

	if cmd.NoSave {
		reporter.PrintArtifacts(os.Stdout, format)
	} else {
		paths, err := reporter.Save(outputDir, format)
		if err != nil {
			return err
		}

		if !ctx.Quiet {
			for _, path := range paths {
				color.Green("Saved %s", path)
			}
		}
	}

	if !ctx.Quiet {
		reporter.PrintSummary(os.Stdout)

		if !cmd.NoSave {
			report.PrintNextSteps(os.Stdout, outputDir)
		}
	}

	return nil
}

// pickFirst returns the first non-empty value
func pickFirst(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
