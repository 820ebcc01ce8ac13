package main

import (
	"os"

	nested "github.com/Lyrics-you/sail-logrus-formatter/sailor"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kalbasit/sql2fnc/config"
	"github.com/kalbasit/sql2fnc/definition"
	"github.com/kalbasit/sql2fnc/generator"
)

var (
	configPath string
	outputDir  string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "sql2fnc [flags] <table.sql>",
	Short: "Generate storage functions, API and UI scaffolding from a table definition",
	Long: `sql2fnc reads a PostgreSQL CREATE TABLE script and writes below the
output directory:

  sql/    get, delete, list and save PL/pgSQL functions
  api/    NestJS DTOs, controller, service and module
  tests/  supertest e2e spec and fixture data
  www/    Angular Material list and edit module
  go/     Go client for the storage functions`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

func init() {
	log.SetFormatter(&nested.Formatter{
		FieldsOrder:           nil,
		TimeStampFormat:       "2006-01-02 15:04:05",
		CharStampFormat:       "",
		HideKeys:              false,
		Position:              false,
		Colors:                true,
		FieldsColors:          true,
		FieldsSpace:           true,
		ShowFullLevel:         false,
		LowerCaseLevel:        true,
		TrimMessages:          true,
		CallerFirst:           false,
		CustomCallerFormatter: nil,
	})

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "optional YAML/TOML config file")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "", `output directory (overrides config; default "dist")`)
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func runGenerate(_ *cobra.Command, args []string) error {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	if len(args) == 0 {
		return definition.ErrNoInput
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	cfg.ApplyEnv()

	if outputDir != "" {
		cfg.OutputDir = outputDir
	}

	table, err := definition.Load(args[0], cfg.DefaultSchema)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"table":  table.QualifiedName(),
		"output": cfg.OutputDir,
	}).Info("generating")

	return generator.Run(generator.Options{
		OutputDir:       cfg.OutputDir,
		Owner:           cfg.Owner,
		Grantee:         cfg.Grantee,
		DatePlaceholder: cfg.DatePlaceholder,
		GoClient:        cfg.GoClient,
	}, table)
}
