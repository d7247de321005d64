package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/buildenv/internal/application"
	"github.com/eugenenazirov/buildenv/internal/config"
	"github.com/eugenenazirov/buildenv/internal/inject"
	"github.com/eugenenazirov/buildenv/internal/logging"
)

var newLogger = logging.New

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	kingpinApp := kingpin.New("buildenv", "Build configuration loader - turns .env settings into firmware preprocessor definitions")
	kingpinApp.Writer(stderr)
	// kingpin terminates after --help and the help command.
	exitCode, terminated := 0, false
	kingpinApp.Terminate(func(code int) {
		exitCode, terminated = code, true
	})

	dir := kingpinApp.Flag("dir", "Project directory holding the settings and credential files").String()
	envFile := kingpinApp.Flag("env-file", "Settings file, relative to --dir").String()
	variant := kingpinApp.Flag("variant", "Build variant to resolve").Short('v').String()
	schemaFile := kingpinApp.Flag("schema", "YAML file with additional variant schemas").String()
	var unsafeSet bool
	unsafeLogging := kingpinApp.Flag("unsafe-logging", "Log the final flag string, secrets included").IsSetByUser(&unsafeSet).Bool()

	flagsCmd := kingpinApp.Command("flags", "Print preprocessor definitions for the build tool").Default()
	checkCmd := kingpinApp.Command("check", "Resolve the variant and print its values with secrets masked")
	variantsCmd := kingpinApp.Command("variants", "List known variants")
	schemaCmd := kingpinApp.Command("schema", "Print a variant schema as YAML")
	schemaName := schemaCmd.Arg("variant", "Variant to print").Required().String()

	command, err := kingpinApp.Parse(args)
	if terminated {
		return exitCode
	}
	if err != nil {
		fmt.Fprintf(stderr, "buildenv: %v\n", err)
		return 2
	}

	overrides := &config.CLIOverrides{
		Dir:        dir,
		EnvFile:    envFile,
		Variant:    variant,
		SchemaFile: schemaFile,
	}
	if unsafeSet {
		overrides.UnsafeLogging = unsafeLogging
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		fmt.Fprintf(stderr, "buildenv: failed to load configuration: %v\n", err)
		return 2
	}

	logger, err := newLogger(cfg.UnsafeLogging)
	if err != nil {
		fmt.Fprintf(stderr, "buildenv: failed to initialize logger: %v\n", err)
		return 2
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := application.New(cfg, inject.NewWriter(stdout), logger)
	if err != nil {
		logger.Error("failed to initialize application", zap.Error(err))
		return 1
	}

	switch command {
	case flagsCmd.FullCommand():
		err = app.Flags()
	case checkCmd.FullCommand():
		err = app.Check(stdout)
	case variantsCmd.FullCommand():
		for _, name := range app.Variants() {
			fmt.Fprintln(stdout, name)
		}
	case schemaCmd.FullCommand():
		err = app.Schema(stdout, *schemaName)
	}

	if err != nil {
		logger.Error("build configuration failed",
			zap.String("command", command),
			zap.String("variant", cfg.Variant),
			zap.Error(err),
		)
		return 1
	}
	return 0
}
