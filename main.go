// pattern: Imperative Shell
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	flag "github.com/spf13/pflag"

	"cleandeps/internal/cleaner"
	"cleandeps/internal/cli"
	"cleandeps/internal/config"
	"cleandeps/internal/discovery"
	"cleandeps/internal/instance"
	"cleandeps/internal/logging"
	"cleandeps/internal/prompt"
	"cleandeps/internal/ui"
)

var version = "dev"

// runOptions are the parsed global flags for one clean run.
type runOptions struct {
	ConfigDir string
	RootDir   string
	Yes       bool
	YesSet    bool // --yes given explicitly, overriding assume_yes
	DryRun    bool
}

func main() {
	// Stop parsing flags after the first non-flag arg (the subcommand),
	// so that --help after a subcommand is handled by the subcommand.
	flag.CommandLine.SetInterspersed(false)

	configDir := flag.StringP("config-dir", "c", "", "config directory (default: ~/.config/cleandeps)")
	dir := flag.StringP("dir", "d", "", "directory to scan (default: current directory)")
	yes := flag.BoolP("yes", "y", false, "delete without asking")
	dryRun := flag.BoolP("dry-run", "n", false, "print what would be deleted, delete nothing")
	showVersion := flag.BoolP("version", "v", false, "print version and exit")

	flag.Usage = func() {
		app := cli.BuildApp(version, cli.Options{})
		app.PrintHelp(os.Stderr)
		flag.PrintDefaults()
	}

	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}

	rootDir, rootErr := resolveRoot(*dir)

	app := cli.BuildApp(version, cli.Options{
		ConfigDir: *configDir,
		RootDir:   rootDir,
	})

	if !app.Execute(flag.Args()) {
		return
	}

	opts := runOptions{
		ConfigDir: *configDir,
		RootDir:   rootDir,
		Yes:       *yes,
		YesSet:    flag.CommandLine.Changed("yes"),
		DryRun:    *dryRun,
	}
	if rootErr != nil {
		fmt.Fprintf(os.Stderr, "Failed: %v\n", rootErr)
		os.Exit(1)
	}
	os.Exit(run(context.Background(), opts, os.Stdin, os.Stdout, os.Stderr))
}

// resolveRoot returns the absolute scan root: dir when given, otherwise the
// working directory.
func resolveRoot(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolve working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}
	return abs, nil
}

// loadConfig loads the configuration from the specified directory or default location.
func loadConfig(configDir string) (config.Config, error) {
	if configDir != "" {
		return config.LoadFromDir(configDir)
	}
	return config.Load()
}

// run performs one clean pass and returns the process exit code.
func run(ctx context.Context, opts runOptions, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := loadConfig(opts.ConfigDir)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: failed to load config: %v\n", err)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Warning: %v, using defaults\n", err)
		cfg = config.DefaultConfig()
	}

	printer := ui.NewPrinter(stdout, stderr, opts.RootDir, cfg.Theme, ui.ColorMode(cfg.Color))

	info, err := os.Stat(opts.RootDir)
	if err != nil {
		printer.Fatal(fmt.Errorf("scan root: %w", err))
		return 1
	}
	if !info.IsDir() {
		printer.Fatal(fmt.Errorf("scan root %s is not a directory", opts.RootDir))
		return 1
	}

	dataDir := config.ResolveDataDir(opts.ConfigDir)

	fl, err := instance.Lock(dataDir)
	if err != nil {
		printer.Fatal(err)
		return 1
	}
	defer instance.Release(fl)

	logManager, err := logging.NewManager(logging.Config{
		FilePath:   filepath.Join(dataDir, "cleandeps.log"),
		MaxSizeMB:  5,
		MaxBackups: 3,
		MaxAgeDays: 14,
		Level:      cfg.LogLevel,
	})
	if err != nil {
		printer.Fatal(fmt.Errorf("initialize logging: %w", err))
		return 1
	}
	defer func() { _ = logManager.Close() }()

	appLogger := logManager.For("app")
	appLogger.Info("run starting", "version", version, "root", opts.RootDir, "dry_run", opts.DryRun)

	c := newCleaner(logManager, printer, opts, cfg.AssumeYes, stdin, stdout)
	outcomes, err := c.Run(ctx, opts.RootDir)
	if err != nil {
		appLogger.Error("run failed", "error", err)
		printer.Fatal(err)
		return 1
	}

	appLogger.Info("run finished", "outcomes", len(outcomes))
	return 0
}

// newCleaner wires the scanner, detector, confirmer and remover together.
// Dry runs never prompt.
func newCleaner(logs logging.LoggerProvider, printer *ui.Printer, opts runOptions, assumeYes bool, stdin io.Reader, stdout io.Writer) *cleaner.Cleaner {
	scanner := discovery.NewScanner(logs.For("scan"), discovery.WithSkipHandler(printer.ScanSkipped))
	detector := discovery.NewMonorepoDetector(logs.For("monorepo"))
	remover := cleaner.NewRemover(printer, logs.For("remove"), cleaner.WithDryRun(opts.DryRun))

	var confirmer prompt.Confirmer = prompt.NewLine(stdin, stdout)
	if autoConfirm(opts, assumeYes) {
		confirmer = prompt.Auto{}
	}

	controller := cleaner.NewController(detector, confirmer, remover, printer, logs.For("confirm"))
	return cleaner.New(scanner, controller, printer, logs.For("app"))
}

// autoConfirm reports whether prompts are skipped. An explicit --yes flag
// wins over the config's assume_yes.
func autoConfirm(opts runOptions, assumeYes bool) bool {
	if opts.DryRun {
		return true
	}
	if opts.YesSet {
		return opts.Yes
	}
	return opts.Yes || assumeYes
}
