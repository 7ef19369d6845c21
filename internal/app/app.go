package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aurceive/fighter-tools/internal/config"
	"github.com/aurceive/fighter-tools/internal/data"
	"github.com/aurceive/fighter-tools/internal/fighters"
	"github.com/aurceive/fighter-tools/internal/logging"
	"github.com/aurceive/fighter-tools/internal/output"
	"github.com/aurceive/fighter-tools/internal/subroles"

	"go.uber.org/zap"
)

type Options struct {
	// Args are the command-line arguments without the program name.
	Args []string
	// Root overrides app root discovery.
	Root   string
	Stdout io.Writer
	Stderr io.Writer
}

func (o Options) withDefaults() Options {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	return o
}

// RunFighterValue prints the fighter value table and returns the desired process exit code.
// A missing or malformed data file is reported on stdout and still exits 0.
func RunFighterValue(opts Options) int {
	return runTool(opts, config.ToolFighterValue, runFighterValue)
}

// RunSubroleValidator validates subroles.json and returns 0 when no errors were found, 1 otherwise.
func RunSubroleValidator(opts Options) int {
	return runTool(opts, config.ToolSubroleValidator, runSubroleValidator)
}

type toolFunc func(cfg config.Config, stdout io.Writer, log *zap.Logger) error

func runTool(opts Options, tool config.Tool, fn toolFunc) int {
	opts = opts.withDefaults()

	appRoot := opts.Root
	if appRoot == "" {
		root, err := FindRoot()
		if err != nil {
			fmt.Fprintln(opts.Stderr, err)
			return 1
		}
		appRoot = root
	}

	cfg, err := config.Load(appRoot, tool, opts.Args)
	if err != nil {
		fmt.Fprintln(opts.Stderr, err)
		return 2
	}

	log := logging.New(opts.Stderr, cfg.Verbose).Named(tool.String())
	defer func() { _ = log.Sync() }()
	log.Debug("config resolved",
		zap.String("app_root", appRoot),
		zap.String("fighters", cfg.FightersPath()),
		zap.String("subroles", cfg.SubrolesPath()),
	)

	start := time.Now()
	err = fn(cfg, opts.Stdout, log)
	log.Debug("finished", zap.Duration("elapsed", time.Since(start)))
	code, msg := exitStatus(err)
	if msg != nil {
		fmt.Fprintln(opts.Stderr, msg)
	}
	return code
}

func runFighterValue(cfg config.Config, stdout io.Writer, log *zap.Logger) error {
	roster, err := data.LoadFighters(cfg.FightersPath())
	if err != nil {
		fmt.Fprintf(stdout, "[ERROR] %v\n", err)
		return nil
	}
	templates, err := data.LoadSubroles(cfg.SubrolesPath())
	if err != nil {
		fmt.Fprintf(stdout, "[ERROR] %v\n", err)
		return nil
	}
	log.Debug("data loaded", zap.Int("fighters", len(roster)), zap.Int("subroles", templates.Len()))

	for _, f := range roster {
		if f.SubRole == "" {
			continue
		}
		tmpl, ok := templates.Lookup(f.SubRole)
		if !ok {
			log.Debug("sub-role has no template, using zero stats", zap.String("fighter", f.ID), zap.String("sub_role", f.SubRole))
			continue
		}
		for _, field := range []string{"attack", "defense", "speed"} {
			if tmpl.IsInvalid(field) {
				log.Warn("unreadable template stat, using 0",
					zap.String("fighter", f.ID), zap.String("sub_role", f.SubRole),
					zap.String("field", field), zap.String("reason", tmpl.Invalid[field]))
			}
		}
	}

	fighters.ApplySubroleStats(roster, templates)
	rows := fighters.BuildValueTable(roster)
	output.PrintValueTable(stdout, rows)

	if cfg.CompareA != "" {
		check, err := fighters.CompareForTrade(roster, cfg.CompareA, cfg.CompareB)
		if err != nil {
			return ExitWithError(1, fmt.Errorf("compare: %w", err))
		}
		fmt.Fprintln(stdout)
		output.PrintTradeCheck(stdout, check)
	}

	if cfg.XLSXPath != "" {
		path, err := output.ExportValueTableXLSX(cfg.XLSXPath, rows)
		if err != nil {
			return fmt.Errorf("export value table: %w", err)
		}
		log.Info("exported value table", zap.String("path", path), zap.Int("rows", len(rows)))
		fmt.Fprintln(stdout, "Exported results to", path)
	}
	return nil
}

func runSubroleValidator(cfg config.Config, stdout io.Writer, log *zap.Logger) error {
	templates, err := data.LoadSubroles(cfg.SubrolesPath())
	if err != nil {
		fmt.Fprintf(stdout, "[ERROR] %v\n", err)
		return Exit(1)
	}
	log.Debug("data loaded", zap.Int("subroles", templates.Len()))

	report := subroles.Validate(templates)
	output.PrintValidationReport(stdout, report)

	if cfg.XLSXPath != "" {
		path, err := output.ExportValidationXLSX(cfg.XLSXPath, report)
		if err != nil {
			return fmt.Errorf("export validation report: %w", err)
		}
		log.Info("exported validation report", zap.String("path", path))
		fmt.Fprintln(stdout, "Exported results to", path)
	}

	if !report.OK() {
		return Exit(1)
	}
	if cfg.Strict && len(report.Warnings) > 0 {
		fmt.Fprintf(stdout, "Strict mode: %d warning(s) treated as failures\n", len(report.Warnings))
		return Exit(1)
	}
	return nil
}
