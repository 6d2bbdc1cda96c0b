package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"

	"github.com/runnerr0/chromium-export/internal/config"
	"github.com/runnerr0/chromium-export/internal/output"
)

// buildParser constructs the go-flags parser for the export options.
func buildParser() (*goflags.Parser, *Options) {
	var opts Options

	parser := goflags.NewParser(&opts, goflags.Default)
	parser.Name = "chromium-export"
	parser.LongDescription = "Export Chromium browser history as chunked JSON files for Safari import."

	return parser, &opts
}

// Main runs the CLI with args and returns the process exit code.
func Main(version string, args []string) int {
	out, err := run(version, args)
	if err == nil {
		return 0
	}
	if out == nil {
		out = output.New(true, false)
	}
	reportError(out, err)
	return 1
}

// RunWithArgs parses the given args (or os.Args if nil) and runs an export.
func RunWithArgs(version string, args []string) error {
	_, err := run(version, args)
	return err
}

// run executes the CLI and returns the output writer it settled on, so
// errors are reported with the same color and verbosity as the run. The
// writer is nil when the arguments could not be parsed.
func run(version string, args []string) (*output.Writer, error) {
	checkArgs := args
	if checkArgs == nil {
		checkArgs = os.Args[1:]
	}
	for _, arg := range checkArgs {
		if arg == "--version" {
			fmt.Printf("chromium-export %s\n", version)
			return nil, nil
		}
		if arg == "--" {
			break
		}
	}

	parser, opts := buildParser()

	if _, err := parser.ParseArgs(checkArgs); err != nil {
		var flagsErr *goflags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == goflags.ErrHelp {
			return nil, nil
		}
		return nil, err
	}

	out := output.New(true, opts.Verbose)

	if opts.Path == "" {
		return out, inputErr(errors.New("--path is required"),
			"Usage: chromium-export --path <History file> [--days N]")
	}

	cfg, err := loadConfig(opts.Config)
	if err != nil {
		return out, inputErr(fmt.Errorf("load config: %w", err))
	}
	out = output.New(cfg.Logging.Color, opts.Verbose)

	if daysSet(parser) {
		cfg.Export.Days = opts.Days
	}
	if opts.OutputDir != "" {
		cfg.Export.OutputDir = opts.OutputDir
	}

	exporter := NewExporter(cfg, out)
	if _, err := exporter.Run(context.Background(), opts.Path, cfg.Export.Days); err != nil {
		return out, err
	}

	out.Println()
	out.Println("Done!")
	return out, nil
}

// daysSet reports whether --days was given on the command line.
func daysSet(parser *goflags.Parser) bool {
	opt := parser.FindOptionByLongName("days")
	return opt != nil && opt.IsSet() && !opt.IsSetDefault()
}

// loadConfig reads the config named by --config, or the default config
// file when it exists.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadOrDefault(config.DefaultConfigPath)
}
