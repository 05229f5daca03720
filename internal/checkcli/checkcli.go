// Package checkcli implements the a11ycheck command: HTML documents are
// replayed through the vdom host with accessibility checks installed.
package checkcli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirkon/a11ycheck"
	"github.com/sirkon/a11ycheck/internal/config"
	"github.com/sirkon/a11ycheck/vdom"
)

// Config holds command configuration.
type Config struct {
	Settings  config.File
	OutDir    string
	LogFormat string
	Files     []string
}

// ParseConfig parses flags into a Config. Flags override the config file and
// the environment.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var (
		cfg       Config
		path      string
		device    string
		exclude   string
		throw     bool
		sourceRef bool
	)
	fs.StringVar(&path, "config", "", "path to YAML config file")
	fs.StringVar(&cfg.OutDir, "out", "", "directory to write checked documents with assigned ids to")
	fs.StringVar(&cfg.LogFormat, "log-format", "text", "diagnostics format: text or json")
	fs.StringVar(&device, "device", "", "device profile: default or mobile")
	fs.StringVar(&exclude, "exclude", "", "comma separated rule keys to skip")
	fs.BoolVar(&throw, "throw", false, "stop a document at its first violation")
	fs.BoolVar(&sourceRef, "include-source", false, "include element ids and nodes in diagnostics")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	settings, err := config.Load(path)
	if err != nil {
		return Config{}, err
	}

	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "device":
			if err := settings.Device.UnmarshalText([]byte(device)); err != nil {
				flagErr = fmt.Errorf("invalid -device: %w", err)
			}
		case "exclude":
			settings.Exclude = splitList(exclude)
		case "throw":
			settings.ThrowOnFailure = throw
		case "include-source":
			settings.IncludeSourceReference = sourceRef
		}
	})
	if flagErr != nil {
		return Config{}, flagErr
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return Config{}, fmt.Errorf("unsupported log format %q", cfg.LogFormat)
	}

	cfg.Settings = settings
	cfg.Files = fs.Args()
	if len(cfg.Files) == 0 {
		return Config{}, errors.New("no HTML files to check")
	}
	return cfg, nil
}

// Result summarizes a run.
type Result struct {
	Files      int
	Violations int
	Aborted    []string
}

// Run checks every file of the configuration. Diagnostics are written to out.
// Violations are not errors: they are counted in the result.
func Run(cfg Config, out io.Writer) (Result, error) {
	if out == nil {
		out = io.Discard
	}

	logger := newLogger(cfg.LogFormat, out)
	ids := a11ycheck.NewAllocator()

	var res Result
	for _, path := range cfg.Files {
		violations, err := checkFile(cfg, path, logger.With("file", path), ids)
		res.Violations += violations
		if err != nil {
			var failure *a11ycheck.ValidationFailure
			if !errors.As(err, &failure) {
				return res, fmt.Errorf("check %s: %w", path, err)
			}
			logger.Error("check aborted", "file", path, "element", failure.ElementName, "message", failure.Message)
			res.Violations++
			res.Aborted = append(res.Aborted, path)
		}
		res.Files++
	}

	return res, nil
}

func checkFile(cfg Config, path string, logger *slog.Logger, ids *a11ycheck.Allocator) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	var count int
	warn := a11ycheck.SlogWarn(logger)
	host := vdom.New()
	_, err = a11ycheck.Install(host, cfg.Settings.Engine(),
		a11ycheck.WithAllocator(ids),
		a11ycheck.WithLogger(logger),
		a11ycheck.WithWarn(func(args ...any) {
			count++
			warn(args...)
		}),
	)
	if err != nil {
		return 0, err
	}

	root, err := replay(host, f)
	if err != nil {
		return count, err
	}
	if err := host.Mount(root); err != nil {
		return count, err
	}

	if cfg.OutDir != "" {
		if err := writeDocument(filepath.Join(cfg.OutDir, filepath.Base(path)), root); err != nil {
			return count, err
		}
	}

	logger.Debug("document checked", "violations", count)
	return count, nil
}

func newLogger(format string, out io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(out, opts))
	}
	return slog.New(slog.NewTextHandler(out, opts))
}

func splitList(s string) []string {
	var res []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			res = append(res, item)
		}
	}
	return res
}
