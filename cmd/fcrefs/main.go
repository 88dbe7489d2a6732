// Package main provides the CLI entry point for fcrefs.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/ukaji3/fcrefs-go/internal/config"
	"github.com/ukaji3/fcrefs-go/internal/logging"
	"github.com/ukaji3/fcrefs-go/pkg/fcrefs"
	"github.com/ukaji3/fcrefs-go/pkg/fcrefs/models"
	"github.com/ukaji3/fcrefs-go/pkg/fcrefs/output"
)

// batchCacheSize is used for --batch runs when no cache size is configured.
const batchCacheSize = 128

type cliFlags struct {
	dir        string
	match      string
	format     string
	xlsxPath   string
	workers    int
	cacheSize  int
	extension  string
	configPath string
	logLevel   string
	logFile    string
	batchPath  string
	pretty     bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &cliFlags{}

	rootCmd := &cobra.Command{
		Use:   "fcrefs <document> <object> <alias> | fcrefs <document#object.alias>",
		Short: "Find cross-document references in FreeCAD documents",
		Long: `fcrefs scans every .FCStd document in a directory and reports each
spreadsheet cell and expression that uses the reference document#object.alias.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if flags.batchPath != "" {
				return cobra.NoArgs(cmd, args)
			}
			if len(args) != 1 && len(args) != 3 {
				return fmt.Errorf("accepts 1 or 3 arg(s), received %d", len(args))
			}
			return nil
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, flags, args)
		},
	}

	bindFindFlags(rootCmd.Flags(), flags)
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Config file (default: <dir>/"+config.DefaultFile+")")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Also write logs to this file")

	rootCmd.AddCommand(newTreeCmd(flags))
	return rootCmd
}

func bindFindFlags(f *pflag.FlagSet, flags *cliFlags) {
	f.StringVar(&flags.dir, "dir", ".", "Directory holding the documents to scan")
	f.StringVar(&flags.match, "match", string(fcrefs.MatchLiteral), "Match mode: literal, pattern, exact")
	f.StringVar(&flags.format, "format", "text", "Output format: text, table, json, yaml")
	f.BoolVar(&flags.pretty, "pretty", false, "Pretty-print JSON output")
	f.StringVar(&flags.xlsxPath, "xlsx", "", "Also write matches to this workbook")
	f.IntVar(&flags.workers, "workers", 1, "Number of documents loaded concurrently")
	f.IntVar(&flags.cacheSize, "cache-size", 0, "Parsed documents kept between batch scans")
	f.StringVar(&flags.extension, "ext", fcrefs.DefaultExtension, "Document file extension")
	f.StringVar(&flags.batchPath, "batch", "", "File with one document#object.alias reference per line")
}

func run(cmd *cobra.Command, flags *cliFlags, args []string) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	closer, err := setupLogging(cmd, flags, cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	opts, format, err := resolveOptions(cmd, flags, cfg)
	if err != nil {
		return err
	}

	refs, err := references(flags, args)
	if err != nil {
		return err
	}
	if len(refs) > 1 && opts.CacheSize == 0 {
		opts.CacheSize = batchCacheSize
	}

	scanner, err := fcrefs.NewScanner(opts, slog.Default())
	if err != nil {
		return err
	}

	results := make([]*models.ScanResult, 0, len(refs))
	for _, ref := range refs {
		result, err := scanner.ScanCorpus(flags.dir, ref)
		if err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}
		results = append(results, result)
	}

	if err := render(cmd.OutOrStdout(), format, flags.pretty, flags.batchPath != "", results); err != nil {
		return err
	}

	if flags.xlsxPath != "" {
		if err := output.WriteXLSX(flags.xlsxPath, results...); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
	}
	return nil
}

func loadConfig(flags *cliFlags) (*config.Config, error) {
	path := flags.configPath
	required := path != ""
	if path == "" {
		path = filepath.Join(flags.dir, config.DefaultFile)
	}
	return config.Load(path, required)
}

func setupLogging(cmd *cobra.Command, flags *cliFlags, cfg *config.Config) (io.Closer, error) {
	levelName := flags.logLevel
	if !cmd.Flags().Changed("log-level") && cfg.LogLevel != "" {
		levelName = cfg.LogLevel
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	logFile := config.FirstNonEmpty(flags.logFile, cfg.LogFile)
	return logging.Setup(cmd.ErrOrStderr(), level, logFile)
}

// resolveOptions merges flags over config values over defaults.
func resolveOptions(cmd *cobra.Command, flags *cliFlags, cfg *config.Config) (fcrefs.Options, string, error) {
	opts := fcrefs.DefaultOptions()
	changed := cmd.Flags().Changed

	matchName := flags.match
	if !changed("match") && cfg.Match != "" {
		matchName = cfg.Match
	}
	mode, err := fcrefs.ParseMatchMode(matchName)
	if err != nil {
		return opts, "", err
	}
	opts.Match = mode

	opts.Extension = flags.extension
	if !changed("ext") && cfg.Extension != "" {
		opts.Extension = cfg.Extension
	}

	opts.Workers = flags.workers
	if !changed("workers") && cfg.Workers != 0 {
		opts.Workers = cfg.Workers
	}

	opts.CacheSize = flags.cacheSize
	if !changed("cache-size") && cfg.CacheSize != 0 {
		opts.CacheSize = cfg.CacheSize
	}

	format := flags.format
	if !changed("format") && cfg.Format != "" {
		format = cfg.Format
	}
	switch format {
	case "text", "table", "json", "yaml":
	default:
		return opts, "", &fcrefs.InvalidOptionError{Option: "format", Value: format, Allowed: "text, table, json, or yaml"}
	}

	return opts, format, nil
}

func references(flags *cliFlags, args []string) ([]models.Reference, error) {
	if flags.batchPath != "" {
		return readBatch(flags.batchPath)
	}
	if len(args) == 3 {
		ref := models.NewReference(args[0], args[1], args[2])
		if err := ref.Validate(); err != nil {
			return nil, err
		}
		return []models.Reference{ref}, nil
	}
	ref, err := models.ParseReference(args[0])
	if err != nil {
		return nil, err
	}
	return []models.Reference{ref}, nil
}

// readBatch reads one reference per line. Blank lines and lines starting
// with '#' are ignored.
func readBatch(path string) ([]models.Reference, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open batch file: %w", err)
	}
	defer f.Close()

	var refs []models.Reference
	sc := bufio.NewScanner(f)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ref, err := models.ParseReference(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		refs = append(refs, ref)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	return refs, nil
}

// render writes results in format. Batch runs always produce a JSON array,
// whatever the number of references.
func render(w io.Writer, format string, pretty, batch bool, results []*models.ScanResult) error {
	switch format {
	case "json":
		var data []byte
		var err error
		if !batch && len(results) == 1 {
			data, err = output.ToJSON(results[0], pretty)
		} else {
			data, err = output.BatchToJSON(results, pretty)
		}
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		data, err := output.ToYAML(results...)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		_, err = w.Write(data)
		return err
	case "table":
		for _, r := range results {
			s, err := output.RenderTable(r)
			if err != nil {
				return err
			}
			if _, err := io.WriteString(w, s); err != nil {
				return err
			}
		}
		return nil
	default:
		for _, r := range results {
			if err := output.WriteText(w, r); err != nil {
				return err
			}
		}
		return nil
	}
}
