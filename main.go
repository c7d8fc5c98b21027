// Package main implements a CLI tool that prints the next semantic version
// of a project from the Conventional Commit messages since its last release.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	convver "github.com/bcomnes/convver/pkg"
)

const appName = "convver"

// Property keys read from the --properties file.
const (
	propLastVersion = "lastVersion"
	propTagPrefix   = "tagPrefix"
	propVersionFile = "versionFile"
)

type options struct {
	lastVersion    string
	versionFile    string
	propertiesFile string
	tagPrefix      string
	tagPrefixSet   bool
	separator      string
	output         string
	logLevel       string
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   appName + " [flags] [commits-file]",
		Short: "Calculate the next semantic version from Conventional Commits",
		Long: `Reads the commit messages written since the last release (from commits-file,
or stdin when omitted or "-") and prints the next semantic version.

  feat                                               bumps minor
  fix, build, ci, docs, pref, refactor, style, test  bumps patch
  "!" before the colon or "BREAKING CHANGE"          bumps major

Messages are matched as a whole, so the default line separator (one subject per
line, e.g. git log --format=%s) is what most callers want. Without a last
version the result is always 0.1.0.

The last version is taken from, in order: --last-version, --version-file,
the lastVersion property, the versionFile property.

Examples:
  git log --format=%s v1.2.3..HEAD | convver --last-version v1.2.3
  convver --version-file package.json commits.txt
  git log -z --format=%s v1.2.3..HEAD | convver -l 1.2.3 --separator nul -o yaml`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configureLogging(cmd.ErrOrStderr(), opts.logLevel)
			opts.tagPrefixSet = cmd.Flags().Changed("tag-prefix")
			return run(cmd.InOrStdin(), cmd.OutOrStdout(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.lastVersion, "last-version", "l", "", "Last released version (e.g. 1.2.3 or v1.2.3)")
	cmd.Flags().StringVar(&opts.versionFile, "version-file", "", "Read the last released version from this file (version.go, package.json, Cargo.toml, VERSION)")
	cmd.Flags().StringVarP(&opts.propertiesFile, "properties", "p", "", "YAML properties file (keys: lastVersion, tagPrefix, versionFile)")
	cmd.Flags().StringVar(&opts.tagPrefix, "tag-prefix", "v", "Prefix stripped from the last version and used by --output tag")
	cmd.Flags().StringVar(&opts.separator, "separator", string(convver.SeparatorLine), "How commit messages are separated: line, nul or blank")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "version", "Output format: version, tag, summary or yaml")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the CLI version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), appName, "CLI version", Version)
		},
	})

	return cmd
}

func configureLogging(w io.Writer, logLevel string) {
	level := slog.LevelWarn
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// run resolves the inputs, calculates and writes the result.
func run(stdin io.Reader, stdout io.Writer, args []string, opts options) error {
	switch opts.output {
	case "version", "tag", "summary", "yaml":
	default:
		return fmt.Errorf("unknown output format %q (expected version, tag, summary or yaml)", opts.output)
	}
	sep, err := convver.ParseSeparator(opts.separator)
	if err != nil {
		return err
	}

	props := convver.Properties{}
	if opts.propertiesFile != "" {
		if props, err = convver.LoadProperties(opts.propertiesFile); err != nil {
			return err
		}
	}
	if !opts.tagPrefixSet {
		if opts.tagPrefix, err = convver.PropertyOrDefault(props, propTagPrefix, opts.tagPrefix); err != nil {
			return err
		}
	}

	last, err := resolveLastVersion(opts, props)
	if err != nil {
		return err
	}

	commits, err := readCommitsArg(stdin, args, sep)
	if err != nil {
		return err
	}

	meta := convver.NewVersionCalculator().Calculate(commits, last)
	slog.Info("version calculated",
		"old", meta.OldVersion,
		"new", meta.NewVersion,
		"bump", meta.BumpType,
		"commits", meta.Commits)

	return writeResult(stdout, meta, opts)
}

// resolveLastVersion returns nil when no source provides a version.
func resolveLastVersion(opts options, props convver.Properties) (*convver.SemanticVersion, error) {
	if opts.lastVersion != "" {
		return parseLastVersion(opts.lastVersion, opts.tagPrefix, "--last-version")
	}
	if opts.versionFile != "" {
		return readVersionFile(opts.versionFile)
	}

	fromProps, err := convver.PropertyOrNil[string](props, propLastVersion)
	if err != nil {
		return nil, err
	}
	if fromProps != nil && strings.TrimSpace(*fromProps) != "" {
		return parseLastVersion(*fromProps, opts.tagPrefix, "property "+propLastVersion)
	}

	file, err := convver.PropertyOrNil[string](props, propVersionFile)
	if err != nil {
		return nil, err
	}
	if file != nil && *file != "" {
		path := *file
		// Relative to the properties file, not the working directory.
		if !filepath.IsAbs(path) && opts.propertiesFile != "" {
			path = filepath.Join(filepath.Dir(opts.propertiesFile), path)
		}
		return readVersionFile(path)
	}

	slog.Debug("no last version given, starting at the initial version")
	return nil, nil
}

func parseLastVersion(raw, prefix, source string) (*convver.SemanticVersion, error) {
	v, err := convver.ParseSemanticVersion(strings.TrimPrefix(strings.TrimSpace(raw), prefix))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	slog.Debug("last version", "version", v.String(), "source", source)
	return &v, nil
}

func readVersionFile(path string) (*convver.SemanticVersion, error) {
	v, err := convver.ReadVersionFromFile(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("last version", "version", v.String(), "source", path)
	return &v, nil
}

func readCommitsArg(stdin io.Reader, args []string, sep convver.Separator) ([]string, error) {
	if len(args) == 0 || args[0] == "-" {
		return convver.ReadCommits(stdin, sep)
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("opening commits file: %w", err)
	}
	defer f.Close()
	return convver.ReadCommits(f, sep)
}

func writeResult(w io.Writer, meta convver.VersionMeta, opts options) error {
	switch opts.output {
	case "version":
		_, err := fmt.Fprintln(w, meta.NewVersion)
		return err
	case "tag":
		_, err := fmt.Fprintln(w, opts.tagPrefix+meta.NewVersion)
		return err
	case "summary":
		old := meta.OldVersion
		if old == "" {
			old = "(none)"
		}
		_, err := fmt.Fprintf(w, "Old Version: %s\nNew Version: %s\nBump Type:   %s\nCommits:     %d\n",
			old, meta.NewVersion, meta.BumpType, meta.Commits)
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(meta); err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (expected version, tag, summary or yaml)", opts.output)
	}
}
