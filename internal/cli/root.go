package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/Masterminds/semver/v3"
	"github.com/resproj/resproj/internal/branding"
	"github.com/resproj/resproj/internal/condaenv"
	"github.com/resproj/resproj/internal/config"
	"github.com/resproj/resproj/internal/project"
	"github.com/resproj/resproj/internal/scaffold"
	"github.com/spf13/cobra"
)

// BuildInfo carries values injected via ldflags plus the embedded master
// README whose directory structure section is copied into new projects.
type BuildInfo struct {
	Version   string
	Commit    string
	Date      string
	MasterDoc string
}

// rootOptions holds the parsed flags of one invocation.
type rootOptions struct {
	language   project.Language
	name       string
	verbose    bool
	configFile string
}

// Execute runs the root command with build info injected via ldflags. An
// interrupt cancels the command context, which stops a running conda child.
func Execute(info BuildInfo) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCmd(info).ExecuteContext(ctx)
}

func newRootCmd(info BuildInfo) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   branding.CLIName() + " <path>",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` creates a new research project directory with a fixed layout
(src, raw, results, paper, tmp, cache, choices), a git repository, a README
and a .gitignore. With --language it also writes starter files for Python
(creating a conda environment) or Julia.

Examples:
  resproj ~/research/bar-baz
  resproj ~/research/bar-baz --language julia
  resproj ./analysis -l python -n cohort-analysis`,
		Version:       versionString(info),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cmd, opts.verbose)
			return config.Load(opts.configFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args[0], opts, info)
		},
	}

	cmd.Flags().VarP(&opts.language, "language", "l", "Main programming language: python or julia")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Project name (default: final segment of <path>)")
	cmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Log each scaffolding step")
	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "Config file (default: ~/"+branding.HomeDir()+"/config.yaml)")

	return cmd
}

func runCreate(cmd *cobra.Command, path string, opts *rootOptions, info BuildInfo) error {
	lang := opts.language
	if !cmd.Flags().Changed("language") {
		configured, err := project.ParseLanguage(config.DefaultLanguage())
		if err != nil {
			return fmt.Errorf("config key %s: %w", config.KeyDefaultLanguage, err)
		}
		lang = configured
	}

	var name *string
	if cmd.Flags().Changed("name") {
		name = &opts.name
	}
	spec, err := project.Resolve(path, name, lang)
	if err != nil {
		return err
	}

	result, err := scaffold.Generate(cmd.Context(), spec, scaffold.Options{
		MasterDoc:      info.MasterDoc,
		Conda:          condaenv.New(config.CondaExecutable()),
		ProjectVersion: config.ProjectVersion(),
		Stdout:         cmd.OutOrStdout(),
		Stderr:         cmd.ErrOrStderr(),
		Logger:         slog.Default(),
	})
	if err != nil {
		return err
	}

	printResult(cmd, spec, result)
	return nil
}

func printResult(cmd *cobra.Command, spec *project.Spec, result *scaffold.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created project %q at %s/\n", spec.Name, result.Root)
	for _, f := range result.Files {
		fmt.Fprintf(out, "  %s\n", f)
	}
}

// setupLogging installs the default slog logger: Info on stderr, Debug with
// --verbose.
func setupLogging(cmd *cobra.Command, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	})))
}

// versionString normalizes a semver build version and appends build
// metadata. Non-semver versions such as "dev" are shown as given.
func versionString(info BuildInfo) string {
	version := info.Version
	if v, err := semver.NewVersion(version); err == nil {
		version = v.String()
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, info.Commit, info.Date)
}
