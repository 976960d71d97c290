package main

// Must be first import - fixes Warp terminal delay before lipgloss loads
import _ "github.com/wahlandcase/autocommit/internal/termfix"

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/wahlandcase/autocommit/internal/analyzer"
	"github.com/wahlandcase/autocommit/internal/app"
	"github.com/wahlandcase/autocommit/internal/config"
	"github.com/wahlandcase/autocommit/internal/git"
	"github.com/wahlandcase/autocommit/internal/logging"
	"github.com/wahlandcase/autocommit/internal/ui"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

type options struct {
	dryRun     bool
	amend      bool
	yes        bool
	noColor    bool
	verbose    bool
	path       string
	configPath string
}

func main() {
	if err := newRootCommand(nil).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorStyle.Render(errorMessage(err)))
		os.Exit(1)
	}
}

// errorMessage turns an error from run into the line shown to the user
func errorMessage(err error) string {
	var notRepo *git.NotRepoError
	switch {
	case errors.As(err, &notRepo):
		return "Not a git repository!"
	case errors.Is(err, git.ErrBareRepository):
		return "Bare repo detected!"
	default:
		return "Error: " + err.Error()
	}
}

// newRootCommand builds the CLI. A nil logWriter logs to the rotated file.
func newRootCommand(logWriter io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "autocommit",
		Short:         "Suggest a conventional commit message for pending changes and commit them",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, logWriter)
		},
	}

	rootCmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Show message without committing")
	rootCmd.Flags().BoolVar(&opts.amend, "amend", false, "Amend last commit")
	rootCmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Commit without asking for confirmation")
	rootCmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().BoolVar(&opts.verbose, "verbose", false, "Print debug logs to stderr")
	rootCmd.Flags().StringVarP(&opts.path, "path", "C", "", "Repository path (default: current directory)")
	rootCmd.Flags().StringVar(&opts.configPath, "config", "", "Config file (default: user config dir)")

	return rootCmd
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFile(path)
}

func run(cmd *cobra.Command, opts *options, logWriter io.Writer) error {
	if opts.noColor {
		ui.DisableColor()
	}
	out := cmd.OutOrStdout()

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	repo, err := git.Open(opts.path)
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logCfg := logging.Config{Writer: logWriter, Level: level, RepoPath: repo.Root()}
	if opts.verbose {
		logCfg.Level = zerolog.DebugLevel
		logCfg.Console = cmd.ErrOrStderr()
	}
	ctx, err := logging.New(cmd.Context(), logCfg)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	logger := logging.Get(ctx)

	fmt.Fprintln(out, ui.RenderBanner(opts.dryRun))
	fmt.Fprintln(out)

	pending, err := repo.HasPendingChanges()
	if err != nil {
		return err
	}
	if !pending {
		fmt.Fprintln(out, ui.WarningStyle.Render("No changes to commit."))
		return nil
	}

	analyzerOpts := cfg.AnalyzerOptions()
	evidence := analyzer.Collect(ctx, repo, analyzerOpts)
	msg := analyzer.MessageFor(ctx, evidence, analyzerOpts)
	if msg.IsNoChanges() {
		fmt.Fprintln(out, ui.WarningStyle.Render("No changes to commit."))
		return nil
	}

	fmt.Fprintln(out, ui.FileList(evidence.Paths))
	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.MessagePanel(msg, "autocommit v"+version))

	if opts.dryRun {
		fmt.Fprintln(out, ui.InfoStyle.Render("Dry run complete."))
		return nil
	}

	if !opts.yes {
		confirmed, err := app.Confirm(msg, "Commit this message?", cfg.Commit.ConfirmDefault, cmd.InOrStdin(), out)
		if err != nil && !errors.Is(err, app.ErrAborted) {
			return fmt.Errorf("confirmation prompt failed: %w", err)
		}
		if !confirmed {
			fmt.Fprintln(out, ui.WarningStyle.Render("Commit aborted."))
			return nil
		}
	}

	hash, err := repo.CommitAll(msg.String(), cfg.CommitOptions(opts.amend))
	if err != nil {
		logger.Error().Err(err).Bool("amend", opts.amend).Msg("commit failed")
		return fmt.Errorf("commit failed: %w", err)
	}
	logger.Info().Str("hash", hash).Bool("amend", opts.amend).Msg("committed")

	action := "committed"
	if opts.amend {
		action = "amended"
	}
	fmt.Fprintln(out, ui.SuccessStyle.Render(fmt.Sprintf("Successfully %s! (%s)", action, hash)))
	return nil
}
