package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/willibrandon/tedit/internal/app"
	"github.com/willibrandon/tedit/internal/config"
	"github.com/willibrandon/tedit/internal/dialog"
	"github.com/willibrandon/tedit/internal/logger"
)

var (
	// Version info (set by ldflags)
	version = "dev"

	// Flags
	configPath string

	errFormat = color.New(color.FgHiRed).SprintFunc()
)

func main() {
	v := config.NewViper()

	rootCmd := &cobra.Command{
		Use:   "tedit [file]",
		Short: "A small terminal text editor",
		Long: `tedit edits one text file at a time with syntax highlighting.

Without a file argument, editor.default_file from the config is opened.
Config is read from ~/.config/tedit/config.yaml or ./config.yaml and
TEDIT_* environment variables (for example TEDIT_EDITOR_THEME=nord).`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			file := ""
			if len(args) == 1 {
				file = args[0]
			}
			return run(v, file)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file path (default ~/.config/tedit/config.yaml)")
	flags.Bool("debug", false, "enable debug logging and warning counters")
	flags.String("theme", "", "color theme, e.g. solarized-dark, nord")
	flags.Bool("native-dialogs", false, "use the desktop file dialogs instead of the in-terminal ones")
	bindFlag(v, rootCmd, "debug", "debug")
	bindFlag(v, rootCmd, "editor.theme", "theme")
	bindFlag(v, rootCmd, "dialogs.native", "native-dialogs")

	rootCmd.AddCommand(newConfigCmd(v))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", errFormat("Error:"), err)
		os.Exit(1)
	}
}

func bindFlag(v *viper.Viper, cmd *cobra.Command, key, name string) {
	if err := v.BindPFlag(key, cmd.PersistentFlags().Lookup(name)); err != nil {
		panic(err)
	}
}

// newConfigCmd creates the config subcommand that prints the effective
// configuration.
func newConfigCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(v, configPath)
			if err != nil {
				return err
			}
			out, err := cfg.YAML()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// run starts the editor on file.
func run(v *viper.Viper, file string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("tedit needs an interactive terminal")
	}

	cfg, err := config.LoadConfig(v, configPath)
	if err != nil {
		return err
	}

	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	if err := logger.InitLogger(level, cfg.Log.File, cfg.Debug); err != nil {
		return fmt.Errorf("error opening log file: %w", err)
	}
	defer logger.Close()
	if cfg.Debug {
		fmt.Fprintf(os.Stderr, "Debug mode: Logs written to %s\n", logger.LogPath)
	}

	opts := app.Options{InitialFile: file}
	if cfg.Dialogs.Native {
		opts.Picker = dialog.NewNative(cfg.Dialogs.StartDir)
	}

	// Create the Bubbletea program
	p := tea.NewProgram(
		app.New(cfg, opts),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse support
	)

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	// Cleanup
	if m, ok := finalModel.(app.Model); ok {
		m.Cleanup()
	} else if m, ok := finalModel.(*app.Model); ok {
		m.Cleanup()
	}
	return nil
}
