package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"fundview/internal/config"
	"fundview/internal/i18n"
	"fundview/internal/logging"
)

// Version information
const (
	Version   = "0.1.0"
	BuildDate = "2026-08-01"
)

// App holds the application dependencies.
type App struct {
	Config     *config.Config
	Logger     zerolog.Logger
	Translator *i18n.Translator
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config:     cfg,
		Logger:     logger,
		Translator: i18n.NewTranslator(),
	}

	rootCmd := &cobra.Command{
		Use:   "fundview",
		Short: "fundview - bilingual console reports for AI fund decisions",
		Long: `fundview renders trading decisions and backtest results produced by an
AI hedge-fund pipeline as colored console tables, in Chinese, English, or
both languages side by side.

Use 'fundview help <command>' for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/fundview)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("lang", "", "output language: zh, en, or both (default: config)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
	rootCmd.AddCommand(newReportCmd(app))
	rootCmd.AddCommand(newBacktestCmd(app))
	rootCmd.AddCommand(newJournalCmd(app))

	return rootCmd
}

// language resolves the output language: --lang flag first, then config.
func (a *App) language(cmd *cobra.Command) i18n.Language {
	if flag, _ := cmd.Flags().GetString("lang"); flag != "" {
		return i18n.ParseLanguage(flag)
	}
	return i18n.ParseLanguage(a.Config.Language)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{
					"version":    Version,
					"build_date": BuildDate,
				})
			} else {
				output.Printf("fundview v%s\n", Version)
				output.Printf("Build date: %s\n", BuildDate)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			output.Printf("Language:      %s\n", app.Config.Language)
			output.Printf("Colors:        %v\n", app.Config.UI.ColorEnabled)
			output.Printf("Log level:     %s\n", app.Config.Logging.Level)
			output.Printf("Log file:      %s\n", app.Config.Logging.FilePath)
			output.Printf("Journal path:  %s\n", app.Config.Journal.Path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": config.DefaultConfigDir()})
			} else {
				output.Println(config.DefaultConfigDir())
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			if output.IsJSON() {
				return output.JSON(map[string]bool{"valid": true})
			}
			output.Success("✓ Configuration is valid")
			return nil
		},
	})

	return cmd
}
