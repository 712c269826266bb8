package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hooksync/internal/app"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "HOOKSYNC"

const (
	exitInvalidArgument = 2
	exitLockError       = 3
	exitConfigError     = 4
	exitOtherError      = 5
)

type RootConfig struct {
	SettingsFile string
	LogLevel     string
}

func Execute() {
	os.Exit(run(os.Args[1:]))
}

// run executes the root command and returns the process exit code: 0 when
// nothing changed, 1 when a rev was updated, higher codes on failure.
func run(args []string) int {
	viper.Reset()
	var result app.SyncResult
	root := newRootCommand(&result)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		return exitCodeForError(err)
	}
	return result.ExitCode()
}

func newRootCommand(result *app.SyncResult) *cobra.Command {
	cfg := RootConfig{}
	opts := syncOptions{}
	cmd := &cobra.Command{
		Use:          "hooksync [lockfile ...]",
		Short:        "Sync pre-commit hook revisions with poetry.lock",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.SettingsFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			synced, err := runSync(cmd, args, opts)
			if result != nil {
				*result = synced
			}
			return err
		},
	}
	cmd.PersistentFlags().StringVar(&cfg.SettingsFile, "settings", "", "Settings file path")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))

	bindSyncFlags(cmd, &opts)
	return cmd
}

func initConfig(settingsFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if settingsFile != "" {
		viper.SetConfigFile(settingsFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read settings file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("hooksync")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/hooksync")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to read settings file").
			WithCause(err)
	}
	return nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func exitCodeForError(err error) int {
	var builder *errbuilder.ErrBuilder
	if !errors.As(err, &builder) {
		// cobra flag and argument errors
		return exitInvalidArgument
	}
	code := errbuilder.CodeOf(err)
	message := errorMessage(err)
	switch {
	case strings.HasPrefix(message, "lock file"):
		return exitLockError
	case strings.HasPrefix(message, "pre-commit config"):
		return exitConfigError
	case strings.HasPrefix(message, "mapping file"):
		return exitOtherError
	}
	if code == errbuilder.CodeInvalidArgument {
		return exitInvalidArgument
	}
	return exitOtherError
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
