package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hooksync/internal/app"
)

const (
	defaultLockFile   = "poetry.lock"
	defaultConfigFile = ".pre-commit-config.yaml"
)

type syncOptions struct {
	All    bool
	Skip   []string
	Config string
	DB     []string
	DryRun bool
}

func bindSyncFlags(cmd *cobra.Command, opts *syncOptions) {
	cmd.Flags().BoolVar(&opts.All, "all", false, "Also sync main dependencies, not only dev dependencies")
	cmd.Flags().StringSliceVar(&opts.Skip, "skip", nil, "Dependencies to leave untouched")
	cmd.Flags().StringVar(&opts.Config, "config", defaultConfigFile, "Path to the pre-commit config file")
	cmd.Flags().StringSliceVar(&opts.DB, "db", nil, "Custom dependency mapping file(s), replacing the built-in table")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Report updates without writing the config")

	_ = viper.BindPFlag("all", cmd.Flags().Lookup("all"))
	_ = viper.BindPFlag("skip", cmd.Flags().Lookup("skip"))
	_ = viper.BindPFlag("config", cmd.Flags().Lookup("config"))
	_ = viper.BindPFlag("db", cmd.Flags().Lookup("db"))
	_ = viper.BindPFlag("dry_run", cmd.Flags().Lookup("dry-run"))
}

func runSync(cmd *cobra.Command, args []string, opts syncOptions) (app.SyncResult, error) {
	lockPaths := args
	if len(lockPaths) == 0 {
		lockPaths = []string{defaultLockFile}
	}
	ctx := log.Logger.WithContext(cmd.Context())

	service := app.NewService()
	result, err := service.Sync(ctx, app.SyncRequest{
		LockPaths:    lockPaths,
		ConfigPath:   resolveString(cmd, opts.Config, "config", "config"),
		MappingPaths: resolveStrings(cmd, opts.DB, "db", "db"),
		All:          resolveBool(cmd, opts.All, "all", "all"),
		Skip:         resolveStrings(cmd, opts.Skip, "skip", "skip"),
		DryRun:       resolveBool(cmd, opts.DryRun, "dry_run", "dry-run"),
	})
	if err != nil {
		return result, err
	}
	out := cmd.OutOrStdout()
	for _, update := range result.Updates {
		fmt.Fprintf(out, "%s: %s -> %s (%s)\n", update.Dependency, update.From, update.To, update.Repo)
	}
	return result, nil
}

// resolveString and friends prefer an explicitly set flag, then viper,
// which covers env vars, the settings file and the flag default.
func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	if flagChanged(cmd, flagName) {
		return values
	}
	return viper.GetStringSlice(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	flag := cmd.Flags().Lookup(name)
	return flag != nil && flag.Changed
}
