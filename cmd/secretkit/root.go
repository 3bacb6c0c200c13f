package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kbukum/secretkit/config"
	"github.com/kbukum/secretkit/logger"
	"github.com/kbukum/secretkit/secret"
	"github.com/kbukum/secretkit/secret/providers"
	"github.com/kbukum/secretkit/version"
)

// app carries the wired manager through the command tree. One manager
// per process, constructed in the root's PersistentPreRunE and passed
// by handle.
type app struct {
	cfg     *config.Config
	manager *secret.Manager
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)
	a := &app{}

	cmd := &cobra.Command{
		Use:           "secretkit",
		Short:         "resolve and persist secret keys across pluggable providers",
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			logger.Init(cfg.Logging)
			if verbose {
				logger.SetLevel("debug")
			}
			logger.SetGlobalLogger(logger.GetGlobalLogger().WithFields(map[string]interface{}{
				logger.FieldInvocationID: uuid.New().String(),
			}))

			registry := secret.NewRegistry()
			if err := providers.RegisterAll(registry, cfg.Overrides()); err != nil {
				return err
			}
			a.manager = secret.NewManager(registry)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a secretkit config file")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	cmd.AddCommand(
		newGetCmd(a),
		newSetCmd(a),
		newProvidersCmd(a),
	)
	return cmd
}
