// Package commands defines the skinai CLI and assembles the fx application
// for each command.
package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"skinai/cmd/fx/account_fx"
	"skinai/cmd/fx/ai_fx"
	"skinai/cmd/fx/config_fx"
	"skinai/cmd/fx/controllers_fx"
	"skinai/cmd/fx/db_fx"
	"skinai/cmd/fx/logger_fx"
	"skinai/cmd/fx/memcache_fx"
	"skinai/cmd/fx/metrics_fx"
	"skinai/cmd/fx/product_fx"
	"skinai/cmd/fx/wizard_fx"
)

func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "skinai",
		Short:         "Skin assessment wizard and recommendation API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(Serve())
	cmd.AddCommand(Migrate())
	cmd.AddCommand(Seed())

	return cmd
}

// baseModules are shared by every command that talks to the database.
func baseModules() fx.Option {
	return fx.Options(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
	)
}

func appModules() fx.Option {
	return fx.Options(
		baseModules(),
		metrics_fx.Module,
		memcache_fx.Module,
		ai_fx.Module,
		product_fx.Module,
		wizard_fx.Module,
		account_fx.Module,
		controllers_fx.Module,
	)
}
