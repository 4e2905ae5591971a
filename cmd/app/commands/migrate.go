package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"skinai/internal/infra"
)

// Migrate returns the command that enables pgvector and creates the tables.
func Migrate() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(cmd.Context(), baseModules(), fx.Invoke(func(db *gorm.DB, log *zap.Logger) error {
				return infra.Migrate(db, log)
			}))
		},
	}
}

// runOnce builds the app, which runs its invokes, then starts and stops it so
// shutdown hooks close the connections.
func runOnce(ctx context.Context, opts ...fx.Option) error {
	if ctx == nil {
		ctx = context.Background()
	}
	app := fx.New(opts...)
	if err := app.Err(); err != nil {
		return err
	}
	if err := app.Start(ctx); err != nil {
		return err
	}
	return app.Stop(ctx)
}
