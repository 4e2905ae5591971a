package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"skinai/cmd/fx/ai_fx"
	"skinai/cmd/fx/product_fx"
	"skinai/internal/infra"
	"skinai/internal/services"
)

// Seed returns the command that loads the bundled product catalog.
func Seed() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Embed and store the bundled product catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(cmd.Context(),
				baseModules(),
				ai_fx.Module,
				product_fx.Module,
				fx.Invoke(func(db *gorm.DB, catalog services.ProductCatalogServiceInterface, log *zap.Logger) error {
					if migrate {
						if err := infra.Migrate(db, log); err != nil {
							return err
						}
					}
					_, err := catalog.SeedCatalog(cmd.Context())
					return err
				}),
			)
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "Run migrations before seeding")
	return cmd
}
