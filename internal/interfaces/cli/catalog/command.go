package catalog

import (
	"fmt"

	"github.com/spf13/cobra"

	infracatalog "github.com/safehub-io/safehub/internal/infrastructure/catalog"
	"github.com/safehub-io/safehub/internal/infrastructure/config"
	"github.com/safehub-io/safehub/internal/shared/money"
)

var showHidden bool

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the module catalog",
		Long:  `Print the module catalog with category, tier, and base pricing. Uses the configured catalog file, or the built-in catalog when none is set.`,
		RunE:  run,
	}

	cmd.Flags().BoolVar(&showHidden, "all", false, "Include hidden modules")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cat, err := infracatalog.Load(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	modules := cat.VisibleModules()
	if showHidden {
		modules = cat.All()
	}

	fmt.Printf("%-24s %-28s %-10s %-14s %-14s %s\n", "ID", "NAME", "CATEGORY", "TIER", "MODEL", "BASE PRICE")
	for _, m := range modules {
		pricing := m.Pricing()
		base := money.Format(pricing.BasePrice, "EUR")
		if m.IsCore() {
			base = "included"
		}
		fmt.Printf("%-24s %-28s %-10s %-14s %-14s %s\n",
			m.ID(), m.Name(), m.Category().String(), m.Tier().String(), pricing.Model.String(), base)
	}

	fmt.Printf("\n%d modules\n", len(modules))
	return nil
}
