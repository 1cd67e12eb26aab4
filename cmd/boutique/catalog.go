package main

import (
	"fmt"

	"github.com/nikolayk812/boutique/internal/catalog"
	"github.com/nikolayk812/boutique/internal/domain"
	"github.com/spf13/cobra"
)

func newCatalogCmd(current func() *app) *cobra.Command {
	var featured bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := current()

			products := catalog.All()
			if featured {
				products = catalog.Featured()
			}

			out := cmd.OutOrStdout()
			for _, p := range products {
				price := domain.Money{Amount: p.Price, Currency: a.merchant.Currency}.Format(a.merchant.Locale)
				fmt.Fprintf(out, "%-16s %-28s %-12s %s\n", p.ID, p.Name, p.Category, price)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&featured, "featured", false, "only the featured products")

	return cmd
}
