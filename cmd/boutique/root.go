package main

import (
	"github.com/nikolayk812/boutique/internal/config"
	"github.com/spf13/cobra"
)

// newRootCmd returns the command tree and a func releasing whatever the
// invoked command opened.
func newRootCmd() (*cobra.Command, func() error) {
	var a *app

	root := &cobra.Command{
		Use:          "boutique",
		Short:        "Storefront cart, accounts and WhatsApp checkout",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			a, err = newApp(cmd.Context(), cfg, cmd.ErrOrStderr())
			return err
		},
	}

	current := func() *app { return a }

	root.AddCommand(
		newCatalogCmd(current),
		newCartCmd(current),
		newAccountCmd(current),
		newCheckoutCmd(current),
		newContactCmd(current),
		newBookCmd(current),
		newReviewsCmd(),
	)

	closeApp := func() error {
		if a == nil {
			return nil
		}
		return a.close()
	}

	return root, closeApp
}
