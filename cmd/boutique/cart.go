package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nikolayk812/boutique/internal/catalog"
	"github.com/nikolayk812/boutique/internal/checkout"
	"github.com/nikolayk812/boutique/internal/domain"
	"github.com/spf13/cobra"
)

func newCartCmd(current func() *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Inspect and change the cart",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := current()
			printCart(cmd.OutOrStdout(), a.merchant, a.cart.Snapshot())
			return nil
		},
	}

	add := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add one unit of a catalog product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()

			product, err := catalog.Find(args[0])
			if err != nil {
				return err
			}

			if err := a.cart.AddItem(cmd.Context(), product); err != nil {
				return err
			}

			printCart(cmd.OutOrStdout(), a.merchant, a.cart.Snapshot())
			return nil
		},
	}

	update := &cobra.Command{
		Use:   "update <product-id> <quantity>",
		Short: "Set the quantity of a line; values below 1 are ignored",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()

			quantity, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("quantity[%s] is not a number", args[1])
			}

			if err := a.cart.UpdateQuantity(cmd.Context(), args[0], quantity); err != nil {
				return err
			}

			printCart(cmd.OutOrStdout(), a.merchant, a.cart.Snapshot())
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()

			if err := a.cart.RemoveItem(cmd.Context(), args[0]); err != nil {
				return err
			}

			printCart(cmd.OutOrStdout(), a.merchant, a.cart.Snapshot())
			return nil
		},
	}

	clearCart := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := current()

			if err := a.cart.Clear(cmd.Context()); err != nil {
				return err
			}

			printCart(cmd.OutOrStdout(), a.merchant, a.cart.Snapshot())
			return nil
		},
	}

	cmd.AddCommand(show, add, update, remove, clearCart)

	return cmd
}

func printCart(out io.Writer, m checkout.Merchant, cart domain.Cart) {
	if cart.IsEmpty() {
		fmt.Fprintln(out, "Your cart is empty")
		return
	}

	format := func(amount int64) string {
		return domain.Money{Amount: amount, Currency: m.Currency}.Format(m.Locale)
	}

	for _, line := range cart.Lines {
		fmt.Fprintf(out, "%-16s %-28s x%-3d %s\n", line.ProductID, line.Name, line.Quantity, format(line.Subtotal()))
	}
	fmt.Fprintf(out, "%d item(s), total %s\n", cart.TotalItems(), format(cart.TotalPrice()))
}
