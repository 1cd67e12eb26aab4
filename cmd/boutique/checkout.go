package main

import (
	"fmt"

	"github.com/nikolayk812/boutique/internal/checkout"
	"github.com/nikolayk812/boutique/internal/forms"
	"github.com/spf13/cobra"
)

func newCheckoutCmd(current func() *app) *cobra.Command {
	var details forms.Checkout

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place the order and print the WhatsApp link",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			order, err := current().checkout.PlaceOrder(cmd.Context(), details)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, order.Message)
			fmt.Fprintln(out)
			fmt.Fprintln(out, order.Link)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&details.Name, "name", "", "full name")
	flags.StringVar(&details.Email, "email", "", "email address")
	flags.StringVar(&details.Phone, "phone", "", "phone number")
	flags.StringVar(&details.Address, "address", "", "delivery address")
	flags.StringVar(&details.Instructions, "instructions", "", "special instructions")

	return cmd
}

func newContactCmd(current func() *app) *cobra.Command {
	var inquiry forms.Contact

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Validate an inquiry and print the merchant chat link",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := inquiry.Validate(); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), checkout.InquiryLink(current().merchant.WhatsAppNumber))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&inquiry.Name, "name", "", "full name")
	flags.StringVar(&inquiry.Email, "email", "", "email address")
	flags.StringVar(&inquiry.Phone, "phone", "", "phone number")
	flags.StringVar(&inquiry.Message, "message", "", "your message")

	return cmd
}

func newBookCmd(current func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "book",
		Short: "Print the chat link for booking a stitching service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), checkout.BookingLink(current().merchant.WhatsAppNumber))
			return nil
		},
	}
}
