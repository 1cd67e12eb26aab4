package main

import (
	"fmt"

	"github.com/nikolayk812/boutique/internal/forms"
	"github.com/spf13/cobra"
)

func newAccountCmd(current func() *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Register, sign in and sign out",
	}

	var reg forms.Register
	register := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := reg.Validate(); err != nil {
				return err
			}

			session, err := current().accounts.Register(cmd.Context(), reg.Name, reg.Email, reg.Password)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s\n", session.Name)
			return nil
		},
	}
	register.Flags().StringVar(&reg.Name, "name", "", "full name")
	register.Flags().StringVar(&reg.Email, "email", "", "email address")
	register.Flags().StringVar(&reg.Password, "password", "", "password, at least 6 characters")

	var creds forms.Login
	login := &cobra.Command{
		Use:   "login",
		Short: "Sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := creds.Validate(); err != nil {
				return err
			}

			session, err := current().accounts.Login(cmd.Context(), creds.Email, creds.Password)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s <%s>\n", session.Name, session.Email)
			return nil
		},
	}
	login.Flags().StringVar(&creds.Email, "email", "", "email address")
	login.Flags().StringVar(&creds.Password, "password", "", "password")

	logout := &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := current().accounts.Logout(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}

	whoami := &cobra.Command{
		Use:   "whoami",
		Short: "Print the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, ok := current().accounts.CurrentSession()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> (%s)\n", session.Name, session.Email, session.ID)
			return nil
		},
	}

	cmd.AddCommand(register, login, logout, whoami)

	return cmd
}
