package main

import (
	"fmt"
	"strings"

	"github.com/nikolayk812/boutique/internal/catalog"
	"github.com/spf13/cobra"
)

const maxRating = 5

func newReviewsCmd() *cobra.Command {
	var featured bool

	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "List customer reviews",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reviews := catalog.Reviews()
			if featured {
				reviews = catalog.FeaturedReviews()
			}

			out := cmd.OutOrStdout()
			for _, r := range reviews {
				stars := strings.Repeat("★", r.Rating) + strings.Repeat("☆", maxRating-r.Rating)
				fmt.Fprintf(out, "%s %s on %s (%s)\n", stars, r.CustomerName, r.ProductName, r.Date.Format("2 Jan 2006"))
				fmt.Fprintf(out, "  %s\n", r.Message)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&featured, "featured", false, "only the reviews shown on the home page")

	return cmd
}
