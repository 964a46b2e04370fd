package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/storefront/internal/api"
	"github.com/alexisbeaulieu97/storefront/internal/forms"
	"github.com/alexisbeaulieu97/storefront/internal/tui"
	"github.com/alexisbeaulieu97/storefront/internal/tui/components"
	apperrors "github.com/alexisbeaulieu97/storefront/pkg/errors"
)

type productsOptions struct {
	jsonOutput bool
	limit      int
	skip       int
}

func newProductsCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &productsOptions{}

	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"p"},
		Short:   "Browse the product catalog",
	}

	cmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output as JSON")

	list := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCatalog(cmd, rootFlags, "list products", func(ctx context.Context, app *App) error {
				limit := opts.limit
				if !cmd.Flags().Changed("limit") {
					limit = app.Config.UI.ListingPageSize
				}
				page, err := app.Client.Products(ctx, limit, opts.skip)
				if err != nil {
					return gatewayError("list products", "fetching products", err)
				}
				if opts.jsonOutput {
					return writeJSON(cmd.OutOrStdout(), page)
				}
				if err := renderProductTable(cmd.OutOrStdout(), page.Products); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\nShowing %d-%d of %d\n", min(page.Skip+1, page.Total), page.Skip+len(page.Products), page.Total)
				return nil
			})
		},
	}
	list.Flags().IntVar(&opts.limit, "limit", 30, "Number of products to fetch")
	list.Flags().IntVar(&opts.skip, "skip", 0, "Number of products to skip")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return newCommandError("show product", fmt.Sprintf("parsing id %q", args[0]), fmt.Errorf("invalid product id %q", args[0]), "Product ids are positive integers; see 'storefront products list'.")
			}
			return withCatalog(cmd, rootFlags, "show product", func(ctx context.Context, app *App) error {
				product, err := app.Browser.Detail(ctx, id)
				if err != nil {
					return gatewayError("show product", fmt.Sprintf("fetching product %d", id), err)
				}
				if opts.jsonOutput {
					return writeJSON(cmd.OutOrStdout(), product)
				}
				renderProduct(cmd.OutOrStdout(), product)
				return nil
			})
		},
	}

	search := &cobra.Command{
		Use:   "search <query>",
		Short: "Search products by keyword",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, ok := forms.SearchQuery(strings.Join(args, " "))
			if !ok {
				return newCommandError("search products", "reading query", errors.New("query is blank"), "Use 'storefront products list' to browse everything.")
			}
			return withCatalog(cmd, rootFlags, "search products", func(ctx context.Context, app *App) error {
				products, err := app.Browser.Search(ctx, query)
				if err != nil {
					return gatewayError("search products", fmt.Sprintf("searching for %q", query), err)
				}
				return renderProducts(cmd, opts, products)
			})
		},
	}

	categories := &cobra.Command{
		Use:   "categories",
		Short: "List product categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCatalog(cmd, rootFlags, "list categories", func(ctx context.Context, app *App) error {
				found, err := app.Client.Categories(ctx)
				if err != nil {
					return gatewayError("list categories", "fetching categories", err)
				}
				if opts.jsonOutput {
					return writeJSON(cmd.OutOrStdout(), found)
				}
				writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(writer, "SLUG\tNAME")
				for _, c := range found {
					fmt.Fprintf(writer, "%s\t%s\n", c.Slug, c.Name)
				}
				return writer.Flush()
			})
		},
	}

	category := &cobra.Command{
		Use:   "category <slug>",
		Short: "List the products of one category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slug := args[0]
			return withCatalog(cmd, rootFlags, "list category", func(ctx context.Context, app *App) error {
				products, err := app.Browser.Category(ctx, slug)
				if err != nil {
					return gatewayError("list category", fmt.Sprintf("fetching category %q", slug), err)
				}
				return renderProducts(cmd, opts, products)
			})
		},
	}

	cmd.AddCommand(list, get, search, categories, category)
	return cmd
}

// withCatalog opens the App and refuses to continue while the gate is closed.
func withCatalog(cmd *cobra.Command, rootFlags *rootFlags, operation string, fn func(ctx context.Context, app *App) error) error {
	return withApp(cmd, rootFlags, operation, func(ctx context.Context, app *App) error {
		if err := requireGate(app, operation); err != nil {
			return err
		}
		return fn(ctx, app)
	})
}

func gatewayError(operation, detail string, err error) error {
	return newCommandError(operation, detail, errors.New(apperrors.Reason(err)), "Check your connection and the configured api.base_url.")
}

func renderProducts(cmd *cobra.Command, opts *productsOptions, products []api.Product) error {
	if opts.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), products)
	}
	if len(products) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No products found")
		return nil
	}
	return renderProductTable(cmd.OutOrStdout(), products)
}

func renderProductTable(out io.Writer, products []api.Product) error {
	writer := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tTITLE\tPRICE\tRATING\tSTOCK")
	for _, p := range products {
		fmt.Fprintf(writer, "%d\t%s\t%s\t%.2f\t%s\n", p.ID, p.Title, components.FormatPrice(p.Price), p.Rating, tui.StockLabel(p))
	}
	return writer.Flush()
}

func renderProduct(out io.Writer, p *api.Product) {
	fmt.Fprintf(out, "%s\n", strings.ToUpper(tui.BrandLabel(*p)))
	fmt.Fprintf(out, "%s\n", p.Title)
	fmt.Fprintf(out, "%s  ★ %.2f (%d reviews)", components.FormatPrice(p.Price), p.Rating, len(p.Reviews))
	if p.DiscountPercentage > 0 {
		fmt.Fprintf(out, "  %s%% OFF", strconv.FormatFloat(p.DiscountPercentage, 'f', -1, 64))
	}
	fmt.Fprintf(out, "\n\nDescription:\n  %s\n\n", valueOrFallback(p.Description, "(none)"))

	fmt.Fprintf(out, "Category: %s\n", p.Category)
	fmt.Fprintf(out, "Stock:    %s\n", tui.StockLabel(*p))
	fmt.Fprintf(out, "SKU:      %s\n", valueOrFallback(p.SKU, "(none)"))
	fmt.Fprintf(out, "Weight:   %sg\n", strconv.FormatFloat(p.Weight, 'f', -1, 64))
	fmt.Fprintf(out, "Warranty: %s\n", valueOrFallback(p.WarrantyInformation, "(none)"))
	fmt.Fprintf(out, "Shipping: %s\n", valueOrFallback(p.ShippingInformation, "(none)"))

	if len(p.Tags) > 0 {
		fmt.Fprintf(out, "Tags:     %s\n", strings.Join(p.Tags, ", "))
	}
}

func writeJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
