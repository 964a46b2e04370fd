// Package catalog implements what each storefront screen does when it loads
// products, including the toasts it raises.
package catalog

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/alexisbeaulieu97/storefront/internal/api"
	"github.com/alexisbeaulieu97/storefront/internal/logger"
	"github.com/alexisbeaulieu97/storefront/internal/state"
)

// Toast messages.
const (
	MsgProductsLoaded     = "Products loaded successfully"
	MsgProductsLoadFailed = "Failed to load products"
	MsgProductsRefreshed  = "Products refreshed"
	MsgRefreshFailed      = "Failed to refresh products"
	MsgDetailLoaded       = "Product details loaded"
	MsgDetailLoadFailed   = "Failed to load product details"
)

const (
	defaultHomePageSize    = 10
	defaultListingPageSize = 30
)

// Gateway is the subset of the API client the screens use.
type Gateway interface {
	Products(ctx context.Context, limit, skip int) (*api.ProductPage, error)
	Product(ctx context.Context, id int) (*api.Product, error)
	Search(ctx context.Context, query string) (*api.ProductPage, error)
	Categories(ctx context.Context) ([]api.Category, error)
	ProductsByCategory(ctx context.Context, slug string) (*api.ProductPage, error)
}

// Notifier receives toasts. *state.Store satisfies it.
type Notifier interface {
	Notify(message string, severity state.Severity) state.State
}

// Options tunes page sizes. Zero values fall back to the defaults.
type Options struct {
	HomePageSize    int
	ListingPageSize int
	Logger          *logger.Logger
}

// Browser runs the product screens' data loading.
type Browser struct {
	gateway     Gateway
	notifier    Notifier
	homeSize    int
	listingSize int
	log         *logger.Logger
}

// NewBrowser creates a Browser.
func NewBrowser(gateway Gateway, notifier Notifier, opts Options) *Browser {
	b := &Browser{
		gateway:     gateway,
		notifier:    notifier,
		homeSize:    opts.HomePageSize,
		listingSize: opts.ListingPageSize,
		log:         opts.Logger,
	}
	if b.homeSize <= 0 {
		b.homeSize = defaultHomePageSize
	}
	if b.listingSize <= 0 {
		b.listingSize = defaultListingPageSize
	}
	return b
}

// Home loads the featured products.
func (b *Browser) Home(ctx context.Context) ([]api.Product, error) {
	return b.featured(ctx, MsgProductsLoaded, MsgProductsLoadFailed)
}

// Refresh reloads the featured products.
func (b *Browser) Refresh(ctx context.Context) ([]api.Product, error) {
	return b.featured(ctx, MsgProductsRefreshed, MsgRefreshFailed)
}

func (b *Browser) featured(ctx context.Context, okMsg, failMsg string) ([]api.Product, error) {
	page, err := b.gateway.Products(ctx, b.homeSize, 0)
	if err != nil {
		b.log.With("limit", b.homeSize).Error(err, "failed to load featured products")
		b.notify(failMsg, state.SeverityError)
		return nil, err
	}
	b.notify(okMsg, state.SeveritySuccess)
	return page.Products, nil
}

// Listing loads the first page of the full catalogue. It raises no toast.
func (b *Browser) Listing(ctx context.Context) ([]api.Product, error) {
	page, err := b.gateway.Products(ctx, b.listingSize, 0)
	if err != nil {
		b.log.With("limit", b.listingSize).Error(err, "failed to load product listing")
		return nil, err
	}
	return page.Products, nil
}

// Search runs a product search. A blank query shows the listing instead.
func (b *Browser) Search(ctx context.Context, query string) ([]api.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return b.Listing(ctx)
	}

	page, err := b.gateway.Search(ctx, query)
	if err != nil {
		b.log.With("query", query).Error(err, "product search failed")
		return nil, err
	}
	return page.Products, nil
}

// Detail loads a single product.
func (b *Browser) Detail(ctx context.Context, id int) (*api.Product, error) {
	product, err := b.gateway.Product(ctx, id)
	if err != nil {
		b.log.With("product_id", id).Error(err, "failed to load product details")
		b.notify(MsgDetailLoadFailed, state.SeverityError)
		return nil, err
	}
	b.notify(MsgDetailLoaded, state.SeveritySuccess)
	return product, nil
}

// Category lists the products of one category.
func (b *Browser) Category(ctx context.Context, slug string) ([]api.Product, error) {
	page, err := b.gateway.ProductsByCategory(ctx, slug)
	if err != nil {
		b.log.With("category", slug).Error(err, "failed to load category")
		return nil, err
	}
	return page.Products, nil
}

// Overview is the home screen's combined payload.
type Overview struct {
	Featured   []api.Product
	Categories []api.Category
}

// Overview fetches the featured products and the category list
// concurrently. A category failure leaves Categories empty; a product
// failure fails the whole call.
func (b *Browser) Overview(ctx context.Context) (Overview, error) {
	var out Overview
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		products, err := b.Home(gctx)
		if err != nil {
			return err
		}
		out.Featured = products
		return nil
	})

	g.Go(func() error {
		categories, err := b.gateway.Categories(gctx)
		if err != nil {
			b.log.Warn("category list unavailable: " + err.Error())
			return nil
		}
		out.Categories = categories
		return nil
	})

	if err := g.Wait(); err != nil {
		return Overview{}, err
	}
	return out, nil
}

func (b *Browser) notify(message string, severity state.Severity) {
	if b.notifier != nil {
		b.notifier.Notify(message, severity)
	}
}
