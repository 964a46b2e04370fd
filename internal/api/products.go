package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Products returns one page of the catalogue.
func (c *Client) Products(ctx context.Context, limit, skip int) (*ProductPage, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("skip", strconv.Itoa(skip))

	var page ProductPage
	if err := c.do(ctx, http.MethodGet, "/products?"+q.Encode(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Product returns a single product by id.
func (c *Client) Product(ctx context.Context, id int) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Search runs a free-text product search.
func (c *Client) Search(ctx context.Context, query string) (*ProductPage, error) {
	q := url.Values{}
	q.Set("q", query)

	var page ProductPage
	if err := c.do(ctx, http.MethodGet, "/products/search?"+q.Encode(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Categories lists the product categories.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.do(ctx, http.MethodGet, "/products/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// ProductsByCategory lists the products in one category.
func (c *Client) ProductsByCategory(ctx context.Context, slug string) (*ProductPage, error) {
	var page ProductPage
	if err := c.do(ctx, http.MethodGet, "/products/category/"+url.PathEscape(slug), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
