package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/storefront/internal/api"
	"github.com/alexisbeaulieu97/storefront/internal/theme"
)

// ProductEntry is one row of a product list.
type ProductEntry struct {
	ID     int
	Title  string
	Price  float64
	Rating float64
}

// ProductList renders products in order with a cursor.
type ProductList struct {
	entries []ProductEntry
	cursor  int
}

// NewProductList builds the list from gateway products.
func NewProductList(products []api.Product, cursor int) ProductList {
	entries := make([]ProductEntry, 0, len(products))
	for _, p := range products {
		entries = append(entries, ProductEntry{ID: p.ID, Title: p.Title, Price: p.Price, Rating: p.Rating})
	}
	if cursor < 0 || cursor >= len(entries) {
		cursor = 0
	}
	return ProductList{entries: entries, cursor: cursor}
}

// Entries returns the ordered entries.
func (l ProductList) Entries() []ProductEntry {
	clone := make([]ProductEntry, len(l.entries))
	copy(clone, l.entries)
	return clone
}

// Selected returns the entry under the cursor.
func (l ProductList) Selected() (ProductEntry, bool) {
	if len(l.entries) == 0 {
		return ProductEntry{}, false
	}
	return l.entries[l.cursor], true
}

// View renders one line per product, highlighting the cursor row.
func (l ProductList) View(styles theme.Styles, empty string) string {
	if len(l.entries) == 0 {
		return styles.Muted.Render(empty)
	}

	lines := make([]string, 0, len(l.entries))
	for i, e := range l.entries {
		line := fmt.Sprintf("%s  %s  %s",
			e.Title,
			styles.Price.Render(FormatPrice(e.Price)),
			styles.Muted.Render(fmt.Sprintf("★ %.2f", e.Rating)),
		)
		if i == l.cursor {
			lines = append(lines, styles.SelectedItem.Render(line))
		} else {
			lines = append(lines, styles.Item.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}

// FormatPrice renders a price the way the gateway reports it.
func FormatPrice(price float64) string {
	return "$" + strconv.FormatFloat(price, 'f', -1, 64)
}
