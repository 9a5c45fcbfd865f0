// Package cart keeps a shopper's cart in memory and mirrors every change into a Store.
package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// Product is the part of a catalog product the cart keeps
type Product struct {
	ProductID       uint            `json:"product_id"`
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	Grade           string          `json:"grade,omitempty"`
	UnitOfMeasure   string          `json:"unit_of_measure"`
	PricePerUnit    decimal.Decimal `json:"price_per_unit"`
	MinimumOrderQty int             `json:"minimum_order_qty,omitempty"`
	ImagePath       string          `json:"image_path,omitempty"`
}

type Item struct {
	Product
	Quantity int `json:"quantity"`
}

// LineTotal is price times quantity for one line
func LineTotal(item Item) decimal.Decimal {
	return item.PricePerUnit.Mul(decimal.NewFromInt(int64(item.Quantity)))
}

// Cart is safe for concurrent use. A mutation is kept only when the store accepted it.
type Cart struct {
	mu    sync.Mutex
	items []Item
	store Store
}

// Open hydrates a cart from store
func Open(ctx context.Context, store Store) (*Cart, error) {
	items, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	kept := items[:0]
	for _, it := range items {
		if it.Quantity > 0 {
			kept = append(kept, it)
		}
	}
	return &Cart{items: kept, store: store}, nil
}

// Add increments the line for p or appends it with quantity 1
func (c *Cart) Add(ctx context.Context, p Product) error {
	return c.mutate(ctx, func(items []Item) []Item {
		for i := range items {
			if items[i].ProductID == p.ProductID {
				items[i].Quantity++
				return items
			}
		}
		return append(items, Item{Product: p, Quantity: 1})
	})
}

func (c *Cart) Remove(ctx context.Context, productID uint) error {
	return c.mutate(ctx, func(items []Item) []Item {
		return removeLine(items, productID)
	})
}

// SetQuantity replaces the quantity of a line; zero or less removes it.
// Unknown products are ignored.
func (c *Cart) SetQuantity(ctx context.Context, productID uint, quantity int) error {
	return c.mutate(ctx, func(items []Item) []Item {
		if quantity <= 0 {
			return removeLine(items, productID)
		}
		for i := range items {
			if items[i].ProductID == productID {
				items[i].Quantity = quantity
			}
		}
		return items
	})
}

func (c *Cart) Clear(ctx context.Context) error {
	return c.mutate(ctx, func([]Item) []Item { return nil })
}

// Items returns a copy of the lines in insertion order
func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(LineTotal(it))
	}
	return total
}

// Count is the number of units across all lines
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) mutate(ctx context.Context, fn func([]Item) []Item) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]Item, len(c.items))
	copy(next, c.items)
	next = fn(next)
	if next == nil {
		next = []Item{}
	}

	if err := c.store.Save(ctx, next); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	c.items = next
	return nil
}

func removeLine(items []Item, productID uint) []Item {
	out := items[:0]
	for _, it := range items {
		if it.ProductID != productID {
			out = append(out, it)
		}
	}
	return out
}
