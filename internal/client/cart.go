package client

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"streamhub-backend/internal/models"
)

// ErrEmptyCart rejects checkout of a cart with no items.
var ErrEmptyCart = errors.New("client: cart is empty")

// CartItem is one movie in the cart.
type CartItem struct {
	MovieID  uint    `json:"movie_id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// CartStore persists cart items between sessions. Implementations decide
// the medium; the cart only calls Load once and Save after each mutation.
type CartStore interface {
	Load() ([]CartItem, error)
	Save(items []CartItem) error
}

// Cart is a storefront cart session backed by an injected store. It is not
// safe for concurrent use.
type Cart struct {
	store CartStore
	items []CartItem
	now   func() time.Time
}

// NewCart restores the cart from the store. A store load failure starts an
// empty cart rather than failing the session.
func NewCart(store CartStore) *Cart {
	items, err := store.Load()
	if err != nil {
		items = nil
	}
	return &Cart{
		store: store,
		items: items,
		now:   time.Now,
	}
}

// Add puts a movie in the cart, or bumps its quantity when already present.
func (c *Cart) Add(movie *models.Movie, price float64) error {
	for i := range c.items {
		if c.items[i].MovieID == movie.ID {
			c.items[i].Quantity++
			return c.store.Save(c.items)
		}
	}
	c.items = append(c.items, CartItem{
		MovieID:  movie.ID,
		Title:    movie.Title,
		Price:    price,
		Quantity: 1,
	})
	return c.store.Save(c.items)
}

// SetQuantity adjusts an item's quantity; zero or less removes it.
func (c *Cart) SetQuantity(movieID uint, quantity int) error {
	if quantity <= 0 {
		return c.Remove(movieID)
	}
	for i := range c.items {
		if c.items[i].MovieID == movieID {
			c.items[i].Quantity = quantity
			return c.store.Save(c.items)
		}
	}
	return nil
}

func (c *Cart) Remove(movieID uint) error {
	for i := range c.items {
		if c.items[i].MovieID == movieID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return c.store.Save(c.items)
		}
	}
	return nil
}

// Items returns a copy; mutating it does not touch the cart.
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func (c *Cart) Clear() error {
	c.items = nil
	return c.store.Save(c.items)
}

// OrderSummary is the result of checking out. No payment is collected;
// checkout only snapshots the cart into an order record.
type OrderSummary struct {
	OrderID  string     `json:"order_id"`
	Items    []CartItem `json:"items"`
	Total    float64    `json:"total"`
	PlacedAt time.Time  `json:"placed_at"`
}

// Checkout snapshots the cart into an order summary and empties the cart.
func (c *Cart) Checkout() (*OrderSummary, error) {
	if len(c.items) == 0 {
		return nil, ErrEmptyCart
	}

	summary := &OrderSummary{
		OrderID:  uuid.New().String(),
		Items:    c.Items(),
		Total:    c.Total(),
		PlacedAt: c.now().UTC(),
	}

	if err := c.Clear(); err != nil {
		return nil, err
	}
	return summary, nil
}
