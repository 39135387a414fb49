package store

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"

	"github.com/abgdnv/storekeeper/internal/inventory/errors"
)

// inMemory implements InventoryStore using an in-memory map and two append-only slices.
type inMemory struct {
	mu        sync.RWMutex
	products  map[string]Product
	sales     []LogEntry
	purchases []LogEntry
}

// NewInMemoryStore creates a new, empty instance of InventoryStore
func NewInMemoryStore() InventoryStore {
	return &inMemory{
		products: make(map[string]Product),
	}
}

// Product represents a catalog item held by the store, keyed by Name.
type Product struct {
	Name        string
	Description string
	Price       int64
	Quantity    int32
}

// LogEntry is one immutable record of the sales or purchases log.
// Price is the transaction price per unit, not the catalog price.
type LogEntry struct {
	Name     string
	Quantity int32
	Price    int64
}

// Total returns quantity × price.
func (e LogEntry) Total() int64 {
	return int64(e.Quantity) * e.Price
}

// AddProduct inserts a new product.
func (s *inMemory) AddProduct(name, description string, price int64, quantity int32) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[name]; exists {
		return nil, errors.ErrDuplicateProduct
	}
	if quantity < 0 {
		return nil, negativeQuantity(quantity)
	}
	product := Product{
		Name:        name,
		Description: description,
		Price:       price,
		Quantity:    quantity,
	}
	s.products[name] = product

	return &product, nil
}

// EditProduct overwrites an existing product in place; the name is the key and stays as is.
func (s *inMemory) EditProduct(name, description string, price int64, quantity int32) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[name]
	if !ok {
		return nil, errors.ErrProductNotFound
	}
	if quantity < 0 {
		return nil, negativeQuantity(quantity)
	}
	product.Description = description
	product.Price = price
	product.Quantity = quantity
	s.products[name] = product

	return &product, nil
}

// DeleteProduct deletes a product by its name.
func (s *inMemory) DeleteProduct(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[name]; !exists {
		return errors.ErrProductNotFound
	}
	delete(s.products, name)
	return nil
}

// RecordSale takes quantity units out of stock and logs the sale.
func (s *inMemory) RecordSale(name string, quantity int32, price int64) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[name]
	if !ok {
		return nil, errors.ErrProductNotFound
	}
	if quantity < 0 {
		return nil, negativeQuantity(quantity)
	}
	if product.Quantity < quantity {
		return nil, errors.ErrInsufficientStock
	}
	if totalOverflows(quantity, price) {
		return nil, totalOverflow(name, quantity, price)
	}
	product.Quantity -= quantity
	s.products[name] = product
	s.sales = append(s.sales, LogEntry{Name: name, Quantity: quantity, Price: price})

	return &product, nil
}

// RecordPurchase adds quantity units to stock and logs the purchase.
func (s *inMemory) RecordPurchase(name string, quantity int32, price int64) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[name]
	if !ok {
		return nil, errors.ErrProductNotFound
	}
	if quantity < 0 {
		return nil, negativeQuantity(quantity)
	}
	if int64(product.Quantity)+int64(quantity) > math.MaxInt32 {
		return nil, fmt.Errorf("%w: stock of %q would exceed %d", errors.ErrInvalidInput, name, math.MaxInt32)
	}
	if totalOverflows(quantity, price) {
		return nil, totalOverflow(name, quantity, price)
	}
	product.Quantity += quantity
	s.products[name] = product
	s.purchases = append(s.purchases, LogEntry{Name: name, Quantity: quantity, Price: price})

	return &product, nil
}

// FindByName retrieves a product by its name.
func (s *inMemory) FindByName(name string) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[name]
	if !ok {
		return nil, errors.ErrProductNotFound
	}
	return &p, nil
}

// FindAll retrieves all products ordered by name.
func (s *inMemory) FindAll() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sortedProducts()
}

// Sales returns a copy of the sales log.
func (s *inMemory) Sales() []LogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.sales)
}

// Purchases returns a copy of the purchases log.
func (s *inMemory) Purchases() []LogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.purchases)
}

func negativeQuantity(quantity int32) error {
	return fmt.Errorf("%w: quantity must not be negative, got %d", errors.ErrInvalidInput, quantity)
}

// totalOverflows reports whether quantity × price does not fit in an int64.
func totalOverflows(quantity int32, price int64) bool {
	if quantity == 0 {
		return false
	}
	q := int64(quantity)
	return price > math.MaxInt64/q || price < math.MinInt64/q
}

func totalOverflow(name string, quantity int32, price int64) error {
	return fmt.Errorf("%w: total of %d × %d for %q exceeds %d", errors.ErrInvalidInput, quantity, price, name, int64(math.MaxInt64))
}

// sortedProducts must be called with the lock held.
func (s *inMemory) sortedProducts() []Product {
	list := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		list = append(list, p)
	}
	slices.SortFunc(list, func(a, b Product) int {
		return strings.Compare(a.Name, b.Name)
	})
	return list
}
