// Package store provides the inventory ledger: products plus the sales and purchases logs.
package store

// InventoryStore is an interface for inventory storage operations.
// It abstracts the underlying data store so the service and its tests do not depend on the in-memory implementation.
type InventoryStore interface {
	// AddProduct inserts a new product.
	// Returns ErrDuplicateProduct if a product with the same name already exists.
	AddProduct(name, description string, price int64, quantity int32) (*Product, error)

	// EditProduct overwrites description, price and quantity of an existing product.
	// Returns ErrProductNotFound if no product exists with the given name.
	EditProduct(name, description string, price int64, quantity int32) (*Product, error)

	// DeleteProduct removes a product. Log entries naming it are kept.
	// Returns ErrProductNotFound if no product exists with the given name.
	DeleteProduct(name string) error

	// RecordSale decrements stock and appends to the sales log.
	// Returns ErrProductNotFound or ErrInsufficientStock.
	RecordSale(name string, quantity int32, price int64) (*Product, error)

	// RecordPurchase increments stock and appends to the purchases log.
	// Returns ErrProductNotFound if no product exists with the given name.
	RecordPurchase(name string, quantity int32, price int64) (*Product, error)

	// FindByName retrieves a single product.
	// Returns ErrProductNotFound if no product exists with the given name.
	FindByName(name string) (*Product, error)

	// FindAll returns all products sorted by name.
	// Returns an empty slice if no products exist.
	FindAll() []Product

	// Sales returns a copy of the sales log in recording order.
	Sales() []LogEntry

	// Purchases returns a copy of the purchases log in recording order.
	Purchases() []LogEntry

	InventoryReport() string
	SalesReport() string
	PurchasesReport() string
}
