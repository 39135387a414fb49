// Package service provides the implementation of inventory business logic.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	inverrors "github.com/abgdnv/storekeeper/internal/inventory/errors"
	"github.com/abgdnv/storekeeper/internal/inventory/store"
	"github.com/go-playground/validator/v10"
)

// InventoryService defines the methods for managing products, sales and purchases.
// It abstracts the underlying business logic and data access.
type InventoryService interface {
	// AddProduct adds a new product to the catalog.
	// Returns ErrDuplicateProduct if the name is taken, ErrInvalidInput if validation fails.
	AddProduct(ctx context.Context, product ProductDto) (*ProductDto, error)

	// EditProduct overwrites description, price and quantity of a product.
	// Returns ErrProductNotFound if no product exists with the given name.
	EditProduct(ctx context.Context, product ProductDto) (*ProductDto, error)

	// DeleteProduct removes a product by its name.
	// Returns ErrProductNotFound if no product exists with the given name.
	DeleteProduct(ctx context.Context, name string) error

	// RecordSale sells units of a product at the given price.
	// Returns ErrProductNotFound or ErrInsufficientStock.
	RecordSale(ctx context.Context, sale TransactionDto) (*ProductDto, error)

	// RecordPurchase buys units of a product at the given price.
	// Returns ErrProductNotFound if no product exists with the given name.
	RecordPurchase(ctx context.Context, purchase TransactionDto) (*ProductDto, error)

	// FindByName retrieves a single product.
	// Returns ErrProductNotFound if no product exists with the given name.
	FindByName(ctx context.Context, name string) (*ProductDto, error)

	// FindAll returns all products ordered by name.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) []ProductDto

	InventoryReport(ctx context.Context) string
	SalesReport(ctx context.Context) string
	PurchasesReport(ctx context.Context) string
}

var _ InventoryService = (*Service)(nil)

// Service implements InventoryService.
type Service struct {
	repository store.InventoryStore
	validate   *validator.Validate
	logger     *slog.Logger
}

// NewService creates a new instance of InventoryService with the provided repository.
func NewService(repo store.InventoryStore, logger *slog.Logger) *Service {
	return &Service{
		repository: repo,
		validate:   validator.New(),
		logger:     logger.With("component", "service"),
	}
}

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"max=255"`
	Price       int64  `json:"price"       validate:"min=0"`
	Quantity    int32  `json:"quantity"    validate:"min=0"`
}

// TransactionDto represents a sale or a purchase.
// Price is the actual per-unit transaction price and may differ from the catalog price.
type TransactionDto struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Quantity int32  `json:"quantity" validate:"gt=0"`
	Price    int64  `json:"price"    validate:"min=0"`
}

// AddProduct validates and stores a new product.
func (s *Service) AddProduct(ctx context.Context, product ProductDto) (*ProductDto, error) {
	if err := s.validateStruct(product); err != nil {
		s.logger.WarnContext(ctx, "Rejected product", "name", product.Name, "error", err)
		return nil, err
	}
	p, err := s.repository.AddProduct(product.Name, product.Description, product.Price, product.Quantity)
	if err != nil {
		s.logger.WarnContext(ctx, "Error adding product", "name", product.Name, "error", err)
		return nil, fmt.Errorf("failed to add product %q: %w", product.Name, err)
	}
	s.logger.InfoContext(ctx, "Product added", "name", p.Name, "quantity", p.Quantity)
	return toDto(p), nil
}

// EditProduct validates and overwrites an existing product.
func (s *Service) EditProduct(ctx context.Context, product ProductDto) (*ProductDto, error) {
	if err := s.validateStruct(product); err != nil {
		s.logger.WarnContext(ctx, "Rejected product update", "name", product.Name, "error", err)
		return nil, err
	}
	p, err := s.repository.EditProduct(product.Name, product.Description, product.Price, product.Quantity)
	if err != nil {
		s.logger.WarnContext(ctx, "Error editing product", "name", product.Name, "error", err)
		return nil, fmt.Errorf("failed to edit product %q: %w", product.Name, err)
	}
	s.logger.InfoContext(ctx, "Product edited", "name", p.Name, "quantity", p.Quantity)
	return toDto(p), nil
}

// DeleteProduct deletes a product by its name.
func (s *Service) DeleteProduct(ctx context.Context, name string) error {
	if err := s.repository.DeleteProduct(name); err != nil {
		s.logger.WarnContext(ctx, "Error deleting product", "name", name, "error", err)
		return fmt.Errorf("failed to delete product %q: %w", name, err)
	}
	s.logger.InfoContext(ctx, "Product deleted", "name", name)
	return nil
}

// RecordSale validates and records a sale.
func (s *Service) RecordSale(ctx context.Context, sale TransactionDto) (*ProductDto, error) {
	if err := s.validateStruct(sale); err != nil {
		s.logger.WarnContext(ctx, "Rejected sale", "name", sale.Name, "error", err)
		return nil, err
	}
	p, err := s.repository.RecordSale(sale.Name, sale.Quantity, sale.Price)
	if err != nil {
		s.logger.WarnContext(ctx, "Error recording sale", "name", sale.Name, "quantity", sale.Quantity, "error", err)
		return nil, fmt.Errorf("failed to record sale of %q: %w", sale.Name, err)
	}
	s.logger.InfoContext(ctx, "Sale recorded", "name", sale.Name, "quantity", sale.Quantity, "price", sale.Price, "stock", p.Quantity)
	return toDto(p), nil
}

// RecordPurchase validates and records a purchase.
func (s *Service) RecordPurchase(ctx context.Context, purchase TransactionDto) (*ProductDto, error) {
	if err := s.validateStruct(purchase); err != nil {
		s.logger.WarnContext(ctx, "Rejected purchase", "name", purchase.Name, "error", err)
		return nil, err
	}
	p, err := s.repository.RecordPurchase(purchase.Name, purchase.Quantity, purchase.Price)
	if err != nil {
		s.logger.WarnContext(ctx, "Error recording purchase", "name", purchase.Name, "quantity", purchase.Quantity, "error", err)
		return nil, fmt.Errorf("failed to record purchase of %q: %w", purchase.Name, err)
	}
	s.logger.InfoContext(ctx, "Purchase recorded", "name", purchase.Name, "quantity", purchase.Quantity, "price", purchase.Price, "stock", p.Quantity)
	return toDto(p), nil
}

// FindByName retrieves a product by its name and returns it as a ProductDto.
func (s *Service) FindByName(_ context.Context, name string) (*ProductDto, error) {
	p, err := s.repository.FindByName(name)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product %q: %w", name, err)
	}
	return toDto(p), nil
}

// FindAll retrieves all products and returns them as ProductDTOs.
func (s *Service) FindAll(_ context.Context) []ProductDto {
	products := s.repository.FindAll()
	productDTOs := make([]ProductDto, len(products))
	for i, item := range products {
		productDTOs[i] = *toDto(&item)
	}
	return productDTOs
}

// InventoryReport returns the current inventory report.
func (s *Service) InventoryReport(ctx context.Context) string {
	s.logger.DebugContext(ctx, "Generating inventory report")
	return s.repository.InventoryReport()
}

// SalesReport returns the report of every recorded sale.
func (s *Service) SalesReport(ctx context.Context) string {
	s.logger.DebugContext(ctx, "Generating sales report")
	return s.repository.SalesReport()
}

// PurchasesReport returns the report of purchases of products still in the catalog.
func (s *Service) PurchasesReport(ctx context.Context) string {
	s.logger.DebugContext(ctx, "Generating purchases report")
	return s.repository.PurchasesReport()
}

// validateStruct runs the struct validation and folds validator errors into ErrInvalidInput.
func (s *Service) validateStruct(v any) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", inverrors.ErrInvalidInput, err)
	}
	msgs := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		msgs = append(msgs, fieldErr.Field()+" failed on rule: "+fieldErr.Tag())
	}
	return fmt.Errorf("%w: %s", inverrors.ErrInvalidInput, strings.Join(msgs, ", "))
}

// toDto converts a store.Product to a ProductDto.
func toDto(product *store.Product) *ProductDto {
	return &ProductDto{
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Quantity:    product.Quantity,
	}
}
