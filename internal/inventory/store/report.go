package store

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	inventoryRowFormat   = "%-20s %-40s %-20s %-20s\n"
	transactionRowFormat = "%-20s %-20s %-20s %-20s\n"
)

// InventoryReport renders every current product, one row per product, ordered by name.
func (s *inMemory) InventoryReport() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var b strings.Builder
	b.WriteString("Inventory Report: \n")
	b.WriteString(fmt.Sprintf(inventoryRowFormat, "NAME", "DESCRIPTION", "PRICE", "QUANTITY"))
	for _, p := range s.sortedProducts() {
		b.WriteString(fmt.Sprintf(inventoryRowFormat, p.Name, p.Description, itoa(p.Price), itoa(int64(p.Quantity))))
	}
	return b.String()
}

// SalesReport renders the whole sales log in recording order, including sales of deleted products.
func (s *inMemory) SalesReport() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var b strings.Builder
	b.WriteString("Sales Report:\n")
	b.WriteString(fmt.Sprintf(transactionRowFormat, "Name", "Quantity", "Price", "Total"))
	for _, e := range s.sales {
		b.WriteString(fmt.Sprintf(transactionRowFormat, e.Name, itoa(int64(e.Quantity)), itoa(e.Price), itoa(e.Total())))
	}
	return b.String()
}

// PurchasesReport renders the purchases log in recording order.
// The description comes from the current product record, so purchases of
// products that have since been deleted are left out of the report.
func (s *inMemory) PurchasesReport() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var b strings.Builder
	b.WriteString("Purchases Report:\n")
	b.WriteString(fmt.Sprintf(transactionRowFormat, "Name", "Description", "Quantity", "Price"))
	for _, e := range s.purchases {
		p, ok := s.products[e.Name]
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf(transactionRowFormat, p.Name, p.Description, itoa(int64(e.Quantity)), itoa(e.Price)))
	}
	return b.String()
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
