// Package shell implements the password-gated interactive menu that drives the inventory service.
package shell

import (
	"bufio"
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/abgdnv/storekeeper/internal/inventory/service"
)

const banner = "======    WELCOME TO STORE MANAGEMENT SOFTWARE    ======"

// errLogout ends the menu loop and returns to the password prompt.
var errLogout = errors.New("logout")

type menuItem struct {
	label  string
	action func(ctx context.Context) error
}

// Shell reads commands line by line from in and writes prompts, results and reports to out.
type Shell struct {
	service service.InventoryService
	secret  string
	in      io.Reader
	out     io.Writer
	logger  *slog.Logger
	menu    []menuItem

	lines chan string
	done  chan struct{}
}

// New creates a Shell. secret is compared verbatim with the trimmed password line.
func New(svc service.InventoryService, secret string, in io.Reader, out io.Writer, logger *slog.Logger) *Shell {
	s := &Shell{
		service: svc,
		secret:  secret,
		in:      in,
		out:     out,
		logger:  logger.With("component", "shell"),
	}
	s.menu = []menuItem{
		{"Add Product", s.addProduct},
		{"Edit Product", s.editProduct},
		{"Delete Product", s.deleteProduct},
		{"Record Sale", s.recordSale},
		{"Record Purchase", s.recordPurchase},
		{"Generate Inventory Report", s.report(svc.InventoryReport)},
		{"Generate Sales Report", s.report(svc.SalesReport)},
		{"Generate Purchases Report", s.report(svc.PurchasesReport)},
		{"Exit", func(context.Context) error { return errLogout }},
	}
	return s
}

// Run executes the password prompt loop until the user quits, the input ends or ctx is cancelled.
// It returns nil when the user quits or the input ends, and ctx.Err() on cancellation.
func (s *Shell) Run(ctx context.Context) error {
	s.startReader()
	defer close(s.done)

	s.println(banner)
	for {
		s.println(" ****NOTE: Enter 'quit' or 'exit' to logout from store...  ")
		s.println()
		s.println("Enter password to access store management:")
		password, err := s.readLine(ctx)
		if err != nil {
			return s.finish(err)
		}

		switch {
		case subtle.ConstantTimeCompare([]byte(password), []byte(s.secret)) == 1:
			s.println("ACCESS GRANTED...")
			s.logger.InfoContext(ctx, "Access granted")
			if err := s.runMenu(ctx); err != nil {
				return s.finish(err)
			}
		case password == "exit" || password == "quit":
			s.println("Exiting the Software...")
			s.println("VISIT AGAIN..")
			return nil
		default:
			s.logger.WarnContext(ctx, "Access denied")
			s.println("Incorrect password. Access denied.")
		}
	}
}

// runMenu shows the menu until the user picks Exit. It returns nil on Exit.
func (s *Shell) runMenu(ctx context.Context) error {
	for {
		for i, item := range s.menu {
			s.println(fmt.Sprintf("%d. %s", i+1, item.label))
		}
		s.println("Enter your choice:")
		line, err := s.readLine(ctx)
		if err != nil {
			return err
		}
		choice, err := strconv.Atoi(line)
		if err != nil {
			s.println("Please enter a number")
			continue
		}
		if choice < 1 || choice > len(s.menu) {
			s.println("Invalid choice. Please choose a valid option.")
			continue
		}

		err = s.menu[choice-1].action(ctx)
		if errors.Is(err, errLogout) {
			s.println("Exiting the store...")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) addProduct(ctx context.Context) error {
	p, err := s.readProduct(ctx, "Enter product description:", "Enter product price:", "Enter product quantity:")
	if err != nil {
		return err
	}
	if _, err := s.service.AddProduct(ctx, p); err != nil {
		s.printError(err)
		return nil
	}
	s.println("Product added.")
	return nil
}

func (s *Shell) editProduct(ctx context.Context) error {
	p, err := s.readProduct(ctx, "Enter new product description:", "Enter new product price:", "Enter new product quantity:")
	if err != nil {
		return err
	}
	if _, err := s.service.EditProduct(ctx, p); err != nil {
		s.printError(err)
		return nil
	}
	s.println("Product updated.")
	return nil
}

func (s *Shell) deleteProduct(ctx context.Context) error {
	name, err := s.prompt(ctx, "Enter product name:")
	if err != nil {
		return err
	}
	if err := s.service.DeleteProduct(ctx, name); err != nil {
		s.printError(err)
		return nil
	}
	s.println("Product deleted.")
	return nil
}

func (s *Shell) recordSale(ctx context.Context) error {
	sale, err := s.readTransaction(ctx, "Enter quantity sold:", "Enter sale price:")
	if err != nil {
		return err
	}
	p, err := s.service.RecordSale(ctx, sale)
	if err != nil {
		s.printError(err)
		return nil
	}
	s.println(fmt.Sprintf("Sale recorded. %s stock: %d", p.Name, p.Quantity))
	return nil
}

func (s *Shell) recordPurchase(ctx context.Context) error {
	purchase, err := s.readTransaction(ctx, "Enter quantity purchased:", "Enter purchase price:")
	if err != nil {
		return err
	}
	p, err := s.service.RecordPurchase(ctx, purchase)
	if err != nil {
		s.printError(err)
		return nil
	}
	s.println(fmt.Sprintf("Purchase recorded. %s stock: %d", p.Name, p.Quantity))
	return nil
}

func (s *Shell) report(generate func(context.Context) string) func(context.Context) error {
	return func(ctx context.Context) error {
		s.println(generate(ctx))
		return nil
	}
}

func (s *Shell) readProduct(ctx context.Context, descPrompt, pricePrompt, qtyPrompt string) (service.ProductDto, error) {
	var p service.ProductDto
	var err error
	if p.Name, err = s.prompt(ctx, "Enter product name:"); err != nil {
		return p, err
	}
	if p.Description, err = s.prompt(ctx, descPrompt); err != nil {
		return p, err
	}
	if p.Price, err = s.promptInt(ctx, pricePrompt, "Please enter a valid price", 64); err != nil {
		return p, err
	}
	qty, err := s.promptInt(ctx, qtyPrompt, "Please enter a valid quantity", 32)
	p.Quantity = int32(qty)
	return p, err
}

func (s *Shell) readTransaction(ctx context.Context, qtyPrompt, pricePrompt string) (service.TransactionDto, error) {
	var t service.TransactionDto
	var err error
	if t.Name, err = s.prompt(ctx, "Enter product name:"); err != nil {
		return t, err
	}
	qty, err := s.promptInt(ctx, qtyPrompt, "Please enter a valid quantity", 32)
	if err != nil {
		return t, err
	}
	t.Quantity = int32(qty)
	t.Price, err = s.promptInt(ctx, pricePrompt, "Please enter a valid price", 64)
	return t, err
}

func (s *Shell) prompt(ctx context.Context, text string) (string, error) {
	s.println(text)
	return s.readLine(ctx)
}

// promptInt asks again until the line parses as a base-10 integer of the given bit size.
func (s *Shell) promptInt(ctx context.Context, text, invalid string, bitSize int) (int64, error) {
	for {
		line, err := s.prompt(ctx, text)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseInt(line, 10, bitSize)
		if err == nil {
			return v, nil
		}
		s.logger.DebugContext(ctx, "Rejected numeric input", "input", line, "error", err)
		s.println(invalid)
	}
}

func (s *Shell) printError(err error) {
	s.println("Error: " + err.Error())
}

func (s *Shell) println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

// startReader feeds trimmed input lines to s.lines until the input ends or Run returns.
func (s *Shell) startReader() {
	s.lines = make(chan string)
	s.done = make(chan struct{})
	go func() {
		defer close(s.lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case s.lines <- strings.TrimSpace(scanner.Text()):
			case <-s.done:
				return
			}
		}
		if err := scanner.Err(); err != nil {
			s.logger.Error("Error reading input", "error", err)
		}
	}()
}

func (s *Shell) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}
}

// finish maps the end of input to a clean return.
func (s *Shell) finish(err error) error {
	if errors.Is(err, io.EOF) {
		s.println("Exiting the Software...")
		return nil
	}
	return err
}
