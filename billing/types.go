// Package billing is a small invoicing domain used to exercise placeholder
// expansion: companies with users and clients, clients with invoices,
// invoices with line items.
package billing

//go:generate go run placeholder-expander/cmd/placeholder gen --out ./placeholders .

import (
	"time"

	"placeholder-expander/format"
)

// Company owns clients and has one admin user.
type Company struct {
	Name        *string   `placeholder:"name"`
	MoneyFormat string    // not exposed
	User        *User     `placeholder:"user,one"`
	Clients     []*Client `placeholder:"clients,many"`
}

// User belongs to a company.
type User struct {
	Email   string   `placeholder:"email"`
	Company *Company `placeholder:"company,one"`
}

// Client is a customer of a company.
type Client struct {
	Number      int       `placeholder:"number"`
	MoneyField  float64   `placeholder:""`
	SecretField string    // not exposed
	Currency    string    `placeholder:"-"`
	Company     *Company  `placeholder:"company,one"`
	Invoices    []Invoice `placeholder:"invoices,many"`
}

// Invoice is a bill for one client.
type Invoice struct {
	Number string     `placeholder:"number"`
	Date   time.Time  `placeholder:"date"`
	Status Status     `placeholder:"status"`
	Notes  *string    `placeholder:"notes"`
	Client *Client    `placeholder:"client,one"`
	Items  []LineItem `placeholder:"items,many"`
}

// LineItem is a single position on an invoice.
type LineItem struct {
	Name     string  `placeholder:"name"`
	Quantity int     `placeholder:"quantity"`
	Price    float64 `placeholder:"price"`
}

// Status is the payment state of an invoice.
type Status string

const (
	StatusDraft Status = "DRAFT"
	StatusSent  Status = "SENT"
	StatusPaid  Status = "PAID"
)

// ComputedFields exposes totals that are not stored on the invoice.
func (Invoice) ComputedFields() []string {
	return []string{"total", "item_count"}
}

// ComputedField returns the computed values listed by ComputedFields.
func (inv Invoice) ComputedField(name string) (any, bool) {
	switch name {
	case "total":
		return inv.Total(), true
	case "item_count":
		return len(inv.Items), true
	default:
		return nil, false
	}
}

// Total sums quantity times price over all items.
func (inv Invoice) Total() float64 {
	var total float64
	for _, it := range inv.Items {
		total += float64(it.Quantity) * it.Price
	}

	return total
}

// PlaceholderTypeName keeps templates written as [position.name] working.
func (LineItem) PlaceholderTypeName() string {
	return "Position"
}

// FormatField renders the status in lower case for customer-facing text.
func (inv *Invoice) FormatField(name string, _ format.Config) (string, bool) {
	if name != "status" {
		return "", false
	}

	switch inv.Status {
	case StatusDraft:
		return "draft", true
	case StatusSent:
		return "sent", true
	case StatusPaid:
		return "paid", true
	default:
		return "", false
	}
}

// NewCompany wires a company, its admin and clients in both directions.
func NewCompany(name string, admin *User, clients ...*Client) *Company {
	c := &Company{Name: &name, User: admin, Clients: clients}
	if admin != nil {
		admin.Company = c
	}

	for _, cl := range clients {
		cl.Company = c
	}

	return c
}
