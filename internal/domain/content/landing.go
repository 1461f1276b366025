// Package content holds the marketing landing page content and the contact
// form payload. Copy lives here instead of in templates so the JSON content
// endpoint and the rendered page stay in sync.
package content

// Hero is the landing page masthead
type Hero struct {
	Title    string `json:"title"`
	Tagline  string `json:"tagline"`
	CTALabel string `json:"cta_label"`
	CTAHref  string `json:"cta_href"`
}

// Feature is one card in the landing page feature grid
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// ModuleTour describes one dashboard module on the landing page
type ModuleTour struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Plan is a pricing plan card
type Plan struct {
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Period      string   `json:"period"`
	Features    []string `json:"features"`
	Highlighted bool     `json:"highlighted"`
}

// Testimonial is a customer quote
type Testimonial struct {
	Quote   string `json:"quote"`
	Author  string `json:"author"`
	Company string `json:"company"`
}

// Landing aggregates everything the marketing page shows
type Landing struct {
	Hero         Hero          `json:"hero"`
	Features     []Feature     `json:"features"`
	Modules      []ModuleTour  `json:"modules"`
	Plans        []Plan        `json:"plans"`
	Testimonials []Testimonial `json:"testimonials"`
}

// ContactMessage is the landing page contact form payload, forwarded to the
// core API untouched.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

// DefaultLanding returns the shipped marketing content
func DefaultLanding() Landing {
	return Landing{
		Hero: Hero{
			Title:    "MISoft",
			Tagline:  "IFRS-compliant accounting and manufacturing for growing businesses",
			CTALabel: "Start free trial",
			CTAHref:  "/signup",
		},
		Features: []Feature{
			{Title: "Double-entry ledger", Description: "Every document posts to a balanced, auditable general ledger.", Icon: "ledger"},
			{Title: "Multi-currency", Description: "Invoice in any currency with automatic revaluation at period close.", Icon: "globe"},
			{Title: "Manufacturing", Description: "Plan production orders against bills of materials and track costs.", Icon: "factory"},
			{Title: "Configurable numbering", Description: "Prefix, date and sequence patterns for every document family.", Icon: "hash"},
			{Title: "Pricing rules", Description: "Volume tiers, contract prices and seasonal discounts with live preview.", Icon: "tag"},
			{Title: "Financial reports", Description: "Profit & loss, balance sheet, trial balance and partner ledgers on demand.", Icon: "chart"},
		},
		Modules: []ModuleTour{
			{Name: "Partners", Description: "One record per customer or vendor with credit limits and balances."},
			{Name: "Products", Description: "Catalog with units, barcodes, tax defaults and price lists."},
			{Name: "Manufacturing", Description: "Production orders, BOM browsing and completion tracking."},
			{Name: "Invoicing", Description: "Sales and purchase invoices with tax breakdowns and due tracking."},
			{Name: "Vouchers", Description: "Payment, receipt and journal vouchers feeding the ledger."},
			{Name: "Reports", Description: "Statements and registers, exportable to Excel and PDF."},
		},
		Plans: []Plan{
			{Name: "Starter", Price: "4,999", Period: "PKR / month", Features: []string{"2 users", "Invoicing & vouchers", "Standard reports"}},
			{Name: "Business", Price: "12,999", Period: "PKR / month", Features: []string{"10 users", "Manufacturing module", "Pricing rules", "Priority support"}, Highlighted: true},
			{Name: "Enterprise", Price: "Contact us", Period: "", Features: []string{"Unlimited users", "Dedicated instance", "Custom integrations"}},
		},
		Testimonials: []Testimonial{
			{Quote: "Month-end closing went from a week to an afternoon.", Author: "Ayesha Raza", Company: "Crescent Textiles"},
			{Quote: "The first accounting package our auditors did not complain about.", Author: "Bilal Ahmed", Company: "Hamdard Foods"},
		},
	}
}
