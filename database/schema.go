// Define table schema structures for the preconfigured demo databases.
package database

import (
	"fmt"
	"strings"
)

type TableSchema struct {
	Name        string         `json:"name"`
	Columns     []ColumnSchema `json:"columns"`
	Description string         `json:"description"`
}

type ColumnSchema struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Nullable    bool   `json:"nullable"`
	Description string `json:"description"`
}

// ErrUnknownDatabase is returned when a request names a database that is not
// one of the preconfigured schemas.
var ErrUnknownDatabase = fmt.Errorf("unknown database")

// DatabaseNames lists the selectable databases in display order.
var DatabaseNames = []string{"enterprise_saas", "e_commerce", "analytics"}

// Schemas maps each database name to its table descriptions. The text here
// must match the actual DDL of the running MySQL databases for generated SQL
// to be valid.
var Schemas = map[string][]TableSchema{
	"enterprise_saas": {
		{
			Name:        "companies",
			Description: "Customer companies subscribed to the platform",
			Columns: []ColumnSchema{
				{Name: "company_id", Type: "int auto_increment", Nullable: false, Description: "Primary key"},
				{Name: "name", Type: "varchar(100)", Nullable: false, Description: "Company name"},
				{Name: "industry", Type: "varchar(50)", Nullable: true, Description: "Industry sector"},
				{Name: "plan", Type: "varchar(20)", Nullable: false, Description: "Subscription plan (free, pro, enterprise)"},
				{Name: "mrr", Type: "decimal(10,2)", Nullable: false, Description: "Monthly recurring revenue"},
				{Name: "created_at", Type: "datetime", Nullable: false, Description: "Signup timestamp"},
			},
		},
		{
			Name:        "users",
			Description: "Individual users belonging to a company",
			Columns: []ColumnSchema{
				{Name: "user_id", Type: "int auto_increment", Nullable: false, Description: "Primary key"},
				{Name: "company_id", Type: "int", Nullable: false, Description: "Reference to companies table"},
				{Name: "email", Type: "varchar(100)", Nullable: false, Description: "User email address"},
				{Name: "role", Type: "varchar(20)", Nullable: false, Description: "Role within the company (admin, member)"},
				{Name: "created_at", Type: "datetime", Nullable: false, Description: "Account creation timestamp"},
			},
		},
		{
			Name:        "subscriptions",
			Description: "Active and historical subscriptions per company",
			Columns: []ColumnSchema{
				{Name: "subscription_id", Type: "int auto_increment", Nullable: false, Description: "Primary key"},
				{Name: "company_id", Type: "int", Nullable: false, Description: "Reference to companies table"},
				{Name: "plan", Type: "varchar(20)", Nullable: false, Description: "Plan at time of subscription"},
				{Name: "status", Type: "varchar(20)", Nullable: false, Description: "Status (active, cancelled, past_due)"},
				{Name: "seats", Type: "int", Nullable: false, Description: "Number of licensed seats"},
				{Name: "started_at", Type: "date", Nullable: false, Description: "Subscription start date"},
				{Name: "renews_at", Type: "date", Nullable: true, Description: "Next renewal date"},
			},
		},
		{
			Name:        "invoices",
			Description: "Invoices issued to companies",
			Columns: []ColumnSchema{
				{Name: "invoice_id", Type: "int auto_increment", Nullable: false, Description: "Primary key"},
				{Name: "company_id", Type: "int", Nullable: false, Description: "Reference to companies table"},
				{Name: "amount", Type: "decimal(10,2)", Nullable: false, Description: "Invoice amount"},
				{Name: "status", Type: "varchar(20)", Nullable: false, Description: "Status (draft, sent, paid, overdue)"},
				{Name: "issued_at", Type: "date", Nullable: false, Description: "Issue date"},
				{Name: "due_at", Type: "date", Nullable: false, Description: "Due date"},
			},
		},
	},
	"e_commerce": {
		{
			Name:        "customers",
			Description: "Registered shop customers",
			Columns: []ColumnSchema{
				{Name: "customer_id", Type: "int auto_increment", Nullable: false, Description: "Primary key"},
				{Name: "name", Type: "varchar(100)", Nullable: false, Description: "Customer name"},
				{Name: "email", Type: "varchar(100)", Nullable: false, Description: "Customer email address"},
				{Name: "country", Type: "varchar(50)", Nullable: true, Description: "Country of residence"},
				{Name: "created_at", Type: "datetime", Nullable: false, Description: "Registration timestamp"},
			},
		},
		{
			Name:        "products",
			Description: "Product catalog",
			Columns: []ColumnSchema{
				{Name: "product_id", Type: "int auto_increment", Nullable: false, Description: "Primary key"},
				{Name: "name", Type: "varchar(100)", Nullable: false, Description: "Product name"},
				{Name: "category", Type: "varchar(50)", Nullable: false, Description: "Product category"},
				{Name: "price", Type: "decimal(10,2)", Nullable: false, Description: "Unit price"},
				{Name: "stock", Type: "int", Nullable: false, Description: "Units in stock"},
			},
		},
		{
			Name:        "orders",
			Description: "Customer orders",
			Columns: []ColumnSchema{
				{Name: "order_id", Type: "int auto_increment", Nullable: false, Description: "Primary key"},
				{Name: "customer_id", Type: "int", Nullable: false, Description: "Reference to customers table"},
				{Name: "status", Type: "varchar(20)", Nullable: false, Description: "Status (pending, shipped, delivered, returned)"},
				{Name: "total", Type: "decimal(10,2)", Nullable: false, Description: "Order total"},
				{Name: "order_date", Type: "datetime", Nullable: false, Description: "Order timestamp"},
			},
		},
		{
			Name:        "order_items",
			Description: "Line items within an order",
			Columns: []ColumnSchema{
				{Name: "order_item_id", Type: "int auto_increment", Nullable: false, Description: "Primary key"},
				{Name: "order_id", Type: "int", Nullable: false, Description: "Reference to orders table"},
				{Name: "product_id", Type: "int", Nullable: false, Description: "Reference to products table"},
				{Name: "quantity", Type: "int", Nullable: false, Description: "Quantity ordered"},
				{Name: "unit_price", Type: "decimal(10,2)", Nullable: false, Description: "Price per unit at order time"},
			},
		},
	},
	"analytics": {
		{
			Name:        "sessions",
			Description: "Visitor sessions on the site",
			Columns: []ColumnSchema{
				{Name: "session_id", Type: "int auto_increment", Nullable: false, Description: "Primary key"},
				{Name: "user_id", Type: "int", Nullable: true, Description: "Logged-in user, if any"},
				{Name: "device", Type: "varchar(20)", Nullable: false, Description: "Device class (desktop, mobile, tablet)"},
				{Name: "referrer", Type: "varchar(200)", Nullable: true, Description: "Referring URL"},
				{Name: "started_at", Type: "datetime", Nullable: false, Description: "Session start"},
				{Name: "ended_at", Type: "datetime", Nullable: true, Description: "Session end"},
			},
		},
		{
			Name:        "page_views",
			Description: "Individual page views within a session",
			Columns: []ColumnSchema{
				{Name: "view_id", Type: "int auto_increment", Nullable: false, Description: "Primary key"},
				{Name: "session_id", Type: "int", Nullable: false, Description: "Reference to sessions table"},
				{Name: "page_url", Type: "varchar(200)", Nullable: false, Description: "Viewed page URL"},
				{Name: "duration_seconds", Type: "int", Nullable: true, Description: "Time spent on the page"},
				{Name: "viewed_at", Type: "datetime", Nullable: false, Description: "View timestamp"},
			},
		},
		{
			Name:        "events",
			Description: "Tracked user events",
			Columns: []ColumnSchema{
				{Name: "event_id", Type: "int auto_increment", Nullable: false, Description: "Primary key"},
				{Name: "session_id", Type: "int", Nullable: false, Description: "Reference to sessions table"},
				{Name: "user_id", Type: "int", Nullable: true, Description: "Logged-in user, if any"},
				{Name: "event_type", Type: "varchar(50)", Nullable: false, Description: "Event name (click, signup, purchase, ...)"},
				{Name: "page_url", Type: "varchar(200)", Nullable: true, Description: "Page the event occurred on"},
				{Name: "occurred_at", Type: "datetime", Nullable: false, Description: "Event timestamp"},
			},
		},
	},
}

// Lookup returns the table descriptions for a named database.
func Lookup(name string) ([]TableSchema, error) {
	tables, ok := Schemas[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDatabase, name)
	}
	return tables, nil
}

// Describe renders the table descriptions as the text block injected into
// prompts. The rendering is deterministic: for a fixed database name the
// prompt always contains this description verbatim.
func Describe(tables []TableSchema) string {
	var schemaDesc strings.Builder
	schemaDesc.WriteString("Database Schema:\n")

	for _, table := range tables {
		schemaDesc.WriteString(fmt.Sprintf("- %s: %s\n", table.Name, table.Description))
		schemaDesc.WriteString("  Columns: ")
		for i, col := range table.Columns {
			nullable := ""
			if !col.Nullable {
				nullable = " NOT NULL"
			}
			schemaDesc.WriteString(fmt.Sprintf("%s (%s%s)", col.Name, col.Type, nullable))
			if i < len(table.Columns)-1 {
				schemaDesc.WriteString(", ")
			}
		}
		schemaDesc.WriteString("\n")
	}

	return schemaDesc.String()
}
