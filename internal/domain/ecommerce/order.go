package ecommerce

import "time"

// Collection is the collection name sample orders are stored under.
const Collection = "ecommerce"

// Searchable order fields.
const (
	FieldCustomerFirstName = "customer_first_name"
	FieldCustomerLastName  = "customer_last_name"
	FieldCustomerFullName  = "customer_full_name"
	FieldCustomerGender    = "customer_gender"
	FieldCategory          = "category"
	FieldDayOfWeek         = "day_of_week"
	FieldTaxfulTotalPrice  = "taxful_total_price"
	FieldTotalQuantity     = "total_quantity"
)

// Order is a sample ecommerce order document.
type Order struct {
	ID                string    `json:"id"`
	CustomerFirstName string    `json:"customer_first_name"`
	CustomerLastName  string    `json:"customer_last_name"`
	CustomerFullName  string    `json:"customer_full_name"`
	CustomerGender    string    `json:"customer_gender,omitempty"`
	Category          []string  `json:"category,omitempty"`
	DayOfWeek         string    `json:"day_of_week,omitempty"`
	OrderDate         time.Time `json:"order_date"`
	OrderID           int       `json:"order_id"`
	TaxfulTotalPrice  float64   `json:"taxful_total_price"`
	TotalQuantity     int       `json:"total_quantity"`
}

// SetID overwrites the identifier with the engine hit identifier.
func (o *Order) SetID(id string) { o.ID = id }
