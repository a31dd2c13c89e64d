package models

import (
	"encoding/json"
	"time"
)

// Status is the fulfillment state of an order. The zero value means the
// order has no status set in the store.
type Status string

const (
	StatusPending  Status = "pending"
	StatusDispatch Status = "dispatch"
	StatusSuccess  Status = "success"
)

// Statuses lists the values an admin can pick for an order, in display order.
var Statuses = []Status{StatusPending, StatusDispatch, StatusSuccess}

// Valid reports whether s is one of the selectable statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusDispatch, StatusSuccess:
		return true
	}
	return false
}

// Label returns the text shown in the status select.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusDispatch:
		return "Dispatch"
	case StatusSuccess:
		return "Completed"
	}
	return ""
}

func (s Status) MarshalJSON() ([]byte, error) {
	if s == "" {
		return []byte("null"), nil
	}
	return json.Marshal(string(s))
}

type Order struct {
	ID        string     `json:"_id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Phone     string     `json:"phone"`
	Email     string     `json:"email"`
	Address   string     `json:"address"`
	City      string     `json:"city"`
	ZipCode   string     `json:"zipCode"`
	Total     float64    `json:"total"`
	Discount  float64    `json:"discount"`
	OrderDate string     `json:"orderDate"`
	Status    Status     `json:"status"`
	CartItems []LineItem `json:"cartItems"`
}

// LineItem is a purchased product as seen from the order, with the product
// reference already resolved.
type LineItem struct {
	ProductName string `json:"productName"`
	Image       string `json:"image,omitempty"`
}

// CustomerName joins first and last name the way the orders table shows it.
func (o *Order) CustomerName() string {
	return o.FirstName + " " + o.LastName
}

// PlacedOn formats OrderDate as a calendar date. Dates the store sends in an
// unexpected layout are returned unchanged.
func (o *Order) PlacedOn() string {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, o.OrderDate); err == nil {
			return t.Format("1/2/2006")
		}
	}
	return o.OrderDate
}
