package models

import "time"

// OrderDocument is the SQL shape of an order. Status is nullable because
// orders created by the storefront do not always carry one.
type OrderDocument struct {
	ID        string      `gorm:"primaryKey;type:varchar(64)"`
	FirstName string      `gorm:"type:varchar(100)"`
	LastName  string      `gorm:"type:varchar(100)"`
	Phone     string      `gorm:"type:varchar(50)"`
	Email     string      `gorm:"type:varchar(255)"`
	Address   string      `gorm:"type:text"`
	City      string      `gorm:"type:varchar(100)"`
	ZipCode   string      `gorm:"type:varchar(20)"`
	Total     float64     `gorm:"type:decimal(10,2);not null;default:0.00"`
	Discount  float64     `gorm:"type:decimal(10,2);not null;default:0.00"`
	OrderDate string      `gorm:"type:varchar(40)"`
	Status    *string     `gorm:"type:varchar(20)"`
	CartItems []OrderItem `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt time.Time   `gorm:"not null;index"`
	UpdatedAt time.Time   `gorm:"not null"`
}

func (OrderDocument) TableName() string { return "orders" }

type OrderItem struct {
	ID        uint     `gorm:"primaryKey"`
	OrderID   string   `gorm:"type:varchar(64);not null;index"`
	Position  int      `gorm:"not null"`
	ProductID string   `gorm:"type:varchar(64);not null"`
	Product   *Product `gorm:"foreignKey:ProductID;references:ID"`
}

// ToOrder converts the stored document into the view model, resolving each
// cart item to its product.
func (d *OrderDocument) ToOrder() Order {
	o := Order{
		ID:        d.ID,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Phone:     d.Phone,
		Email:     d.Email,
		Address:   d.Address,
		City:      d.City,
		ZipCode:   d.ZipCode,
		Total:     d.Total,
		Discount:  d.Discount,
		OrderDate: d.OrderDate,
		CartItems: make([]LineItem, 0, len(d.CartItems)),
	}
	if d.Status != nil {
		o.Status = Status(*d.Status)
	}
	for _, it := range d.CartItems {
		var li LineItem
		if it.Product != nil {
			li.ProductName = it.Product.ProductName
			if it.Product.Image != nil {
				li.Image = *it.Product.Image
			}
		}
		o.CartItems = append(o.CartItems, li)
	}
	return o
}
