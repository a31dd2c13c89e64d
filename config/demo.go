package config

import "github.com/yeremiapane/orders-admin/models"

var demoOrders = []models.Order{
	{
		FirstName: "Ayesha", LastName: "Khan", Phone: "0300-1234567", Email: "ayesha@example.com",
		Address: "12 Garden Road", City: "Karachi", ZipCode: "75500",
		Total: 120, Discount: 10, OrderDate: "2025-01-14T10:20:00Z", Status: models.StatusPending,
		CartItems: []models.LineItem{{ProductName: "Leather Sofa", Image: "sofa.jpg"}},
	},
	{
		FirstName: "Bilal", LastName: "Ahmed", Phone: "0301-7654321", Email: "bilal@example.com",
		Address: "44 Canal View", City: "Lahore", ZipCode: "54000",
		Total: 89.5, OrderDate: "2025-01-15T08:05:00Z", Status: models.StatusDispatch,
		CartItems: []models.LineItem{{ProductName: "Desk Lamp"}, {ProductName: "Bookshelf", Image: "shelf.jpg"}},
	},
	{
		FirstName: "Sara", LastName: "Malik", Phone: "0333-5550000", Email: "sara@example.com",
		Address: "7 Blue Area", City: "Islamabad", ZipCode: "44000",
		Total: 240, Discount: 24, OrderDate: "2025-01-16T17:45:00Z",
		CartItems: []models.LineItem{{ProductName: "Dining Chair"}},
	},
}
