package views

import (
	"embed"
	"html/template"
	"strings"

	"github.com/yeremiapane/orders-admin/dashboard"
	"github.com/yeremiapane/orders-admin/models"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses the embedded pages for gin's HTML renderer.
func Templates() *template.Template {
	funcs := template.FuncMap{
		"title": func(s string) string {
			if s == "" {
				return s
			}
			return strings.ToUpper(s[:1]) + s[1:]
		},
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(files, "templates/*.html"))
}

type LoginPage struct {
	Email string
	Error string
}

type FilterButton struct {
	Value  string
	Active bool
}

type StatusOption struct {
	Value    string
	Label    string
	Selected bool
}

type ItemRow struct {
	ProductName string
	ImageURL    string
}

type OrderRow struct {
	ID           string
	CustomerName string
	Address      string
	Date         string
	Total        string
	Phone        string
	Email        string
	City         string
	// NoStatus is set when the order has no status, leaving the select blank.
	NoStatus bool
	Statuses []StatusOption
	Expanded bool
	Items    []ItemRow
}

type DashboardPage struct {
	Filter  string
	Filters []FilterButton
	Rows    []OrderRow
	Notices []dashboard.Notice
}

type ConfirmPage struct {
	OrderID string
	Prompt  dashboard.Prompt
}

// StatusOptions marks the option matching the order's current status.
func StatusOptions(current models.Status) []StatusOption {
	opts := make([]StatusOption, 0, len(models.Statuses))
	for _, s := range models.Statuses {
		opts = append(opts, StatusOption{Value: string(s), Label: s.Label(), Selected: s == current})
	}
	return opts
}
