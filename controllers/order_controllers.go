package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/orders-admin/dashboard"
	"github.com/yeremiapane/orders-admin/imageurl"
	"github.com/yeremiapane/orders-admin/middlewares"
	"github.com/yeremiapane/orders-admin/models"
	"github.com/yeremiapane/orders-admin/utils"
	"github.com/yeremiapane/orders-admin/views"
)

const dashboardPath = "/admin/dashboard"

// OrderController serves the order management pages. Every admin session
// has its own view state held in Sessions.
type OrderController struct {
	Sessions *dashboard.Sessions
	Images   imageurl.Resolver
}

func NewOrderController(sessions *dashboard.Sessions, images imageurl.Resolver) *OrderController {
	return &OrderController{Sessions: sessions, Images: images}
}

func (oc *OrderController) session(c *gin.Context) *dashboard.Session {
	return oc.Sessions.Get(middlewares.CurrentSession(c).ID)
}

// activate loads the orders on the first visit. The load outlives the
// request that triggered it.
func activate(c *gin.Context, v *dashboard.View) {
	v.Activate(context.WithoutCancel(c.Request.Context()))
}

// Dashboard renders the orders table. ?status= switches the filter.
func (oc *OrderController) Dashboard(c *gin.Context) {
	s := oc.session(c)
	activate(c, s.View)

	if raw, ok := c.GetQuery("status"); ok {
		f, err := dashboard.ParseFilter(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		s.View.SetFilter(f)
	}

	c.HTML(http.StatusOK, "dashboard.html", oc.page(s))
}

// ToggleDetail expands or collapses one order row.
func (oc *OrderController) ToggleDetail(c *gin.Context) {
	oc.session(c).View.ToggleDetail(c.Param("order_id"))
	c.Redirect(http.StatusSeeOther, dashboardPath)
}

// ChangeStatus applies the status picked in a row's select.
func (oc *OrderController) ChangeStatus(c *gin.Context) {
	s := oc.session(c)
	status := models.Status(c.PostForm("status"))
	dialog := dashboard.Answered{Notifier: s.Notices}

	// Failures are shown through the notice queue.
	if err := s.View.ChangeStatus(c.Request.Context(), dialog, c.Param("order_id"), status); err != nil {
		c.Error(err)
	}
	c.Redirect(http.StatusSeeOther, dashboardPath)
}

// ConfirmDelete shows the destructive-action prompt.
func (oc *OrderController) ConfirmDelete(c *gin.Context) {
	c.HTML(http.StatusOK, "confirm_delete.html", views.ConfirmPage{
		OrderID: c.Param("order_id"),
		Prompt:  dashboard.DeletePrompt,
	})
}

// DeleteOrder receives the admin's answer to the prompt.
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	s := oc.session(c)
	dialog := dashboard.Answered{
		Confirmed: c.PostForm("confirm") == "yes",
		Notifier:  s.Notices,
	}

	err := s.View.Delete(c.Request.Context(), dialog, c.Param("order_id"))
	if err != nil && !errors.Is(err, dashboard.ErrDeclined) {
		c.Error(err)
	}
	c.Redirect(http.StatusSeeOther, dashboardPath)
}

func (oc *OrderController) page(s *dashboard.Session) views.DashboardPage {
	current := s.View.Filter()
	selected, hasSelected := s.View.Selected()

	page := views.DashboardPage{
		Filter:  string(current),
		Notices: s.Notices.Drain(),
	}
	for _, f := range dashboard.Filters {
		page.Filters = append(page.Filters, views.FilterButton{Value: string(f), Active: f == current})
	}

	for _, o := range s.View.Filtered() {
		row := views.OrderRow{
			ID:           o.ID,
			CustomerName: o.CustomerName(),
			Address:      o.Address,
			Date:         o.PlacedOn(),
			Total:        utils.FormatDollars(o.Total),
			Phone:        o.Phone,
			Email:        o.Email,
			City:         o.City,
			NoStatus:     !o.Status.Valid(),
			Statuses:     views.StatusOptions(o.Status),
			Expanded:     hasSelected && selected == o.ID,
		}
		if row.Expanded {
			for _, it := range o.CartItems {
				item := views.ItemRow{ProductName: it.ProductName}
				if u, ok := oc.Images.URL(it.Image); ok {
					item.ImageURL = u
				}
				row.Items = append(row.Items, item)
			}
		}
		page.Rows = append(page.Rows, row)
	}
	return page
}
