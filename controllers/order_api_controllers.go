package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/orders-admin/dashboard"
	"github.com/yeremiapane/orders-admin/middlewares"
	"github.com/yeremiapane/orders-admin/models"
	"github.com/yeremiapane/orders-admin/utils"
)

// OrderAPIController exposes the same view state as the pages, as JSON.
type OrderAPIController struct {
	Sessions *dashboard.Sessions
}

func NewOrderAPIController(sessions *dashboard.Sessions) *OrderAPIController {
	return &OrderAPIController{Sessions: sessions}
}

func (ac *OrderAPIController) view(c *gin.Context) *dashboard.View {
	v := ac.Sessions.Get(middlewares.CurrentSession(c).ID).View
	activate(c, v)
	return v
}

func selectedID(v *dashboard.View) interface{} {
	if id, ok := v.Selected(); ok {
		return id
	}
	return nil
}

// GetOrders -> list orders matching the filter, ?status= switches it
func (ac *OrderAPIController) GetOrders(c *gin.Context) {
	v := ac.view(c)

	if raw, ok := c.GetQuery("status"); ok {
		f, err := dashboard.ParseFilter(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		v.SetFilter(f)
	}

	utils.RespondJSON(c, http.StatusOK, "List of orders", gin.H{
		"orders":   v.Filtered(),
		"filter":   v.Filter(),
		"selected": selectedID(v),
	})
}

// ToggleDetail -> expand or collapse one order
func (ac *OrderAPIController) ToggleDetail(c *gin.Context) {
	v := ac.view(c)
	v.ToggleDetail(c.Param("order_id"))
	utils.RespondJSON(c, http.StatusOK, "Selection updated", gin.H{"selected": selectedID(v)})
}

// UpdateStatus -> body {"status": "dispatch"}
func (ac *OrderAPIController) UpdateStatus(c *gin.Context) {
	var req struct {
		Status models.Status `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	v := ac.view(c)
	notices := &dashboard.NoticeQueue{}
	orderID := c.Param("order_id")

	err := v.ChangeStatus(c.Request.Context(), dashboard.Answered{Notifier: notices}, orderID, req.Status)
	switch {
	case errors.Is(err, dashboard.ErrInvalidStatus):
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	case err != nil:
		utils.RespondError(c, utils.StoreErrorStatus(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order updated", gin.H{
		"order_id": orderID,
		"status":   req.Status,
		"notices":  notices.Drain(),
	})
}

// DeleteOrder -> requires ?confirm=true, otherwise answers with the prompt
func (ac *OrderAPIController) DeleteOrder(c *gin.Context) {
	v := ac.view(c)
	notices := &dashboard.NoticeQueue{}
	orderID := c.Param("order_id")

	dialog := dashboard.Answered{Confirmed: c.Query("confirm") == "true", Notifier: notices}
	err := v.Delete(c.Request.Context(), dialog, orderID)
	switch {
	case errors.Is(err, dashboard.ErrDeclined):
		utils.RespondJSON(c, http.StatusPreconditionRequired, "Confirmation required", gin.H{
			"prompt": dashboard.DeletePrompt,
		})
		return
	case err != nil:
		utils.RespondError(c, utils.StoreErrorStatus(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order deleted", gin.H{
		"order_id": orderID,
		"notices":  notices.Drain(),
	})
}
