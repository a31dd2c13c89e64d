package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/orders-admin/store"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
		Data:    nil,
	})
}

// StoreErrorStatus maps a store failure to the HTTP status the API answers
// with.
func StoreErrorStatus(err error) int {
	switch store.KindOf(err) {
	case store.KindNotFound:
		return http.StatusNotFound
	case store.KindNetworkFailure:
		return http.StatusBadGateway
	default:
		return http.StatusUnprocessableEntity
	}
}
