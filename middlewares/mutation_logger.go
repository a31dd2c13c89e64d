package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/orders-admin/utils"
)

// OrderMutationLogger records every attempt to change an order and its outcome.
// Handlers report store failures with c.Error, since the page routes always
// answer with a redirect.
func OrderMutationLogger(action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		fields := logrus.Fields{
			"request_id": GetRequestID(c),
			"action":     action,
			"order_id":   c.Param("order_id"),
		}
		// Sebelum request
		utils.InfoLogger.WithFields(fields).Info("order mutation requested")

		c.Next()

		// Setelah request
		status := c.Writer.Status()
		if len(c.Errors) > 0 || status >= 400 {
			entry := utils.ErrorLogger.WithFields(fields).WithField("status", status)
			if len(c.Errors) > 0 {
				entry = entry.WithField("errors", c.Errors.String())
			}
			entry.Error("order mutation failed")
			return
		}
		utils.InfoLogger.WithFields(fields).WithField("status", status).Info("order mutation done")
	}
}
