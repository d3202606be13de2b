package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/TrungQuaan22/ProjectIII-Elearning/middleware"
	"github.com/TrungQuaan22/ProjectIII-Elearning/services"
)

type PaymentController struct {
	payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{payments: payments}
}

// CreatePayment builds the gateway redirect URL for one of the caller's
// pending orders.
func (pc *PaymentController) CreatePayment(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	orderID, err := uuid.Parse(c.Param("order_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	url, svcErr := pc.payments.CreatePaymentURL(c.Request.Context(), userID, orderID, c.ClientIP())
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Create payment URL successfully",
		"data":    gin.H{"payment_url": url},
	})
}

// Callback handles the browser redirect back from the gateway.
func (pc *PaymentController) Callback(c *gin.Context) {
	result, svcErr := pc.payments.HandleReturn(c.Request.Context(), queryParams(c))
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, result)
}

// IPN handles the gateway's server-to-server notification. The response body
// always uses the gateway's {RspCode, Message} shape with HTTP 200, whatever
// the outcome; only the code tells the gateway whether to stop retrying.
func (pc *PaymentController) IPN(c *gin.Context) {
	resp := pc.payments.HandleIPN(c.Request.Context(), queryParams(c))
	c.JSON(http.StatusOK, resp)
}

func queryParams(c *gin.Context) map[string]string {
	params := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	return params
}
