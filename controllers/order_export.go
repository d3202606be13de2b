package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// ExportOrders streams all orders as an xlsx download (admin only).
func (oc *OrderController) ExportOrders(c *gin.Context) {
	var rows []struct {
		ID            string
		UserID        string
		TotalAmount   int64
		Status        string
		PaymentMethod string
		PaymentID     string
		CreatedAt     string
	}

	page := 1
	for {
		result, svcErr := oc.orders.GetAllOrders(c.Request.Context(), page, 100)
		if svcErr != nil {
			c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
			return
		}
		for _, o := range result.Orders {
			rows = append(rows, struct {
				ID            string
				UserID        string
				TotalAmount   int64
				Status        string
				PaymentMethod string
				PaymentID     string
				CreatedAt     string
			}{
				ID:            o.ID.String(),
				UserID:        o.UserID.String(),
				TotalAmount:   o.TotalAmount,
				Status:        o.Status,
				PaymentMethod: o.PaymentMethod,
				PaymentID:     o.PaymentID,
				CreatedAt:     o.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}
		if !result.Meta.HasMore {
			break
		}
		page++
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
		return
	}

	headerRow := sheet.AddRow()
	for _, h := range []string{"ID", "UserID", "TotalAmount", "Status", "PaymentMethod", "PaymentID", "CreatedAt"} {
		headerRow.AddCell().SetValue(h)
	}
	for _, r := range rows {
		row := sheet.AddRow()
		row.AddCell().SetValue(r.ID)
		row.AddCell().SetValue(r.UserID)
		row.AddCell().SetValue(r.TotalAmount)
		row.AddCell().SetValue(r.Status)
		row.AddCell().SetValue(r.PaymentMethod)
		row.AddCell().SetValue(r.PaymentID)
		row.AddCell().SetValue(r.CreatedAt)
	}

	c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Expires", "0")

	if err := file.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
	}
}
