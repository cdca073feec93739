package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/fieldserve/technician-marketplace/internal/models"
)

type EstimateHandler struct {
	DB *gorm.DB
}

func NewEstimateHandler(db *gorm.DB) *EstimateHandler {
	return &EstimateHandler{DB: db}
}

// PriceEstimateResponse is the aggregate over historical quotations
// for a service. All quotation statuses count: rejected and pending
// offers are still market-rate signal.
type PriceEstimateResponse struct {
	ServiceID    uint    `json:"service_id"`
	AveragePrice float64 `json:"average_price"`
	SampleSize   int64   `json:"sample_size"`
}

func (h *EstimateHandler) Get(c *fiber.Ctx) error {
	serviceID := c.QueryInt("service_id")
	if serviceID <= 0 {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "service_id is required",
		})
	}

	var agg struct {
		AvgPrice float64
		Count    int64
	}
	err := h.DB.Model(&models.Quotation{}).
		Select("COALESCE(AVG(quotations.price), 0) AS avg_price, COUNT(quotations.id) AS count").
		Joins("JOIN service_requests ON service_requests.id = quotations.request_id").
		Where("service_requests.service_id = ?", serviceID).
		Scan(&agg).Error
	if err != nil {
		log.Println("Error computing price estimate:", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Failed to compute price estimate",
		})
	}

	resp := PriceEstimateResponse{
		ServiceID:    uint(serviceID),
		AveragePrice: agg.AvgPrice,
		SampleSize:   agg.Count,
	}
	if resp.SampleSize == 0 {
		resp.AveragePrice = 0.0
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    resp,
	})
}
