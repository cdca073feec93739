package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/fieldserve/technician-marketplace/internal/models"
	"github.com/fieldserve/technician-marketplace/internal/workflow"
)

type QuotationHandler struct {
	DB     *gorm.DB
	Engine *workflow.Engine
}

func NewQuotationHandler(db *gorm.DB, engine *workflow.Engine) *QuotationHandler {
	return &QuotationHandler{DB: db, Engine: engine}
}

// CreateQuotationRequest is the request body for submitting a quotation
type CreateQuotationRequest struct {
	TechnicianID uint    `json:"technician_id"`
	Price        float64 `json:"price"`
	Note         string  `json:"note"`
}

func (h *QuotationHandler) Create(c *fiber.Ctx) error {
	requestID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request ID",
		})
	}

	var req CreateQuotationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	quotation, err := h.Engine.SubmitQuotation(uint(requestID), workflow.SubmitQuotationInput{
		TechnicianID: req.TechnicianID,
		Price:        req.Price,
		Note:         req.Note,
	})
	if err != nil {
		return respondWorkflowError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    quotation,
	})
}

func (h *QuotationHandler) ListByRequest(c *fiber.Ctx) error {
	requestID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request ID",
		})
	}

	var quotations []models.Quotation
	if err := h.DB.
		Where("request_id = ?", requestID).
		Order("created_at DESC").
		Find(&quotations).Error; err != nil {
		log.Println("Error fetching quotations:", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch quotations",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    quotations,
	})
}

// Accept books the request: siblings rejected, one job created.
func (h *QuotationHandler) Accept(c *fiber.Ctx) error {
	quotationID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "Invalid quotation ID",
		})
	}

	job, err := h.Engine.AcceptQuotation(uint(quotationID))
	if err != nil {
		return respondWorkflowError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    job,
	})
}
