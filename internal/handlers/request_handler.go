package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/fieldserve/technician-marketplace/internal/models"
)

type RequestHandler struct {
	DB *gorm.DB
}

func NewRequestHandler(db *gorm.DB) *RequestHandler {
	return &RequestHandler{DB: db}
}

// CreateRequestRequest is the request body for creating a service request
type CreateRequestRequest struct {
	CustomerID  uint    `json:"customer_id"`
	ServiceID   uint    `json:"service_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}

// UpdateRequestRequest is a partial update; absent fields are left
// untouched. Status changes here are the administrative path (e.g.
// CANCELED); the workflow engine owns the automated transitions.
type UpdateRequestRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
	Status      *string  `json:"status"`
}

func (h *RequestHandler) Create(c *fiber.Ctx) error {
	var req CreateRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if req.Title == "" {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "Title is required",
		})
	}

	var customer models.User
	if err := h.DB.First(&customer, "id = ?", req.CustomerID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"message": "Customer not found",
		})
	}
	if customer.Role != models.RoleCustomer {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "Only customer can create requests",
		})
	}

	request := models.ServiceRequest{
		CustomerID:  req.CustomerID,
		ServiceID:   req.ServiceID,
		Title:       req.Title,
		Description: req.Description,
		Lat:         req.Lat,
		Lng:         req.Lng,
		Status:      models.RequestStatusOpen,
	}
	if err := h.DB.Create(&request).Error; err != nil {
		log.Println("Error creating request:", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create request",
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    request,
	})
}

func (h *RequestHandler) List(c *fiber.Ctx) error {
	var requests []models.ServiceRequest
	if err := h.DB.Find(&requests).Error; err != nil {
		log.Println("Error fetching requests:", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch requests",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    requests,
	})
}

func (h *RequestHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request ID",
		})
	}

	var request models.ServiceRequest
	if err := h.DB.First(&request, "id = ?", id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"message": "Request not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    request,
	})
}

func (h *RequestHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request ID",
		})
	}

	var req UpdateRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	var request models.ServiceRequest
	if err := h.DB.First(&request, "id = ?", id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"message": "Request not found",
		})
	}

	if req.Status != nil {
		status := models.RequestStatus(*req.Status)
		if !models.ValidRequestStatus(status) {
			return c.Status(400).JSON(fiber.Map{
				"success": false,
				"message": "Invalid request status",
			})
		}
		request.Status = status
	}
	if req.Title != nil {
		request.Title = *req.Title
	}
	if req.Description != nil {
		request.Description = *req.Description
	}
	if req.Lat != nil {
		request.Lat = *req.Lat
	}
	if req.Lng != nil {
		request.Lng = *req.Lng
	}

	if err := h.DB.Save(&request).Error; err != nil {
		log.Println("Error updating request:", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Failed to update request",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    request,
	})
}

func (h *RequestHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request ID",
		})
	}

	var request models.ServiceRequest
	if err := h.DB.First(&request, "id = ?", id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"message": "Request not found",
		})
	}

	// A booked request owns a job; it cannot be removed underneath it.
	var jobCount int64
	h.DB.Model(&models.Job{}).Where("request_id = ?", request.ID).Count(&jobCount)
	if jobCount > 0 {
		return c.Status(409).JSON(fiber.Map{
			"success": false,
			"message": "Request has a job and cannot be deleted",
		})
	}

	if err := h.DB.Delete(&request).Error; err != nil {
		log.Println("Error deleting request:", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Failed to delete request",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"deleted": true},
	})
}
