package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/fieldserve/technician-marketplace/internal/models"
)

type ServiceHandler struct {
	DB *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{DB: db}
}

// ServiceRequest is the request body for creating or updating a service
type ServiceRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	var req ServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "Name is required",
		})
	}

	var existing models.Service
	if err := h.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return c.Status(409).JSON(fiber.Map{
			"success": false,
			"message": "Service name already exists",
		})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Error checking service name:", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create service",
		})
	}

	svc := models.Service{Name: req.Name, Description: req.Description}
	if err := h.DB.Create(&svc).Error; err != nil {
		log.Println("Error creating service:", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create service",
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    svc,
	})
}

func (h *ServiceHandler) List(c *fiber.Ctx) error {
	var services []models.Service
	if err := h.DB.Find(&services).Error; err != nil {
		log.Println("Error fetching services:", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch services",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    services,
	})
}

func (h *ServiceHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "Invalid service ID",
		})
	}

	var svc models.Service
	if err := h.DB.First(&svc, "id = ?", id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"message": "Service not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    svc,
	})
}

func (h *ServiceHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "Invalid service ID",
		})
	}

	var req ServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "Name is required",
		})
	}

	var svc models.Service
	if err := h.DB.First(&svc, "id = ?", id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"message": "Service not found",
		})
	}

	var existing models.Service
	if err := h.DB.Where("name = ? AND id <> ?", req.Name, svc.ID).First(&existing).Error; err == nil {
		return c.Status(409).JSON(fiber.Map{
			"success": false,
			"message": "Service name already exists",
		})
	}

	svc.Name = req.Name
	svc.Description = req.Description
	if err := h.DB.Save(&svc).Error; err != nil {
		log.Println("Error updating service:", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Failed to update service",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    svc,
	})
}

func (h *ServiceHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "Invalid service ID",
		})
	}

	var svc models.Service
	if err := h.DB.First(&svc, "id = ?", id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"message": "Service not found",
		})
	}

	// A service still referenced by technicians or requests cannot go.
	var techCount, reqCount int64
	h.DB.Model(&models.Technician{}).Where("service_id = ?", svc.ID).Count(&techCount)
	h.DB.Model(&models.ServiceRequest{}).Where("service_id = ?", svc.ID).Count(&reqCount)
	if techCount > 0 || reqCount > 0 {
		return c.Status(409).JSON(fiber.Map{
			"success": false,
			"message": "Service is referenced by technicians or requests",
		})
	}

	if err := h.DB.Delete(&svc).Error; err != nil {
		log.Println("Error deleting service:", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Failed to delete service",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"deleted": true},
	})
}
