package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/fieldserve/technician-marketplace/internal/models"
)

type CertificationHandler struct {
	DB *gorm.DB
}

func NewCertificationHandler(db *gorm.DB) *CertificationHandler {
	return &CertificationHandler{DB: db}
}

// CreateCertificationRequest is the request body for adding a certification
type CreateCertificationRequest struct {
	Title  string `json:"title"`
	Issuer string `json:"issuer"`
	Year   int    `json:"year"`
}

func (h *CertificationHandler) Create(c *fiber.Ctx) error {
	techID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "Invalid technician ID",
		})
	}

	var req CreateCertificationRequest
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

	var tech models.Technician
	if err := h.DB.First(&tech, "id = ?", techID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"message": "Technician not found",
		})
	}

	cert := models.Certification{
		TechnicianID: tech.ID,
		Title:        req.Title,
		Issuer:       req.Issuer,
		Year:         req.Year,
	}
	if err := h.DB.Create(&cert).Error; err != nil {
		log.Println("Error creating certification:", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create certification",
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    cert,
	})
}

func (h *CertificationHandler) ListByTechnician(c *fiber.Ctx) error {
	techID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "Invalid technician ID",
		})
	}

	var certs []models.Certification
	if err := h.DB.Where("technician_id = ?", techID).Find(&certs).Error; err != nil {
		log.Println("Error fetching certifications:", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch certifications",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    certs,
	})
}

func (h *CertificationHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "Invalid certification ID",
		})
	}

	var cert models.Certification
	if err := h.DB.First(&cert, "id = ?", id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"message": "Certification not found",
		})
	}

	if err := h.DB.Delete(&cert).Error; err != nil {
		log.Println("Error deleting certification:", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Failed to delete certification",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"deleted": true},
	})
}
