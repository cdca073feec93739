package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/fieldserve/technician-marketplace/internal/geo"
	"github.com/fieldserve/technician-marketplace/internal/models"
)

type TechnicianHandler struct {
	DB *gorm.DB
}

func NewTechnicianHandler(db *gorm.DB) *TechnicianHandler {
	return &TechnicianHandler{DB: db}
}

// CreateTechnicianRequest is the request body for creating a technician profile
type CreateTechnicianRequest struct {
	UserID      uint    `json:"user_id"`
	DisplayName string  `json:"display_name"`
	Bio         string  `json:"bio"`
	ServiceID   uint    `json:"service_id"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}

// UpdateTechnicianRequest is a partial update; absent fields are left
// untouched, so every field is a pointer.
type UpdateTechnicianRequest struct {
	DisplayName *string  `json:"display_name"`
	Bio         *string  `json:"bio"`
	ServiceID   *uint    `json:"service_id"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
}

func (h *TechnicianHandler) Create(c *fiber.Ctx) error {
	var req CreateTechnicianRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if req.DisplayName == "" {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "Display name is required",
		})
	}

	var user models.User
	if err := h.DB.First(&user, "id = ?", req.UserID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"message": "User not found",
		})
	}
	if !user.Role.CanOwnTechnicianProfile() {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "User role must be technician/admin to create technician profile",
		})
	}

	var existing models.Technician
	if err := h.DB.Where("user_id = ?", req.UserID).First(&existing).Error; err == nil {
		return c.Status(409).JSON(fiber.Map{
			"success": false,
			"message": "Technician profile already exists for this user",
		})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Error checking technician profile:", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create technician",
		})
	}

	tech := models.Technician{
		UserID:      req.UserID,
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
		ServiceID:   req.ServiceID,
		Lat:         req.Lat,
		Lng:         req.Lng,
	}
	if err := h.DB.Create(&tech).Error; err != nil {
		log.Println("Error creating technician:", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create technician",
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    tech,
	})
}

func (h *TechnicianHandler) List(c *fiber.Ctx) error {
	var techs []models.Technician
	if err := h.DB.Find(&techs).Error; err != nil {
		log.Println("Error fetching technicians:", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch technicians",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    techs,
	})
}

func (h *TechnicianHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "Invalid technician ID",
		})
	}

	var tech models.Technician
	if err := h.DB.First(&tech, "id = ?", id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"message": "Technician not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    tech,
	})
}

func (h *TechnicianHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "Invalid technician ID",
		})
	}

	var req UpdateTechnicianRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	var tech models.Technician
	if err := h.DB.First(&tech, "id = ?", id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"message": "Technician not found",
		})
	}

	if req.DisplayName != nil {
		tech.DisplayName = *req.DisplayName
	}
	if req.Bio != nil {
		tech.Bio = *req.Bio
	}
	if req.ServiceID != nil {
		tech.ServiceID = *req.ServiceID
	}
	if req.Lat != nil {
		tech.Lat = *req.Lat
	}
	if req.Lng != nil {
		tech.Lng = *req.Lng
	}

	if err := h.DB.Save(&tech).Error; err != nil {
		log.Println("Error updating technician:", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Failed to update technician",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    tech,
	})
}

func (h *TechnicianHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "Invalid technician ID",
		})
	}

	var tech models.Technician
	if err := h.DB.First(&tech, "id = ?", id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"message": "Technician not found",
		})
	}

	// Block deletion while the technician is part of a live engagement.
	var bookedJobs, pendingQuotes int64
	h.DB.Model(&models.Job{}).
		Where("technician_id = ? AND status = ?", tech.ID, models.JobStatusBooked).
		Count(&bookedJobs)
	h.DB.Model(&models.Quotation{}).
		Where("technician_id = ? AND status = ?", tech.ID, models.QuotationStatusPending).
		Count(&pendingQuotes)
	if bookedJobs > 0 || pendingQuotes > 0 {
		return c.Status(409).JSON(fiber.Map{
			"success": false,
			"message": "Technician has active jobs or pending quotations",
		})
	}

	// Certifications go with their technician.
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("technician_id = ?", tech.ID).Delete(&models.Certification{}).Error; err != nil {
			return err
		}
		return tx.Delete(&tech).Error
	})
	if err != nil {
		log.Println("Error deleting technician:", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Failed to delete technician",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"deleted": true},
	})
}

// Search returns technicians for a service within radius_km of a
// point. Linear scan; the inclusive boundary (distance == radius) is
// part of the contract.
func (h *TechnicianHandler) Search(c *fiber.Ctx) error {
	serviceID := c.QueryInt("service_id")
	lat := c.QueryFloat("lat")
	lng := c.QueryFloat("lng")
	radiusKm := c.QueryFloat("radius_km", 5)

	if serviceID <= 0 {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "service_id is required",
		})
	}
	if radiusKm <= 0 {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "radius_km must be positive",
		})
	}

	var techs []models.Technician
	if err := h.DB.Where("service_id = ?", serviceID).Find(&techs).Error; err != nil {
		log.Println("Error searching technicians:", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Failed to search technicians",
		})
	}

	result := make([]models.Technician, 0, len(techs))
	for _, t := range techs {
		if geo.HaversineKm(lat, lng, t.Lat, t.Lng) <= radiusKm {
			result = append(result, t)
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result,
	})
}
