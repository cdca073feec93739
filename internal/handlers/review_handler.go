package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/fieldserve/technician-marketplace/internal/models"
	"github.com/fieldserve/technician-marketplace/internal/workflow"
)

type ReviewHandler struct {
	DB     *gorm.DB
	Engine *workflow.Engine
}

func NewReviewHandler(db *gorm.DB, engine *workflow.Engine) *ReviewHandler {
	return &ReviewHandler{DB: db, Engine: engine}
}

// CreateReviewRequest is the request body for reviewing a completed job
type CreateReviewRequest struct {
	JobID   uint   `json:"job_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var req CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	review, err := h.Engine.SubmitReview(req.JobID, workflow.SubmitReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return respondWorkflowError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    review,
	})
}

func (h *ReviewHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "Invalid review ID",
		})
	}

	var review models.Review
	if err := h.DB.First(&review, "id = ?", id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"message": "Review not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    review,
	})
}

func (h *ReviewHandler) ListByTechnician(c *fiber.Ctx) error {
	techID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "Invalid technician ID",
		})
	}

	var reviews []models.Review
	if err := h.DB.Where("technician_id = ?", techID).Find(&reviews).Error; err != nil {
		log.Println("Error fetching reviews:", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch reviews",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    reviews,
	})
}

func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "Invalid review ID",
		})
	}

	var review models.Review
	if err := h.DB.First(&review, "id = ?", id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"message": "Review not found",
		})
	}

	if err := h.DB.Delete(&review).Error; err != nil {
		log.Println("Error deleting review:", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Failed to delete review",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"deleted": true},
	})
}
