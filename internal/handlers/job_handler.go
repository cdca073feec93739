package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/fieldserve/technician-marketplace/internal/models"
	"github.com/fieldserve/technician-marketplace/internal/workflow"
)

type JobHandler struct {
	DB     *gorm.DB
	Engine *workflow.Engine
}

func NewJobHandler(db *gorm.DB, engine *workflow.Engine) *JobHandler {
	return &JobHandler{DB: db, Engine: engine}
}

// UpdateJobRequest is the request body for overwriting a job status
type UpdateJobRequest struct {
	Status string `json:"status"`
}

func (h *JobHandler) List(c *fiber.Ctx) error {
	var jobs []models.Job
	if err := h.DB.Find(&jobs).Error; err != nil {
		log.Println("Error fetching jobs:", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch jobs",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    jobs,
	})
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "Invalid job ID",
		})
	}

	var job models.Job
	if err := h.DB.First(&job, "id = ?", id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"message": "Job not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    job,
	})
}

func (h *JobHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "Invalid job ID",
		})
	}

	var req UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	job, err := h.Engine.UpdateJobStatus(uint(id), models.JobStatus(req.Status))
	if err != nil {
		return respondWorkflowError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    job,
	})
}

func (h *JobHandler) Complete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "Invalid job ID",
		})
	}

	job, err := h.Engine.CompleteJob(uint(id))
	if err != nil {
		return respondWorkflowError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    job,
	})
}
