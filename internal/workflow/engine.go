package workflow

import (
	"errors"

	"gorm.io/gorm"

	"github.com/fieldserve/technician-marketplace/internal/models"
)

// Engine runs the engagement lifecycle: quotations against a request,
// exclusive acceptance into a job, completion, and review gating.
// Every multi-row transition happens inside one DB transaction.
type Engine struct {
	DB *gorm.DB
}

func NewEngine(db *gorm.DB) *Engine {
	return &Engine{DB: db}
}

// SubmitQuotationInput is the payload for SubmitQuotation.
type SubmitQuotationInput struct {
	TechnicianID uint
	Price        float64
	Note         string
}

// SubmitQuotation creates a pending quotation for a request and moves
// an OPEN request to QUOTED. Requests in a terminal status accept no
// further quotations, and the technician's service must match the
// request's.
func (e *Engine) SubmitQuotation(requestID uint, in SubmitQuotationInput) (*models.Quotation, error) {
	if in.Price <= 0 {
		return nil, validation("Price must be positive")
	}

	var quotation models.Quotation
	err := e.DB.Transaction(func(tx *gorm.DB) error {
		var req models.ServiceRequest
		if err := tx.First(&req, "id = ?", requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Request not found")
			}
			return err
		}
		if req.Status.Terminal() {
			return invalidState("Cannot quote closed request")
		}

		var tech models.Technician
		if err := tx.First(&tech, "id = ?", in.TechnicianID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Technician not found")
			}
			return err
		}
		if tech.ServiceID != req.ServiceID {
			return invalidState("Technician service does not match request service")
		}

		quotation = models.Quotation{
			RequestID:    requestID,
			TechnicianID: in.TechnicianID,
			Price:        in.Price,
			Note:         in.Note,
			Status:       models.QuotationStatusPending,
		}
		if err := tx.Create(&quotation).Error; err != nil {
			return err
		}

		// Forward move only: BOOKED is never downgraded.
		if req.Status == models.RequestStatusOpen {
			if err := tx.Model(&req).Update("status", models.RequestStatusQuoted).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &quotation, nil
}

// AcceptQuotation accepts one pending quotation: all siblings are
// rejected, the request is booked, and exactly one job is created.
// The unique index on jobs.request_id backs the exclusivity check
// under concurrent accepts.
func (e *Engine) AcceptQuotation(quotationID uint) (*models.Job, error) {
	var job models.Job
	err := e.DB.Transaction(func(tx *gorm.DB) error {
		var q models.Quotation
		if err := tx.First(&q, "id = ?", quotationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Quotation not found")
			}
			return err
		}
		if q.Status != models.QuotationStatusPending {
			return invalidState("Quotation is not pending")
		}

		var req models.ServiceRequest
		if err := tx.First(&req, "id = ?", q.RequestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Request not found")
			}
			return err
		}

		var existing models.Job
		if err := tx.First(&existing, "request_id = ?", req.ID).Error; err == nil {
			return conflict("Job already exists for this request")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Model(&models.Quotation{}).
			Where("request_id = ? AND id <> ?", req.ID, q.ID).
			Update("status", models.QuotationStatusRejected).Error; err != nil {
			return err
		}
		if err := tx.Model(&q).Update("status", models.QuotationStatusAccepted).Error; err != nil {
			return err
		}
		if err := tx.Model(&req).Update("status", models.RequestStatusBooked).Error; err != nil {
			return err
		}

		job = models.Job{
			RequestID:    req.ID,
			CustomerID:   req.CustomerID,
			TechnicianID: q.TechnicianID,
			QuotationID:  q.ID,
			Reference:    models.GenerateJobReference(),
			Status:       models.JobStatusBooked,
		}
		if err := tx.Create(&job).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// CompleteJob marks a job completed and syncs the parent request.
// A missing request does not fail the completion.
func (e *Engine) CompleteJob(jobID uint) (*models.Job, error) {
	return e.setJobStatus(jobID, models.JobStatusCompleted)
}

// UpdateJobStatus overwrites a job's status. The status must be a
// known one, but transitions between known statuses are not
// restricted; this is the administrative escape hatch. Completing a
// job this way syncs the parent request the same as CompleteJob.
func (e *Engine) UpdateJobStatus(jobID uint, status models.JobStatus) (*models.Job, error) {
	if !models.ValidJobStatus(status) {
		return nil, validation("Invalid job status")
	}
	return e.setJobStatus(jobID, status)
}

func (e *Engine) setJobStatus(jobID uint, status models.JobStatus) (*models.Job, error) {
	var job models.Job
	err := e.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&job, "id = ?", jobID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Job not found")
			}
			return err
		}

		if err := tx.Model(&job).Update("status", status).Error; err != nil {
			return err
		}

		if status == models.JobStatusCompleted {
			var req models.ServiceRequest
			if err := tx.First(&req, "id = ?", job.RequestID).Error; err == nil {
				if err := tx.Model(&req).Update("status", models.RequestStatusCompleted).Error; err != nil {
					return err
				}
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// SubmitReviewInput is the payload for SubmitReview.
type SubmitReviewInput struct {
	Rating  int
	Comment string
}

// SubmitReview creates the single review allowed for a completed job,
// copying the customer and technician from the job itself.
func (e *Engine) SubmitReview(jobID uint, in SubmitReviewInput) (*models.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, validation("Rating must be between 1 and 5")
	}

	var review models.Review
	err := e.DB.Transaction(func(tx *gorm.DB) error {
		var job models.Job
		if err := tx.First(&job, "id = ?", jobID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Job not found")
			}
			return err
		}
		if job.Status != models.JobStatusCompleted {
			return invalidState("Review allowed only when job is COMPLETED")
		}

		var existing models.Review
		if err := tx.First(&existing, "job_id = ?", job.ID).Error; err == nil {
			return conflict("Review already exists for this job")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		review = models.Review{
			JobID:        job.ID,
			CustomerID:   job.CustomerID,
			TechnicianID: job.TechnicianID,
			Rating:       in.Rating,
			Comment:      in.Comment,
		}
		if err := tx.Create(&review).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}
