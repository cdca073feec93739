package handlers

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/fieldserve/technician-marketplace/internal/models"
)

func setupRequestApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	h := NewRequestHandler(db)
	app.Post("/requests", h.Create)
	app.Get("/requests", h.List)
	app.Get("/requests/:id", h.Get)
	app.Put("/requests/:id", h.Update)
	app.Delete("/requests/:id", h.Delete)
	return app
}

func TestCreateRequest(t *testing.T) {
	db := setupTestDB(t)
	app := setupRequestApp(db)
	svc := seedService(t, db, "Plumbing")
	customer := seedUser(t, db, "Ana", models.RoleCustomer)
	techUser := seedUser(t, db, "Budi", models.RoleTechnician)

	status, env := doRequest(t, app, "POST", "/requests", CreateRequestRequest{
		CustomerID: customer.ID, ServiceID: svc.ID,
		Title: "Leaking sink", Lat: 10, Lng: 10.001,
	})
	require.Equal(t, 201, status)

	var req models.ServiceRequest
	decodeData(t, env, &req)
	assert.Equal(t, models.RequestStatusOpen, req.Status)
	assert.NotZero(t, req.ID)
	assert.False(t, req.CreatedAt.IsZero())

	// Only customers open requests.
	status, _ = doRequest(t, app, "POST", "/requests", CreateRequestRequest{
		CustomerID: techUser.ID, ServiceID: svc.ID, Title: "Nope",
	})
	assert.Equal(t, 400, status)

	status, _ = doRequest(t, app, "POST", "/requests", CreateRequestRequest{
		CustomerID: 9999, ServiceID: svc.ID, Title: "Ghost",
	})
	assert.Equal(t, 404, status)
}

func TestUpdateRequestCancel(t *testing.T) {
	db := setupTestDB(t)
	app := setupRequestApp(db)
	svc := seedService(t, db, "Plumbing")
	customer := seedUser(t, db, "Ana", models.RoleCustomer)

	req := models.ServiceRequest{CustomerID: customer.ID, ServiceID: svc.ID, Title: "Sink", Status: models.RequestStatusOpen}
	require.NoError(t, db.Create(&req).Error)

	// Administrative cancel through the generic update.
	status, env := doRequest(t, app, "PUT", fmt.Sprintf("/requests/%d", req.ID),
		map[string]any{"status": "CANCELED"})
	require.Equal(t, 200, status)
	var got models.ServiceRequest
	decodeData(t, env, &got)
	assert.Equal(t, models.RequestStatusCanceled, got.Status)

	// Unknown statuses never land in the store.
	status, _ = doRequest(t, app, "PUT", fmt.Sprintf("/requests/%d", req.ID),
		map[string]any{"status": "PAUSED"})
	assert.Equal(t, 400, status)

	// Patch keeps untouched fields.
	status, env = doRequest(t, app, "PUT", fmt.Sprintf("/requests/%d", req.ID),
		map[string]any{"title": "Burst pipe"})
	require.Equal(t, 200, status)
	decodeData(t, env, &got)
	assert.Equal(t, "Burst pipe", got.Title)
	assert.Equal(t, models.RequestStatusCanceled, got.Status)
}

func TestDeleteRequestWithJob(t *testing.T) {
	db := setupTestDB(t)
	app := setupRequestApp(db)
	svc := seedService(t, db, "Plumbing")
	customer := seedUser(t, db, "Ana", models.RoleCustomer)
	user := seedUser(t, db, "Budi", models.RoleTechnician)
	tech := models.Technician{UserID: user.ID, DisplayName: "Budi", ServiceID: svc.ID}
	require.NoError(t, db.Create(&tech).Error)

	req := models.ServiceRequest{CustomerID: customer.ID, ServiceID: svc.ID, Title: "Sink", Status: models.RequestStatusBooked}
	require.NoError(t, db.Create(&req).Error)
	q := models.Quotation{RequestID: req.ID, TechnicianID: tech.ID, Price: 100, Status: models.QuotationStatusAccepted}
	require.NoError(t, db.Create(&q).Error)
	job := models.Job{RequestID: req.ID, CustomerID: customer.ID, TechnicianID: tech.ID, QuotationID: q.ID, Status: models.JobStatusBooked}
	require.NoError(t, db.Create(&job).Error)

	status, _ := doRequest(t, app, "DELETE", fmt.Sprintf("/requests/%d", req.ID), nil)
	assert.Equal(t, 409, status)

	// Without the job the delete goes through.
	require.NoError(t, db.Delete(&job).Error)
	status, _ = doRequest(t, app, "DELETE", fmt.Sprintf("/requests/%d", req.ID), nil)
	assert.Equal(t, 200, status)
}
