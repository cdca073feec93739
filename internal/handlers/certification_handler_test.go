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

func setupCertificationApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	h := NewCertificationHandler(db)
	app.Post("/technicians/:id/certifications", h.Create)
	app.Get("/technicians/:id/certifications", h.ListByTechnician)
	app.Delete("/certifications/:id", h.Delete)
	return app
}

func TestCertificationLifecycle(t *testing.T) {
	db := setupTestDB(t)
	app := setupCertificationApp(db)
	svc := seedService(t, db, "Plumbing")
	user := seedUser(t, db, "Budi", models.RoleTechnician)
	tech := models.Technician{UserID: user.ID, DisplayName: "Budi", ServiceID: svc.ID}
	require.NoError(t, db.Create(&tech).Error)

	status, env := doRequest(t, app, "POST", fmt.Sprintf("/technicians/%d/certifications", tech.ID),
		CreateCertificationRequest{Title: "Certified Plumber", Issuer: "Guild", Year: 2020})
	require.Equal(t, 201, status)

	var cert models.Certification
	decodeData(t, env, &cert)
	assert.Equal(t, tech.ID, cert.TechnicianID)
	assert.Equal(t, "Certified Plumber", cert.Title)

	// Unknown technician owner.
	status, _ = doRequest(t, app, "POST", "/technicians/9999/certifications",
		CreateCertificationRequest{Title: "Ghost cert"})
	assert.Equal(t, 404, status)

	status, env = doRequest(t, app, "GET", fmt.Sprintf("/technicians/%d/certifications", tech.ID), nil)
	require.Equal(t, 200, status)
	var certs []models.Certification
	decodeData(t, env, &certs)
	assert.Len(t, certs, 1)

	status, _ = doRequest(t, app, "DELETE", fmt.Sprintf("/certifications/%d", cert.ID), nil)
	assert.Equal(t, 200, status)
	status, _ = doRequest(t, app, "DELETE", fmt.Sprintf("/certifications/%d", cert.ID), nil)
	assert.Equal(t, 404, status)
}
