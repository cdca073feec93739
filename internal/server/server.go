package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"

	"github.com/fieldserve/technician-marketplace/internal/handlers"
	"github.com/fieldserve/technician-marketplace/internal/middleware"
	"github.com/fieldserve/technician-marketplace/internal/workflow"
)

// Options tunes app construction; the zero value is fine for tests.
type Options struct {
	CORSOrigins string
}

// New builds the fiber app with all routes wired against the given
// database handle.
func New(gdb *gorm.DB, opts Options) *fiber.App {
	app := fiber.New()

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestId} ${status} ${method} ${path} ${latency}\n",
	}))

	if opts.CORSOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: opts.CORSOrigins,
			AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
			AllowHeaders: "Origin, Content-Type, Accept",
		}))
	}

	engine := workflow.NewEngine(gdb)

	userH := handlers.NewUserHandler(gdb)
	serviceH := handlers.NewServiceHandler(gdb)
	technicianH := handlers.NewTechnicianHandler(gdb)
	certH := handlers.NewCertificationHandler(gdb)
	requestH := handlers.NewRequestHandler(gdb)
	quotationH := handlers.NewQuotationHandler(gdb, engine)
	jobH := handlers.NewJobHandler(gdb, engine)
	reviewH := handlers.NewReviewHandler(gdb, engine)
	estimateH := handlers.NewEstimateHandler(gdb)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Technician Marketplace API",
			"version": "1.0.0",
		})
	})

	app.Post("/users", userH.Create)
	app.Get("/users", userH.List)

	app.Post("/services", serviceH.Create)
	app.Get("/services", serviceH.List)
	app.Get("/services/:id", serviceH.Get)
	app.Put("/services/:id", serviceH.Update)
	app.Delete("/services/:id", serviceH.Delete)

	// Search must come before the :id routes.
	app.Get("/technicians/search", technicianH.Search)
	app.Post("/technicians", technicianH.Create)
	app.Get("/technicians", technicianH.List)
	app.Get("/technicians/:id", technicianH.Get)
	app.Put("/technicians/:id", technicianH.Update)
	app.Delete("/technicians/:id", technicianH.Delete)

	app.Post("/technicians/:id/certifications", certH.Create)
	app.Get("/technicians/:id/certifications", certH.ListByTechnician)
	app.Delete("/certifications/:id", certH.Delete)

	app.Post("/requests", requestH.Create)
	app.Get("/requests", requestH.List)
	app.Get("/requests/:id", requestH.Get)
	app.Put("/requests/:id", requestH.Update)
	app.Delete("/requests/:id", requestH.Delete)

	app.Post("/requests/:id/quotations", quotationH.Create)
	app.Get("/requests/:id/quotations", quotationH.ListByRequest)
	app.Post("/quotations/:id/accept", quotationH.Accept)

	app.Get("/jobs", jobH.List)
	app.Get("/jobs/:id", jobH.Get)
	app.Put("/jobs/:id", jobH.Update)
	app.Post("/jobs/:id/complete", jobH.Complete)

	app.Post("/reviews", reviewH.Create)
	app.Get("/reviews/:id", reviewH.Get)
	app.Delete("/reviews/:id", reviewH.Delete)
	app.Get("/technicians/:id/reviews", reviewH.ListByTechnician)

	app.Get("/price-estimate", estimateH.Get)

	return app
}
