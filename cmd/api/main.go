package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/fieldserve/technician-marketplace/internal/config"
	"github.com/fieldserve/technician-marketplace/internal/db"
	"github.com/fieldserve/technician-marketplace/internal/models"
	"github.com/fieldserve/technician-marketplace/internal/server"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	gdb, err := db.Connect(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	if err := gdb.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Technician{},
		&models.Certification{},
		&models.ServiceRequest{},
		&models.Quotation{},
		&models.Job{},
		&models.Review{},
	); err != nil {
		log.Fatal(err)
	}

	app := server.New(gdb, server.Options{CORSOrigins: cfg.CORSOrigins})

	log.Println("Technician Marketplace API listening on :" + cfg.AppPort)
	log.Fatal(app.Listen(":" + cfg.AppPort))
}
