package main

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/wichananm65/pet-adoption-backend/internal/admin"
	"github.com/wichananm65/pet-adoption-backend/internal/auth"
	"github.com/wichananm65/pet-adoption-backend/internal/comment"
	"github.com/wichananm65/pet-adoption-backend/internal/config"
	"github.com/wichananm65/pet-adoption-backend/internal/donation"
	"github.com/wichananm65/pet-adoption-backend/internal/feedback"
	"github.com/wichananm65/pet-adoption-backend/internal/pet"
	"github.com/wichananm65/pet-adoption-backend/internal/upload"
	"github.com/wichananm65/pet-adoption-backend/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLog)

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()
	ensureSchema(db)

	userService := user.NewService(user.NewPostgresRepository(db))
	commentService := comment.NewService(comment.NewPostgresRepository(db))
	petService := pet.NewService(pet.NewPostgresRepository(db), commentService)
	donationService := donation.NewService(donation.NewPostgresRepository(db))
	feedbackService := feedback.NewService(feedback.NewPostgresRepository(db))

	userHandler := user.NewHandler(userService, cfg.JWTSecret)
	petHandler := pet.NewHandler(petService, userService, commentService, upload.NewStorage(cfg.UploadDir))
	commentHandler := comment.NewHandler(commentService)
	donationHandler := donation.NewHandler(donationService)
	feedbackHandler := feedback.NewHandler(feedbackService)
	adminHandler := admin.NewHandler(petService, userService, donationService)

	// resolve identity from the cookie on every request; reject nothing here
	app.Use(auth.Optional(cfg.JWTSecret))
	authRequired := auth.Middleware(cfg.JWTSecret)

	userHandler.RegisterPublicRoutes(app)
	donationHandler.RegisterPublicRoutes(app)
	feedbackHandler.RegisterPublicRoutes(app)
	petHandler.RegisterRoutes(app, authRequired)
	commentHandler.RegisterRoutes(app, authRequired)

	adminGroup := app.Group("/admin", authRequired, auth.RequireRole(auth.RoleAdmin))
	adminHandler.RegisterAdminRoutes(adminGroup)
	petHandler.RegisterAdminRoutes(adminGroup)
	userHandler.RegisterAdminRoutes(adminGroup)
	donationHandler.RegisterAdminRoutes(adminGroup)
	commentHandler.RegisterAdminRoutes(adminGroup)

	// uploaded cover images are public
	app.Static("/uploads", cfg.UploadDir)

	if err := app.Listen(cfg.Addr); err != nil {
		fmt.Fprintf(os.Stderr, "server stopped: %v\n", err)
		os.Exit(1)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

func requestLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	fmt.Printf("%s %s -> %d (%v)\n", c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
	return err
}

func mustOpenDB(databaseURL string) *sql.DB {
	if databaseURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

func ensureSchema(db *sql.DB) {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			"userId" SERIAL PRIMARY KEY,
			"fullName" TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'user',
			address TEXT,
			"createdAt" TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS pets (
			"petId" SERIAL PRIMARY KEY,
			"petName" TEXT NOT NULL,
			"petType" TEXT NOT NULL,
			"petAge" TEXT,
			"petMedicalHis" TEXT,
			"petAddress" TEXT,
			"petContactNo" TEXT,
			"additionalInfo" TEXT,
			"coverImageURL" TEXT,
			"adoptionStatus" TEXT NOT NULL DEFAULT 'available',
			"createdBy" INT NOT NULL,
			"createdAt" TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS donations (
			"donationId" SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			address TEXT,
			age TEXT,
			gender TEXT,
			email TEXT NOT NULL,
			"contactNo" TEXT,
			amount NUMERIC NOT NULL DEFAULT 0,
			"createdAt" TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS feedback (
			"feedbackId" SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			message TEXT NOT NULL,
			"createdAt" TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS comments (
			"commentId" SERIAL PRIMARY KEY,
			content TEXT NOT NULL,
			"petId" INT NOT NULL,
			"createdBy" INT NOT NULL,
			"createdAt" TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			panic(err)
		}
	}
}
