package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	swag "github.com/gofiber/swagger"
	"github.com/joho/godotenv"

	_ "bookstore-api/docs" // <-- required to register swagger spec

	"bookstore-api/controller"
	"bookstore-api/middleware"
	"bookstore-api/repository"
	"bookstore-api/seeder"
	"bookstore-api/service"
	"bookstore-api/util"
)

// @title           Bookstore API
// @version         1.0
// @description     A CRUD backend for a bookstore catalog with token-based authentication.

// @license.name    MIT

// @host            localhost:4000
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load .env file with proper error handling
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v (using system environment variables)", err)
	}

	logger := util.NewLogger()

	// Signing key, issuer and lifetime are read once here; a missing key is
	// a configuration error and the process refuses to start.
	lifetime, err := time.ParseDuration(util.GetEnv("JWT_TTL", "5m"))
	if err != nil {
		log.Fatalf("invalid JWT_TTL: %v", err)
	}
	tokens, err := util.NewTokenIssuer(
		util.GetEnv("JWT_SECRET", ""),
		util.GetEnv("JWT_ISSUER", "bookstore-api"),
		lifetime,
	)
	if err != nil {
		log.Fatalf("failed to initialize token issuer: %v", err)
	}

	db := util.InitDB()

	seeder.SeedRoles(db)
	seeder.SeedAdminUser(db)

	authorRepo := repository.NewAuthorRepository(db)
	bookRepo := repository.NewBookRepository(db)
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)

	mailer := service.NewEmailService()

	app := fiber.New()
	setupRoutes(app, authorRepo, bookRepo, userRepo, roleRepo, tokens, mailer, logger)

	port := util.GetEnv("PORT", "4000")
	log.Fatal(app.Listen(":" + port))
}

func setupRoutes(
	app *fiber.App,
	authorRepo repository.AuthorRepository,
	bookRepo repository.BookRepository,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	tokens *util.TokenIssuer,
	mailer *service.EmailService,
	logger *util.Logger,
) {
	// Apply timer metrics middleware globally to all routes
	app.Use(middleware.TimerMetrics)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Get("/swagger/*", swag.HandlerDefault)

	// create services, controllers and the auth gate
	authService := service.NewAuthService(userRepo, roleRepo, tokens, mailer, logger)
	userController := controller.NewUserController(authService, logger)
	authorController := controller.NewAuthorController(authorRepo, logger)
	bookController := controller.NewBookController(bookRepo, authorRepo, logger)
	authmw := middleware.NewAuthMiddleware(tokens, logger)

	api := app.Group("/api/v1")

	users := api.Group("/users")
	users.Post("/login", middleware.InitRateLimiter(), userController.Login)
	users.Post("/register", middleware.InitRateLimiter(), userController.Register)

	authors := api.Group("/authors", authmw.RequireAuth())
	authors.Get("/", authorController.GetAuthors)
	authors.Get("/:id", authorController.GetAuthor)
	authors.Post("/", authmw.RequireRoles("Administrator"), authorController.Create)
	authors.Put("/:id", authmw.RequireRoles("Administrator"), authorController.Update)
	authors.Delete("/:id", authmw.RequireRoles("Administrator"), authorController.Delete)

	books := api.Group("/books", authmw.RequireAuth())
	books.Get("/", bookController.GetBooks)
	books.Get("/:id", bookController.GetBook)
	books.Post("/", authmw.RequireRoles("Administrator"), bookController.Create)
	books.Put("/:id", authmw.RequireRoles("Administrator"), bookController.Update)
	books.Delete("/:id", authmw.RequireRoles("Administrator"), bookController.Delete)
}
