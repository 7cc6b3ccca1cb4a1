package handler

import (
	"topic-quiz/internal/config"
	"topic-quiz/internal/dto"
	"topic-quiz/internal/middleware"
	"topic-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp creates the Fiber app with the shared middleware stack.
func NewApp(cfg config.ServerConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.ReadTimeout,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,X-Request-ID",
		AllowCredentials: cfg.AllowOrigins != "*",
		MaxAge:           300,
	}))
	app.Use(recover.New())
	return app
}

// Routes holds everything needed to register the API.
type Routes struct {
	Session    *SessionHandler
	Quiz       *QuizHandler
	Result     *ResultHandler
	Health     *HealthHandler
	Validation *middleware.ValidationMiddleware
	Cookie     config.SessionConfig
}

// Register mounts the API routes on app.
func (r Routes) Register(app *fiber.App) {
	if r.Health != nil {
		app.Get("/healthz", r.Health.Health)
	}

	api := app.Group("/api", middleware.Session(r.Cookie))

	// Intake
	api.Post("/sessions", r.Validation.ValidateBody(func() interface{} { return new(dto.CreateSessionRequest) }), r.Session.CreateSession)
	api.Delete("/session", r.Session.DeleteSession)

	// Quiz
	quiz := api.Group("/quiz", middleware.RequireSession())
	quiz.Post("/start", r.Quiz.StartQuiz)
	quiz.Get("/", r.Quiz.GetQuiz)
	quiz.Put("/selection", r.Validation.ValidateBody(func() interface{} { return new(dto.SelectOptionRequest) }), r.Quiz.SelectOption)
	quiz.Post("/next", r.Quiz.Next)
	quiz.Post("/previous", r.Quiz.Previous)

	// Results
	api.Get("/results", middleware.RequireSession(), r.Result.GetResults)
	api.Get("/attempts", r.Validation.ValidateLimit(service.MaxAttemptsLimit), r.Result.ListAttempts)
}
