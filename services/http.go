package services

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	docs "github.com/itsmontel/steppet_api/docs"
	"github.com/itsmontel/steppet_api/services/handlers"
	"github.com/itsmontel/steppet_api/shared"
)

type HttpService struct {
	context.DefaultService

	authMiddleware *AuthMiddleware
	rateLimitSvc   *RateLimitService
	monitoringSvc  *MonitoringService

	authHandler         *handlers.AuthHandler
	userHandler         *handlers.UserHandler
	petHandler          *handlers.PetHandler
	stepHandler         *handlers.StepHandler
	achievementHandler  *handlers.AchievementHandler
	creditHandler       *handlers.CreditHandler
	notificationHandler *handlers.NotificationHandler

	port   int
	server *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	svc.authMiddleware = svc.Service(AUTH_MIDDLEWARE_SVC).(*AuthMiddleware)
	svc.rateLimitSvc = svc.Service(RATE_LIMIT_SVC).(*RateLimitService)
	svc.monitoringSvc = svc.Service(MONITORING_SVC).(*MonitoringService)

	svc.authHandler = handlers.NewAuthHandler(svc.Service(AUTH_SVC).(*AuthService))
	svc.userHandler = handlers.NewUserHandler(svc.Service(USER_SVC).(*UserService))
	svc.petHandler = handlers.NewPetHandler(svc.Service(PET_SVC).(*PetService))
	svc.stepHandler = handlers.NewStepHandler(svc.Service(STEP_SVC).(*StepService))
	svc.achievementHandler = handlers.NewAchievementHandler(svc.Service(ACHIEVEMENT_SVC).(*AchievementService))
	svc.creditHandler = handlers.NewCreditHandler(svc.Service(CREDIT_SVC).(*CreditService))
	svc.notificationHandler = handlers.NewNotificationHandler(
		svc.Service(NOTIFICATION_SVC).(*NotificationService),
		svc.Service(WIDGET_SVC).(*WidgetService),
	)

	app := fiber.New(fiber.Config{
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ErrorHandler: svc.handleError,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(MonitoringMiddleware(svc.monitoringSvc))
	app.Use(svc.rateLimitSvc.IPRateLimit())

	docs.SwaggerInfo.BasePath = "/api/v1"

	app.Get("/ping", svc.ping)
	app.Get("/swagger/*", swagger.HandlerDefault)

	svc.registerRoutes(app)

	app.Use(func(c *fiber.Ctx) error {
		return shared.ResponseNotFound(c)
	})

	svc.server = app
	return app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) registerRoutes(app *fiber.App) {
	v1 := app.Group("/api/v1")

	v1.Get("/ping", svc.ping)

	v1.Post("/register", svc.rateLimitSvc.RateLimit("register"), svc.authHandler.RegisterDevice)
	v1.Post("/login", svc.rateLimitSvc.RateLimit("login"), svc.authHandler.Login)
	v1.Post("/refresh", svc.rateLimitSvc.RateLimit("refresh"), svc.authHandler.RefreshToken)

	auth := svc.authMiddleware.RequiredAuth()

	user := v1.Group("/user", auth)
	user.Get("/profile", svc.userHandler.GetProfile)
	user.Put("/profile", svc.rateLimitSvc.UserBasedRateLimit("profile_update"), svc.userHandler.UpdateProfile)
	user.Put("/goal", svc.rateLimitSvc.UserBasedRateLimit("profile_update"), svc.userHandler.UpdateGoal)
	user.Put("/premium", svc.userHandler.SetPremium)
	user.Post("/events", svc.userHandler.RecordClientEvent)

	pet := v1.Group("/pet", auth)
	pet.Get("/", svc.petHandler.GetPet)
	pet.Put("/", svc.petHandler.UpdatePet)
	pet.Get("/mood", svc.petHandler.GetMood)

	v1.Get("/pet/species", svc.petHandler.ListSpecies)

	steps := v1.Group("/steps", auth)
	steps.Post("/", svc.rateLimitSvc.UserBasedRateLimit("steps_record"), svc.stepHandler.RecordSteps)
	steps.Get("/today", svc.stepHandler.GetToday)
	steps.Get("/history", svc.stepHandler.GetHistory)
	steps.Get("/weekly", svc.stepHandler.GetWeeklySummary)
	steps.Get("/monthly", svc.stepHandler.GetMonthlySummary)
	steps.Get("/stats", svc.stepHandler.GetLifetimeStats)

	v1.Get("/streak", auth, svc.stepHandler.GetStreak)
	v1.Get("/achievements", auth, svc.achievementHandler.ListAchievements)
	v1.Get("/achievements/unlocked", auth, svc.achievementHandler.ListUnlocked)

	credits := v1.Group("/credits", auth)
	credits.Get("/", svc.creditHandler.GetStatus)
	credits.Post("/spend", svc.rateLimitSvc.UserBasedRateLimit("credit_spend"), svc.creditHandler.SpendCredit)
	credits.Post("/purchase", svc.rateLimitSvc.UserBasedRateLimit("credit_purchase"), svc.creditHandler.PurchaseCredits)

	notifications := v1.Group("/notifications", auth)
	notifications.Get("/", svc.notificationHandler.GetPendingFeed)
	notifications.Post("/:id/shown", svc.notificationHandler.MarkShown)

	v1.Get("/widget", auth, svc.notificationHandler.GetWidgetSnapshot)
}

func (svc *HttpService) Shutdown() {
	if svc.server != nil {
		_ = svc.server.Shutdown()
	}
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept  json
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set("Cache-Control", "max-age=10")

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", "pong")
}

func (svc *HttpService) handleError(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	return shared.ResponseInternalError(c, err)
}
