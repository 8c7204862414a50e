package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"talentflow-backend/config"
	apiv1 "talentflow-backend/controllers/v1"
	"talentflow-backend/fiberlog"
	"talentflow-backend/initializers"
	"talentflow-backend/middleware"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	services, loggerConfig := initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // limit of 20MB, covers file-upload answers
	})
	app.Use(fiberRecover.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	app.Get("/health", func(ctx *fiber.Ctx) error {
		sqlDB, err := services.DB.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx.Context())
		}
		if err != nil {
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down"})
		}
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	})

	//api
	api := fiber.New()
	api.Use(fiberlog.New(*loggerConfig))
	app.Mount("/api", api)
	api.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, X-User-Id",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	api.Use(middleware.Chaos(middleware.ChaosConfig{
		Enabled:     *config.Conf.Chaos.Enabled,
		FailureRate: config.Conf.Chaos.FailureRate,
		MinDelay:    time.Duration(config.Conf.Chaos.MinDelayMs) * time.Millisecond,
		MaxDelay:    time.Duration(config.Conf.Chaos.MaxDelayMs) * time.Millisecond,
	}))
	apiv1.InitJobAPIRouters(api, services.Jobs)
	apiv1.InitCandidateAPIRouters(api, services.Candidates, services.Export)
	apiv1.InitAssessmentAPIRouters(api, services.Assessments)
	if services.FileStorage != nil {
		apiv1.InitUploadAPIRouters(api, services.FileStorage)
	}

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		<-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
