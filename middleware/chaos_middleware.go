package middleware

import (
	"math/rand"
	"time"

	apimodels "talentflow-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type ChaosConfig struct {
	Enabled     bool
	FailureRate float64
	MinDelay    time.Duration
	MaxDelay    time.Duration
}

// Chaos reproduces the instability profile clients must survive:
// every request is delayed by a random amount, and mutating requests
// fail with a 500 at the configured rate before any handler runs, so
// a simulated failure never has partial effects.
func Chaos(cfg ChaosConfig) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if !cfg.Enabled {
			return ctx.Next()
		}
		delay := cfg.MinDelay
		if cfg.MaxDelay > cfg.MinDelay {
			delay += time.Duration(rand.Int63n(int64(cfg.MaxDelay - cfg.MinDelay)))
		}
		if delay > 0 {
			time.Sleep(delay)
		}
		if isMutation(ctx.Method()) && rand.Float64() < cfg.FailureRate {
			return ctx.Status(fiber.StatusInternalServerError).
				JSON(apimodels.NewErrorResponse("simulated server instability"))
		}
		return ctx.Next()
	}
}

func isMutation(method string) bool {
	switch method {
	case fiber.MethodPost, fiber.MethodPatch, fiber.MethodPut, fiber.MethodDelete:
		return true
	}
	return false
}
