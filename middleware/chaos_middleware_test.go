package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func newChaosApp(cfg ChaosConfig) *fiber.App {
	app := fiber.New()
	app.Use(Chaos(cfg))
	app.Get("/ping", func(ctx *fiber.Ctx) error { return ctx.SendString("pong") })
	app.Post("/ping", func(ctx *fiber.Ctx) error { return ctx.SendString("pong") })
	return app
}

func TestChaosDelay(t *testing.T) {
	t.Run("fixed delay window applies the minimum", func(t *testing.T) {
		app := newChaosApp(ChaosConfig{
			Enabled:  true,
			MinDelay: 30 * time.Millisecond,
			MaxDelay: 30 * time.Millisecond,
		})
		start := time.Now()
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil), 2000)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	})

	t.Run("disabled middleware adds nothing", func(t *testing.T) {
		app := newChaosApp(ChaosConfig{
			Enabled:     false,
			FailureRate: 1,
			MinDelay:    time.Hour,
			MaxDelay:    time.Hour,
		})
		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/ping", nil), 2000)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestChaosFailsOnlyMutations(t *testing.T) {
	app := newChaosApp(ChaosConfig{Enabled: true, FailureRate: 1})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/ping", nil), 2000)
	require.Nil(t, err)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil), 2000)
	require.Nil(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
