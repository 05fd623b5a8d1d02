package handler

import (
	"github.com/gofiber/fiber/v2"

	"clientintake/internal/config"
)

type healthResponse struct {
	Status        string `json:"status"`
	RelayProvider string `json:"relay_provider"`
}

// HealthCheck godoc
// @Summary      Readiness
// @Description  Reports whether a relay endpoint is configured.
// @Tags         health
// @Produce      json
// @Success      200  {object}  healthResponse
// @Failure      503  {object}  errorPayload
// @Router       /health [get]
func HealthCheck(relay config.RelayConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if relay.Endpoint == "" {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "relay endpoint not configured")
		}
		return c.Status(fiber.StatusOK).JSON(healthResponse{Status: "healthy", RelayProvider: relay.Provider})
	}
}

// LivenessProbe answers 200 while the process is serving.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
