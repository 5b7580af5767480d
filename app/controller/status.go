package controller

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/vibast-solutions/ms-go-intent/app/client"
	httpdto "github.com/vibast-solutions/ms-go-intent/app/dto/http"
)

type modelHealthChecker interface {
	Health(ctx context.Context) (*client.HealthResponse, error)
}

type StatusController struct {
	env         string
	modelHealth modelHealthChecker
}

func NewStatusController(env string, modelHealth modelHealthChecker) *StatusController {
	return &StatusController{env: env, modelHealth: modelHealth}
}

func (c *StatusController) Root(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, httpdto.StatusResponse{
		Message: fmt.Sprintf("intent service is running in %s mode", c.env),
	})
}

func (c *StatusController) Health(ctx echo.Context) error {
	health, err := c.modelHealth.Health(ctx.Request().Context())
	if err != nil {
		logrus.WithError(err).Warn("Model server health check failed")
		return ctx.JSON(http.StatusServiceUnavailable, httpdto.HealthResponse{Status: "degraded"})
	}
	if !health.ModelLoaded {
		return ctx.JSON(http.StatusServiceUnavailable, httpdto.HealthResponse{
			Status:       "degraded",
			ModelVersion: health.ModelVersion,
		})
	}

	return ctx.JSON(http.StatusOK, httpdto.HealthResponse{
		Status:       "ok",
		ModelVersion: health.ModelVersion,
	})
}
