package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	httpdto "github.com/vibast-solutions/ms-go-intent/app/dto/http"
	"github.com/vibast-solutions/ms-go-intent/app/middleware"
	"github.com/vibast-solutions/ms-go-intent/app/service"
)

type PredictController struct {
	predictionService service.PredictionService
}

func NewPredictController(predictionService service.PredictionService) *PredictController {
	return &PredictController{predictionService: predictionService}
}

func (c *PredictController) Predict(ctx echo.Context) error {
	var req httpdto.PredictRequest
	if err := ctx.Bind(&req); err != nil {
		logrus.WithError(err).Debug("Failed to bind predict request")
		return ctx.JSON(http.StatusUnprocessableEntity, httpdto.ErrorResponse{Error: "invalid request body"})
	}

	if strings.TrimSpace(req.Text) == "" {
		return ctx.JSON(http.StatusUnprocessableEntity, httpdto.ErrorResponse{Error: "text is required"})
	}

	owner, ok := ctx.Get(middleware.ContextKeyTokenOwner).(string)
	if !ok || owner == "" {
		logrus.Warn("Predict called without token owner in context")
		return ctx.JSON(http.StatusUnauthorized, httpdto.ErrorResponse{Error: "unauthorized"})
	}

	result, err := c.predictionService.Predict(ctx.Request().Context(), owner, req.Text)
	if err != nil {
		if errors.Is(err, service.ErrInferenceFailed) {
			logrus.WithError(err).WithField("token_owner", owner).Error("Prediction failed")
			return ctx.JSON(http.StatusInternalServerError, httpdto.ErrorResponse{Error: "inference failed"})
		}
		logrus.WithError(err).WithField("token_owner", owner).Error("Predict failed")
		return ctx.JSON(http.StatusInternalServerError, httpdto.ErrorResponse{Error: "internal server error"})
	}

	logrus.WithFields(logrus.Fields{
		"request_id":  result.RequestID,
		"token_owner": owner,
		"label":       result.Label,
	}).Info("Prediction served")

	return ctx.JSON(http.StatusOK, httpdto.PredictResponse{
		Label: result.Label,
		Score: result.Score,
	})
}
