package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"hamroCraft/domain"
	"hamroCraft/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	BehaviorHandler struct {
		validate        *validator.Validate
		behaviorService BehaviorService
		timeout         time.Duration
	}

	BehaviorService interface {
		RecordEvent(ctx context.Context, userID uint, productID uint64, action string) (*domain.BehaviorEvent, error)
		GetUserHistory(ctx context.Context, userID uint) ([]uint64, error)
	}

	RecordEventRequest struct {
		ProductID uint64 `json:"product_id" validate:"required"`
		Action    string `json:"action" validate:"required,oneof=view purchase"`
	}
)

func NewBehaviorHandler(behaviorService BehaviorService) *BehaviorHandler {
	return &BehaviorHandler{
		validate:        validator.New(),
		behaviorService: behaviorService,
		timeout:         10 * time.Second,
	}
}

// POST /api/v1/events
func (h *BehaviorHandler) RecordEvent(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req RecordEventRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&req); err != nil {
		logger.Error("Failed to validate event request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	event, err := h.behaviorService.RecordEvent(ctx, userID, req.ProductID, req.Action)
	if err != nil {
		logger.Error("Failed to record event", err)
		if errors.Is(err, domain.ErrValidation) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(event))
}

// GET /api/v1/events/history
func (h *BehaviorHandler) GetUserHistory(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	history, err := h.behaviorService.GetUserHistory(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(history))
}
