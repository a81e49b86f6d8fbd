package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"hamroCraft/domain"
	"hamroCraft/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	ReviewHandler struct {
		validate      *validator.Validate
		reviewService ReviewService
		timeout       time.Duration
	}

	ReviewService interface {
		SubmitReview(ctx context.Context, review *domain.Review) (*domain.Review, error)
		GetProductReviews(ctx context.Context, productID uint64) ([]domain.Review, error)
	}

	SubmitReviewRequest struct {
		Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
		Comment string `json:"comment"`
	}
)

func NewReviewHandler(reviewService ReviewService) *ReviewHandler {
	return &ReviewHandler{
		validate:      validator.New(),
		reviewService: reviewService,
		timeout:       10 * time.Second,
	}
}

// POST /api/v1/products/:id/reviews
func (h *ReviewHandler) SubmitReview(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid product id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	var req SubmitReviewRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&req); err != nil {
		logger.Error("Failed to validate review request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	review := &domain.Review{
		ProductID: productID,
		UserID:    userID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	newReview, err := h.reviewService.SubmitReview(ctx, review)
	if err != nil {
		logger.Error("Failed to submit review", err)
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if errors.Is(err, domain.ErrValidation) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(newReview))
}

// GET /api/v1/products/:id/reviews
func (h *ReviewHandler) GetProductReviews(c echo.Context) error {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid product id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	reviews, err := h.reviewService.GetProductReviews(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(reviews))
}
