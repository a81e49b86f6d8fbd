package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"hamroCraft/domain"
	"hamroCraft/pkg/logger"
	"hamroCraft/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	SearchHandler struct {
		validate       *validator.Validate
		searchService  SearchService
		suggestService SuggestService
		timeout        time.Duration
	}

	SearchService interface {
		Search(ctx context.Context, query string, page, pageSize int) (domain.SearchResult, error)
	}

	SuggestService interface {
		Suggest(ctx context.Context, partialQuery string, limit int) ([]domain.Suggestion, error)
	}

	SearchQuery struct {
		Q        string `query:"q"`
		Page     int    `query:"page"`
		PageSize int    `query:"page_size" validate:"lte=100"`
	}

	SuggestQuery struct {
		Q     string `query:"q"`
		Limit int    `query:"limit" validate:"lte=50"`
	}
)

func NewSearchHandler(searchService SearchService, suggestService SuggestService) *SearchHandler {
	return &SearchHandler{
		validate:       validator.New(),
		searchService:  searchService,
		suggestService: suggestService,
		timeout:        10 * time.Second,
	}
}

// GET /api/v1/products/search?q=pashmina&page=1&page_size=20
func (h *SearchHandler) Search(c echo.Context) error {
	start := time.Now()
	metrics.SearchRequests.Inc()

	var q SearchQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = 20
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.searchService.Search(ctx, q.Q, q.Page, q.PageSize)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		logger.Error("search request failed", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.SearchLatency.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}

// GET /api/v1/products/suggestions?q=pash&limit=10
func (h *SearchHandler) Suggest(c echo.Context) error {
	metrics.SuggestRequests.Inc()

	var q SuggestQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	suggestions, err := h.suggestService.Suggest(ctx, q.Q, q.Limit)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		logger.Error("suggest request failed", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(suggestions))
}
