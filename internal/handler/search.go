package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/guenbae-park01/youtube-best-tool/internal/middleware"
	"github.com/guenbae-park01/youtube-best-tool/internal/model"
	"github.com/guenbae-park01/youtube-best-tool/internal/service"
)

type SearchHandler struct {
	svc *service.SearchService
}

func NewSearchHandler(svc *service.SearchService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Search handles GET /api/search
func (h *SearchHandler) Search(c fiber.Ctx) error {
	keyword, errMsg := middleware.ValidateKeyword(fiber.Query[string](c, "q"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_PARAM", errMsg)
	}

	minViews := fiber.Query[int64](c, "minViews", 0)
	minSubs := fiber.Query[int64](c, "minSubs", 0)
	if minViews < 0 || minSubs < 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_PARAM", "minViews and minSubs must be non-negative")
	}

	window, err := model.ParseDateWindow(fiber.Query[string](c, "window", string(model.WindowAll)))
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_PARAM", "window must be one of: all, 30d, 90d, 365d")
	}

	durClass, err := model.ParseDurationClass(fiber.Query[string](c, "duration", string(model.DurationAny)))
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_PARAM", "duration must be one of: any, short, long")
	}

	results, err := h.svc.Search(c.Context(), model.SearchFilter{
		Keyword:  keyword,
		MinViews: minViews,
		MinSubs:  minSubs,
		Window:   window,
		Duration: durClass,
	})
	if err != nil {
		// Upstream failures abort the whole search. No partial results.
		return middleware.ErrorResponse(c, fiber.StatusBadGateway, "SEARCH_FAILED", "Search failed. Please try again.")
	}

	msg := fmt.Sprintf("%d results", len(results))
	if len(results) == 0 {
		msg = "No results found."
	}

	return c.JSON(model.SearchResponse{
		Results: results,
		Count:   len(results),
		Message: msg,
	})
}
