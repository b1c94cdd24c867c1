package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/guenbae-park01/youtube-best-tool/internal/middleware"
	"github.com/guenbae-park01/youtube-best-tool/internal/model"
	"github.com/guenbae-park01/youtube-best-tool/internal/service"
)

type VideoHandler struct {
	store       *service.ResultStore
	transcripts *service.TranscriptFetcher
	analysis    *service.AnalysisService
}

func NewVideoHandler(store *service.ResultStore, transcripts *service.TranscriptFetcher, analysis *service.AnalysisService) *VideoHandler {
	return &VideoHandler{
		store:       store,
		transcripts: transcripts,
		analysis:    analysis,
	}
}

// GetTranscript handles GET /api/videos/:videoId/transcript
func (h *VideoHandler) GetTranscript(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateVideoID(c.Params("videoId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_VIDEO_ID", errMsg)
	}

	text, err := h.transcripts.Fetch(c.Context(), videoID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "TRANSCRIPT_UNAVAILABLE", "No transcript available for this video")
	}

	return c.JSON(model.TranscriptResponse{
		VideoID:    videoID,
		Transcript: text,
	})
}

// GetPrompt handles GET /api/videos/:videoId/prompt
func (h *VideoHandler) GetPrompt(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateVideoID(c.Params("videoId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_VIDEO_ID", errMsg)
	}

	rec, ok := h.store.Get(videoID)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Video is not in the current result set; run a search first")
	}

	// Transcript is best-effort here. The prompt template covers the
	// missing-transcript case with a placeholder.
	transcript, err := h.transcripts.Fetch(c.Context(), videoID)
	hasTranscript := err == nil && transcript != ""

	return c.JSON(model.PromptResponse{
		VideoID:       videoID,
		Prompt:        service.BuildPrompt(rec, transcript),
		HasTranscript: hasTranscript,
	})
}

// Analyze handles POST /api/videos/:videoId/analyze
func (h *VideoHandler) Analyze(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateVideoID(c.Params("videoId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_VIDEO_ID", errMsg)
	}

	if !h.analysis.Enabled() {
		return middleware.ErrorResponse(c, fiber.StatusServiceUnavailable, "ANALYSIS_DISABLED", "No analysis API key configured; use the prompt endpoint instead")
	}

	rec, ok := h.store.Get(videoID)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Video is not in the current result set; run a search first")
	}

	transcript, _ := h.transcripts.Fetch(c.Context(), videoID)
	prompt := service.BuildPrompt(rec, transcript)

	result, err := h.analysis.Analyze(c.Context(), prompt)
	if err != nil {
		if errors.Is(err, service.ErrAnalysisDisabled) {
			return middleware.ErrorResponse(c, fiber.StatusServiceUnavailable, "ANALYSIS_DISABLED", "No analysis API key configured; use the prompt endpoint instead")
		}
		return middleware.ErrorResponse(c, fiber.StatusBadGateway, "ANALYSIS_FAILED", "Analysis request failed")
	}

	return c.JSON(model.AnalysisResponse{
		VideoID:  videoID,
		Analysis: result,
	})
}
