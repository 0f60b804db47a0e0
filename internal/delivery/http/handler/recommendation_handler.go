package handler

import (
	"errors"

	"skillbridge/internal/delivery/http/dto"
	"skillbridge/internal/delivery/http/middleware"
	"skillbridge/internal/pkg/response"
	"skillbridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/recommendations")
	grp.Get("/jobs/:profileID", h.Jobs)
	grp.Get("/resources/:profileID", h.Resources)
}

func (h *RecommendationHandler) Jobs(c fiber.Ctx) error {
	profileID, err := parseProfileID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.RecommendJobs(c.Context(), profileID)
	if err != nil {
		return mapRecommendationError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromMatchRecords(items))
}

func (h *RecommendationHandler) Resources(c fiber.Ctx) error {
	profileID, err := parseProfileID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.RecommendResources(c.Context(), profileID)
	if err != nil {
		return mapRecommendationError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromMatchRecords(items))
}

func parseProfileID(c fiber.Ctx) (uuid.UUID, error) {
	raw := c.Params("profileID")
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid profile id", nil, err)
	}
	return id, nil
}

func mapRecommendationError(err error) error {
	if errors.Is(err, usecase.ErrInvalidInput) {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid profile id", nil, err)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
}
