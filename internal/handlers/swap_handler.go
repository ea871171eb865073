package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/skill-swap/backend/internal/middleware"
	"github.com/skill-swap/backend/internal/models"
	"github.com/skill-swap/backend/internal/repositories"
)

// SwapHandler handles HTTP requests for the swap request lifecycle
type SwapHandler struct {
	swapRepository repositories.SwapRepository
	userRepository repositories.UserRepository
}

// NewSwapHandler creates a new SwapHandler
func NewSwapHandler(swapRepo repositories.SwapRepository, userRepo repositories.UserRepository) *SwapHandler {
	return &SwapHandler{
		swapRepository: swapRepo,
		userRepository: userRepo,
	}
}

// RegisterSwapRoutes registers swap-related routes
func (h *SwapHandler) RegisterSwapRoutes(g *echo.Group) {
	g.POST("/swaps", h.CreateSwap)
	g.GET("/swaps/me", h.GetMySwaps)
	g.PUT("/swaps/:id/status", h.UpdateSwapStatus)
	g.DELETE("/swaps/:id", h.DeleteSwap)
}

// CreateSwap handles creating a new swap request
func (h *SwapHandler) CreateSwap(c echo.Context) error {
	claims := middleware.UserClaims(c)

	var req models.CreateSwapRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if claims.UserID == req.ToUserID {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot send a swap request to yourself")
	}

	// Check the recipient exists
	if _, err := h.userRepository.GetUserByID(req.ToUserID); err != nil {
		return httpError(err)
	}

	swap := &models.SwapRequest{
		FromUserID:   claims.UserID,
		ToUserID:     req.ToUserID,
		OfferedSkill: models.SkillSnapshot{Name: req.OfferedSkill.Name},
		WantedSkill:  models.SkillSnapshot{Name: req.WantedSkill.Name},
		Message:      req.Message,
	}

	if err := h.swapRepository.CreateSwap(swap); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, swap)
}

// GetMySwaps lists the authenticated user's swap requests, incoming and
// outgoing, enriched with both parties' display details
func (h *SwapHandler) GetMySwaps(c echo.Context) error {
	claims := middleware.UserClaims(c)

	swaps, err := h.swapRepository.GetSwapsForUser(claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	detailed, err := buildSwapDetails(h.userRepository, swaps, false)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, detailed)
}

// UpdateSwapStatus lets the recipient accept or reject a pending swap request
func (h *SwapHandler) UpdateSwapStatus(c echo.Context) error {
	claims := middleware.UserClaims(c)

	var req models.UpdateSwapStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	swap, err := h.swapRepository.GetSwapByID(c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	// Only the recipient can accept or reject, and only while pending
	if swap.ToUserID != claims.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "Only the recipient can update this request")
	}
	if !models.CanTransition(swap.Status, req.Status) {
		return echo.NewHTTPError(http.StatusForbidden, "Request is no longer pending")
	}

	if err := h.swapRepository.UpdateSwapStatus(swap.ID, swap.Status, req.Status); err != nil {
		return httpError(err)
	}

	swap.Status = req.Status
	return c.JSON(http.StatusOK, swap)
}

// DeleteSwap lets the sender withdraw a swap request while it is pending. The
// sender and status rules are enforced by the repository's guarded delete, not
// a separate read, so an acceptance racing this call wins.
func (h *SwapHandler) DeleteSwap(c echo.Context) error {
	claims := middleware.UserClaims(c)

	if err := h.swapRepository.DeleteSwapFromSender(c.Param("id"), claims.UserID); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Swap request deleted successfully"})
}

// buildSwapDetails enriches swap requests with both parties' display name,
// photo, skills and rating snapshot. includeEmail is set on the admin surface.
func buildSwapDetails(userRepo repositories.UserRepository, swaps []models.SwapRequest, includeEmail bool) ([]models.SwapRequestDetail, error) {
	ids := make([]string, 0, len(swaps)*2)
	seen := make(map[string]bool, len(swaps)*2)
	for _, s := range swaps {
		for _, id := range []string{s.FromUserID, s.ToUserID} {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}

	users := map[string]models.User{}
	if len(ids) > 0 {
		var err error
		users, err = userRepo.GetUsersByIDs(ids)
		if err != nil {
			return nil, err
		}
	}

	details := make([]models.SwapRequestDetail, 0, len(swaps))
	for _, s := range swaps {
		d := models.SwapRequestDetail{SwapRequest: s}
		if from, ok := users[s.FromUserID]; ok {
			d.FromUserName = from.Name
			d.FromUserProfilePhoto = from.ProfilePhoto
			d.FromUserSkillsOffered = from.SkillsOffered
			d.FromUserSkillsWanted = from.SkillsWanted
			d.FromUserRating = from.Rating
			if includeEmail {
				d.FromUserEmail = from.Email
			}
		}
		if to, ok := users[s.ToUserID]; ok {
			d.ToUserName = to.Name
			d.ToUserProfilePhoto = to.ProfilePhoto
			d.ToUserSkillsOffered = to.SkillsOffered
			d.ToUserSkillsWanted = to.SkillsWanted
			d.ToUserRating = to.Rating
			if includeEmail {
				d.ToUserEmail = to.Email
			}
		}
		details = append(details, d)
	}
	return details, nil
}
