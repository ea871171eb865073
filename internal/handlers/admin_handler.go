package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/skill-swap/backend/internal/middleware"
	"github.com/skill-swap/backend/internal/models"
	"github.com/skill-swap/backend/internal/repositories"
)

// AdminHandler handles the moderation surface. Routes are registered behind
// the admin capability gate.
type AdminHandler struct {
	userRepository repositories.UserRepository
	swapRepository repositories.SwapRepository
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(userRepo repositories.UserRepository, swapRepo repositories.SwapRepository) *AdminHandler {
	return &AdminHandler{
		userRepository: userRepo,
		swapRepository: swapRepo,
	}
}

// RegisterAdminRoutes registers admin-only routes
func (h *AdminHandler) RegisterAdminRoutes(g *echo.Group) {
	g.GET("/users", h.GetAllUsers)
	g.PUT("/users/:id/active", h.SetUserActive)
	g.GET("/swaps", h.GetAllSwaps)
	g.PUT("/swaps/:id/status", h.UpdateSwapStatus)
	g.DELETE("/swaps/:id", h.DeleteSwap)
}

// GetAllUsers lists every user, private and banned accounts included
func (h *AdminHandler) GetAllUsers(c echo.Context) error {
	users, err := h.userRepository.GetAllUsers()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, users)
}

// SetUserActive bans or unbans a user. Admins cannot deactivate their own
// account. Banning leaves the user's existing swaps untouched.
func (h *AdminHandler) SetUserActive(c echo.Context) error {
	claims := middleware.UserClaims(c)
	userID := c.Param("id")

	var req models.SetActiveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if userID == claims.UserID && !*req.IsActive {
		return echo.NewHTTPError(http.StatusForbidden, "Admins cannot deactivate their own account")
	}

	if err := h.userRepository.SetActive(userID, *req.IsActive); err != nil {
		return httpError(err)
	}

	status := "active"
	if !*req.IsActive {
		status = "banned"
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User status updated to " + status})
}

// GetAllSwaps lists every swap request system-wide, enriched with both
// parties' details including emails
func (h *AdminHandler) GetAllSwaps(c echo.Context) error {
	swaps, err := h.swapRepository.GetAllSwaps()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	detailed, err := buildSwapDetails(h.userRepository, swaps, true)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, detailed)
}

// UpdateSwapStatus forces a status change on any swap request. Admin
// privilege bypasses the ownership checks but not the lifecycle: the
// transition must still follow a legal edge.
func (h *AdminHandler) UpdateSwapStatus(c echo.Context) error {
	var req models.AdminUpdateSwapStatusRequest
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

	if !models.CanTransition(swap.Status, req.Status) {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot move a "+swap.Status+" request to "+req.Status)
	}

	if err := h.swapRepository.UpdateSwapStatus(swap.ID, swap.Status, req.Status); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Swap request status updated to " + req.Status})
}

// DeleteSwap removes any swap request regardless of status
func (h *AdminHandler) DeleteSwap(c echo.Context) error {
	if err := h.swapRepository.DeleteSwap(c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Swap request deleted successfully"})
}
