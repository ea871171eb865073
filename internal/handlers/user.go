package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/skill-swap/backend/internal/middleware"
	"github.com/skill-swap/backend/internal/models"
	"github.com/skill-swap/backend/internal/repositories"
)

// UserHandler handles HTTP requests related to user profiles and feedback
type UserHandler struct {
	userRepository     repositories.UserRepository
	swapRepository     repositories.SwapRepository
	feedbackRepository repositories.FeedbackRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, swapRepo repositories.SwapRepository, feedbackRepo repositories.FeedbackRepository) *UserHandler {
	return &UserHandler{
		userRepository:     userRepo,
		swapRepository:     swapRepo,
		feedbackRepository: feedbackRepo,
	}
}

// RegisterPublicRoutes registers user routes that require no authentication
func (h *UserHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/users", h.GetPublicUsers)
	g.GET("/users/search", h.SearchUsers)
}

// RegisterProfileRoutes registers authenticated user routes
func (h *UserHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/users/me", h.GetProfile)
	g.PUT("/users/me", h.UpdateProfile)
	g.GET("/users/:id", h.GetUser)
	g.GET("/users/:id/feedback", h.GetUserFeedback)
	g.POST("/users/:id/feedback", h.SubmitFeedback)
}

// GetPublicUsers lists all public, active users for browsing
func (h *UserHandler) GetPublicUsers(c echo.Context) error {
	users, err := h.userRepository.GetPublicUsers()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, users)
}

// SearchUsers searches public profiles by name, location or skill label
func (h *UserHandler) SearchUsers(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Search query 'q' is required")
	}

	users, err := h.userRepository.SearchPublicUsers(query)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, users)
}

// GetUser retrieves another user's profile by ID
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userRepository.GetUserByID(c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// GetProfile retrieves the authenticated user's profile
func (h *UserHandler) GetProfile(c echo.Context) error {
	claims := middleware.UserClaims(c)

	user, err := h.userRepository.GetUserByID(claims.UserID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile updates the authenticated user's profile. Only fields present
// in the payload change; admin and active flags are not editable here.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	claims := middleware.UserClaims(c)

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userRepository.GetUserByID(claims.UserID)
	if err != nil {
		return httpError(err)
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.ProfilePhoto != nil {
		user.ProfilePhoto = *req.ProfilePhoto
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.SkillsOffered != nil {
		user.SkillsOffered = req.SkillsOffered
	}
	if req.SkillsWanted != nil {
		user.SkillsWanted = req.SkillsWanted
	}
	if req.Availability != "" {
		user.Availability = req.Availability
	}
	if req.IsPublic != nil {
		user.IsPublic = *req.IsPublic
	}

	if err := h.userRepository.UpdateProfile(user); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, user)
}

// GetUserFeedback lists the feedback a user has received, newest first
func (h *UserHandler) GetUserFeedback(c echo.Context) error {
	feedback, err := h.feedbackRepository.GetFeedbackForUser(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, feedback)
}

// SubmitFeedback records feedback for an accepted swap. Storing the feedback,
// updating the ratee's rating and completing the swap happen atomically in
// the repository.
func (h *UserHandler) SubmitFeedback(c echo.Context) error {
	claims := middleware.UserClaims(c)
	toUserID := c.Param("id")

	var req models.SubmitFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if claims.UserID == toUserID {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot give feedback to yourself")
	}

	swap, err := h.swapRepository.GetSwapByID(req.SwapRequestID)
	if err != nil {
		return httpError(err)
	}

	// The rater must be a participant and the ratee must be the counterpart.
	if claims.UserID != swap.FromUserID && claims.UserID != swap.ToUserID {
		return echo.NewHTTPError(http.StatusForbidden, "Only swap participants can leave feedback")
	}
	counterpart := swap.FromUserID
	if claims.UserID == swap.FromUserID {
		counterpart = swap.ToUserID
	}
	if toUserID != counterpart {
		return echo.NewHTTPError(http.StatusBadRequest, "Feedback target must be the swap counterpart")
	}

	fb := &models.Feedback{
		SwapRequestID: req.SwapRequestID,
		FromUserID:    claims.UserID,
		ToUserID:      toUserID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	}

	if err := h.feedbackRepository.SubmitFeedback(fb); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, fb)
}
