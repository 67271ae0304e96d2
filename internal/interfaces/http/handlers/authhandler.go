package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"tally/internal/application/user/usecases"
	"tally/internal/domain/user/valueobjects"
	"tally/internal/interfaces/http/middleware"
	"tally/internal/shared/config"
	"tally/internal/shared/logger"
	"tally/internal/shared/utils"
)

type AuthHandler struct {
	signupUseCase     SignupUseCase
	loginUseCase      LoginUseCase
	logoutUseCase     LogoutUseCase
	getProfileUseCase GetProfileUseCase
	logger            logger.Interface
	sessionConfig     config.SessionConfig
	cookieConfig      config.CookieConfig
}

func NewAuthHandler(
	signupUC SignupUseCase,
	loginUC LoginUseCase,
	logoutUC LogoutUseCase,
	getProfileUC GetProfileUseCase,
	logger logger.Interface,
	sessionConfig config.SessionConfig,
	cookieConfig config.CookieConfig,
) *AuthHandler {
	return &AuthHandler{
		signupUseCase:     signupUC,
		loginUseCase:      loginUC,
		logoutUseCase:     logoutUC,
		getProfileUseCase: getProfileUC,
		logger:            logger,
		sessionConfig:     sessionConfig,
		cookieConfig:      cookieConfig,
	}
}

type SignupRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=5"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type PasswordStrengthRequest struct {
	Password string `json:"password"`
}

// PasswordStrengthPayload adds the presentation level to the scorer result.
type PasswordStrengthPayload struct {
	valueobjects.PasswordStrength
	Level string `json:"level"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.FailureResponse(c, utils.BindingErrorMessage(err))
		return
	}

	cmd := usecases.SignupCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		TTL:      h.sessionTTL(),
	}

	result, err := h.signupUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("signup failed", "error", err, "email", req.Email)
		utils.FailureResponseWithError(c, err)
		return
	}

	utils.SetSessionCookie(c, h.cookieConfig, result.Token, h.sessionConfig.TTLSeconds)
	utils.SuccessResponse(c, "account created successfully", NewProfileDTO(result.User))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.FailureResponse(c, utils.BindingErrorMessage(err))
		return
	}

	cmd := usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
		TTL:      h.sessionTTL(),
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("login failed", "error", err, "email", req.Email)
		utils.FailureResponseWithError(c, err)
		return
	}

	utils.SetSessionCookie(c, h.cookieConfig, result.Token, h.sessionConfig.TTLSeconds)
	utils.SuccessResponse(c, "logged in successfully", NewProfileDTO(result.User))
}

// Logout destroys the session when one is present and clears the
// cookie either way. Logging out without a session is still a success.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := utils.GetSessionToken(c)
	if token != "" {
		if err := h.logoutUseCase.Execute(c.Request.Context(), usecases.LogoutCommand{Token: token}); err != nil {
			utils.FailureResponseWithError(c, err)
			return
		}
	}

	utils.ClearSessionCookie(c, h.cookieConfig)
	utils.SuccessResponse(c, "logged out successfully", nil)
}

// GetCurrentUser reports the profile behind the current session, or a
// failure envelope when the request carries no valid session.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		utils.FailureResponse(c, "not authenticated")
		return
	}

	profile, err := h.getProfileUseCase.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.FailureResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, "authenticated", NewProfileDTO(profile))
}

// PasswordStrength scores a candidate password. The original app
// computed this client-side; with no frontend here the scorer is
// exposed so clients receive the identical result object.
func (h *AuthHandler) PasswordStrength(c *gin.Context) {
	var req PasswordStrengthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.FailureResponse(c, utils.BindingErrorMessage(err))
		return
	}

	result := valueobjects.CalculatePasswordStrength(req.Password)
	payload := PasswordStrengthPayload{
		PasswordStrength: result,
		Level:            valueobjects.StrengthLevel(result.Score),
	}

	utils.SuccessResponse(c, "password strength calculated", payload)
}

func (h *AuthHandler) sessionTTL() time.Duration {
	return time.Duration(h.sessionConfig.TTLSeconds) * time.Second
}
