package handlers

import (
	"github.com/gin-gonic/gin"

	"tally/internal/application/user/usecases"
	"tally/internal/interfaces/http/middleware"
	"tally/internal/shared/logger"
	"tally/internal/shared/utils"
)

// MemberHandler serves the endpoints behind the session gate.
type MemberHandler struct {
	changePasswordUseCase ChangePasswordUseCase
	updateCounterUseCase  UpdateCounterUseCase
	logger                logger.Interface
}

func NewMemberHandler(
	changePasswordUC ChangePasswordUseCase,
	updateCounterUC UpdateCounterUseCase,
	logger logger.Interface,
) *MemberHandler {
	return &MemberHandler{
		changePasswordUseCase: changePasswordUC,
		updateCounterUseCase:  updateCounterUC,
		logger:                logger,
	}
}

type ChangePasswordRequest struct {
	CurrentPassword    string `json:"currentPassword" binding:"required,min=5"`
	NewPassword        string `json:"newPassword" binding:"required,min=5,nefield=CurrentPassword"`
	ConfirmNewPassword string `json:"confirmNewPassword" binding:"required,eqfield=NewPassword"`
}

type UpdateCounterRequest struct {
	// Pointer so zero is a valid submitted value.
	CounterValue *int `json:"counterValue" binding:"required"`
}

func (h *MemberHandler) ChangePassword(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.FailureResponse(c, utils.BindingErrorMessage(err))
		return
	}

	cmd := usecases.ChangePasswordCommand{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}

	if err := h.changePasswordUseCase.Execute(c.Request.Context(), userID, cmd); err != nil {
		utils.FailureResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, "password changed successfully", nil)
}

func (h *MemberHandler) UpdateCounter(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req UpdateCounterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.FailureResponse(c, utils.BindingErrorMessage(err))
		return
	}

	cmd := usecases.UpdateCounterCommand{CounterValue: *req.CounterValue}

	updated, err := h.updateCounterUseCase.Execute(c.Request.Context(), userID, cmd)
	if err != nil {
		utils.FailureResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, "counter value updated", NewProfileDTO(updated))
}
