package handlers

import (
	"errors"
	"net/http"

	"camerastore/services/storage"
	"camerastore/utils"

	"github.com/gin-gonic/gin"
)

// writeValidationError answers 400 for form problems and reports whether err was one.
func writeValidationError(c *gin.Context, err error) bool {
	if ve, ok := utils.AsValidationError(err); ok {
		msg := utils.MsgValidation
		switch {
		case len(ve.Fields) == 1 && ve.Fields[0] == "image":
			msg = utils.MsgImageRequired
		case ve.Reason == "required fields are missing":
			msg = utils.MsgMissingFields
		}
		utils.JSONValidationError(c, utils.T(c, msg), ve.Fields)
		return true
	}
	if errors.Is(err, storage.ErrNotImage) || errors.Is(err, storage.ErrFileTooLarge) {
		utils.JSONValidationError(c, utils.T(c, utils.MsgImageInvalid), []string{"image"})
		return true
	}
	return false
}

// requireConfirm enforces ?confirm=true on destructive routes.
func requireConfirm(c *gin.Context) bool {
	if c.Query("confirm") == "true" {
		return true
	}
	utils.JSONValidationError(c, utils.T(c, utils.MsgConfirmRequired), []string{"confirm"})
	return false
}

func adminRedirect() utils.RedirectHint {
	return utils.Redirect(utils.DashboardPath, utils.AdminRedirectDelay)
}

func publicRedirect() utils.RedirectHint {
	return utils.Redirect(utils.HomePath, utils.PublicRedirectDelay)
}

func internalError(c *gin.Context, msgID string) {
	c.JSON(http.StatusInternalServerError, utils.ErrorResponse{Message: utils.T(c, msgID)})
}
