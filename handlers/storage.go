package handlers

import (
	"net/http"

	"camerastore/services/storage"
	"camerastore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UploadSigner issues signed direct-upload tickets.
type UploadSigner interface {
	SignUpload(folder string) (*storage.UploadTicket, error)
}

type StorageHandler struct {
	Signer UploadSigner
}

func NewStorageHandler(signer UploadSigner) *StorageHandler {
	return &StorageHandler{Signer: signer}
}

// SignUpload handles POST /api/admin/uploads/signature.
func (h *StorageHandler) SignUpload(c *gin.Context) {
	var req struct {
		Folder string `json:"folder"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, utils.T(c, utils.MsgValidation), err.Error())
			return
		}
	}

	ticket, err := h.Signer.SignUpload(req.Folder)
	if err != nil {
		getLogger(c).Warn("Refused upload signature", zap.String("folder", req.Folder), zap.Error(err))
		utils.JSONValidationError(c, utils.T(c, utils.MsgValidation), []string{"folder"})
		return
	}
	c.JSON(http.StatusOK, ticket)
}
