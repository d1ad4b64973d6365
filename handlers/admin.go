package handlers

import (
	"net/http"

	"camerastore/services/admin"
	"camerastore/utils"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	AdminService admin.AdminService
}

func NewAdminHandler(svc admin.AdminService) *AdminHandler {
	return &AdminHandler{AdminService: svc}
}

// Dashboard handles GET /api/admin/dashboard. Section failures are reported
// inside the body, so the status is always 200.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	d := h.AdminService.Dashboard(c.Request.Context())
	for section, msgID := range d.Errors {
		d.Errors[section] = utils.T(c, msgID)
	}
	c.JSON(http.StatusOK, d)
}
