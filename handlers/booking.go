package handlers

import (
	"errors"
	"net/http"

	"camerastore/models"
	"camerastore/services/booking"
	"camerastore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the public booking form and the admin bookings table.
type BookingHandler struct {
	BookingService booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{BookingService: svc}
}

// GetForm handles GET /api/booking/form?cameraId=.
func (h *BookingHandler) GetForm(c *gin.Context) {
	view, err := h.BookingService.Form(c.Request.Context(), c.Query("cameraId"))
	if err != nil {
		h.writeError(c, err, utils.MsgInternal)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SubmitBooking handles POST /api/bookings.
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	var form models.BookingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		getLogger(c).Warn("Invalid booking payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, utils.T(c, utils.MsgValidation), err.Error())
		return
	}

	res, err := h.BookingService.Submit(c.Request.Context(), form)
	if err != nil {
		h.writeError(c, err, utils.MsgBookingSubmitFailed)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":  utils.T(c, utils.MsgBookingSubmitted),
		"booking":  res.Booking,
		"form":     res.Form,
		"redirect": publicRedirect(),
	})
}

// ListBookings handles GET /api/admin/bookings?status=&sort=&dir=&toggle=&q=.
// toggle applies a column click to the sort given by sort/dir and the
// resulting sort is echoed back.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	sortState := booking.SortState{Field: c.Query("sort"), Dir: c.DefaultQuery("dir", booking.SortDesc)}
	if sortState.Field == "" {
		sortState = booking.DefaultSort
	}
	if toggle := c.Query("toggle"); toggle != "" {
		if !booking.ValidSortField(toggle) {
			utils.JSONValidationError(c, utils.T(c, utils.MsgValidation), []string{"toggle"})
			return
		}
		sortState = sortState.Toggle(toggle)
	}

	filter := booking.ListFilter{
		Status: c.DefaultQuery("status", "all"),
		Sort:   sortState,
		Query:  c.Query("q"),
	}
	list, err := h.BookingService.List(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, err, utils.MsgBookingsLoadFailed)
		return
	}

	lang := utils.Lang(c)
	labels := make(map[models.BookingStatus]string, len(models.BookingStatuses))
	for _, st := range models.BookingStatuses {
		labels[st] = st.Label(lang)
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings":     list,
		"count":        len(list),
		"status":       filter.Status,
		"sort":         sortState,
		"statusLabels": labels,
	})
}

// UpdateStatus handles PATCH /api/admin/bookings/:id/status.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status models.BookingStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONValidationError(c, utils.T(c, utils.MsgValidation), []string{"status"})
		return
	}

	id := c.Param("id")
	if err := h.BookingService.SetStatus(c.Request.Context(), id, req.Status); err != nil {
		h.writeError(c, err, utils.MsgStatusUpdateFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": utils.T(c, utils.MsgStatusUpdated),
		"id":      id,
		"status":  req.Status,
		"label":   req.Status.Label(utils.Lang(c)),
	})
}

// DeleteBooking handles DELETE /api/admin/bookings/:id?confirm=true.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	if !requireConfirm(c) {
		return
	}
	if err := h.BookingService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err, utils.MsgBookingDeleteFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": utils.T(c, utils.MsgBookingDeleted)})
}

func (h *BookingHandler) writeError(c *gin.Context, err error, storeMsg string) {
	if writeValidationError(c, err) {
		return
	}
	switch {
	case errors.Is(err, booking.ErrCameraNotFound):
		utils.JSONErrorWithRedirect(c, http.StatusNotFound, utils.T(c, utils.MsgProductNotFound), publicRedirect())
	case errors.Is(err, booking.ErrBookingNotFound):
		utils.JSONErrorWithRedirect(c, http.StatusNotFound, utils.T(c, utils.MsgBookingNotFound), adminRedirect())
	default:
		getLogger(c).Error("Booking operation failed", zap.String("path", c.FullPath()), zap.Error(err))
		internalError(c, storeMsg)
	}
}
