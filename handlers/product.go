package handlers

import (
	"errors"
	"net/http"

	"camerastore/models"
	"camerastore/services/product"
	"camerastore/services/storage"
	"camerastore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProductHandler serves the catalog and the admin product form.
type ProductHandler struct {
	ProductService product.ProductService
	MaxUploadBytes int64
}

func NewProductHandler(svc product.ProductService, maxUploadBytes int64) *ProductHandler {
	return &ProductHandler{ProductService: svc, MaxUploadBytes: maxUploadBytes}
}

// ListProducts handles GET /api/products.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	items, err := h.ProductService.ListProducts(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to list products", zap.Error(err))
		internalError(c, utils.MsgProductsLoadFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": items, "count": len(items)})
}

// GetProduct handles GET /api/products/:id.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	item, err := h.ProductService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			utils.JSONErrorWithRedirect(c, http.StatusNotFound, utils.T(c, utils.MsgProductNotFound), publicRedirect())
			return
		}
		getLogger(c).Error("Failed to load product", zap.String("id", c.Param("id")), zap.Error(err))
		internalError(c, utils.MsgProductsLoadFailed)
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateProduct handles POST /api/admin/products (multipart form with "image").
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var slot storage.Slot
	defer slot.Release()

	input, ok := h.bindForm(c, &slot)
	if !ok {
		return
	}

	p, err := h.ProductService.CreateProduct(c.Request.Context(), input, slot.File())
	if err != nil {
		h.writeWriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":  utils.T(c, utils.MsgProductSaved),
		"product":  p,
		"redirect": adminRedirect(),
	})
}

// UpdateProduct handles PUT /api/admin/products/:id; the image part is optional.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var slot storage.Slot
	defer slot.Release()

	input, ok := h.bindForm(c, &slot)
	if !ok {
		return
	}

	p, err := h.ProductService.UpdateProduct(c.Request.Context(), c.Param("id"), input, slot.File())
	if err != nil {
		h.writeWriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  utils.T(c, utils.MsgProductUpdated),
		"product":  p,
		"redirect": adminRedirect(),
	})
}

// DeleteProduct handles DELETE /api/admin/products/:id?confirm=true.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if !requireConfirm(c) {
		return
	}
	if err := h.ProductService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		h.writeWriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": utils.T(c, utils.MsgProductDeleted)})
}

// bindForm reads the product fields and stages the optional image into slot.
func (h *ProductHandler) bindForm(c *gin.Context, slot *storage.Slot) (models.ProductInput, bool) {
	var input models.ProductInput
	if err := c.ShouldBind(&input); err != nil {
		getLogger(c).Warn("Invalid product form", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, utils.T(c, utils.MsgValidation), err.Error())
		return input, false
	}

	fh, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return input, true
		}
		utils.JSONError(c, http.StatusBadRequest, utils.T(c, utils.MsgImageInvalid), err.Error())
		return input, false
	}

	staged, err := storage.StageMultipart(fh, h.MaxUploadBytes)
	if err != nil {
		if !writeValidationError(c, err) {
			getLogger(c).Error("Failed to stage upload", zap.Error(err))
			internalError(c, utils.MsgInternal)
		}
		return input, false
	}
	slot.Put(staged)
	return input, true
}

func (h *ProductHandler) writeWriteError(c *gin.Context, err error) {
	if writeValidationError(c, err) {
		return
	}
	switch {
	case errors.Is(err, product.ErrProductNotFound):
		utils.JSONErrorWithRedirect(c, http.StatusNotFound, utils.T(c, utils.MsgProductNotFound), adminRedirect())
	case errors.Is(err, storage.ErrUploadFailed):
		utils.JSONError(c, http.StatusBadGateway, utils.T(c, utils.MsgUploadFailed), "")
	default:
		getLogger(c).Error("Product write failed", zap.Error(err))
		internalError(c, utils.MsgProductSaveFailed)
	}
}
