package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/goshop/catalog-service/internal/apperr"
	"github.com/goshop/catalog-service/internal/auth"
	"github.com/goshop/catalog-service/internal/subcategory"
	"github.com/goshop/catalog-service/internal/subcategory/dto"
)

type SubCategoryHandler struct {
	uc     subcategory.UseCase
	logger *zap.Logger
}

func NewSubCategoryHandler(uc subcategory.UseCase, log *zap.Logger) *SubCategoryHandler {
	return &SubCategoryHandler{
		uc:     uc,
		logger: log,
	}
}

type upsertSubCategoryRequest struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	URL        string `json:"url"`
	Image      string `json:"image"`
	Featured   bool   `json:"featured"`
	CategoryID string `json:"category_id"`
}

func (h *SubCategoryHandler) Upsert(c *gin.Context) {
	var req upsertSubCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	input := &dto.UpsertSubCategoryInput{
		ID:         req.ID,
		Name:       req.Name,
		URL:        req.URL,
		Image:      req.Image,
		Featured:   req.Featured,
		CategoryID: req.CategoryID,
	}

	caller := auth.IdentityFromContext(c.Request.Context())
	sub, err := h.uc.UpsertSubCategory(c.Request.Context(), caller, input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

func (h *SubCategoryHandler) Get(c *gin.Context) {
	sub, err := h.uc.GetSubCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *SubCategoryHandler) List(c *gin.Context) {
	subs, err := h.uc.ListSubCategories(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, subs)
}

func (h *SubCategoryHandler) Delete(c *gin.Context) {
	caller := auth.IdentityFromContext(c.Request.Context())
	sub, err := h.uc.DeleteSubCategory(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *SubCategoryHandler) respondError(c *gin.Context, err error) {
	status := httpStatus(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("subcategory request failed", zap.Error(err))
	}

	body := gin.H{"error": err.Error()}
	if field := apperr.FieldOf(err); field != "" {
		body["field"] = field
	}
	c.JSON(status, body)
}

func httpStatus(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindInvalid:
		return http.StatusBadRequest
	case apperr.KindUnauthenticated:
		return http.StatusUnauthorized
	case apperr.KindUnauthorized:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindDuplicate, apperr.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
