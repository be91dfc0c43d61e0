package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"findflow/internal/models/db_models"
	"findflow/internal/models/request_models"
	"findflow/internal/services"
	"findflow/pkg/utils"
)

type CategoryController struct {
	categoryService services.CategoryServiceInterface
}

func NewCategoryController(categoryService services.CategoryServiceInterface) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
	}
}

func (cc *CategoryController) ListCategoriesHandler(c *gin.Context) {
	names, err := cc.categoryService.ListNames(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, names, "Fetched categories successfully")
}

func (cc *CategoryController) DetectCategoryHandler(c *gin.Context) {
	var req request_models.DetectCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resolution, err := cc.categoryService.Resolve(c.Request.Context(), req.Query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resolution, "Category detected")
}

// UpsertCategoryHandler stores a full category schema. Admin only.
func (cc *CategoryController) UpsertCategoryHandler(c *gin.Context) {
	var category db_models.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid category payload")
		return
	}
	if name := c.Param("name"); name != "" {
		category.Name = name
	}

	if err := cc.categoryService.Save(c.Request.Context(), &category); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, category.Name, "Category saved")
}
