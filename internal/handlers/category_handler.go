package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"keuanganku/internal/categories"
)

// CategoryHandler serves the fixed category vocabulary.
type CategoryHandler struct{}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// GetCategories returns the category vocabulary
// @Summary     Get categories
// @Description Get the fixed income and expense category vocabulary
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string][]categories.Category "Categories grouped by transaction type"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"income":  categories.Income,
		"expense": categories.Expense,
	})
}
