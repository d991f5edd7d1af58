// Package handler provides the HTTP handlers for the ingredients feature.
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"recipe_backend/internal/api"
	"recipe_backend/internal/apperr"
	"recipe_backend/internal/feature/ingredients/domain/entity"
	"recipe_backend/internal/feature/ingredients/transport/http/dto"
	"recipe_backend/internal/feature/ingredients/usecase"
)

// IngredientsUsecase defines the ingredient operations consumed by this
// handler.
type IngredientsUsecase interface {
	Create(ctx context.Context, name, description, category string) (*entity.Ingredient, error)
	Get(ctx context.Context, id string) (*entity.Ingredient, error)
	List(ctx context.Context, q usecase.ListQuery) ([]entity.Ingredient, int64, usecase.ListQuery, error)
	Update(ctx context.Context, id, name, description, category string) (*entity.Ingredient, error)
	Delete(ctx context.Context, id string) error
}

// IngredientsHandler handles HTTP requests for ingredient CRUD.
type IngredientsHandler struct {
	ingredients IngredientsUsecase
}

// NewIngredientsHandler creates a new IngredientsHandler.
func NewIngredientsHandler(ingredients IngredientsUsecase) *IngredientsHandler {
	return &IngredientsHandler{ingredients: ingredients}
}

// Create handles POST /ingredients.
func (h *IngredientsHandler) Create(c *gin.Context) {
	var req dto.IngredientReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, apperr.New(apperr.Validation, "Bad Request"))
		return
	}

	ing, err := h.ingredients.Create(c.Request.Context(), req.Name, req.Description, req.Category)
	if err != nil {
		api.Fail(c, err)
		return
	}

	slog.Info("ingredient created", "ingredient_id", ing.ID)
	api.OK(c, http.StatusCreated, "Ingredient created successfully",
		dto.IngredientFromEntity(ing), api.ResourceLinks("ingredients", ing.ID))
}

// List handles GET /ingredients with pagination, search and sorting.
func (h *IngredientsHandler) List(c *gin.Context) {
	q := usecase.ListQuery{
		Page:     atoiDefault(c.Query("page"), 1),
		Limit:    atoiDefault(c.Query("limit"), 0),
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
		SortType: c.Query("sort_type"),
	}

	items, total, q, err := h.ingredients.List(c.Request.Context(), q)
	if err != nil {
		api.Fail(c, err)
		return
	}

	totalPage := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	pagination := &api.Pagination{
		Page:       q.Page,
		Limit:      q.Limit,
		TotalItems: total,
		TotalPage:  totalPage,
	}
	if q.Page < totalPage {
		pagination.Next = q.Page + 1
	}
	if q.Page > 1 {
		pagination.Prev = q.Page - 1
	}

	c.JSON(http.StatusOK, api.Response{
		Code:       http.StatusOK,
		Message:    "Ingredients fetched successfully",
		Data:       dto.ListFromEntities(items),
		Links:      api.ListLinks("ingredients", q.Page, q.Limit, totalPage, q.Sort, q.SortType, q.Search),
		Pagination: pagination,
	})
}

// Get handles GET /ingredients/:id.
func (h *IngredientsHandler) Get(c *gin.Context) {
	ing, err := h.ingredients.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		api.Fail(c, err)
		return
	}

	api.OK(c, http.StatusOK, "Ingredient fetched successfully",
		dto.IngredientFromEntity(ing), api.ResourceLinks("ingredients", ing.ID))
}

// Update handles PUT /ingredients/:id. An empty body is passed through so a
// request for a missing ingredient still answers 404 rather than 400.
func (h *IngredientsHandler) Update(c *gin.Context) {
	var req dto.IngredientReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		api.Fail(c, apperr.New(apperr.Validation, "Bad Request"))
		return
	}

	ing, err := h.ingredients.Update(c.Request.Context(), c.Param("id"), req.Name, req.Description, req.Category)
	if err != nil {
		api.Fail(c, err)
		return
	}

	slog.Info("ingredient updated", "ingredient_id", ing.ID)
	api.OK(c, http.StatusOK, "Ingredient updated successfully",
		dto.IngredientFromEntity(ing), api.ResourceLinks("ingredients", ing.ID))
}

// Delete handles DELETE /ingredients/:id.
func (h *IngredientsHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.ingredients.Delete(c.Request.Context(), id); err != nil {
		api.Fail(c, err)
		return
	}

	slog.Info("ingredient deleted", "ingredient_id", id)
	api.OK(c, http.StatusOK, "Ingredient deleted successfully", nil, nil)
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
