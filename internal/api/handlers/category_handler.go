package handlers

import (
	"errors"
	"net/http"

	middlewares "github.com/dnsfilter/dnsfilter-report/internal/middleware"
	"github.com/dnsfilter/dnsfilter-report/internal/models"
	"github.com/dnsfilter/dnsfilter-report/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// CategoryHandler gerencia endpoints de categorias
type CategoryHandler struct {
	categoryService *services.CategoryService
	validator       *validator.Validate
}

// NewCategoryHandler cria um novo handler de categorias
func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		validator:       validator.New(),
	}
}

// ListCategorias godoc
// @Summary Lista as categorias conhecidas
// @Description Retorna todos os códigos de categoria e seus rótulos, incluindo o sentinela BAD. O filtro q ignora acentos e maiúsculas.
// @Tags categorias
// @Produce json
// @Param q query string false "Filtro por código ou rótulo (ex: saude)"
// @Param sort_by query string false "Critério de ordenação" Enums(codigo, rotulo) default(codigo)
// @Param order query string false "Direção da ordenação" Enums(asc, desc) default(asc)
// @Success 200 {object} models.CategoriasResponse
// @Failure 400 {object} map[string]string "Parâmetros inválidos"
// @Router /api/v1/categorias [get]
func (h *CategoryHandler) ListCategorias(c *gin.Context) {
	var req models.CategoryListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Parâmetros inválidos",
			"details": err.Error(),
		})
		return
	}

	result, err := h.categoryService.List(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidSortBy) || errors.Is(err, models.ErrInvalidOrder) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Parâmetros inválidos",
				"details": err.Error(),
			})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Erro ao listar categorias",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCategoria godoc
// @Summary Resolve um código de categoria
// @Description Retorna o rótulo do código. Qualquer caminho abaixo de /categorias/ é tratado como código, inclusive vazio ou com barras; códigos desconhecidos retornam 200 com o rótulo "Não Encontrado" e fallback=true.
// @Tags categorias
// @Produce json
// @Param codigo path string true "Código da categoria (ex: 3A)"
// @Success 200 {object} models.CategoriaResponse
// @Router /api/v1/categorias/{codigo} [get]
func (h *CategoryHandler) GetCategoria(c *gin.Context) {
	codigo, _ := middlewares.CodigoFromPath(c)
	resp := h.categoryService.Lookup(c.Request.Context(), codigo)
	c.JSON(http.StatusOK, resp)
}

// LookupBatch godoc
// @Summary Resolve vários códigos de categoria
// @Description Resolve até 500 códigos mantendo a ordem recebida. Códigos desconhecidos recebem o rótulo "Não Encontrado".
// @Tags categorias
// @Accept json
// @Produce json
// @Param request body models.LookupBatchRequest true "Códigos a resolver"
// @Success 200 {object} models.LookupBatchResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/categorias/lookup [post]
func (h *CategoryHandler) LookupBatch(c *gin.Context) {
	var request models.LookupBatchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos: " + err.Error()})
		return
	}

	if err := h.validator.Struct(request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validação falhou: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.categoryService.LookupBatch(c.Request.Context(), request.Codigos))
}
