package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dnsfilter/dnsfilter-report/internal/categoria"
	"github.com/gin-gonic/gin"
)

// HealthHandler gerencia os endpoints de health check
type HealthHandler struct{}

// NewHealthHandler cria um novo handler de health check
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// HealthResponse representa a resposta do health check
type HealthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// Liveness godoc
// @Summary Liveness check endpoint
// @Description Verifica se a aplicação está viva
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /liveness [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now().Unix(),
	})
}

// Readiness godoc
// @Summary Readiness check endpoint
// @Description Informa que a aplicação pode receber tráfego e quantas categorias a tabela tem
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /readiness [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	h.respond(c, "ready")
}

// Health godoc
// @Summary Comprehensive health check endpoint
// @Description Verifica a saúde completa da aplicação
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	h.respond(c, "healthy")
}

// respond sempre responde 200: a tabela é um literal compilado no binário e
// não há dependência externa que possa falhar depois que o processo sobe.
func (h *HealthHandler) respond(c *gin.Context, status string) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: status,
		Checks: map[string]string{
			"categorias": strconv.Itoa(categoria.Len()),
		},
		Timestamp: time.Now().Unix(),
	})
}
