package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dnsfilter/dnsfilter-report/internal/api/handlers"
	"github.com/dnsfilter/dnsfilter-report/internal/config"
	"github.com/dnsfilter/dnsfilter-report/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	return SetupRouter(&config.Config{GinMode: gin.TestMode}, zap.NewNop())
}

func doRequest(r http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetCategoria(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name     string
		path     string
		rotulo   string
		fallback bool
	}{
		{"adulto", "/api/v1/categorias/01", "Adulto / Conteúdo Maduro", false},
		{"compras", "/api/v1/categorias/3A", "Compras", false},
		{"desconhecida", "/api/v1/categorias/5A", "Categoria desconhecida", false},
		{"sentinela", "/api/v1/categorias/BAD", "Não Encontrado", false},
		{"inexistente", "/api/v1/categorias/ZZ", "Não Encontrado", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodGet, tt.path, nil)
			require.Equal(t, http.StatusOK, w.Code)

			var resp models.CategoriaResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.rotulo, resp.Rotulo)
			assert.Equal(t, tt.fallback, resp.Fallback)
		})
	}
}

func TestGetCategoriaCodigosDeBorda(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name   string
		path   string
		codigo string
	}{
		{"código vazio", "/api/v1/categorias/", ""},
		{"barra codificada", "/api/v1/categorias/a%2Fb", "a/b"},
		{"espaço codificado", "/api/v1/categorias/%20", " "},
		{"minúsculas", "/api/v1/categorias/0b", "0b"},
		{"vários segmentos", "/api/v1/categorias/01/02", "01/02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodGet, tt.path, nil)
			require.Equal(t, http.StatusOK, w.Code)

			var resp models.CategoriaResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.codigo, resp.Codigo)
			assert.Equal(t, "Não Encontrado", resp.Rotulo)
			assert.True(t, resp.Fallback)
		})
	}
}

func TestRequestSpans(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	r := SetupRouterWithTracer(&config.Config{GinMode: gin.TestMode}, zap.NewNop(), tp)

	require.Equal(t, http.StatusOK, doRequest(r, http.MethodGet, "/api/v1/categorias/ZZ", nil).Code)
	require.Equal(t, http.StatusBadRequest, doRequest(r, http.MethodGet, "/api/v1/categorias?order=up", nil).Code)

	porNome := map[string][]sdktrace.ReadOnlySpan{}
	for _, span := range rec.Ended() {
		porNome[span.Name()] = append(porNome[span.Name()], span)
	}

	requests := porNome["http.request"]
	require.Len(t, requests, 2)
	assert.Equal(t, codes.Ok, requests[0].Status().Code)
	assert.Equal(t, codes.Error, requests[1].Status().Code)

	lookups := porNome["categorias.lookup"]
	require.Len(t, lookups, 1)
	assert.Equal(t, requests[0].SpanContext().SpanID(), lookups[0].Parent().SpanID())
	for _, kv := range lookups[0].Attributes() {
		if kv.Key == "categoria.fallback" {
			assert.True(t, kv.Value.AsBool())
		}
	}
}

func TestListCategorias(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/api/v1/categorias?q=saude", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.CategoriasResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "25", resp.Categorias[0].Codigo)
	assert.Equal(t, "Saúde", resp.Categorias[0].Rotulo)
}

func TestListCategoriasParametrosInvalidos(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/api/v1/categorias?sort_by=popularity", "/api/v1/categorias?order=up"} {
		w := doRequest(r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Contains(t, w.Body.String(), "Parâmetros inválidos")
	}
}

func TestLookupBatch(t *testing.T) {
	r := newTestRouter(t)

	body, _ := json.Marshal(models.LookupBatchRequest{Codigos: []string{"3A", "ZZ"}})
	w := doRequest(r, http.MethodPost, "/api/v1/categorias/lookup", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.LookupBatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 1, resp.NaoEncontrados)
	assert.Equal(t, "Compras", resp.Resultados[0].Rotulo)
	assert.Equal(t, "Não Encontrado", resp.Resultados[1].Rotulo)
}

func TestLookupBatchInvalido(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"json malformado", `{"codigos":`},
		{"lista vazia", `{"codigos":[]}`},
		{"sem codigos", `{}`},
		{"código longo demais", `{"codigos":["` + strings.Repeat("A", 17) + `"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodPost, "/api/v1/categorias/lookup", []byte(tt.body))
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestLookupBatchLimite(t *testing.T) {
	r := newTestRouter(t)

	codigos := make([]string, 501)
	for i := range codigos {
		codigos[i] = "01"
	}
	body, _ := json.Marshal(models.LookupBatchRequest{Codigos: codigos})

	w := doRequest(r, http.MethodPost, "/api/v1/categorias/lookup", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthEndpoints(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		path   string
		status string
	}{
		{"/liveness", "alive"},
		{"/readiness", "ready"},
		{"/health", "healthy"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := doRequest(r, http.MethodGet, tt.path, nil)
			require.Equal(t, http.StatusOK, w.Code)

			var resp handlers.HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.status, resp.Status)
			if tt.path != "/liveness" {
				assert.Equal(t, "70", resp.Checks["categorias"])
			}
		})
	}
}

func TestCorsPreflight(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodOptions, "/api/v1/categorias", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRespostaTemRequestID(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/liveness", nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
