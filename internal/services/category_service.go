package services

import (
	"context"
	"sort"

	"github.com/dnsfilter/dnsfilter-report/internal/categoria"
	"github.com/dnsfilter/dnsfilter-report/internal/logging"
	"github.com/dnsfilter/dnsfilter-report/internal/models"
	"github.com/dnsfilter/dnsfilter-report/internal/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// CategoryService expõe a tabela de categorias para a API
type CategoryService struct {
	logger *zap.SugaredLogger
	tracer trace.Tracer
}

// NewCategoryService cria um novo serviço de categorias. Com tp nil usa o
// provider global do OpenTelemetry.
func NewCategoryService(logger *zap.SugaredLogger, tp trace.TracerProvider) *CategoryService {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &CategoryService{
		logger: logger,
		tracer: tp.Tracer("categorias"),
	}
}

// Lookup resolve um único código. Códigos desconhecidos recebem o rótulo de "BAD".
func (cs *CategoryService) Lookup(ctx context.Context, code string) models.CategoriaResponse {
	_, span := cs.tracer.Start(ctx, "categorias.lookup")
	defer span.End()

	resp := cs.resolve(code)
	span.SetAttributes(
		attribute.String("categoria.codigo", code),
		attribute.Bool("categoria.fallback", resp.Fallback),
	)
	return resp
}

// LookupBatch resolve vários códigos mantendo a ordem de entrada
func (cs *CategoryService) LookupBatch(ctx context.Context, codigos []string) models.LookupBatchResponse {
	_, span := cs.tracer.Start(ctx, "categorias.lookup_batch")
	defer span.End()

	resp := models.LookupBatchResponse{
		Resultados: make([]models.CategoriaResponse, 0, len(codigos)),
		Total:      len(codigos),
	}
	for _, code := range codigos {
		r := cs.resolve(code)
		if r.Fallback {
			resp.NaoEncontrados++
		}
		resp.Resultados = append(resp.Resultados, r)
	}

	span.SetAttributes(
		attribute.Int("categoria.total", resp.Total),
		attribute.Int("categoria.nao_encontrados", resp.NaoEncontrados),
	)
	return resp
}

// List retorna as categorias filtradas e ordenadas
func (cs *CategoryService) List(ctx context.Context, req *models.CategoryListRequest) (*models.CategoriasResponse, error) {
	_, span := cs.tracer.Start(ctx, "categorias.list")
	defer span.End()

	// Validações e defaults
	if req.SortBy == "" {
		req.SortBy = models.SortByCodigo
	}
	if req.Order == "" {
		req.Order = models.OrderAsc
	}
	var err error
	if req.SortBy != models.SortByCodigo && req.SortBy != models.SortByRotulo {
		err = models.ErrInvalidSortBy
	} else if req.Order != models.OrderAsc && req.Order != models.OrderDesc {
		err = models.ErrInvalidOrder
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	categorias := []models.CategoriaResponse{}
	for _, e := range categoria.Entries() {
		if !utils.ContemTermo(string(e.Codigo), req.Query) && !utils.ContemTermo(e.Rotulo, req.Query) {
			continue
		}
		categorias = append(categorias, toResponse(e.Codigo, e.Rotulo, false))
	}

	sortCategorias(categorias, req.SortBy, req.Order)

	span.SetAttributes(
		attribute.String("categoria.query", req.Query),
		attribute.Int("categoria.total", len(categorias)),
	)

	return &models.CategoriasResponse{
		Categorias: categorias,
		Total:      len(categorias),
	}, nil
}

func (cs *CategoryService) resolve(code string) models.CategoriaResponse {
	e := categoria.Resolve(code)
	if !e.Encontrado {
		cs.logger.Debugw("Código de categoria não encontrado", logging.FieldCodigo, code)
	}
	return toResponse(e.Codigo, e.Rotulo, !e.Encontrado)
}

func toResponse(codigo categoria.Codigo, rotulo string, fallback bool) models.CategoriaResponse {
	return models.CategoriaResponse{
		Codigo:   string(codigo),
		Rotulo:   rotulo,
		Fallback: fallback,
	}
}

// sortCategorias ordena por código ou por rótulo sem acentos; empates no
// rótulo são desfeitos pelo código
func sortCategorias(categorias []models.CategoriaResponse, sortBy, order string) {
	sort.SliceStable(categorias, func(i, j int) bool {
		a, b := categorias[i], categorias[j]
		if order == models.OrderDesc {
			a, b = b, a
		}

		if sortBy == models.SortByRotulo {
			na, nb := utils.NormalizarRotulo(a.Rotulo), utils.NormalizarRotulo(b.Rotulo)
			if na != nb {
				return na < nb
			}
		}
		return a.Codigo < b.Codigo
	})
}
