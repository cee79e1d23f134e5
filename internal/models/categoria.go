package models

// CategoriaResponse representa um código resolvido para o seu rótulo
type CategoriaResponse struct {
	Codigo   string `json:"codigo" example:"3A"`
	Rotulo   string `json:"rotulo" example:"Compras"`
	Fallback bool   `json:"fallback"` // true quando o código não existe e o rótulo é o de "BAD"
}

// CategoryListRequest representa os parâmetros de listagem de categorias
type CategoryListRequest struct {
	Query  string `form:"q"`       // Filtra por código ou rótulo, sem diferenciar acentos
	SortBy string `form:"sort_by"` // "codigo" ou "rotulo"
	Order  string `form:"order"`   // "asc" ou "desc"
}

// CategoriasResponse representa a listagem de categorias
type CategoriasResponse struct {
	Categorias []CategoriaResponse `json:"categorias"`
	Total      int                 `json:"total"`
}

// LookupBatchRequest representa uma resolução de vários códigos de uma vez
type LookupBatchRequest struct {
	Codigos []string `json:"codigos" validate:"required,min=1,max=500,dive,max=16" example:"01,3A,ZZ"`
}

// LookupBatchResponse mantém a ordem dos códigos recebidos
type LookupBatchResponse struct {
	Resultados     []CategoriaResponse `json:"resultados"`
	Total          int                 `json:"total"`
	NaoEncontrados int                 `json:"nao_encontrados"`
}

// Valores aceitos para ordenação
const (
	SortByCodigo = "codigo"
	SortByRotulo = "rotulo"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)
