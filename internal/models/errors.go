package models

import "errors"

var (
	ErrInvalidSortBy = errors.New("parâmetro sort_by inválido (use: codigo, rotulo)")
	ErrInvalidOrder  = errors.New("parâmetro order inválido (use: asc, desc)")
)
