package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizarRotulo remove acentos e converte para minúsculas
// Exemplo: "Saúde" -> "saude", "Álcool" -> "alcool"
func NormalizarRotulo(rotulo string) string {
	if rotulo == "" {
		return rotulo
	}

	// Remove acentos e diacríticos
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, _ := transform.String(t, rotulo)

	return strings.ToLower(normalized)
}

// ContemTermo verifica se o rótulo contém o termo, ignorando acentos,
// maiúsculas e espaços nas bordas do termo. Termo vazio sempre corresponde.
func ContemTermo(rotulo, termo string) bool {
	termo = strings.TrimSpace(termo)
	if termo == "" {
		return true
	}
	return strings.Contains(NormalizarRotulo(rotulo), NormalizarRotulo(termo))
}
