package utils

import (
	"strings"
	"testing"

	"github.com/dnsfilter/dnsfilter-report/internal/categoria"
)

func TestTabelaMarkdown(t *testing.T) {
	entradas := []categoria.Entrada{
		{Codigo: "3A", Rotulo: "Compras", Encontrado: true},
		{Codigo: "BAD", Rotulo: "Não Encontrado", Encontrado: true},
	}

	expected := "| Código | Categoria |\n" +
		"|--------|-----------|\n" +
		"| 3A | Compras |\n" +
		"| BAD | Não Encontrado |\n"

	result := TabelaMarkdown(entradas)
	if result != expected {
		t.Errorf("TabelaMarkdown() =\n%s\nexpected\n%s", result, expected)
	}
}

func TestTabelaMarkdownEscapaPipe(t *testing.T) {
	result := TabelaMarkdown([]categoria.Entrada{{Codigo: "X", Rotulo: "a | b"}})
	if !strings.Contains(result, `| a \| b |`) {
		t.Errorf("pipe não foi escapado: %q", result)
	}
}

func TestTabelaMarkdownVazia(t *testing.T) {
	result := TabelaMarkdown(nil)
	if strings.Count(result, "\n") != 2 {
		t.Errorf("tabela vazia deveria ter apenas cabeçalho, got %q", result)
	}
}

func TestMarkdownParaHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
	}{
		{
			name:     "tabela de categorias",
			input:    TabelaMarkdown(categoria.Entries()),
			contains: []string{"<table>", "<th>Código</th>", "<td>3A</td>", "<td>Compras</td>", "<td>Não Encontrado</td>"},
		},
		{
			name:     "cabeçalho",
			input:    "# Categorias",
			contains: []string{"<h1", "Categorias</h1>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := string(MarkdownParaHTML(tt.input))
			for _, want := range tt.contains {
				if !strings.Contains(result, want) {
					t.Errorf("MarkdownParaHTML() não contém %q:\n%s", want, result)
				}
			}
		})
	}
}

func TestMarkdownParaHTMLVazio(t *testing.T) {
	if result := MarkdownParaHTML(""); result != nil {
		t.Errorf("MarkdownParaHTML(\"\") = %q; expected nil", result)
	}
}
