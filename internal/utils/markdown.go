package utils

import (
	"strings"

	"github.com/dnsfilter/dnsfilter-report/internal/categoria"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// TabelaMarkdown gera uma tabela Markdown com código e rótulo de cada entrada
func TabelaMarkdown(entradas []categoria.Entrada) string {
	var sb strings.Builder
	sb.WriteString("| Código | Categoria |\n")
	sb.WriteString("|--------|-----------|\n")

	for _, e := range entradas {
		sb.WriteString("| ")
		sb.WriteString(escapeCelula(string(e.Codigo)))
		sb.WriteString(" | ")
		sb.WriteString(escapeCelula(e.Rotulo))
		sb.WriteString(" |\n")
	}

	return sb.String()
}

// MarkdownParaHTML converte Markdown em HTML com suporte a tabelas
func MarkdownParaHTML(md string) []byte {
	if md == "" {
		return nil
	}

	// O parser guarda estado, então é criado a cada chamada
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})

	return markdown.ToHTML([]byte(md), p, renderer)
}

func escapeCelula(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
