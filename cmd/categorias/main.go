package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dnsfilter/dnsfilter-report/internal/categoria"
	"github.com/dnsfilter/dnsfilter-report/internal/utils"
)

const usage = `Uso: categorias [-list] [-format text|markdown|html] [código...]

Imprime o rótulo de cada código informado. Códigos desconhecidos recebem o
rótulo de BAD. Com -list imprime a tabela completa e não aceita códigos.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("categorias", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage); fs.PrintDefaults() }

	list := fs.Bool("list", false, "Listar todas as categorias")
	format := fs.String("format", "text", "Formato de saída: text, markdown, html")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	var entradas []categoria.Entrada
	switch {
	case *list && fs.NArg() > 0:
		fmt.Fprintln(stderr, "-list não aceita códigos")
		fs.Usage()
		return 2
	case *list:
		entradas = categoria.Entries()
	case fs.NArg() > 0:
		for _, code := range fs.Args() {
			entradas = append(entradas, categoria.Resolve(code))
		}
	default:
		fs.Usage()
		return 2
	}

	switch strings.ToLower(*format) {
	case "text":
		for _, e := range entradas {
			fmt.Fprintf(stdout, "%s\t%s\n", e.Codigo, e.Rotulo)
		}
	case "markdown", "md":
		fmt.Fprint(stdout, utils.TabelaMarkdown(entradas))
	case "html":
		md := "# Categorias\n\n" + utils.TabelaMarkdown(entradas)
		_, _ = stdout.Write(utils.MarkdownParaHTML(md))
	default:
		fmt.Fprintf(stderr, "formato inválido: %q\n", *format)
		return 2
	}

	return 0
}
