// Package categoria mapeia os códigos de categoria produzidos pelo
// classificador do DNSfilter para os rótulos exibidos no relatório.
//
// A tabela é um literal imutável inicializado antes de main e pode ser lida
// por qualquer número de goroutines sem sincronização.
package categoria

import "sort"

// Codigo identifica uma categoria de conteúdo ("01", "3A", ...).
type Codigo string

// CodigoNaoEncontrado é o sentinela cujo rótulo é devolvido para qualquer
// código ausente da tabela.
const CodigoNaoEncontrado Codigo = "BAD"

// IsFallback indica se o código é o sentinela de fallback.
func (c Codigo) IsFallback() bool {
	return c == CodigoNaoEncontrado
}

// Entrada representa o resultado da resolução de um código
type Entrada struct {
	Codigo     Codigo
	Rotulo     string
	Encontrado bool
}

var rotulos = map[Codigo]string{
	"01": "Adulto / Conteúdo Maduro",
	"03": "Pornografia",
	"04": "Educação Sexual",
	"05": "Roupas Íntimas",
	"06": "Nudez",
	"07": "Extremo",
	"09": "Ilegal / Questionável",
	"0B": "Jogo de Azar",
	"0E": "Violencia / Ódio / Racismo",
	"0F": "Armas",
	"10": "Aborto",
	"11": "Hacking",
	"12": "Fraude / Golpe",
	"14": "Artes / Entretenimento",
	"15": "Negócios / Economia",
	"16": "Espiritualidade alternativa / Oculto",
	"17": "Álcool",
	"18": "Tabaco",
	"19": "Drogas Ilegais",
	"1B": "Educação",
	"1D": "Cultural / Organizações de caridade",
	"1F": "Serviços Financeiros",
	"20": "Corretagem / Comércio",
	"21": "Jogos",
	"22": "Governo / Legal",
	"23": "Militar",
	"24": "Politica / Grupos Ativistas",
	"25": "Saúde",
	"26": "Computadores / Internet",
	"28": "Portais de Busca / Portais",
	"2B": "Spyware / Malware",
	"2C": "Efeitos Spyware",
	"2D": "Procura de emprego / Carreira",
	"2E": "Notícias / Mídia",
	"2F": "Relacionamento / Encontros",
	"31": "Referência",
	"32": "Pesquisa Multimídia",
	"33": "Chat / Mensagens instantâneas",
	"34": "Email",
	"35": "Grupos de notícias / Forums",
	"36": "Religião",
	"37": "Redes Sociais",
	"38": "Armazenamento on-line",
	"39": "Ferramentas de acesso remoto",
	"3A": "Compras",
	"3B": "Leilões",
	"3C": "Imóveis",
	"3D": "Sociedade / Vida Diária",
	"3F": "Páginas pessoais / Blogs",
	"40": "Restaurantes / Jantar / Comida",
	"41": "Esportes / Recreação",
	"42": "Viajar",
	"43": "Veículos",
	"44": "Humor / Piadas",
	"47": "Software Downloads",
	"48": "Pagar para navegar",
	"53": "Peer-to-Peer (P2P)",
	"54": "Streaming de mídia / MP3",
	"55": "Aplicações Web",
	"56": "Evitar Proxy",
	"57": "Para Crianças",
	"58": "Anúncios na Web",
	"59": "Web Hosting",
	"5A": "Categoria desconhecida",
	"5C": "Suspeito",
	"5D": "Sexualidade alternativa / Estilo de Vida",
	"60": "Não-visível",
	"61": "Servidores de Conteúdo",
	"62": "Espaços reservados",

	CodigoNaoEncontrado: "Não Encontrado",
}

// Lookup retorna o rótulo do código ou, se o código não existir, o rótulo
// do sentinela "BAD". A comparação é exata (sensível a maiúsculas).
func Lookup(code string) string {
	if rotulo, ok := rotulos[Codigo(code)]; ok {
		return rotulo
	}
	return rotulos[CodigoNaoEncontrado]
}

// Resolve funciona como Lookup mas informa também se houve correspondência
func Resolve(code string) Entrada {
	rotulo, ok := rotulos[Codigo(code)]
	if !ok {
		rotulo = rotulos[CodigoNaoEncontrado]
	}
	return Entrada{
		Codigo:     Codigo(code),
		Rotulo:     rotulo,
		Encontrado: ok,
	}
}

// Exists indica se o código está na tabela
func Exists(code string) bool {
	_, ok := rotulos[Codigo(code)]
	return ok
}

// Entries retorna todas as entradas ordenadas por código. Cada chamada
// devolve uma cópia nova.
func Entries() []Entrada {
	entradas := make([]Entrada, 0, len(rotulos))
	for codigo, rotulo := range rotulos {
		entradas = append(entradas, Entrada{Codigo: codigo, Rotulo: rotulo, Encontrado: true})
	}
	sort.Slice(entradas, func(i, j int) bool {
		return entradas[i].Codigo < entradas[j].Codigo
	})
	return entradas
}

// Len retorna o número de entradas, incluindo o sentinela
func Len() int {
	return len(rotulos)
}
