package serializer

import (
	"time"

	"github.com/wall-lab/catalogo/internal/modules/model"
)

type ComponenteJSON struct {
	ID         uint   `json:"id"`
	Nome       string `json:"nome"`
	Descricao  string `json:"descricao"`
	URL        string `json:"url"`
	Quantidade int    `json:"quantidade"`
}

type ProjetoJSON struct {
	ID            uint             `json:"id"`
	Nome          string           `json:"nome"`
	Descricao     string           `json:"descricao"`
	TinkercadLink string           `json:"tinkercad_link"`
	DataCriacao   *string          `json:"data_criacao"`
	Componentes   []ComponenteJSON `json:"componentes"`
}

// CreatedProjetoJSON is the 201 payload of the create endpoint.
type CreatedProjetoJSON struct {
	ID            uint   `json:"id"`
	Nome          string `json:"nome"`
	Descricao     string `json:"descricao"`
	TinkercadLink string `json:"tinkercad_link"`
	Message       string `json:"message"`
}

// ProjetoResumoJSON summarizes a related project inside search results.
type ProjetoResumoJSON struct {
	ID               uint   `json:"id"`
	Nome             string `json:"nome"`
	Descricao        string `json:"descricao"`
	URL              string `json:"url"`
	TotalComponentes int    `json:"total_componentes"`
}

type SearchComponenteJSON struct {
	ComponenteJSON
	Projetos []ProjetoResumoJSON `json:"projetos"`
}

// SearchResponse always carries a componentes list, even on failure.
type SearchResponse struct {
	Componentes []SearchComponenteJSON `json:"componentes"`
	Error       string                 `json:"error,omitempty"`
}

func BuildComponente(c *model.Componente) ComponenteJSON {
	return ComponenteJSON{
		ID:         c.ID,
		Nome:       c.Nome,
		Descricao:  c.Descricao,
		URL:        c.URL,
		Quantidade: c.Quantidade,
	}
}

func BuildProjeto(p *model.Projeto) ProjetoJSON {
	out := ProjetoJSON{
		ID:            p.ID,
		Nome:          p.Nome,
		Descricao:     p.Descricao,
		TinkercadLink: p.URL,
		Componentes:   make([]ComponenteJSON, 0, len(p.Componentes)),
	}
	if !p.DataCriacao.IsZero() {
		iso := p.DataCriacao.Format(time.RFC3339)
		out.DataCriacao = &iso
	}
	for i := range p.Componentes {
		out.Componentes = append(out.Componentes, BuildComponente(&p.Componentes[i]))
	}
	return out
}

func BuildProjetos(items []model.Projeto) []ProjetoJSON {
	out := make([]ProjetoJSON, 0, len(items))
	for i := range items {
		out = append(out, BuildProjeto(&items[i]))
	}
	return out
}

func BuildSearchComponentes(items []model.Componente) []SearchComponenteJSON {
	out := make([]SearchComponenteJSON, 0, len(items))
	for i := range items {
		c := &items[i]
		hit := SearchComponenteJSON{
			ComponenteJSON: BuildComponente(c),
			Projetos:       make([]ProjetoResumoJSON, 0, len(c.Projetos)),
		}
		for j := range c.Projetos {
			p := &c.Projetos[j]
			hit.Projetos = append(hit.Projetos, ProjetoResumoJSON{
				ID:               p.ID,
				Nome:             p.Nome,
				Descricao:        p.Descricao,
				URL:              p.URL,
				TotalComponentes: len(p.Componentes),
			})
		}
		out = append(out, hit)
	}
	return out
}
