package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wall-lab/catalogo/internal/modules/form"
	"github.com/wall-lab/catalogo/internal/modules/model"
	"github.com/wall-lab/catalogo/internal/modules/service"
	"github.com/wall-lab/catalogo/internal/pkg/flash"
)

// ProjetoWebHandler serves the server-rendered project pages. Mutations follow
// post/redirect/get: success and storage failures flash and redirect,
// validation failures re-render the form with the field errors.
type ProjetoWebHandler struct {
	projetos    service.ProjetoService
	componentes service.ComponenteService
}

func NewProjetoWebHandler(p service.ProjetoService, c service.ComponenteService) *ProjetoWebHandler {
	return &ProjetoWebHandler{projetos: p, componentes: c}
}

func webParamID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}

func (h *ProjetoWebHandler) List(c *gin.Context) {
	// Errors on a direct render go straight into the page being rendered; a
	// cookie flash would only show up on the next navigation.
	flashes := flash.Pop(c)
	projetos, err := h.projetos.List(c.Request.Context())
	if err != nil {
		flashes = append(flashes, flash.Message{Kind: "error", Text: "Erro ao buscar projetos: " + err.Error()})
		projetos = nil
	}
	c.HTML(http.StatusOK, "lista_projetos.html", gin.H{
		"Title":    "Projetos",
		"Projetos": projetos,
		"Flashes":  flashes,
	})
}

func (h *ProjetoWebHandler) NewForm(c *gin.Context) {
	h.renderForm(c, "Novo Projeto", form.ProjetoForm{}, nil, nil)
}

func (h *ProjetoWebHandler) Create(c *gin.Context) {
	var f form.ProjetoForm
	if err := c.ShouldBind(&f); err != nil {
		h.renderForm(c, "Novo Projeto", f, err, nil)
		return
	}
	if err := f.Validate(); err != nil {
		h.renderForm(c, "Novo Projeto", f, err, nil)
		return
	}

	_, err := h.projetos.Create(c.Request.Context(), service.CreateProjetoInput{
		Nome:          f.Nome,
		Descricao:     f.Descricao,
		URL:           f.URL,
		ComponenteIDs: f.Componentes,
	})
	if err != nil {
		flash.Set(c, "error", "Erro ao criar projeto: "+err.Error())
		c.Redirect(http.StatusFound, "/projeto/novo")
		return
	}

	flash.Set(c, "success", "Projeto criado com sucesso!")
	c.Redirect(http.StatusFound, "/projetos")
}

func (h *ProjetoWebHandler) EditForm(c *gin.Context) {
	id, err := webParamID(c)
	if err != nil {
		h.notFound(c)
		return
	}
	p, err := h.projetos.Get(c.Request.Context(), id)
	if err != nil {
		h.notFound(c)
		return
	}

	f := form.ProjetoForm{Nome: p.Nome, Descricao: p.Descricao, URL: p.URL}
	for _, comp := range p.Componentes {
		f.Componentes = append(f.Componentes, comp.ID)
	}
	h.renderForm(c, "Editar Projeto", f, nil, p)
}

func (h *ProjetoWebHandler) Update(c *gin.Context) {
	id, err := webParamID(c)
	if err != nil {
		h.notFound(c)
		return
	}
	p, err := h.projetos.Get(c.Request.Context(), id)
	if err != nil {
		h.notFound(c)
		return
	}

	var f form.ProjetoForm
	if bindErr := c.ShouldBind(&f); bindErr != nil {
		h.renderForm(c, "Editar Projeto", f, bindErr, p)
		return
	}
	if valErr := f.Validate(); valErr != nil {
		h.renderForm(c, "Editar Projeto", f, valErr, p)
		return
	}

	// Full form re-submission: every field is replaced, and the selection
	// (possibly empty) replaces the whole membership set.
	selecao := f.Componentes
	if selecao == nil {
		selecao = []uint{}
	}
	err = h.projetos.Update(c.Request.Context(), id, service.UpdateProjetoInput{
		Nome:          &f.Nome,
		Descricao:     &f.Descricao,
		URL:           &f.URL,
		ComponenteIDs: &selecao,
	})
	if err != nil {
		flash.Set(c, "error", "Erro ao atualizar projeto: "+err.Error())
		c.Redirect(http.StatusFound, "/projeto/editar/"+strconv.FormatUint(uint64(id), 10))
		return
	}

	flash.Set(c, "success", "Projeto atualizado com sucesso!")
	c.Redirect(http.StatusFound, "/projetos")
}

func (h *ProjetoWebHandler) Delete(c *gin.Context) {
	id, err := webParamID(c)
	if err != nil {
		h.notFound(c)
		return
	}

	switch err := h.projetos.Delete(c.Request.Context(), id); {
	case err == nil:
		flash.Set(c, "success", "Projeto excluído com sucesso!")
	case errors.Is(err, service.ErrNotFound):
		flash.Set(c, "error", "Projeto não encontrado.")
	default:
		flash.Set(c, "error", "Erro ao excluir projeto: "+err.Error())
	}
	c.Redirect(http.StatusFound, "/projetos")
}

func (h *ProjetoWebHandler) Detail(c *gin.Context) {
	id, err := webParamID(c)
	if err != nil {
		h.notFound(c)
		return
	}
	p, err := h.projetos.Get(c.Request.Context(), id)
	if err != nil {
		h.notFound(c)
		return
	}
	c.HTML(http.StatusOK, "detalhes_projeto.html", gin.H{
		"Title":   p.Nome,
		"Projeto": p,
		"Flashes": flash.Pop(c),
	})
}

func (h *ProjetoWebHandler) notFound(c *gin.Context) {
	flash.Set(c, "error", "Projeto não encontrado.")
	c.Redirect(http.StatusFound, "/projetos")
}

func (h *ProjetoWebHandler) renderForm(c *gin.Context, title string, f form.ProjetoForm, valErr error, p *model.Projeto) {
	flashes := flash.Pop(c)
	disponiveis, err := h.componentes.List(c.Request.Context())
	if err != nil {
		flashes = append(flashes, flash.Message{Kind: "error", Text: "Erro ao buscar componentes: " + err.Error()})
	}

	selecionados := make(map[uint]bool, len(f.Componentes))
	for _, id := range f.Componentes {
		selecionados[id] = true
	}

	status := http.StatusOK
	if valErr != nil {
		status = http.StatusBadRequest
	}
	c.HTML(status, "projeto_form.html", gin.H{
		"Title":        title,
		"Form":         f,
		"Erros":        valErr,
		"Projeto":      p,
		"Componentes":  disponiveis,
		"Selecionados": selecionados,
		"Flashes":      flashes,
	})
}
