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

type ComponenteWebHandler struct {
	componentes service.ComponenteService
}

func NewComponenteWebHandler(c service.ComponenteService) *ComponenteWebHandler {
	return &ComponenteWebHandler{componentes: c}
}

func (h *ComponenteWebHandler) List(c *gin.Context) {
	// Direct-render errors are appended to the current page's flashes; a
	// cookie set here would only surface on the next navigation.
	flashes := flash.Pop(c)
	componentes, err := h.componentes.List(c.Request.Context())
	if err != nil {
		flashes = append(flashes, flash.Message{Kind: "error", Text: "Erro ao buscar componentes: " + err.Error()})
		componentes = nil
	}
	c.HTML(http.StatusOK, "lista_componentes.html", gin.H{
		"Title":       "Componentes",
		"Componentes": componentes,
		"Flashes":     flashes,
	})
}

func (h *ComponenteWebHandler) NewForm(c *gin.Context) {
	h.renderForm(c, "Novo Componente", form.ComponenteForm{}, nil, nil)
}

func (h *ComponenteWebHandler) Create(c *gin.Context) {
	var f form.ComponenteForm
	if err := c.ShouldBind(&f); err != nil {
		h.renderForm(c, "Novo Componente", f, err, nil)
		return
	}
	if err := f.Validate(); err != nil {
		h.renderForm(c, "Novo Componente", f, err, nil)
		return
	}

	_, err := h.componentes.Create(c.Request.Context(), service.ComponenteInput{
		Nome:       f.Nome,
		Descricao:  f.Descricao,
		URL:        f.URL,
		Quantidade: f.Quantidade,
	})
	if err != nil {
		flash.Set(c, "error", "Erro ao criar componente: "+err.Error())
		c.Redirect(http.StatusFound, "/componente/novo")
		return
	}

	flash.Set(c, "success", "Componente criado com sucesso!")
	c.Redirect(http.StatusFound, "/componentes")
}

func (h *ComponenteWebHandler) EditForm(c *gin.Context) {
	id, err := webParamID(c)
	if err != nil {
		h.notFound(c)
		return
	}
	comp, err := h.componentes.Get(c.Request.Context(), id)
	if err != nil {
		h.notFound(c)
		return
	}

	f := form.ComponenteForm{
		Nome:       comp.Nome,
		Descricao:  comp.Descricao,
		URL:        comp.URL,
		Quantidade: comp.Quantidade,
	}
	h.renderForm(c, "Editar Componente", f, nil, comp)
}

func (h *ComponenteWebHandler) Update(c *gin.Context) {
	id, err := webParamID(c)
	if err != nil {
		h.notFound(c)
		return
	}
	comp, err := h.componentes.Get(c.Request.Context(), id)
	if err != nil {
		h.notFound(c)
		return
	}

	var f form.ComponenteForm
	if bindErr := c.ShouldBind(&f); bindErr != nil {
		h.renderForm(c, "Editar Componente", f, bindErr, comp)
		return
	}
	if valErr := f.Validate(); valErr != nil {
		h.renderForm(c, "Editar Componente", f, valErr, comp)
		return
	}

	err = h.componentes.Update(c.Request.Context(), id, service.ComponenteInput{
		Nome:       f.Nome,
		Descricao:  f.Descricao,
		URL:        f.URL,
		Quantidade: f.Quantidade,
	})
	if err != nil {
		flash.Set(c, "error", "Erro ao atualizar componente: "+err.Error())
		c.Redirect(http.StatusFound, "/componente/editar/"+strconv.FormatUint(uint64(id), 10))
		return
	}

	flash.Set(c, "success", "Componente atualizado com sucesso!")
	c.Redirect(http.StatusFound, "/componentes")
}

func (h *ComponenteWebHandler) Delete(c *gin.Context) {
	id, err := webParamID(c)
	if err != nil {
		h.notFound(c)
		return
	}

	switch err := h.componentes.Delete(c.Request.Context(), id); {
	case err == nil:
		flash.Set(c, "success", "Componente excluído com sucesso!")
	case errors.Is(err, service.ErrNotFound):
		flash.Set(c, "error", "Componente não encontrado.")
	default:
		flash.Set(c, "error", "Erro ao excluir componente: "+err.Error())
	}
	c.Redirect(http.StatusFound, "/componentes")
}

func (h *ComponenteWebHandler) Detail(c *gin.Context) {
	id, err := webParamID(c)
	if err != nil {
		h.notFound(c)
		return
	}
	comp, err := h.componentes.Get(c.Request.Context(), id)
	if err != nil {
		h.notFound(c)
		return
	}
	c.HTML(http.StatusOK, "detalhes_componente.html", gin.H{
		"Title":      comp.Nome,
		"Componente": comp,
		"Flashes":    flash.Pop(c),
	})
}

func (h *ComponenteWebHandler) notFound(c *gin.Context) {
	flash.Set(c, "error", "Componente não encontrado.")
	c.Redirect(http.StatusFound, "/componentes")
}

func (h *ComponenteWebHandler) renderForm(c *gin.Context, title string, f form.ComponenteForm, valErr error, comp *model.Componente) {
	status := http.StatusOK
	if valErr != nil {
		status = http.StatusBadRequest
	}
	c.HTML(status, "componente_form.html", gin.H{
		"Title":      title,
		"Form":       f,
		"Erros":      valErr,
		"Componente": comp,
		"Flashes":    flash.Pop(c),
	})
}
