package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wall-lab/catalogo/internal/modules/serializer"
	"github.com/wall-lab/catalogo/internal/modules/service"
)

type ProjetoHandler struct {
	svc service.ProjetoService
}

func NewProjetoHandler(s service.ProjetoService) *ProjetoHandler {
	return &ProjetoHandler{svc: s}
}

type CreateProjetoReq struct {
	Nome          string                    `json:"nome"`
	Descricao     string                    `json:"descricao"`
	TinkercadLink string                    `json:"tinkercad_link"`
	Componentes   []service.ComponenteLinha `json:"componentes"`
}

type UpdateProjetoReq struct {
	Nome          *string                    `json:"nome"`
	Descricao     *string                    `json:"descricao"`
	TinkercadLink *string                    `json:"tinkercad_link"`
	Componentes   *[]service.ComponenteLinha `json:"componentes"`
}

// paramID parses the numeric id segment. A non-numeric id behaves like an
// unknown one.
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, serializer.Err("Projeto não encontrado", nil))
		return 0, false
	}
	return uint(id), true
}

// ListProjetos godoc
//
//	@Summary		List projects
//	@Description	List every project with its components, newest first
//	@Tags			projeto
//	@Produce		json
//	@Success		200	{array}	serializer.ProjetoJSON
//	@Router			/api/v1/projetos [get]
func (h *ProjetoHandler) ListProjetos(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.Err("Erro ao buscar projetos", err))
		return
	}
	c.JSON(http.StatusOK, serializer.BuildProjetos(items))
}

// CreateProjeto godoc
//
//	@Summary		Create project
//	@Description	Create a project, optionally with inline components that are created and linked in the same transaction
//	@Tags			projeto
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		handler.CreateProjetoReq	true	"CreateProjeto payload"
//	@Success		201		{object}	serializer.CreatedProjetoJSON
//	@Failure		400		{object}	serializer.ErrorResponse
//	@Router			/api/v1/projetos [post]
func (h *ProjetoHandler) CreateProjeto(c *gin.Context) {
	var req CreateProjetoReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Nome == "" {
		c.JSON(http.StatusBadRequest, serializer.Err("O nome do projeto é obrigatório", nil))
		return
	}

	p, err := h.svc.Create(c.Request.Context(), service.CreateProjetoInput{
		Nome:        req.Nome,
		Descricao:   req.Descricao,
		URL:         req.TinkercadLink,
		Componentes: req.Componentes,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, serializer.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.Err("Erro ao criar projeto", err))
		return
	}

	c.JSON(http.StatusCreated, serializer.CreatedProjetoJSON{
		ID:            p.ID,
		Nome:          p.Nome,
		Descricao:     p.Descricao,
		TinkercadLink: p.URL,
		Message:       "Projeto criado com sucesso!",
	})
}

// GetProjeto godoc
//
//	@Summary		Get project
//	@Description	Get one project with its components
//	@Tags			projeto
//	@Produce		json
//	@Param			id	path		integer	true	"Projeto ID"
//	@Success		200	{object}	serializer.ProjetoJSON
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/api/v1/projetos/{id} [get]
func (h *ProjetoHandler) GetProjeto(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, serializer.Err("Projeto não encontrado", nil))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.Err("Erro ao buscar projeto", err))
		return
	}
	c.JSON(http.StatusOK, serializer.BuildProjeto(p))
}

// UpdateProjeto godoc
//
//	@Summary		Update project
//	@Description	Partially update a project; a componentes array replaces the full membership set
//	@Tags			projeto
//	@Accept			json
//	@Produce		json
//	@Param			id		path		integer						true	"Projeto ID"
//	@Param			payload	body		handler.UpdateProjetoReq	true	"UpdateProjeto payload"
//	@Success		200		{object}	serializer.MessageResponse
//	@Failure		400		{object}	serializer.ErrorResponse
//	@Failure		404		{object}	serializer.ErrorResponse
//	@Router			/api/v1/projetos/{id} [put]
func (h *ProjetoHandler) UpdateProjeto(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateProjetoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err("Dados não fornecidos para atualização", nil))
		return
	}
	if req.Nome == nil && req.Descricao == nil && req.TinkercadLink == nil && req.Componentes == nil {
		c.JSON(http.StatusBadRequest, serializer.Err("Dados não fornecidos para atualização", nil))
		return
	}

	err := h.svc.Update(c.Request.Context(), id, service.UpdateProjetoInput{
		Nome:        req.Nome,
		Descricao:   req.Descricao,
		URL:         req.TinkercadLink,
		Componentes: req.Componentes,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, serializer.Err("Projeto não encontrado", nil))
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, serializer.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, serializer.Err("Erro ao atualizar projeto", err))
		}
		return
	}
	c.JSON(http.StatusOK, serializer.MessageResponse{Message: "Projeto atualizado com sucesso!"})
}

// DeleteProjeto godoc
//
//	@Summary		Delete project
//	@Description	Delete a project; association rows are removed, components persist
//	@Tags			projeto
//	@Produce		json
//	@Param			id	path		integer	true	"Projeto ID"
//	@Success		200	{object}	serializer.MessageResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/api/v1/projetos/{id} [delete]
func (h *ProjetoHandler) DeleteProjeto(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, serializer.Err("Projeto não encontrado", nil))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.Err("Erro ao deletar projeto", err))
		return
	}
	c.JSON(http.StatusOK, serializer.MessageResponse{Message: "Projeto deletado com sucesso!"})
}
