package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wall-lab/catalogo/internal/modules/service"
	"github.com/wall-lab/catalogo/internal/pkg/flash"
)

const recentComponentes = 5

type DashboardHandler struct {
	projetos    service.ProjetoService
	componentes service.ComponenteService
}

func NewDashboardHandler(p service.ProjetoService, c service.ComponenteService) *DashboardHandler {
	return &DashboardHandler{projetos: p, componentes: c}
}

// Index renders the dashboard: entity totals plus the latest additions.
// Partial failures degrade to zero values with the errors shown on the page
// itself, appended to any flash left by a previous redirect.
func (h *DashboardHandler) Index(c *gin.Context) {
	ctx := c.Request.Context()
	flashes := flash.Pop(c)

	totalProjetos, err := h.projetos.Count(ctx)
	if err != nil {
		flashes = append(flashes, flash.Message{Kind: "error", Text: "Erro ao carregar estatísticas: " + err.Error()})
	}
	totalComponentes, err := h.componentes.Count(ctx)
	if err != nil {
		flashes = append(flashes, flash.Message{Kind: "error", Text: "Erro ao carregar estatísticas: " + err.Error()})
	}
	ultimos, err := h.componentes.Recent(ctx, recentComponentes)
	if err != nil {
		flashes = append(flashes, flash.Message{Kind: "error", Text: "Erro ao carregar componentes recentes: " + err.Error()})
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title":              "Home",
		"TotalProjetos":      totalProjetos,
		"TotalComponentes":   totalComponentes,
		"UltimosComponentes": ultimos,
		"Flashes":            flashes,
	})
}
