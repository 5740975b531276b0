package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wall-lab/catalogo/internal/modules/serializer"
	"github.com/wall-lab/catalogo/internal/modules/service"
)

type SearchHandler struct {
	svc service.ComponenteService
}

func NewSearchHandler(s service.ComponenteService) *SearchHandler {
	return &SearchHandler{svc: s}
}

// Search godoc
//
//	@Summary		Search components
//	@Description	Case-insensitive substring search over component name and description; queries shorter than 2 characters return an empty list
//	@Tags			search
//	@Produce		json
//	@Param			q	query		string	false	"Search query"
//	@Success		200	{object}	serializer.SearchResponse
//	@Failure		500	{object}	serializer.SearchResponse
//	@Router			/api/search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	items, err := h.svc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		// Degrade to an empty list with an error indicator instead of failing
		// the request outright.
		c.JSON(http.StatusInternalServerError, serializer.SearchResponse{
			Componentes: []serializer.SearchComponenteJSON{},
			Error:       err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, serializer.SearchResponse{
		Componentes: serializer.BuildSearchComponentes(items),
	})
}
