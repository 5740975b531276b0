package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "github.com/wall-lab/catalogo/docs"
	"github.com/wall-lab/catalogo/internal/config"
	"github.com/wall-lab/catalogo/internal/middleware"
	"github.com/wall-lab/catalogo/internal/modules/handler"
	"github.com/wall-lab/catalogo/internal/modules/serializer"
)

type RouterDeps struct {
	Config               *config.Config
	Log                  *zap.Logger
	ProjetoHandler       *handler.ProjetoHandler
	SearchHandler        *handler.SearchHandler
	DashboardHandler     *handler.DashboardHandler
	ProjetoWebHandler    *handler.ProjetoWebHandler
	ComponenteWebHandler *handler.ComponenteWebHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.ZapLogger(d.Log))

	r.LoadHTMLGlob(d.Config.App.Templates)

	// health
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, serializer.HealthResponse{
			Status:  "ok",
			Message: "API de Projetos está funcionando",
			Version: d.Config.App.Version,
		})
	})

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// JSON API
	v1 := r.Group("/api/v1")
	{
		projetos := v1.Group("/projetos")
		{
			projetos.GET("", d.ProjetoHandler.ListProjetos)
			projetos.POST("", d.ProjetoHandler.CreateProjeto)
			projetos.GET("/:id", d.ProjetoHandler.GetProjeto)
			projetos.PUT("/:id", d.ProjetoHandler.UpdateProjeto)
			projetos.DELETE("/:id", d.ProjetoHandler.DeleteProjeto)
		}
	}
	r.GET("/api/search", d.SearchHandler.Search)

	// HTML interface
	r.GET("/", d.DashboardHandler.Index)
	r.GET("/index", d.DashboardHandler.Index)

	r.GET("/projetos", d.ProjetoWebHandler.List)
	r.GET("/projeto/novo", d.ProjetoWebHandler.NewForm)
	r.POST("/projeto/novo", d.ProjetoWebHandler.Create)
	r.GET("/projeto/editar/:id", d.ProjetoWebHandler.EditForm)
	r.POST("/projeto/editar/:id", d.ProjetoWebHandler.Update)
	r.GET("/projeto/excluir/:id", d.ProjetoWebHandler.Delete)
	r.GET("/projeto/detalhes/:id", d.ProjetoWebHandler.Detail)

	r.GET("/componentes", d.ComponenteWebHandler.List)
	r.GET("/componente/novo", d.ComponenteWebHandler.NewForm)
	r.POST("/componente/novo", d.ComponenteWebHandler.Create)
	r.GET("/componente/editar/:id", d.ComponenteWebHandler.EditForm)
	r.POST("/componente/editar/:id", d.ComponenteWebHandler.Update)
	r.GET("/componente/excluir/:id", d.ComponenteWebHandler.Delete)
	r.GET("/componente/detalhes/:id", d.ComponenteWebHandler.Detail)

	return r
}
