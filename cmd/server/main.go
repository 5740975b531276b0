package main

//	@title			Catalogo API
//	@version		1.0
//	@description	API de projetos e componentes do catálogo maker.
//	@schemes		http
//	@BasePath		/

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/samber/do"
	"go.uber.org/zap"

	"github.com/wall-lab/catalogo/internal/bootstrap"
	"github.com/wall-lab/catalogo/internal/config"
	"github.com/wall-lab/catalogo/internal/modules/handler"
	"github.com/wall-lab/catalogo/internal/router"
)

func main() {
	// optional .env for local development
	_ = godotenv.Load()

	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)

	gin.SetMode(cfg.App.Env)

	engine := router.NewRouter(router.RouterDeps{
		Config:               cfg,
		Log:                  log,
		ProjetoHandler:       do.MustInvoke[*handler.ProjetoHandler](inj),
		SearchHandler:        do.MustInvoke[*handler.SearchHandler](inj),
		DashboardHandler:     do.MustInvoke[*handler.DashboardHandler](inj),
		ProjetoWebHandler:    do.MustInvoke[*handler.ProjetoWebHandler](inj),
		ComponenteWebHandler: do.MustInvoke[*handler.ComponenteWebHandler](inj),
	})

	// The search front-end is served as static JS and may live on another
	// origin during development.
	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: cors.Default().Handler(engine)}

	go func() {
		log.Sugar().Infow("starting http server", "addr", addr)
		log.Sugar().Infow("swagger url", "url", addr+"/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalw("listen error", "err", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Sugar().Errorw("server shutdown", "err", err)
	}
	log.Sugar().Info("server exited")
}
