package bootstrap

import (
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wall-lab/catalogo/internal/config"
	"github.com/wall-lab/catalogo/internal/infra/db"
	"github.com/wall-lab/catalogo/internal/infra/logger"
	"github.com/wall-lab/catalogo/internal/modules/handler"
	"github.com/wall-lab/catalogo/internal/modules/model"
	"github.com/wall-lab/catalogo/internal/modules/repo"
	"github.com/wall-lab/catalogo/internal/modules/service"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		if cfg.Database.AutoMigrate {
			if err := d.AutoMigrate(&model.Projeto{}, &model.Componente{}); err != nil {
				return nil, err
			}
		}
		return d, nil
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.ProjetoRepo, error) {
		return repo.NewProjetoRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ComponenteRepo, error) {
		return repo.NewComponenteRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.ProjetoService, error) {
		return service.NewProjetoService(
			do.MustInvoke[repo.ProjetoRepo](i),
			do.MustInvoke[repo.ComponenteRepo](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ComponenteService, error) {
		return service.NewComponenteService(do.MustInvoke[repo.ComponenteRepo](i)), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.ProjetoHandler, error) {
		return handler.NewProjetoHandler(do.MustInvoke[service.ProjetoService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.SearchHandler, error) {
		return handler.NewSearchHandler(do.MustInvoke[service.ComponenteService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.DashboardHandler, error) {
		return handler.NewDashboardHandler(
			do.MustInvoke[service.ProjetoService](i),
			do.MustInvoke[service.ComponenteService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ProjetoWebHandler, error) {
		return handler.NewProjetoWebHandler(
			do.MustInvoke[service.ProjetoService](i),
			do.MustInvoke[service.ComponenteService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ComponenteWebHandler, error) {
		return handler.NewComponenteWebHandler(do.MustInvoke[service.ComponenteService](i)), nil
	})

	return inj
}
