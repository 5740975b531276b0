// Command initdb drops every catalog table and recreates the schema from the
// current models. Destructive on purpose; there is no migration history.
package main

import (
	"github.com/joho/godotenv"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wall-lab/catalogo/internal/bootstrap"
	"github.com/wall-lab/catalogo/internal/modules/model"
)

func main() {
	_ = godotenv.Load()

	inj := bootstrap.BuildContainer()
	log := do.MustInvoke[*zap.Logger](inj)
	db := do.MustInvoke[*gorm.DB](inj)

	// The join table goes first so the FK constraints never block the drop.
	if err := db.Migrator().DropTable("projeto_componente", &model.Projeto{}, &model.Componente{}); err != nil {
		log.Sugar().Fatalw("failed to drop tables", "err", err)
	}
	if err := db.AutoMigrate(&model.Projeto{}, &model.Componente{}); err != nil {
		log.Sugar().Fatalw("failed to recreate schema", "err", err)
	}

	var projetos, componentes int64
	db.Model(&model.Projeto{}).Count(&projetos)
	db.Model(&model.Componente{}).Count(&componentes)
	log.Sugar().Infow("database initialized", "projetos", projetos, "componentes", componentes)
}
