package repo

import (
	"context"

	"github.com/wall-lab/catalogo/internal/modules/model"
	"gorm.io/gorm"
)

type ProjetoRepo interface {
	// Create persists the project together with any components attached to it.
	// Components carrying an ID are linked as-is, components without one are
	// created in the same transaction.
	Create(ctx context.Context, p *model.Projeto) error
	Get(ctx context.Context, id uint) (*model.Projeto, error)
	// List returns every project ordered by creation time descending, with
	// components preloaded.
	List(ctx context.Context) ([]model.Projeto, error)
	// Update applies the given column updates and, when replace is true,
	// replaces the full component membership set atomically. An empty slice
	// with replace=true clears all associations.
	Update(ctx context.Context, id uint, updates map[string]interface{}, componentes []model.Componente, replace bool) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type projetoRepo struct{ db *gorm.DB }

func NewProjetoRepo(db *gorm.DB) ProjetoRepo {
	return &projetoRepo{db: db}
}

func (r *projetoRepo) Create(ctx context.Context, p *model.Projeto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *projetoRepo) Get(ctx context.Context, id uint) (*model.Projeto, error) {
	var p model.Projeto
	err := r.db.WithContext(ctx).Preload("Componentes").First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *projetoRepo) List(ctx context.Context) ([]model.Projeto, error) {
	var items []model.Projeto
	err := r.db.WithContext(ctx).
		Preload("Componentes").
		Order("data_criacao DESC").
		Find(&items).Error
	return items, err
}

func (r *projetoRepo) Update(ctx context.Context, id uint, updates map[string]interface{}, componentes []model.Componente, replace bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p model.Projeto
		if err := tx.First(&p, id).Error; err != nil {
			return err
		}

		if len(updates) > 0 {
			if err := tx.Model(&p).Updates(updates).Error; err != nil {
				return err
			}
		}

		if replace {
			if err := tx.Model(&p).Association("Componentes").Replace(&componentes); err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *projetoRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p model.Projeto
		if err := tx.First(&p, id).Error; err != nil {
			return err
		}
		// Remove association rows first; the components themselves survive.
		if err := tx.Model(&p).Association("Componentes").Clear(); err != nil {
			return err
		}
		return tx.Delete(&p).Error
	})
}

func (r *projetoRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Projeto{}).Count(&n).Error
	return n, err
}
