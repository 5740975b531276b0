package repo

import (
	"context"
	"strings"

	"github.com/wall-lab/catalogo/internal/modules/model"
	"gorm.io/gorm"
)

type ComponenteRepo interface {
	Create(ctx context.Context, c *model.Componente) error
	Get(ctx context.Context, id uint) (*model.Componente, error)
	// List returns every component ordered by name.
	List(ctx context.Context) ([]model.Componente, error)
	ListByIDs(ctx context.Context, ids []uint) ([]model.Componente, error)
	Update(ctx context.Context, id uint, updates map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	// Recent returns the latest n components, newest first.
	Recent(ctx context.Context, n int) ([]model.Componente, error)
	// Search matches the query as a case-insensitive substring of either the
	// component name or description, ordered by name. Related projects come
	// preloaded together with their own component sets so callers can report
	// per-project component totals.
	Search(ctx context.Context, query string) ([]model.Componente, error)
}

type componenteRepo struct{ db *gorm.DB }

func NewComponenteRepo(db *gorm.DB) ComponenteRepo {
	return &componenteRepo{db: db}
}

func (r *componenteRepo) Create(ctx context.Context, c *model.Componente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *componenteRepo) Get(ctx context.Context, id uint) (*model.Componente, error) {
	var c model.Componente
	err := r.db.WithContext(ctx).Preload("Projetos").First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *componenteRepo) List(ctx context.Context) ([]model.Componente, error) {
	var items []model.Componente
	err := r.db.WithContext(ctx).Order("nome").Find(&items).Error
	return items, err
}

func (r *componenteRepo) ListByIDs(ctx context.Context, ids []uint) ([]model.Componente, error) {
	if len(ids) == 0 {
		return []model.Componente{}, nil
	}
	var items []model.Componente
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *componenteRepo) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c model.Componente
		if err := tx.First(&c, id).Error; err != nil {
			return err
		}
		return tx.Model(&c).Updates(updates).Error
	})
}

func (r *componenteRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c model.Componente
		if err := tx.First(&c, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&c).Association("Projetos").Clear(); err != nil {
			return err
		}
		return tx.Delete(&c).Error
	})
}

func (r *componenteRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Componente{}).Count(&n).Error
	return n, err
}

func (r *componenteRepo) Recent(ctx context.Context, n int) ([]model.Componente, error) {
	var items []model.Componente
	err := r.db.WithContext(ctx).Order("id DESC").Limit(n).Find(&items).Error
	return items, err
}

func (r *componenteRepo) Search(ctx context.Context, query string) ([]model.Componente, error) {
	// LOWER(...) LIKE keeps the match case-insensitive on both postgres and
	// sqlite; ILIKE would tie this to postgres.
	pattern := "%" + strings.ToLower(query) + "%"

	var items []model.Componente
	err := r.db.WithContext(ctx).
		Preload("Projetos.Componentes").
		Where("LOWER(nome) LIKE ? OR LOWER(descricao) LIKE ?", pattern, pattern).
		Order("nome").
		Find(&items).Error
	return items, err
}
