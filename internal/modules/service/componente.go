package service

import (
	"context"
	"strings"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/wall-lab/catalogo/internal/modules/model"
	"github.com/wall-lab/catalogo/internal/modules/repo"
)

// Queries shorter than this (after trimming) skip storage entirely so a one
// character search never turns into a full-table scan.
const minSearchLen = 2

type ComponenteInput struct {
	Nome       string
	Descricao  string
	URL        string
	Quantidade int
}

func (in ComponenteInput) validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Nome, validation.Required, validation.Length(1, 100)),
		validation.Field(&in.Descricao, validation.Required),
		validation.Field(&in.URL, validation.Required, validation.Length(1, 200), is.URL),
		validation.Field(&in.Quantidade, validation.Min(0)),
	)
}

type ComponenteService interface {
	Create(ctx context.Context, in ComponenteInput) (*model.Componente, error)
	Get(ctx context.Context, id uint) (*model.Componente, error)
	List(ctx context.Context) ([]model.Componente, error)
	Update(ctx context.Context, id uint, in ComponenteInput) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	Recent(ctx context.Context, n int) ([]model.Componente, error)
	Search(ctx context.Context, query string) ([]model.Componente, error)
}

type componenteService struct {
	componentes repo.ComponenteRepo
}

func NewComponenteService(componentes repo.ComponenteRepo) ComponenteService {
	return &componenteService{componentes: componentes}
}

func (s *componenteService) Create(ctx context.Context, in ComponenteInput) (*model.Componente, error) {
	if err := in.validate(); err != nil {
		return nil, invalid(err)
	}
	c := model.Componente{
		Nome:       in.Nome,
		Descricao:  in.Descricao,
		URL:        in.URL,
		Quantidade: in.Quantidade,
	}
	if err := s.componentes.Create(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *componenteService) Get(ctx context.Context, id uint) (*model.Componente, error) {
	c, err := s.componentes.Get(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return c, nil
}

func (s *componenteService) List(ctx context.Context) ([]model.Componente, error) {
	return s.componentes.List(ctx)
}

func (s *componenteService) Update(ctx context.Context, id uint, in ComponenteInput) error {
	if err := in.validate(); err != nil {
		return invalid(err)
	}
	return translate(s.componentes.Update(ctx, id, map[string]interface{}{
		"nome":       in.Nome,
		"descricao":  in.Descricao,
		"url":        in.URL,
		"quantidade": in.Quantidade,
	}))
}

func (s *componenteService) Delete(ctx context.Context, id uint) error {
	return translate(s.componentes.Delete(ctx, id))
}

func (s *componenteService) Count(ctx context.Context) (int64, error) {
	return s.componentes.Count(ctx)
}

func (s *componenteService) Recent(ctx context.Context, n int) ([]model.Componente, error) {
	return s.componentes.Recent(ctx, n)
}

func (s *componenteService) Search(ctx context.Context, query string) ([]model.Componente, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minSearchLen {
		return []model.Componente{}, nil
	}
	return s.componentes.Search(ctx, query)
}
