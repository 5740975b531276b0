package service

import (
	"context"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/wall-lab/catalogo/internal/modules/model"
	"github.com/wall-lab/catalogo/internal/modules/repo"
)

// ComponenteLinha is a nested component row supplied inline on project
// creation or update. Rows without a name or quantity are skipped.
type ComponenteLinha struct {
	Nome       string `json:"nome"`
	Quantidade *int   `json:"quantidade"`
}

type CreateProjetoInput struct {
	Nome      string
	Descricao string
	URL       string
	// Componentes are new rows to create and link in the same transaction.
	Componentes []ComponenteLinha
	// ComponenteIDs are existing components to attach (HTML multi-select).
	ComponenteIDs []uint
}

// UpdateProjetoInput carries partial-update semantics: only non-nil fields are
// applied. A non-nil Componentes or ComponenteIDs replaces the full membership
// set; an empty slice clears it.
type UpdateProjetoInput struct {
	Nome          *string
	Descricao     *string
	URL           *string
	Componentes   *[]ComponenteLinha
	ComponenteIDs *[]uint
}

func (in UpdateProjetoInput) empty() bool {
	return in.Nome == nil && in.Descricao == nil && in.URL == nil &&
		in.Componentes == nil && in.ComponenteIDs == nil
}

type ProjetoService interface {
	Create(ctx context.Context, in CreateProjetoInput) (*model.Projeto, error)
	Get(ctx context.Context, id uint) (*model.Projeto, error)
	List(ctx context.Context) ([]model.Projeto, error)
	Update(ctx context.Context, id uint, in UpdateProjetoInput) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type projetoService struct {
	projetos    repo.ProjetoRepo
	componentes repo.ComponenteRepo
}

func NewProjetoService(projetos repo.ProjetoRepo, componentes repo.ComponenteRepo) ProjetoService {
	return &projetoService{projetos: projetos, componentes: componentes}
}

func (s *projetoService) validateCreate(in CreateProjetoInput) error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Nome, validation.Required, validation.Length(1, 100)),
		validation.Field(&in.URL, validation.Length(0, 200), is.URL),
	)
}

func (s *projetoService) Create(ctx context.Context, in CreateProjetoInput) (*model.Projeto, error) {
	if err := s.validateCreate(in); err != nil {
		return nil, invalid(err)
	}

	p := model.Projeto{
		Nome:        in.Nome,
		Descricao:   in.Descricao,
		URL:         in.URL,
		Componentes: buildLinhas(in.Componentes),
	}

	if len(in.ComponenteIDs) > 0 {
		existing, err := s.componentes.ListByIDs(ctx, in.ComponenteIDs)
		if err != nil {
			return nil, err
		}
		p.Componentes = append(p.Componentes, existing...)
	}

	if err := s.projetos.Create(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *projetoService) Get(ctx context.Context, id uint) (*model.Projeto, error) {
	p, err := s.projetos.Get(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return p, nil
}

func (s *projetoService) List(ctx context.Context) ([]model.Projeto, error) {
	return s.projetos.List(ctx)
}

func (s *projetoService) Update(ctx context.Context, id uint, in UpdateProjetoInput) error {
	if in.empty() {
		return invalid(errors.New("dados não fornecidos para atualização"))
	}
	if err := s.validateUpdate(in); err != nil {
		return invalid(err)
	}

	updates := map[string]interface{}{}
	if in.Nome != nil {
		updates["nome"] = *in.Nome
	}
	if in.Descricao != nil {
		updates["descricao"] = *in.Descricao
	}
	if in.URL != nil {
		updates["url"] = *in.URL
	}

	replace := false
	var membros []model.Componente
	switch {
	case in.Componentes != nil:
		replace = true
		membros = buildLinhas(*in.Componentes)
	case in.ComponenteIDs != nil:
		replace = true
		existing, err := s.componentes.ListByIDs(ctx, *in.ComponenteIDs)
		if err != nil {
			return err
		}
		membros = existing
	}

	return translate(s.projetos.Update(ctx, id, updates, membros, replace))
}

func (s *projetoService) validateUpdate(in UpdateProjetoInput) error {
	if in.Nome != nil {
		if err := validation.Validate(*in.Nome, validation.Required, validation.Length(1, 100)); err != nil {
			return err
		}
	}
	if in.URL != nil {
		if err := validation.Validate(*in.URL, validation.Length(0, 200), is.URL); err != nil {
			return err
		}
	}
	return nil
}

func (s *projetoService) Delete(ctx context.Context, id uint) error {
	return translate(s.projetos.Delete(ctx, id))
}

func (s *projetoService) Count(ctx context.Context) (int64, error) {
	return s.projetos.Count(ctx)
}

// buildLinhas turns inline rows into component models, dropping incomplete
// rows the same way the JSON create always has.
func buildLinhas(linhas []ComponenteLinha) []model.Componente {
	out := make([]model.Componente, 0, len(linhas))
	for _, l := range linhas {
		if l.Nome == "" || l.Quantidade == nil {
			continue
		}
		out = append(out, model.Componente{Nome: l.Nome, Quantidade: *l.Quantidade})
	}
	return out
}
