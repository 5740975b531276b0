package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wall-lab/catalogo/internal/modules/model"
	"gorm.io/gorm"
)

// MockProjetoRepo is a mock implementation of repo.ProjetoRepo
type MockProjetoRepo struct {
	mock.Mock
}

func (m *MockProjetoRepo) Create(ctx context.Context, p *model.Projeto) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjetoRepo) Get(ctx context.Context, id uint) (*model.Projeto, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Projeto), args.Error(1)
}

func (m *MockProjetoRepo) List(ctx context.Context) ([]model.Projeto, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Projeto), args.Error(1)
}

func (m *MockProjetoRepo) Update(ctx context.Context, id uint, updates map[string]interface{}, componentes []model.Componente, replace bool) error {
	args := m.Called(ctx, id, updates, componentes, replace)
	return args.Error(0)
}

func (m *MockProjetoRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjetoRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockComponenteRepo is a mock implementation of repo.ComponenteRepo
type MockComponenteRepo struct {
	mock.Mock
}

func (m *MockComponenteRepo) Create(ctx context.Context, c *model.Componente) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockComponenteRepo) Get(ctx context.Context, id uint) (*model.Componente, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Componente), args.Error(1)
}

func (m *MockComponenteRepo) List(ctx context.Context) ([]model.Componente, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Componente), args.Error(1)
}

func (m *MockComponenteRepo) ListByIDs(ctx context.Context, ids []uint) ([]model.Componente, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Componente), args.Error(1)
}

func (m *MockComponenteRepo) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	args := m.Called(ctx, id, updates)
	return args.Error(0)
}

func (m *MockComponenteRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockComponenteRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockComponenteRepo) Recent(ctx context.Context, n int) ([]model.Componente, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Componente), args.Error(1)
}

func (m *MockComponenteRepo) Search(ctx context.Context, query string) ([]model.Componente, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Componente), args.Error(1)
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func idsPtr(v []uint) *[]uint { return &v }

func TestProjetoService_Create(t *testing.T) {
	t.Run("nested rows become components, incomplete rows are dropped", func(t *testing.T) {
		projetos := new(MockProjetoRepo)
		componentes := new(MockComponenteRepo)
		svc := NewProjetoService(projetos, componentes)

		projetos.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Projeto) bool {
			return p.Nome == "Robot Arm" &&
				len(p.Componentes) == 1 &&
				p.Componentes[0].Nome == "Servo" &&
				p.Componentes[0].Quantidade == 4
		})).Return(nil)

		_, err := svc.Create(context.Background(), CreateProjetoInput{
			Nome: "Robot Arm",
			Componentes: []ComponenteLinha{
				{Nome: "Servo", Quantidade: intPtr(4)},
				{Nome: "", Quantidade: intPtr(1)},
				{Nome: "Sem quantidade"},
			},
		})
		assert.NoError(t, err)
		projetos.AssertExpectations(t)
	})

	t.Run("missing name fails validation without touching storage", func(t *testing.T) {
		projetos := new(MockProjetoRepo)
		componentes := new(MockComponenteRepo)
		svc := NewProjetoService(projetos, componentes)

		_, err := svc.Create(context.Background(), CreateProjetoInput{Descricao: "sem nome"})
		assert.ErrorIs(t, err, ErrValidation)
		projetos.AssertNotCalled(t, "Create")
		componentes.AssertNotCalled(t, "ListByIDs")
	})

	t.Run("malformed url fails validation", func(t *testing.T) {
		projetos := new(MockProjetoRepo)
		componentes := new(MockComponenteRepo)
		svc := NewProjetoService(projetos, componentes)

		_, err := svc.Create(context.Background(), CreateProjetoInput{Nome: "x", URL: "::not a url::"})
		assert.ErrorIs(t, err, ErrValidation)
		projetos.AssertNotCalled(t, "Create")
	})

	t.Run("existing selection is attached", func(t *testing.T) {
		projetos := new(MockProjetoRepo)
		componentes := new(MockComponenteRepo)
		svc := NewProjetoService(projetos, componentes)

		componentes.On("ListByIDs", mock.Anything, []uint{3, 5}).Return([]model.Componente{
			{ID: 3, Nome: "Servo"},
			{ID: 5, Nome: "Sensor"},
		}, nil)
		projetos.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Projeto) bool {
			return len(p.Componentes) == 2
		})).Return(nil)

		_, err := svc.Create(context.Background(), CreateProjetoInput{
			Nome:          "Braço",
			ComponenteIDs: []uint{3, 5},
		})
		assert.NoError(t, err)
		componentes.AssertExpectations(t)
		projetos.AssertExpectations(t)
	})
}

func TestProjetoService_Get(t *testing.T) {
	projetos := new(MockProjetoRepo)
	componentes := new(MockComponenteRepo)
	svc := NewProjetoService(projetos, componentes)

	projetos.On("Get", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Get(context.Background(), 9)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjetoService_Update(t *testing.T) {
	t.Run("empty input is a validation error", func(t *testing.T) {
		projetos := new(MockProjetoRepo)
		componentes := new(MockComponenteRepo)
		svc := NewProjetoService(projetos, componentes)

		err := svc.Update(context.Background(), 1, UpdateProjetoInput{})
		assert.ErrorIs(t, err, ErrValidation)
		projetos.AssertNotCalled(t, "Update")
	})

	t.Run("empty selection clears the membership set", func(t *testing.T) {
		projetos := new(MockProjetoRepo)
		componentes := new(MockComponenteRepo)
		svc := NewProjetoService(projetos, componentes)

		componentes.On("ListByIDs", mock.Anything, []uint{}).Return([]model.Componente{}, nil)
		projetos.On("Update", mock.Anything, uint(1), mock.Anything, []model.Componente{}, true).Return(nil)

		err := svc.Update(context.Background(), 1, UpdateProjetoInput{ComponenteIDs: idsPtr([]uint{})})
		assert.NoError(t, err)
		projetos.AssertExpectations(t)

		// Repeating the same empty replacement behaves identically.
		err = svc.Update(context.Background(), 1, UpdateProjetoInput{ComponenteIDs: idsPtr([]uint{})})
		assert.NoError(t, err)
	})

	t.Run("only provided fields are applied", func(t *testing.T) {
		projetos := new(MockProjetoRepo)
		componentes := new(MockComponenteRepo)
		svc := NewProjetoService(projetos, componentes)

		projetos.On("Update", mock.Anything, uint(2),
			map[string]interface{}{"nome": "Renomeado"}, mock.Anything, false).Return(nil)

		err := svc.Update(context.Background(), 2, UpdateProjetoInput{Nome: strPtr("Renomeado")})
		assert.NoError(t, err)
		projetos.AssertExpectations(t)
	})

	t.Run("unknown id maps to not found", func(t *testing.T) {
		projetos := new(MockProjetoRepo)
		componentes := new(MockComponenteRepo)
		svc := NewProjetoService(projetos, componentes)

		projetos.On("Update", mock.Anything, uint(7), mock.Anything, mock.Anything, false).
			Return(gorm.ErrRecordNotFound)

		err := svc.Update(context.Background(), 7, UpdateProjetoInput{Nome: strPtr("x")})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestProjetoService_Delete(t *testing.T) {
	projetos := new(MockProjetoRepo)
	componentes := new(MockComponenteRepo)
	svc := NewProjetoService(projetos, componentes)

	projetos.On("Delete", mock.Anything, uint(3)).Return(gorm.ErrRecordNotFound).Once()
	assert.ErrorIs(t, svc.Delete(context.Background(), 3), ErrNotFound)

	projetos.On("Delete", mock.Anything, uint(3)).Return(errors.New("io error")).Once()
	err := svc.Delete(context.Background(), 3)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
