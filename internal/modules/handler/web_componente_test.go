package handler

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wall-lab/catalogo/internal/modules/model"
	"github.com/wall-lab/catalogo/internal/modules/service"
)

func TestComponenteWebHandler_List(t *testing.T) {
	t.Run("renders components", func(t *testing.T) {
		projetos := new(MockProjetoService)
		componentes := new(MockComponenteService)
		componentes.On("List", mock.Anything).Return([]model.Componente{
			{ID: 1, Nome: "Servo", Quantidade: 4},
		}, nil)
		r := setupWebRouter(projetos, componentes)

		w := getPage(r, "/componentes")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Servo")
	})

	t.Run("storage failure shows on the page itself", func(t *testing.T) {
		projetos := new(MockProjetoService)
		componentes := new(MockComponenteService)
		componentes.On("List", mock.Anything).Return(nil, errors.New("db down"))
		r := setupWebRouter(projetos, componentes)

		w := getPage(r, "/componentes")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Erro ao buscar componentes: db down")
		assert.Empty(t, pendingFlash(t, w))
	})
}

func TestComponenteWebHandler_Create(t *testing.T) {
	t.Run("valid form redirects with a success flash", func(t *testing.T) {
		projetos := new(MockProjetoService)
		componentes := new(MockComponenteService)
		componentes.On("Create", mock.Anything, mock.MatchedBy(func(in service.ComponenteInput) bool {
			return in.Nome == "Servo" && in.Quantidade == 4
		})).Return(&model.Componente{ID: 1, Nome: "Servo"}, nil)
		r := setupWebRouter(projetos, componentes)

		w := postForm(r, "/componente/novo", url.Values{
			"nome":       {"Servo"},
			"descricao":  {"Servo motor 9g"},
			"url":        {"https://example.com/servo"},
			"quantidade": {"4"},
		})
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/componentes", w.Header().Get("Location"))
		assert.Equal(t, "success|Componente criado com sucesso!", pendingFlash(t, w))
		componentes.AssertExpectations(t)
	})

	t.Run("negative quantity re-renders with 400", func(t *testing.T) {
		projetos := new(MockProjetoService)
		componentes := new(MockComponenteService)
		r := setupWebRouter(projetos, componentes)

		w := postForm(r, "/componente/novo", url.Values{
			"nome":       {"Servo"},
			"descricao":  {"Servo motor 9g"},
			"url":        {"https://example.com/servo"},
			"quantidade": {"-1"},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Servo motor 9g")
		componentes.AssertNotCalled(t, "Create")
	})
}

func TestComponenteWebHandler_Update(t *testing.T) {
	t.Run("full form replaces every field", func(t *testing.T) {
		projetos := new(MockProjetoService)
		componentes := new(MockComponenteService)
		componentes.On("Get", mock.Anything, uint(1)).Return(&model.Componente{ID: 1, Nome: "Servo"}, nil)
		componentes.On("Update", mock.Anything, uint(1), mock.MatchedBy(func(in service.ComponenteInput) bool {
			return in.Nome == "Servo MG90" && in.Quantidade == 10
		})).Return(nil)
		r := setupWebRouter(projetos, componentes)

		w := postForm(r, "/componente/editar/1", url.Values{
			"nome":       {"Servo MG90"},
			"descricao":  {"Servo metálico"},
			"url":        {"https://example.com/servo"},
			"quantidade": {"10"},
		})
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "success|Componente atualizado com sucesso!", pendingFlash(t, w))
		componentes.AssertExpectations(t)
	})

	t.Run("unknown id flashes and redirects", func(t *testing.T) {
		projetos := new(MockProjetoService)
		componentes := new(MockComponenteService)
		componentes.On("Get", mock.Anything, uint(42)).Return(nil, service.ErrNotFound)
		r := setupWebRouter(projetos, componentes)

		w := postForm(r, "/componente/editar/42", url.Values{"nome": {"x"}})
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/componentes", w.Header().Get("Location"))
		assert.Equal(t, "error|Componente não encontrado.", pendingFlash(t, w))
		componentes.AssertNotCalled(t, "Update")
	})
}

func TestComponenteWebHandler_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(*MockComponenteService)
		wantFlash string
	}{
		{
			name: "deleted",
			setup: func(svc *MockComponenteService) {
				svc.On("Delete", mock.Anything, uint(1)).Return(nil)
			},
			wantFlash: "success|Componente excluído com sucesso!",
		},
		{
			name: "unknown id",
			setup: func(svc *MockComponenteService) {
				svc.On("Delete", mock.Anything, uint(1)).Return(service.ErrNotFound)
			},
			wantFlash: "error|Componente não encontrado.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projetos := new(MockProjetoService)
			componentes := new(MockComponenteService)
			tt.setup(componentes)
			r := setupWebRouter(projetos, componentes)

			w := getPage(r, "/componente/excluir/1")
			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, "/componentes", w.Header().Get("Location"))
			assert.Equal(t, tt.wantFlash, pendingFlash(t, w))
			componentes.AssertExpectations(t)
		})
	}
}

func TestComponenteWebHandler_Detail(t *testing.T) {
	projetos := new(MockProjetoService)
	componentes := new(MockComponenteService)
	componentes.On("Get", mock.Anything, uint(3)).Return(&model.Componente{
		ID:        3,
		Nome:      "Servo",
		Descricao: "Servo motor 9g",
		Projetos:  []model.Projeto{{ID: 1, Nome: "Robot Arm"}},
	}, nil)
	r := setupWebRouter(projetos, componentes)

	w := getPage(r, "/componente/detalhes/3")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Servo motor 9g")
	assert.Contains(t, w.Body.String(), "Robot Arm")
}
