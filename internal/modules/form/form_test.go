package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjetoForm_Validate(t *testing.T) {
	valido := ProjetoForm{
		Nome:      "Robot Arm",
		Descricao: "Braço robótico",
		URL:       "https://www.tinkercad.com/things/abc",
	}

	tests := []struct {
		name    string
		mutate  func(*ProjetoForm)
		wantErr bool
	}{
		{"valid", func(f *ProjetoForm) {}, false},
		{"empty selection is valid", func(f *ProjetoForm) { f.Componentes = []uint{} }, false},
		{"missing nome", func(f *ProjetoForm) { f.Nome = "" }, true},
		{"missing descricao", func(f *ProjetoForm) { f.Descricao = "" }, true},
		{"missing url", func(f *ProjetoForm) { f.URL = "" }, true},
		{"malformed url", func(f *ProjetoForm) { f.URL = "::nope::" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valido
			tt.mutate(&f)
			err := f.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestComponenteForm_Validate(t *testing.T) {
	valido := ComponenteForm{
		Nome:       "Servo",
		Descricao:  "Servo motor 9g",
		URL:        "https://example.com/servo",
		Quantidade: 4,
	}

	tests := []struct {
		name    string
		mutate  func(*ComponenteForm)
		wantErr bool
	}{
		{"valid", func(f *ComponenteForm) {}, false},
		{"zero quantidade is valid", func(f *ComponenteForm) { f.Quantidade = 0 }, false},
		{"negative quantidade", func(f *ComponenteForm) { f.Quantidade = -1 }, true},
		{"missing nome", func(f *ComponenteForm) { f.Nome = "" }, true},
		{"missing url", func(f *ComponenteForm) { f.URL = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valido
			tt.mutate(&f)
			err := f.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
