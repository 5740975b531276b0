// Package form holds the input structures bound from the HTML interface and
// their declarative validation rules. The rules run against the plain input
// before any entity is constructed; rendering concerns stay in the templates.
package form

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type ProjetoForm struct {
	Nome      string `form:"nome"`
	Descricao string `form:"descricao"`
	URL       string `form:"url"`
	// Componentes carries the ids ticked in the multi-select. An empty
	// selection is valid and clears every association on edit.
	Componentes []uint `form:"componentes"`
}

func (f ProjetoForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Nome, validation.Required, validation.Length(1, 100)),
		validation.Field(&f.Descricao, validation.Required),
		validation.Field(&f.URL, validation.Required, validation.Length(1, 200), is.URL),
	)
}

type ComponenteForm struct {
	Nome       string `form:"nome"`
	Descricao  string `form:"descricao"`
	URL        string `form:"url"`
	Quantidade int    `form:"quantidade"`
}

func (f ComponenteForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Nome, validation.Required, validation.Length(1, 100)),
		validation.Field(&f.Descricao, validation.Required),
		validation.Field(&f.URL, validation.Required, validation.Length(1, 200), is.URL),
		validation.Field(&f.Quantidade, validation.Min(0)),
	)
}
