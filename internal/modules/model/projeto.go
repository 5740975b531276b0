package model

import (
	"time"
)

// Projeto is a maker project in the catalog. Membership of components is kept
// in the projeto_componente join table; deleting a project removes its
// association rows but never the components themselves.
type Projeto struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Nome        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"nome"`
	Descricao   string    `gorm:"type:text" json:"descricao"`
	URL         string    `gorm:"type:varchar(200)" json:"tinkercad_link"`
	DataCriacao time.Time `gorm:"autoCreateTime" json:"data_criacao"`

	// Projeto <-> Componente
	Componentes []Componente `gorm:"many2many:projeto_componente;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"componentes"`
}

func (Projeto) TableName() string { return "projetos" }
