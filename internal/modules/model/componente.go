package model

// Componente is a physical part (sensor, LED, servo...) that can be used by
// zero or more projects.
type Componente struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Nome       string `gorm:"type:varchar(100);index;not null" json:"nome"`
	Descricao  string `gorm:"type:text" json:"descricao"`
	URL        string `gorm:"type:varchar(200)" json:"url"`
	Quantidade int    `gorm:"default:0" json:"quantidade"`

	// Componente <-> Projeto
	Projetos []Projeto `gorm:"many2many:projeto_componente;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"projetos,omitempty"`
}

func (Componente) TableName() string { return "componentes" }
