package advogado

import "gorm.io/gorm"

// Advogado representa um advogado do escritório, destino dos repasses.
type Advogado struct {
	gorm.Model
	Nome     string `gorm:"size:255;not null" json:"nome"`
	OAB      string `gorm:"size:50;uniqueIndex" json:"oab"`
	CPF      string `gorm:"size:14" json:"cpf"`
	Email    string `gorm:"size:255" json:"email"`
	Telefone string `gorm:"size:50" json:"telefone"`
	Socio    bool   `gorm:"not null;default:false" json:"socio"`
	Ativo    bool   `gorm:"not null;default:true" json:"ativo"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Advogado{})
}
