package usuario

import "gorm.io/gorm"

// Usuario é um operador do back-office. O perfil define o que ele pode
// fazer: ADMIN administra tudo, FINANCEIRO opera contratos/parcelas/repasses,
// CONSULTA só lê.
type Usuario struct {
	gorm.Model
	Nome                  string `gorm:"size:255;not null" json:"nome"`
	Email                 string `gorm:"size:255;uniqueIndex" json:"email"`
	Senha                 string `gorm:"size:255;not null" json:"-"`
	Perfil                string `gorm:"size:20;not null;default:'CONSULTA'" json:"perfil"`
	Ativo                 bool   `gorm:"not null;default:true" json:"ativo"`
	PrecisaRedefinirSenha bool   `json:"-"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Usuario{})
}
