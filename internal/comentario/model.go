package comentario

import (
	"time"

	"gorm.io/gorm"
)

// Comentario é uma anotação livre de um usuário sobre um contrato.
type Comentario struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ContratoID uint      `gorm:"not null;index" json:"contratoId"`
	UsuarioID  uint      `gorm:"not null;index" json:"usuarioId"`
	Texto      string    `gorm:"size:2000;not null" json:"texto"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Comentario{})
}
