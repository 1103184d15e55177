package aliquota

import (
	"time"

	"gorm.io/gorm"
)

// AliquotaPeriodo configura a alíquota de imposto de um mês de apuração,
// em basis points (10000 = 100%). No máximo um registro por (mes, ano).
type AliquotaPeriodo struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	Mes          int  `gorm:"not null;uniqueIndex:idx_aliquota_periodo" json:"mes"`
	Ano          int  `gorm:"not null;uniqueIndex:idx_aliquota_periodo" json:"ano"`
	PercentualBp int  `gorm:"not null" json:"percentualBp"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&AliquotaPeriodo{})
}
