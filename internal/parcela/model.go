package parcela

import (
	"time"

	"gorm.io/gorm"
)

// Status persistidos de uma parcela. ATRASADA nunca é gravada: é derivada
// de uma PREVISTA com vencimento no passado.
const (
	StatusPrevista  = "PREVISTA"
	StatusRecebida  = "RECEBIDA"
	StatusCancelada = "CANCELADA"
	StatusAtrasada  = "ATRASADA"
)

// Parcela é uma parcela de pagamento de um contrato.
// Valores monetários sempre em centavos, nunca float.
type Parcela struct {
	ID                    uint       `gorm:"primaryKey" json:"id"`
	ContratoID            uint       `gorm:"not null;index" json:"contratoId"`
	Numero                int        `gorm:"not null" json:"numero"`
	ValorCentavos         int64      `gorm:"not null;default:0" json:"valorCentavos"`
	DataVencimento        time.Time  `gorm:"not null" json:"dataVencimento"`
	Status                string     `gorm:"size:20;not null;default:'PREVISTA';index" json:"status"`
	ValorRecebidoCentavos *int64     `json:"valorRecebidoCentavos,omitempty"`
	DataRecebimento       *time.Time `json:"dataRecebimento,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StatusEfetivo devolve o status exibido: PREVISTA vencida vira ATRASADA.
func (p *Parcela) StatusEfetivo(agora time.Time) string {
	if p.Status == StatusPrevista && p.DataVencimento.Before(agora) {
		return StatusAtrasada
	}
	return p.Status
}

// Competencia devolve o mês/ano de apuração da parcela, derivado do vencimento.
func (p *Parcela) Competencia() (mes, ano int) {
	return int(p.DataVencimento.Month()), p.DataVencimento.Year()
}

func StatusValido(s string) bool {
	switch s {
	case StatusPrevista, StatusRecebida, StatusCancelada:
		return true
	}
	return false
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Parcela{})
}
