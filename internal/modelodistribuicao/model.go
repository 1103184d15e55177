package modelodistribuicao

import (
	"time"

	"gorm.io/gorm"
)

// Destinos possíveis de um item de distribuição.
const (
	DestinoAdvogado     = "ADVOGADO"
	DestinoEscritorio   = "ESCRITORIO"
	DestinoFundoReserva = "FUNDO_RESERVA"
	DestinoIndicacao    = "INDICACAO"
)

// ModeloDistribuicao define como o líquido de uma parcela é repartido.
// Os itens precisam somar 10000 bp; um modelo fora disso fica utilizável
// para consulta, mas o cálculo de repasse marca pendência em vez de ratear.
type ModeloDistribuicao struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Codigo string `gorm:"size:50;uniqueIndex;not null" json:"codigo"`
	Nome   string `gorm:"size:255;not null" json:"nome"`

	Itens []ItemModelo `gorm:"foreignKey:ModeloDistribuicaoID;constraint:OnDelete:CASCADE" json:"itens"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// ItemModelo é uma fatia percentual do modelo, em basis points.
// AdvogadoID só vale para Destino == ADVOGADO; nulo significa "o advogado
// principal do contrato", preenchido aponta um sócio/split específico.
type ItemModelo struct {
	ID                   uint   `gorm:"primaryKey" json:"id"`
	ModeloDistribuicaoID uint   `gorm:"not null;index" json:"modeloDistribuicaoId"`
	Ordem                int    `gorm:"not null" json:"ordem"`
	PercentualBp         int    `gorm:"not null" json:"percentualBp"`
	Destino              string `gorm:"size:20;not null" json:"destino"`
	AdvogadoID           *uint  `json:"advogadoId,omitempty"`
}

// SomaBp soma os percentuais de todos os itens.
func (m *ModeloDistribuicao) SomaBp() int {
	soma := 0
	for _, item := range m.Itens {
		soma += item.PercentualBp
	}
	return soma
}

// Consistente informa se os itens fecham exatamente 100%.
func (m *ModeloDistribuicao) Consistente() bool {
	return m.SomaBp() == 10000
}

func DestinoValido(d string) bool {
	switch d {
	case DestinoAdvogado, DestinoEscritorio, DestinoFundoReserva, DestinoIndicacao:
		return true
	}
	return false
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&ModeloDistribuicao{}, &ItemModelo{})
}
