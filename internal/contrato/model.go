package contrato

import (
	"time"

	"github.com/barcellos-advocacia/api-gestao/internal/parcela"
	"gorm.io/gorm"
)

// Status usuais de contrato.
const (
	StatusEmAndamento = "EM_ANDAMENTO"
	StatusConcluido   = "CONCLUIDO"
	StatusEncerrado   = "ENCERRADO"
)

// Contrato vincula cliente, advogado principal e o modelo de distribuição
// usado nos repasses das suas parcelas.
type Contrato struct {
	gorm.Model

	Numero     string `gorm:"size:50;uniqueIndex;not null" json:"numero"`
	ClienteID  uint   `gorm:"not null;index" json:"clienteId"`
	AdvogadoID uint   `gorm:"not null;index" json:"advogadoId"` // advogado principal

	// Código do modelo de distribuição; vazio gera pendência na prévia de repasse.
	ModeloDistribuicaoCodigo string `gorm:"size:50" json:"modeloDistribuicaoCodigo"`
	// ComSocio indica que o principal divide a parte dele com sócio(s);
	// exige item ADVOGADO extra no modelo.
	ComSocio bool `gorm:"not null;default:false" json:"comSocio"`

	Objeto             string    `gorm:"size:500" json:"objeto"`
	ValorTotalCentavos int64     `gorm:"not null;default:0" json:"valorTotalCentavos"`
	QtdParcelas        int       `gorm:"not null;default:0" json:"qtdParcelas"`
	DataInicio         time.Time `json:"dataInicio"`
	Status             string    `gorm:"size:20;not null;default:'EM_ANDAMENTO'" json:"status"`

	Parcelas []parcela.Parcela `gorm:"foreignKey:ContratoID;constraint:OnDelete:CASCADE" json:"parcelas,omitempty"`
}

// GerarParcelas reparte o valor total em QtdParcelas mensais a partir de
// DataInicio. Cada parcela leva floor(total/n); os centavos que sobram vão
// para a última, de modo que a soma feche exatamente o total.
func (c *Contrato) GerarParcelas() []parcela.Parcela {
	if c.QtdParcelas <= 0 || c.ValorTotalCentavos < 0 {
		return nil
	}
	n := int64(c.QtdParcelas)
	base := c.ValorTotalCentavos / n
	resto := c.ValorTotalCentavos - base*n

	parcelas := make([]parcela.Parcela, 0, c.QtdParcelas)
	for i := 0; i < c.QtdParcelas; i++ {
		valor := base
		if i == c.QtdParcelas-1 {
			valor += resto
		}
		parcelas = append(parcelas, parcela.Parcela{
			ContratoID:     c.ID,
			Numero:         i + 1,
			ValorCentavos:  valor,
			DataVencimento: c.DataInicio.AddDate(0, i, 0),
			Status:         parcela.StatusPrevista,
		})
	}
	return parcelas
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Contrato{})
}
