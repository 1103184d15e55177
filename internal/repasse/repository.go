package repasse

import (
	"errors"

	"github.com/barcellos-advocacia/api-gestao/internal/advogado"
	"github.com/barcellos-advocacia/api-gestao/internal/aliquota"
	"github.com/barcellos-advocacia/api-gestao/internal/modelodistribuicao"
	"gorm.io/gorm"
)

// Repository implementa os três buscadores do engine em cima do gorm.
type Repository struct {
	DB        *gorm.DB
	Aliquotas *aliquota.Repository
	Modelos   *modelodistribuicao.Repository
	Advogados *advogado.Repository
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		DB:        db,
		Aliquotas: aliquota.NewRepository(db),
		Modelos:   modelodistribuicao.NewRepository(db),
		Advogados: advogado.NewRepository(db),
	}
}

// ParcelasDaCompetencia carrega as parcelas com vencimento em (mes, ano)
// já com contrato, cliente e advogado principal resolvidos. A competência
// de cada parcela é derivada do vencimento; canceladas vêm junto e o
// engine as descarta na seleção.
func (r *Repository) ParcelasDaCompetencia(mes, ano int) ([]ParcelaCompetencia, error) {
	var rows []ParcelaCompetencia
	err := r.DB.Table("parcelas").
		Select(`parcelas.id AS parcela_id,
			parcelas.numero AS numero,
			parcelas.status AS status,
			parcelas.valor_centavos AS valor_bruto_centavos,
			CAST(EXTRACT(MONTH FROM parcelas.data_vencimento) AS int) AS mes,
			CAST(EXTRACT(YEAR FROM parcelas.data_vencimento) AS int) AS ano,
			contratos.id AS contrato_id,
			contratos.numero AS numero_contrato,
			contratos.modelo_distribuicao_codigo AS modelo_codigo,
			contratos.com_socio AS com_socio,
			clientes.id AS cliente_id,
			clientes.nome AS cliente_nome,
			advogados.id AS advogado_id,
			advogados.nome AS advogado_nome`).
		Joins("JOIN contratos ON contratos.id = parcelas.contrato_id AND contratos.deleted_at IS NULL").
		Joins("JOIN clientes ON clientes.id = contratos.cliente_id").
		Joins("JOIN advogados ON advogados.id = contratos.advogado_id").
		Where("EXTRACT(MONTH FROM parcelas.data_vencimento) = ? AND EXTRACT(YEAR FROM parcelas.data_vencimento) = ?", mes, ano).
		Order("contratos.id asc, parcelas.numero asc").
		Scan(&rows).Error
	return rows, err
}

func (r *Repository) AliquotaDoPeriodo(mes, ano int) (int, bool, error) {
	a, err := r.Aliquotas.BuscarPorPeriodo(mes, ano)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return a.PercentualBp, true, nil
}

func (r *Repository) ModeloPorCodigo(codigo string) (*ModeloResolvido, error) {
	m, err := r.Modelos.BuscarPorCodigo(codigo)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	resolvido := &ModeloResolvido{
		Codigo: m.Codigo,
		Itens:  make([]ItemDistribuicao, 0, len(m.Itens)),
		Valido: m.Consistente(),
	}
	for _, item := range m.Itens {
		it := ItemDistribuicao{
			PercentualBp: item.PercentualBp,
			Destino:      item.Destino,
			AdvogadoID:   item.AdvogadoID,
		}
		if item.AdvogadoID != nil {
			if adv, err := r.Advogados.BuscarPorID(*item.AdvogadoID); err == nil {
				it.AdvogadoNome = adv.Nome
			}
		}
		resolvido.Itens = append(resolvido.Itens, it)
	}
	return resolvido, nil
}
