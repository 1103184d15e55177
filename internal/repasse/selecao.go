package repasse

import (
	"sort"

	"github.com/barcellos-advocacia/api-gestao/internal/parcela"
)

// SelecionarParcelas filtra as parcelas da competência (mes, ano),
// descartando canceladas, e devolve em ordem estável de contrato e número
// para a prévia ser reproduzível.
func SelecionarParcelas(mes, ano int, todas []ParcelaCompetencia) []ParcelaCompetencia {
	selecionadas := make([]ParcelaCompetencia, 0, len(todas))
	for _, p := range todas {
		if p.Mes != mes || p.Ano != ano {
			continue
		}
		if p.Status == parcela.StatusCancelada {
			continue
		}
		selecionadas = append(selecionadas, p)
	}
	sort.SliceStable(selecionadas, func(i, j int) bool {
		if selecionadas[i].ContratoID != selecionadas[j].ContratoID {
			return selecionadas[i].ContratoID < selecionadas[j].ContratoID
		}
		return selecionadas[i].Numero < selecionadas[j].Numero
	})
	return selecionadas
}
