package contrato

import (
	"testing"
	"time"

	"github.com/barcellos-advocacia/api-gestao/internal/parcela"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGerarParcelasDivisaoExata(t *testing.T) {
	c := Contrato{
		ValorTotalCentavos: 120000,
		QtdParcelas:        12,
		DataInicio:         time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC),
	}
	ps := c.GerarParcelas()
	require.Len(t, ps, 12)

	var soma int64
	for i, p := range ps {
		assert.Equal(t, i+1, p.Numero)
		assert.Equal(t, int64(10000), p.ValorCentavos)
		assert.Equal(t, parcela.StatusPrevista, p.Status)
		soma += p.ValorCentavos
	}
	assert.Equal(t, c.ValorTotalCentavos, soma)

	// vencimentos mensais a partir da data de início
	assert.Equal(t, time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC), ps[0].DataVencimento)
	assert.Equal(t, time.Date(2026, time.December, 10, 0, 0, 0, 0, time.UTC), ps[11].DataVencimento)
}

func TestGerarParcelasComResto(t *testing.T) {
	// 1000,01 em 3 parcelas: 333,33 + 333,33 + 333,35
	c := Contrato{
		ValorTotalCentavos: 100001,
		QtdParcelas:        3,
		DataInicio:         time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
	ps := c.GerarParcelas()
	require.Len(t, ps, 3)
	assert.Equal(t, int64(33333), ps[0].ValorCentavos)
	assert.Equal(t, int64(33333), ps[1].ValorCentavos)
	assert.Equal(t, int64(33335), ps[2].ValorCentavos)

	var soma int64
	for _, p := range ps {
		soma += p.ValorCentavos
	}
	assert.Equal(t, c.ValorTotalCentavos, soma)
}

func TestGerarParcelasEntradaInvalida(t *testing.T) {
	assert.Nil(t, (&Contrato{QtdParcelas: 0, ValorTotalCentavos: 1000}).GerarParcelas())
	assert.Nil(t, (&Contrato{QtdParcelas: 3, ValorTotalCentavos: -1}).GerarParcelas())
}
