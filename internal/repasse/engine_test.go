package repasse

import (
	"testing"

	"github.com/barcellos-advocacia/api-gestao/internal/modelodistribuicao"
	"github.com/barcellos-advocacia/api-gestao/internal/parcela"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/* ============================== Fakes ============================== */

type fakeParcelas struct {
	todas []ParcelaCompetencia
}

func (f *fakeParcelas) ParcelasDaCompetencia(mes, ano int) ([]ParcelaCompetencia, error) {
	return f.todas, nil
}

type fakeAliquotas struct {
	porPeriodo map[[2]int]int // [mes, ano] -> bp
}

func (f *fakeAliquotas) AliquotaDoPeriodo(mes, ano int) (int, bool, error) {
	bp, ok := f.porPeriodo[[2]int{mes, ano}]
	return bp, ok, nil
}

type fakeModelos struct {
	porCodigo map[string]*ModeloResolvido
}

func (f *fakeModelos) ModeloPorCodigo(codigo string) (*ModeloResolvido, error) {
	return f.porCodigo[codigo], nil
}

func engineDeTeste(parcelas []ParcelaCompetencia, aliquotas map[[2]int]int, modelos map[string]*ModeloResolvido) *Engine {
	return NewEngine(
		&fakeParcelas{todas: parcelas},
		&fakeAliquotas{porPeriodo: aliquotas},
		&fakeModelos{porCodigo: modelos},
	)
}

/* ============================== Resolver de alíquota ============================== */

func TestResolverAliquotaUsaMesAnterior(t *testing.T) {
	e := engineDeTeste(nil, map[[2]int]int{{5, 2026}: 500}, nil)

	a, err := e.ResolverAliquota(6, 2026)
	require.NoError(t, err)
	assert.Equal(t, 500, a.PercentualBp)
	assert.Equal(t, 5, a.Mes)
	assert.Equal(t, 2026, a.Ano)
	assert.False(t, a.Fallback)
}

func TestResolverAliquotaViradaDeAno(t *testing.T) {
	e := engineDeTeste(nil, map[[2]int]int{{12, 2025}: 650}, nil)

	a, err := e.ResolverAliquota(1, 2026)
	require.NoError(t, err)
	assert.Equal(t, 650, a.PercentualBp)
	assert.Equal(t, 12, a.Mes)
	assert.Equal(t, 2025, a.Ano)
}

func TestResolverAliquotaSemConfiguracaoUsaFallbackZero(t *testing.T) {
	e := engineDeTeste(nil, map[[2]int]int{}, nil)

	a, err := e.ResolverAliquota(6, 2026)
	require.NoError(t, err)
	assert.Equal(t, 0, a.PercentualBp)
	assert.True(t, a.Fallback)
	assert.Equal(t, 5, a.Mes)
	assert.Equal(t, 2026, a.Ano)
}

/* ============================== Prévia completa ============================== */

func cenarioCompleto() ([]ParcelaCompetencia, map[[2]int]int, map[string]*ModeloResolvido) {
	parcelas := []ParcelaCompetencia{
		{
			ParcelaID: 1, Numero: 1, ContratoID: 1, NumeroContrato: "CT-001",
			ClienteID: 1, ClienteNome: "Indústrias Salles",
			AdvogadoID: 1, AdvogadoNome: "Antônio", ModeloCodigo: "PADRAO",
			Status: parcela.StatusPrevista, Mes: 6, Ano: 2026, ValorBrutoCentavos: 10000,
		},
		{
			ParcelaID: 2, Numero: 2, ContratoID: 1, NumeroContrato: "CT-001",
			ClienteID: 1, ClienteNome: "Indústrias Salles",
			AdvogadoID: 1, AdvogadoNome: "Antônio", ModeloCodigo: "PADRAO",
			Status: parcela.StatusCancelada, Mes: 6, Ano: 2026, ValorBrutoCentavos: 77700,
		},
		{
			ParcelaID: 3, Numero: 1, ContratoID: 2, NumeroContrato: "CT-002",
			ClienteID: 2, ClienteNome: "Mercearia Dois Irmãos",
			AdvogadoID: 2, AdvogadoNome: "Beatriz", ModeloCodigo: "",
			Status: parcela.StatusRecebida, Mes: 6, Ano: 2026, ValorBrutoCentavos: 20000,
		},
	}
	aliquotas := map[[2]int]int{{5, 2026}: 500}
	modelos := map[string]*ModeloResolvido{
		"PADRAO": {
			Codigo: "PADRAO",
			Valido: true,
			Itens: []ItemDistribuicao{
				{PercentualBp: 6000, Destino: modelodistribuicao.DestinoAdvogado},
				{PercentualBp: 3000, Destino: modelodistribuicao.DestinoEscritorio},
				{PercentualBp: 1000, Destino: modelodistribuicao.DestinoFundoReserva},
			},
		},
	}
	return parcelas, aliquotas, modelos
}

func TestPreviaCompetenciaCompleta(t *testing.T) {
	e := engineDeTeste(cenarioCompleto())

	previa, err := e.Previa(6, 2026)
	require.NoError(t, err)

	assert.Equal(t, 500, previa.AliquotaUsada.PercentualBp)
	assert.False(t, previa.AliquotaUsada.Fallback)

	// a parcela cancelada (id 2) fica fora das linhas e dos totais
	require.Len(t, previa.Linhas, 2)
	assert.Equal(t, uint(1), previa.Linhas[0].ParcelaID)
	assert.Equal(t, uint(3), previa.Linhas[1].ParcelaID)

	// linha 1: modelo válido, sem pendência
	l1 := previa.Linhas[0]
	assert.Equal(t, int64(500), l1.Imposto)
	assert.Equal(t, int64(9500), l1.Liquido)
	assert.Equal(t, Pendencias{}, l1.Pendencias)
	assert.Equal(t, l1.Liquido, somaDestinos(l1))

	// linha 2: contrato sem modelo configurado
	l2 := previa.Linhas[1]
	assert.True(t, l2.Pendencias.ModeloAusente)
	assert.Equal(t, int64(1000), l2.Imposto)
	assert.Equal(t, int64(19000), l2.Liquido)
	assert.Empty(t, l2.Advogados)

	// totais: bruto e imposto somam as duas linhas
	assert.Equal(t, int64(30000), previa.Totais.Valor)
	assert.Equal(t, int64(1500), previa.Totais.Imposto)
	assert.Equal(t, int64(28500), previa.Totais.Liquido)
	assert.Equal(t, l1.Liquido+l2.Liquido, previa.Totais.Liquido)
}

func TestPreviaIdempotente(t *testing.T) {
	e := engineDeTeste(cenarioCompleto())

	a, err := e.Previa(6, 2026)
	require.NoError(t, err)
	b, err := e.Previa(6, 2026)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPreviaSemAliquotaConfigurada(t *testing.T) {
	parcelas, _, modelos := cenarioCompleto()
	e := engineDeTeste(parcelas, map[[2]int]int{}, modelos)

	previa, err := e.Previa(6, 2026)
	require.NoError(t, err)

	assert.True(t, previa.AliquotaUsada.Fallback)
	assert.Equal(t, 0, previa.AliquotaUsada.PercentualBp)
	// imposto zero, líquido igual ao bruto
	for _, l := range previa.Linhas {
		assert.Equal(t, int64(0), l.Imposto)
		assert.Equal(t, l.ValorBruto, l.Liquido)
	}
}

func TestPreviaTotaisFechamComDestinos(t *testing.T) {
	// só linhas sem pendência: líquido total == advogados + escritório + fundo + indicação
	parcelas, aliquotas, modelos := cenarioCompleto()
	parcelas = parcelas[:1]
	e := engineDeTeste(parcelas, aliquotas, modelos)

	previa, err := e.Previa(6, 2026)
	require.NoError(t, err)
	require.Len(t, previa.Linhas, 1)

	var destinos int64
	for _, a := range previa.Totais.Advogados {
		destinos += a.Valor
	}
	destinos += previa.Totais.Escritorio + previa.Totais.FundoReserva + previa.Totais.Indicacao
	assert.Equal(t, previa.Totais.Liquido, destinos)
}

func TestPreviaCompetenciaSemParcelas(t *testing.T) {
	e := engineDeTeste(nil, map[[2]int]int{{1, 2026}: 500}, nil)

	previa, err := e.Previa(2, 2026)
	require.NoError(t, err)
	assert.Empty(t, previa.Linhas)
	assert.Equal(t, int64(0), previa.Totais.Valor)
	assert.Equal(t, 500, previa.AliquotaUsada.PercentualBp)
}
