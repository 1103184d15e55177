package repasse

import (
	"testing"

	"github.com/barcellos-advocacia/api-gestao/internal/modelodistribuicao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(id uint) *uint { return &id }

// modelo válido: 30% principal, 30% sócio, 40% escritório
func modeloPadrao() *ModeloResolvido {
	return &ModeloResolvido{
		Codigo: "PADRAO",
		Valido: true,
		Itens: []ItemDistribuicao{
			{PercentualBp: 3000, Destino: modelodistribuicao.DestinoAdvogado},
			{PercentualBp: 3000, Destino: modelodistribuicao.DestinoAdvogado, AdvogadoID: ptr(2), AdvogadoNome: "Beatriz"},
			{PercentualBp: 4000, Destino: modelodistribuicao.DestinoEscritorio},
		},
	}
}

func parcelaBase() ParcelaCompetencia {
	return ParcelaCompetencia{
		ParcelaID:          10,
		Numero:             1,
		ContratoID:         5,
		NumeroContrato:     "CT-2026-005",
		ClienteID:          7,
		ClienteNome:        "Indústrias Salles",
		AdvogadoID:         1,
		AdvogadoNome:       "Antônio",
		ModeloCodigo:       "PADRAO",
		Status:             "PREVISTA",
		Mes:                6,
		Ano:                2026,
		ValorBrutoCentavos: 10000,
	}
}

func TestCompetenciaAnterior(t *testing.T) {
	mes, ano := CompetenciaAnterior(6, 2026)
	assert.Equal(t, 5, mes)
	assert.Equal(t, 2026, ano)

	// janeiro vira dezembro do ano anterior
	mes, ano = CompetenciaAnterior(1, 2026)
	assert.Equal(t, 12, mes)
	assert.Equal(t, 2025, ano)
}

func TestCalcularImposto(t *testing.T) {
	casos := []struct {
		nome     string
		bruto    int64
		bp       int
		esperado int64
	}{
		{"5% de 100,00", 10000, 500, 500},
		{"alíquota zero", 10000, 0, 0},
		{"100%", 10000, 10000, 10000},
		{"meio centavo arredonda para cima", 10, 500, 1},   // 0,5 centavo
		{"abaixo de meio centavo cai", 101, 400, 4},        // 4,04 centavos
		{"acima de meio centavo sobe", 99, 500, 5},         // 4,95 centavos
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			imposto := CalcularImposto(c.bruto, c.bp)
			assert.Equal(t, c.esperado, imposto)
			// imposto + líquido == bruto, sempre
			assert.Equal(t, c.bruto, imposto+(c.bruto-imposto))
		})
	}
}

func TestCalcularLinhaCenarioReferencia(t *testing.T) {
	// bruto=100,00, alíquota 5%: imposto 5,00, líquido 95,00;
	// splits [3000,3000,4000]bp: [28,50, 28,50, 38,00]
	linha := CalcularLinha(parcelaBase(), 500, modeloPadrao())

	assert.Equal(t, int64(10000), linha.ValorBruto)
	assert.Equal(t, int64(500), linha.Imposto)
	assert.Equal(t, int64(9500), linha.Liquido)

	require.Len(t, linha.Advogados, 2)
	assert.Equal(t, uint(1), linha.Advogados[0].AdvogadoID)
	assert.Equal(t, "Antônio", linha.Advogados[0].Nome)
	assert.Equal(t, int64(2850), linha.Advogados[0].Valor)
	assert.Equal(t, uint(2), linha.Advogados[1].AdvogadoID)
	assert.Equal(t, int64(2850), linha.Advogados[1].Valor)
	assert.Equal(t, int64(3800), linha.Escritorio)
	assert.Equal(t, int64(0), linha.FundoReserva)

	assert.Equal(t, Pendencias{}, linha.Pendencias)
	assert.Equal(t, linha.Liquido, somaDestinos(linha))
}

func TestCalcularLinhaRestoVaiParaUltimoItem(t *testing.T) {
	// líquido indivisível: 10,01 com [3333,3333,3334]bp
	p := parcelaBase()
	p.ValorBrutoCentavos = 1001
	m := &ModeloResolvido{
		Codigo: "TERCOS",
		Valido: true,
		Itens: []ItemDistribuicao{
			{PercentualBp: 3333, Destino: modelodistribuicao.DestinoAdvogado},
			{PercentualBp: 3333, Destino: modelodistribuicao.DestinoEscritorio},
			{PercentualBp: 3334, Destino: modelodistribuicao.DestinoFundoReserva},
		},
	}
	linha := CalcularLinha(p, 0, m)

	require.Len(t, linha.Advogados, 1)
	assert.Equal(t, int64(333), linha.Advogados[0].Valor)
	assert.Equal(t, int64(333), linha.Escritorio)
	// o fundo é o último item e absorve os centavos de resto
	assert.Equal(t, int64(335), linha.FundoReserva)
	assert.Equal(t, linha.Liquido, somaDestinos(linha))
	assert.Equal(t, int64(1001), linha.Liquido)
}

func TestCalcularLinhaModeloInconsistente(t *testing.T) {
	// itens somando 9900 bp: pendência, rateio zerado, bruto/imposto/líquido preenchidos
	p := parcelaBase()
	m := modeloPadrao()
	m.Itens[2].PercentualBp = 3900
	m.Valido = false

	linha := CalcularLinha(p, 500, m)
	assert.True(t, linha.Pendencias.ModeloAusente)
	assert.Empty(t, linha.Advogados)
	assert.Equal(t, int64(0), linha.Escritorio)
	assert.Equal(t, int64(0), linha.FundoReserva)
	assert.Equal(t, int64(0), linha.Indicacao)
	assert.Equal(t, int64(10000), linha.ValorBruto)
	assert.Equal(t, int64(500), linha.Imposto)
	assert.Equal(t, int64(9500), linha.Liquido)
}

func TestCalcularLinhaSemModelo(t *testing.T) {
	linha := CalcularLinha(parcelaBase(), 500, nil)
	assert.True(t, linha.Pendencias.ModeloAusente)
	assert.Empty(t, linha.Advogados)
	assert.Equal(t, int64(9500), linha.Liquido)
}

func TestCalcularLinhaComSocioSemSplit(t *testing.T) {
	p := parcelaBase()
	p.ComSocio = true
	m := &ModeloResolvido{
		Codigo: "SO_PRINCIPAL",
		Valido: true,
		Itens: []ItemDistribuicao{
			{PercentualBp: 8000, Destino: modelodistribuicao.DestinoAdvogado},
			{PercentualBp: 2000, Destino: modelodistribuicao.DestinoEscritorio},
		},
	}
	linha := CalcularLinha(p, 0, m)
	assert.True(t, linha.Pendencias.SplitAusenteComSocio)
	assert.False(t, linha.Pendencias.ModeloAusente)
	// valores seguem calculados normalmente
	assert.Equal(t, linha.Liquido, somaDestinos(linha))
}

func TestCalcularLinhaSplitExcedido(t *testing.T) {
	// sócio com fatia maior que a do principal: aviso, mas linha calculada
	p := parcelaBase()
	p.ComSocio = true
	m := &ModeloResolvido{
		Codigo: "INVERTIDO",
		Valido: true,
		Itens: []ItemDistribuicao{
			{PercentualBp: 2000, Destino: modelodistribuicao.DestinoAdvogado},
			{PercentualBp: 5000, Destino: modelodistribuicao.DestinoAdvogado, AdvogadoID: ptr(2), AdvogadoNome: "Beatriz"},
			{PercentualBp: 3000, Destino: modelodistribuicao.DestinoEscritorio},
		},
	}
	linha := CalcularLinha(p, 0, m)
	assert.True(t, linha.Pendencias.SplitExcedido)
	assert.False(t, linha.Pendencias.SplitAusenteComSocio)
	require.Len(t, linha.Advogados, 2)
	assert.Equal(t, linha.Liquido, somaDestinos(linha))
}

func TestCalcularLinhaItemExplicitoDoPrincipalNaoEhSplit(t *testing.T) {
	// item ADVOGADO apontando para o próprio principal conta como fatia dele
	p := parcelaBase()
	p.ComSocio = true
	m := &ModeloResolvido{
		Codigo: "EXPLICITO",
		Valido: true,
		Itens: []ItemDistribuicao{
			{PercentualBp: 7000, Destino: modelodistribuicao.DestinoAdvogado, AdvogadoID: ptr(1), AdvogadoNome: "Antônio"},
			{PercentualBp: 3000, Destino: modelodistribuicao.DestinoEscritorio},
		},
	}
	linha := CalcularLinha(p, 0, m)
	assert.True(t, linha.Pendencias.SplitAusenteComSocio)
	require.Len(t, linha.Advogados, 1)
	assert.Equal(t, uint(1), linha.Advogados[0].AdvogadoID)
}

func TestCalcularLinhaDestinoIndicacao(t *testing.T) {
	p := parcelaBase()
	m := &ModeloResolvido{
		Codigo: "COM_INDICACAO",
		Valido: true,
		Itens: []ItemDistribuicao{
			{PercentualBp: 6000, Destino: modelodistribuicao.DestinoAdvogado},
			{PercentualBp: 2000, Destino: modelodistribuicao.DestinoEscritorio},
			{PercentualBp: 1000, Destino: modelodistribuicao.DestinoFundoReserva},
			{PercentualBp: 1000, Destino: modelodistribuicao.DestinoIndicacao},
		},
	}
	linha := CalcularLinha(p, 500, m)
	assert.Equal(t, int64(950), linha.Indicacao)
	assert.Equal(t, linha.Liquido, somaDestinos(linha))
}

func TestRatearSomaSempreFecha(t *testing.T) {
	itens := []ItemDistribuicao{
		{PercentualBp: 3333, Destino: modelodistribuicao.DestinoAdvogado},
		{PercentualBp: 3333, Destino: modelodistribuicao.DestinoEscritorio},
		{PercentualBp: 3334, Destino: modelodistribuicao.DestinoFundoReserva},
	}
	for _, liquido := range []int64{0, 1, 2, 999, 1000, 1001, 9500, 123457, 99999999} {
		fatias := ratear(liquido, itens)
		var soma int64
		for _, f := range fatias {
			soma += f
		}
		assert.Equal(t, liquido, soma, "liquido=%d", liquido)
	}
}

func somaDestinos(l Linha) int64 {
	soma := l.Escritorio + l.FundoReserva + l.Indicacao
	for _, a := range l.Advogados {
		soma += a.Valor
	}
	return soma
}
