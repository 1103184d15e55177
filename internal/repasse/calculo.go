package repasse

import "github.com/barcellos-advocacia/api-gestao/internal/modelodistribuicao"

// CompetenciaAnterior devolve o mês imediatamente anterior ao informado,
// virando o ano em janeiro. O imposto da competência M sempre usa a
// alíquota configurada para M-1.
func CompetenciaAnterior(mes, ano int) (int, int) {
	if mes == 1 {
		return 12, ano - 1
	}
	return mes - 1, ano
}

// CalcularImposto aplica a alíquota em basis points sobre o bruto,
// arredondando half-up no centavo. Propriedade: imposto + líquido == bruto.
func CalcularImposto(brutoCentavos int64, aliquotaBp int) int64 {
	return (brutoCentavos*int64(aliquotaBp) + 5000) / 10000
}

// CalcularLinha computa uma linha de repasse para a parcela: imposto,
// líquido e o rateio do líquido pelos itens do modelo.
//
// Rateio em inteiros: cada item leva floor(liquido*bp/10000) e o resto de
// centavos vai para o ÚLTIMO item na ordem do modelo, garantindo que a soma
// das fatias feche exatamente o líquido.
//
// Modelo ausente ou inconsistente zera o rateio e marca pendência; bruto,
// imposto e líquido continuam preenchidos. Nada aqui aborta a prévia.
func CalcularLinha(p ParcelaCompetencia, aliquotaBp int, modelo *ModeloResolvido) Linha {
	imposto := CalcularImposto(p.ValorBrutoCentavos, aliquotaBp)
	linha := Linha{
		ParcelaID:      p.ParcelaID,
		ContratoID:     p.ContratoID,
		NumeroContrato: p.NumeroContrato,
		ClienteID:      p.ClienteID,
		ClienteNome:    p.ClienteNome,
		ValorBruto:     p.ValorBrutoCentavos,
		AliquotaBp:     aliquotaBp,
		Imposto:        imposto,
		Liquido:        p.ValorBrutoCentavos - imposto,
		Advogados:      []ValorAdvogado{},
	}

	if modelo == nil || !modelo.Valido {
		linha.Pendencias.ModeloAusente = true
		return linha
	}

	fatias := ratear(linha.Liquido, modelo.Itens)

	var (
		porAdvogado    = map[uint]*ValorAdvogado{}
		ordemAdvogados []uint
		fatiaPrincipal int64
		fatiaSplits    int64
		temSplitSocio  bool
	)
	for i, item := range modelo.Itens {
		valor := fatias[i]
		switch item.Destino {
		case modelodistribuicao.DestinoEscritorio:
			linha.Escritorio += valor
		case modelodistribuicao.DestinoFundoReserva:
			linha.FundoReserva += valor
		case modelodistribuicao.DestinoIndicacao:
			linha.Indicacao += valor
		case modelodistribuicao.DestinoAdvogado:
			id := p.AdvogadoID
			nome := p.AdvogadoNome
			if item.AdvogadoID != nil {
				id = *item.AdvogadoID
				nome = item.AdvogadoNome
			}
			if v, ok := porAdvogado[id]; ok {
				v.Valor += valor
			} else {
				porAdvogado[id] = &ValorAdvogado{AdvogadoID: id, Nome: nome, Valor: valor}
				ordemAdvogados = append(ordemAdvogados, id)
			}
			if id == p.AdvogadoID {
				fatiaPrincipal += valor
			} else {
				fatiaSplits += valor
				temSplitSocio = true
			}
		}
	}
	for _, id := range ordemAdvogados {
		linha.Advogados = append(linha.Advogados, *porAdvogado[id])
	}

	if p.ComSocio && !temSplitSocio {
		linha.Pendencias.SplitAusenteComSocio = true
	}
	// Aviso, não bloqueio: a linha sai calculada e vai para revisão manual.
	if temSplitSocio && fatiaSplits > fatiaPrincipal {
		linha.Pendencias.SplitExcedido = true
	}
	return linha
}

// ratear distribui liquido pelos itens em floor; o resto vai para o último.
func ratear(liquido int64, itens []ItemDistribuicao) []int64 {
	fatias := make([]int64, len(itens))
	if len(itens) == 0 {
		return fatias
	}
	var soma int64
	for i, item := range itens {
		fatias[i] = liquido * int64(item.PercentualBp) / 10000
		soma += fatias[i]
	}
	fatias[len(fatias)-1] += liquido - soma
	return fatias
}
