package repasse

// Engine monta a prévia de repasses de uma competência. É uma computação
// pura sobre os snapshots devolvidos pelos buscadores: nenhum estado é
// compartilhado entre chamadas, e chamadas concorrentes não precisam de
// coordenação.
type Engine struct {
	parcelas  BuscadorParcelas
	aliquotas BuscadorAliquota
	modelos   BuscadorModelo
}

func NewEngine(parcelas BuscadorParcelas, aliquotas BuscadorAliquota, modelos BuscadorModelo) *Engine {
	return &Engine{parcelas: parcelas, aliquotas: aliquotas, modelos: modelos}
}

// ResolverAliquota busca a alíquota do mês anterior à competência.
// Sem configuração, devolve 0 bp com Fallback marcado — a prévia segue.
func (e *Engine) ResolverAliquota(mes, ano int) (AliquotaResolvida, error) {
	mesOrigem, anoOrigem := CompetenciaAnterior(mes, ano)
	bp, encontrada, err := e.aliquotas.AliquotaDoPeriodo(mesOrigem, anoOrigem)
	if err != nil {
		return AliquotaResolvida{}, err
	}
	if !encontrada {
		return AliquotaResolvida{PercentualBp: 0, Mes: mesOrigem, Ano: anoOrigem, Fallback: true}, nil
	}
	return AliquotaResolvida{PercentualBp: bp, Mes: mesOrigem, Ano: anoOrigem}, nil
}

// Previa calcula todas as linhas e os totais da competência (mes, ano).
// Pendência de configuração nunca derruba a prévia: só marca a linha.
func (e *Engine) Previa(mes, ano int) (*Previa, error) {
	aliquota, err := e.ResolverAliquota(mes, ano)
	if err != nil {
		return nil, err
	}

	todas, err := e.parcelas.ParcelasDaCompetencia(mes, ano)
	if err != nil {
		return nil, err
	}
	selecionadas := SelecionarParcelas(mes, ano, todas)

	// modelos repetem entre contratos; resolve cada código uma vez por prévia
	modelos := map[string]*ModeloResolvido{}
	linhas := make([]Linha, 0, len(selecionadas))
	for _, p := range selecionadas {
		var modelo *ModeloResolvido
		if p.ModeloCodigo != "" {
			m, ok := modelos[p.ModeloCodigo]
			if !ok {
				m, err = e.modelos.ModeloPorCodigo(p.ModeloCodigo)
				if err != nil {
					return nil, err
				}
				modelos[p.ModeloCodigo] = m
			}
			modelo = m
		}
		linhas = append(linhas, CalcularLinha(p, aliquota.PercentualBp, modelo))
	}

	return &Previa{
		AliquotaUsada: aliquota,
		Linhas:        linhas,
		Totais:        Agregar(linhas),
	}, nil
}
