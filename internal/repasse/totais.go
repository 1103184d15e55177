package repasse

// Agregar soma campo a campo todas as linhas da competência. As fatias por
// advogado são mescladas por ID, na ordem em que cada advogado aparece.
func Agregar(linhas []Linha) Totais {
	t := Totais{Advogados: []ValorAdvogado{}}
	porAdvogado := map[uint]int{}
	for _, l := range linhas {
		t.Valor += l.ValorBruto
		t.Imposto += l.Imposto
		t.Liquido += l.Liquido
		t.Escritorio += l.Escritorio
		t.FundoReserva += l.FundoReserva
		t.Indicacao += l.Indicacao
		for _, a := range l.Advogados {
			if idx, ok := porAdvogado[a.AdvogadoID]; ok {
				t.Advogados[idx].Valor += a.Valor
			} else {
				porAdvogado[a.AdvogadoID] = len(t.Advogados)
				t.Advogados = append(t.Advogados, ValorAdvogado{
					AdvogadoID: a.AdvogadoID,
					Nome:       a.Nome,
					Valor:      a.Valor,
				})
			}
		}
	}
	return t
}
