package modelodistribuicao

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsistente(t *testing.T) {
	adv := uint(1)
	m := ModeloDistribuicao{
		Codigo: "PADRAO",
		Itens: []ItemModelo{
			{Ordem: 1, PercentualBp: 7000, Destino: DestinoAdvogado, AdvogadoID: &adv},
			{Ordem: 2, PercentualBp: 2000, Destino: DestinoEscritorio},
			{Ordem: 3, PercentualBp: 1000, Destino: DestinoFundoReserva},
		},
	}
	assert.Equal(t, 10000, m.SomaBp())
	assert.True(t, m.Consistente())

	m.Itens[2].PercentualBp = 900
	assert.Equal(t, 9900, m.SomaBp())
	assert.False(t, m.Consistente())
}

func TestConsistenteSemItens(t *testing.T) {
	m := ModeloDistribuicao{Codigo: "VAZIO"}
	assert.Equal(t, 0, m.SomaBp())
	assert.False(t, m.Consistente())
}

func TestDestinoValido(t *testing.T) {
	assert.True(t, DestinoValido(DestinoAdvogado))
	assert.True(t, DestinoValido(DestinoIndicacao))
	assert.False(t, DestinoValido("SOCIO"))
	assert.False(t, DestinoValido(""))
}
