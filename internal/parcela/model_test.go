package parcela

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusEfetivo(t *testing.T) {
	agora := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

	casos := []struct {
		nome       string
		status     string
		vencimento time.Time
		esperado   string
	}{
		{"prevista no futuro", StatusPrevista, agora.AddDate(0, 1, 0), StatusPrevista},
		{"prevista vencida vira atrasada", StatusPrevista, agora.AddDate(0, -1, 0), StatusAtrasada},
		{"recebida não atrasa", StatusRecebida, agora.AddDate(0, -2, 0), StatusRecebida},
		{"cancelada não atrasa", StatusCancelada, agora.AddDate(0, -2, 0), StatusCancelada},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			p := Parcela{Status: c.status, DataVencimento: c.vencimento}
			assert.Equal(t, c.esperado, p.StatusEfetivo(agora))
		})
	}
}

func TestCompetencia(t *testing.T) {
	p := Parcela{DataVencimento: time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)}
	mes, ano := p.Competencia()
	assert.Equal(t, 1, mes)
	assert.Equal(t, 2026, ano)
}

func TestStatusValido(t *testing.T) {
	assert.True(t, StatusValido(StatusPrevista))
	assert.True(t, StatusValido(StatusRecebida))
	assert.True(t, StatusValido(StatusCancelada))
	// ATRASADA é derivado, nunca gravado
	assert.False(t, StatusValido(StatusAtrasada))
	assert.False(t, StatusValido("Pendente"))
}
