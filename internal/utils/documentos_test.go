package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidarCPF(t *testing.T) {
	casos := []struct {
		nome   string
		cpf    string
		valido bool
	}{
		{"válido sem máscara", "52998224725", true},
		{"válido com máscara", "529.982.247-25", true},
		{"dígito verificador errado", "52998224726", false},
		{"sequência repetida", "111.111.111-11", false},
		{"curto demais", "1234567890", false},
		{"vazio", "", false},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			assert.Equal(t, c.valido, ValidarCPF(c.cpf))
		})
	}
}

func TestValidarCNPJ(t *testing.T) {
	casos := []struct {
		nome   string
		cnpj   string
		valido bool
	}{
		{"válido sem máscara", "11222333000181", true},
		{"válido com máscara", "11.222.333/0001-81", true},
		{"dígito verificador errado", "11222333000182", false},
		{"sequência repetida", "11.111.111/1111-11", false},
		{"curto demais", "1122233300018", false},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			assert.Equal(t, c.valido, ValidarCNPJ(c.cnpj))
		})
	}
}

func TestValidarDocumento(t *testing.T) {
	assert.True(t, ValidarDocumento("529.982.247-25"))
	assert.True(t, ValidarDocumento("11.222.333/0001-81"))
	assert.False(t, ValidarDocumento("12345"))
	assert.False(t, ValidarDocumento("529982247251234"))
}

func TestLimparDocumento(t *testing.T) {
	assert.Equal(t, "11222333000181", LimparDocumento("11.222.333/0001-81"))
	assert.Equal(t, "52998224725", LimparDocumento(" 529.982.247-25 "))
}
