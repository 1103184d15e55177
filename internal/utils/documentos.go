package utils

import "strings"

// LimparDocumento remove máscara (pontos, traços, barras e espaços) de um CPF/CNPJ.
func LimparDocumento(doc string) string {
	var b strings.Builder
	for _, r := range doc {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidarDocumento aceita CPF (11 dígitos) ou CNPJ (14 dígitos), com ou sem máscara.
func ValidarDocumento(doc string) bool {
	d := LimparDocumento(doc)
	switch len(d) {
	case 11:
		return ValidarCPF(d)
	case 14:
		return ValidarCNPJ(d)
	}
	return false
}

// ValidarCPF verifica os dois dígitos verificadores do CPF.
func ValidarCPF(cpf string) bool {
	d := LimparDocumento(cpf)
	if len(d) != 11 || todosIguais(d) {
		return false
	}
	// primeiro dígito: pesos 10..2 sobre os 9 primeiros
	if digitoVerificador(d[:9], 10) != int(d[9]-'0') {
		return false
	}
	// segundo dígito: pesos 11..2 sobre os 10 primeiros
	return digitoVerificador(d[:10], 11) == int(d[10]-'0')
}

// ValidarCNPJ verifica os dois dígitos verificadores do CNPJ.
func ValidarCNPJ(cnpj string) bool {
	d := LimparDocumento(cnpj)
	if len(d) != 14 || todosIguais(d) {
		return false
	}
	pesos1 := []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	pesos2 := []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	if digitoCNPJ(d[:12], pesos1) != int(d[12]-'0') {
		return false
	}
	return digitoCNPJ(d[:13], pesos2) == int(d[13]-'0')
}

func digitoVerificador(parcial string, pesoInicial int) int {
	soma := 0
	for i, r := range parcial {
		soma += int(r-'0') * (pesoInicial - i)
	}
	resto := soma % 11
	if resto < 2 {
		return 0
	}
	return 11 - resto
}

func digitoCNPJ(parcial string, pesos []int) int {
	soma := 0
	for i, r := range parcial {
		soma += int(r-'0') * pesos[i]
	}
	resto := soma % 11
	if resto < 2 {
		return 0
	}
	return 11 - resto
}

// Sequências como 111.111.111-11 passam no cálculo mas não são documentos válidos.
func todosIguais(d string) bool {
	for i := 1; i < len(d); i++ {
		if d[i] != d[0] {
			return false
		}
	}
	return true
}
