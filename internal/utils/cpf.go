package utils

import (
	"fmt"
	"unicode"
)

// remove qualquer coisa que não seja dígito
func SanitizeDigits(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, r)
		}
	}
	return string(out)
}

// ValidateCPF valida os dois dígitos verificadores (módulo 11).
// Espera a string JÁ sanitizada (apenas dígitos).
func ValidateCPF(cpf string) bool {
	if len(cpf) != 11 {
		return false
	}
	// sequências com todos os dígitos iguais passam no checksum, mas são inválidas
	allEq := true
	for i := 1; i < 11; i++ {
		if cpf[i] != cpf[0] {
			allEq = false
			break
		}
	}
	if allEq {
		return false
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(cpf[i]-'0') * (10 - i)
	}
	d1 := 11 - (sum % 11)
	if d1 > 9 {
		d1 = 0
	}
	if d1 != int(cpf[9]-'0') {
		return false
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(cpf[i]-'0') * (11 - i)
	}
	d2 := 11 - (sum % 11)
	if d2 > 9 {
		d2 = 0
	}
	return d2 == int(cpf[10]-'0')
}

// FormatCPF aplica a máscara XXX.XXX.XXX-XX em um CPF normalizado.
// Se a entrada não tiver 11 dígitos, devolve como está.
func FormatCPF(cpf string) string {
	if len(cpf) != 11 {
		return cpf
	}
	return fmt.Sprintf("%s.%s.%s-%s", cpf[0:3], cpf[3:6], cpf[6:9], cpf[9:11])
}
