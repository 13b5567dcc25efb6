package utils

import "fmt"

// ValidatePhone valida telefone brasileiro já sanitizado (apenas dígitos).
// Campo opcional: vazio é válido. Caso contrário: 10 ou 11 dígitos,
// DDD entre 11 e 99 (primeiro dígito nunca zero).
func ValidatePhone(phone string) bool {
	if phone == "" {
		return true
	}
	if len(phone) != 10 && len(phone) != 11 {
		return false
	}
	if phone[0] < '1' || phone[0] > '9' {
		return false
	}
	return phone[1] >= '0' && phone[1] <= '9'
}

// FormatPhone aplica a máscara (XX) XXXXX-XXXX ou (XX) XXXX-XXXX.
func FormatPhone(phone string) string {
	switch len(phone) {
	case 11:
		return fmt.Sprintf("(%s) %s-%s", phone[0:2], phone[2:7], phone[7:11])
	case 10:
		return fmt.Sprintf("(%s) %s-%s", phone[0:2], phone[2:6], phone[6:10])
	default:
		return phone
	}
}
