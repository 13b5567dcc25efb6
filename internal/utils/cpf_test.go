package utils

/*

go test -run 'TestValidateCPF|TestSanitizeDigits|TestFormatCPF' -v ./internal/utils -count=1

*/

import "testing"

func TestSanitizeDigits(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"111.444.777-35", "11144477735"},
		{"(83) 98877-1234", "83988771234"},
		{"abc", ""},
		{"", ""},
		{"12 34", "1234"},
	}
	for _, tc := range cases {
		if got := SanitizeDigits(tc.in); got != tc.want {
			t.Fatalf("in=%q want=%q got=%q", tc.in, tc.want, got)
		}
	}
}

func TestValidateCPF(t *testing.T) {
	cases := []struct {
		cpf  string
		want bool
	}{
		{"11144477735", true},
		{"52998224725", true},
		{"12345678909", true},

		// primeiro dígito verificador trocado
		{"11144477725", false},
		// segundo dígito verificador trocado
		{"11144477734", false},

		// todos os dígitos iguais passam no mod 11, mas são fraude conhecida
		{"00000000000", false},
		{"11111111111", false},
		{"99999999999", false},

		// tamanho errado
		{"1114447773", false},
		{"111444777350", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidateCPF(tc.cpf); got != tc.want {
			t.Fatalf("cpf=%q want=%v got=%v", tc.cpf, tc.want, got)
		}
	}
}

// entrada mascarada precisa passar pelo SanitizeDigits antes do ValidateCPF
func TestValidateCPF_AfterSanitize(t *testing.T) {
	if !ValidateCPF(SanitizeDigits("111.444.777-35")) {
		t.Fatal("masked valid cpf should validate after sanitize")
	}
	if ValidateCPF("111.444.777-35") {
		t.Fatal("masked cpf must not validate without sanitize")
	}
}

func TestFormatCPF(t *testing.T) {
	if got := FormatCPF("11144477735"); got != "111.444.777-35" {
		t.Fatalf("got=%q", got)
	}
	// tamanho inesperado devolve como está
	if got := FormatCPF("123"); got != "123" {
		t.Fatalf("got=%q", got)
	}
}
