package utils

import "time"

// Limite inferior EXCLUSIVO: nascimentos a partir de 02/01/1900.
var minBirthDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

/*
ParseBirthDate interpreta uma data YYYY-MM-DD como meia-noite UTC.

A normalização para UTC evita o off-by-one clássico de parsear a data
no fuso local e comparar com limites em outro fuso. Regra canônica:
estritamente depois de 1900-01-01 e no máximo a data de hoje (UTC).
*/
func ParseBirthDate(raw string) (time.Time, bool) {
	d, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if !d.After(minBirthDate) || d.After(today) {
		return time.Time{}, false
	}
	return d, true
}

// Campo opcional: vazio é válido.
func ValidateBirthDate(raw string) bool {
	if raw == "" {
		return true
	}
	_, ok := ParseBirthDate(raw)
	return ok
}
