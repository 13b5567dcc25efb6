package handlers

import (
	"errors"
	"regexp"
)

// formato de _id do Mongo: 24 caracteres hexadecimais
var idPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

func validIDFormat(id string) bool {
	return idPattern.MatchString(id)
}

func validateCreateDTO(d CreateFarmerDTO) error {
	if d.FullName == "" {
		return errors.New("fullName is required")
	}
	if d.CPF == "" {
		return errors.New("cpf is required")
	}
	return nil
}
