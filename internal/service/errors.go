package service

import (
	"errors"

	"github.com/Werneck0live/cadastro-agricultor/internal/repository"
)

// Erros de domínio expostos na borda do serviço. Os sentinelas do
// repositório são reexportados para o handler não importar dois pacotes.
var (
	ErrDuplicateCPF = repository.ErrDuplicateCPF
	ErrNotFound     = repository.ErrNotFound
	ErrFarmerActive = errors.New("cannot delete an active farmer")
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func invalid(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Message: msg}
}
