package service

import (
	"context"
	"errors"
	"time"

	"github.com/Werneck0live/cadastro-agricultor/internal/models"
	"github.com/Werneck0live/cadastro-agricultor/internal/repository"
	"github.com/Werneck0live/cadastro-agricultor/internal/utils"
)

type Store interface {
	Create(ctx context.Context, f *models.Farmer) (string, error)
	GetByID(ctx context.Context, id string) (*models.Farmer, error)
	GetByCPF(ctx context.Context, cpf string) (*models.Farmer, error)
	Find(ctx context.Context, filter repository.Filter, limit, skip int64) ([]models.Farmer, error)
	Count(ctx context.Context, filter repository.Filter) (int64, error)
	UpdateProfile(ctx context.Context, id string, upd repository.ProfileUpdate) (*models.Farmer, error)
	SetActive(ctx context.Context, id string, active bool) (*models.Farmer, error)
	Delete(ctx context.Context, id string) error
}

type CreateInput struct {
	FullName  string
	CPF       string
	BirthDate string // YYYY-MM-DD, opcional
	Phone     string // opcional
	Active    *bool  // default: true
}

// Update parcial: ponteiro nil = campo não informado. CPF é imutável.
type UpdateProfileInput struct {
	FullName  *string
	BirthDate *string
	Phone     *string
	Active    *bool
}

// Resposta de listagem no contrato consumido pelo painel admin.
type Page struct {
	Farmers    []models.Farmer `json:"farmers"`
	Total      int64           `json:"total"`
	Page       int64           `json:"page"`
	TotalPages int64           `json:"totalPages"`
}

type FarmerService struct {
	store Store
}

func NewFarmerService(store Store) *FarmerService {
	return &FarmerService{store: store}
}

func (s *FarmerService) Create(ctx context.Context, in CreateInput) (*models.Farmer, error) {
	if len(in.FullName) < 3 {
		return nil, invalid("fullName", "must have at least 3 characters")
	}

	cpf := utils.SanitizeDigits(in.CPF)
	if !utils.ValidateCPF(cpf) {
		return nil, invalid("cpf", "invalid cpf")
	}

	var birthDate *time.Time
	if in.BirthDate != "" {
		d, ok := utils.ParseBirthDate(in.BirthDate)
		if !ok {
			return nil, invalid("birthDate", "must be between 1900-01-01 (exclusive) and today")
		}
		birthDate = &d
	}

	phone := utils.SanitizeDigits(in.Phone)
	if !utils.ValidatePhone(phone) {
		return nil, invalid("phone", "must have 10 or 11 digits with a valid area code")
	}

	// Checagem explícita de duplicidade; o índice único cobre a corrida.
	if _, err := s.store.GetByCPF(ctx, cpf); err == nil {
		return nil, ErrDuplicateCPF
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}

	f := &models.Farmer{
		FullName:  in.FullName,
		CPF:       cpf,
		BirthDate: birthDate,
		Phone:     phone,
		Active:    active,
	}
	if _, err := s.store.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *FarmerService) List(ctx context.Context, page, limit int64, filter repository.Filter) (*Page, error) {
	// valores não-positivos caem no mínimo 1 em vez de virar skip negativo
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	filter.CPF = utils.SanitizeDigits(filter.CPF)

	skip := (page - 1) * limit
	farmers, err := s.store.Find(ctx, filter, limit, skip)
	if err != nil {
		return nil, err
	}
	total, err := s.store.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}
	return &Page{
		Farmers:    farmers,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

func (s *FarmerService) GetByID(ctx context.Context, id string) (*models.Farmer, error) {
	return s.store.GetByID(ctx, id)
}

func (s *FarmerService) UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) (*models.Farmer, error) {
	upd := repository.ProfileUpdate{Active: in.Active}

	if in.FullName != nil {
		if len(*in.FullName) < 3 {
			return nil, invalid("fullName", "must have at least 3 characters")
		}
		upd.FullName = in.FullName
	}
	if in.BirthDate != nil {
		d, ok := utils.ParseBirthDate(*in.BirthDate)
		if !ok {
			return nil, invalid("birthDate", "must be between 1900-01-01 (exclusive) and today")
		}
		upd.BirthDate = &d
	}
	if in.Phone != nil {
		phone := utils.SanitizeDigits(*in.Phone)
		if !utils.ValidatePhone(phone) {
			return nil, invalid("phone", "must have 10 or 11 digits with a valid area code")
		}
		upd.Phone = &phone
	}

	return s.store.UpdateProfile(ctx, id, upd)
}

// ToggleStatus inverte o flag active e nada mais.
func (s *FarmerService) ToggleStatus(ctx context.Context, id string) (*models.Farmer, error) {
	f, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.store.SetActive(ctx, id, !f.Active)
}

// Remove apaga o registro em definitivo. Só é permitido com active=false.
func (s *FarmerService) Remove(ctx context.Context, id string) error {
	f, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if f.Active {
		return ErrFarmerActive
	}
	return s.store.Delete(ctx, id)
}
