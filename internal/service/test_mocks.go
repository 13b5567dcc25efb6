package service

import (
	"context"
	"errors"

	"github.com/Werneck0live/cadastro-agricultor/internal/models"
	"github.com/Werneck0live/cadastro-agricultor/internal/repository"
)

type storeMock struct {
	CreateFn        func(ctx context.Context, f *models.Farmer) (string, error)
	GetByIDFn       func(ctx context.Context, id string) (*models.Farmer, error)
	GetByCPFFn      func(ctx context.Context, cpf string) (*models.Farmer, error)
	FindFn          func(ctx context.Context, filter repository.Filter, limit, skip int64) ([]models.Farmer, error)
	CountFn         func(ctx context.Context, filter repository.Filter) (int64, error)
	UpdateProfileFn func(ctx context.Context, id string, upd repository.ProfileUpdate) (*models.Farmer, error)
	SetActiveFn     func(ctx context.Context, id string, active bool) (*models.Farmer, error)
	DeleteFn        func(ctx context.Context, id string) error
}

func (m *storeMock) Create(ctx context.Context, f *models.Farmer) (string, error) {
	if m.CreateFn == nil {
		return "", errors.New("CreateFn not set")
	}
	return m.CreateFn(ctx, f)
}
func (m *storeMock) GetByID(ctx context.Context, id string) (*models.Farmer, error) {
	if m.GetByIDFn == nil {
		return nil, errors.New("GetByIDFn not set")
	}
	return m.GetByIDFn(ctx, id)
}
func (m *storeMock) GetByCPF(ctx context.Context, cpf string) (*models.Farmer, error) {
	if m.GetByCPFFn == nil {
		return nil, ErrNotFound
	}
	return m.GetByCPFFn(ctx, cpf)
}
func (m *storeMock) Find(ctx context.Context, filter repository.Filter, limit, skip int64) ([]models.Farmer, error) {
	if m.FindFn == nil {
		return nil, errors.New("FindFn not set")
	}
	return m.FindFn(ctx, filter, limit, skip)
}
func (m *storeMock) Count(ctx context.Context, filter repository.Filter) (int64, error) {
	if m.CountFn == nil {
		return 0, errors.New("CountFn not set")
	}
	return m.CountFn(ctx, filter)
}
func (m *storeMock) UpdateProfile(ctx context.Context, id string, upd repository.ProfileUpdate) (*models.Farmer, error) {
	if m.UpdateProfileFn == nil {
		return nil, errors.New("UpdateProfileFn not set")
	}
	return m.UpdateProfileFn(ctx, id, upd)
}
func (m *storeMock) SetActive(ctx context.Context, id string, active bool) (*models.Farmer, error) {
	if m.SetActiveFn == nil {
		return nil, errors.New("SetActiveFn not set")
	}
	return m.SetActiveFn(ctx, id, active)
}
func (m *storeMock) Delete(ctx context.Context, id string) error {
	if m.DeleteFn == nil {
		return errors.New("DeleteFn not set")
	}
	return m.DeleteFn(ctx, id)
}
