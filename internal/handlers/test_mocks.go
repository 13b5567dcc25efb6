package handlers

import (
	"context"
	"errors"

	"github.com/Werneck0live/cadastro-agricultor/internal/models"
	"github.com/Werneck0live/cadastro-agricultor/internal/repository"
	"github.com/Werneck0live/cadastro-agricultor/internal/service"

	amqp "github.com/rabbitmq/amqp091-go"
)

type svcMock struct {
	CreateFn        func(ctx context.Context, in service.CreateInput) (*models.Farmer, error)
	ListFn          func(ctx context.Context, page, limit int64, filter repository.Filter) (*service.Page, error)
	GetByIDFn       func(ctx context.Context, id string) (*models.Farmer, error)
	UpdateProfileFn func(ctx context.Context, id string, in service.UpdateProfileInput) (*models.Farmer, error)
	ToggleStatusFn  func(ctx context.Context, id string) (*models.Farmer, error)
	RemoveFn        func(ctx context.Context, id string) error
}

func (m *svcMock) Create(ctx context.Context, in service.CreateInput) (*models.Farmer, error) {
	if m.CreateFn == nil {
		return nil, errors.New("CreateFn not set")
	}
	return m.CreateFn(ctx, in)
}
func (m *svcMock) List(ctx context.Context, page, limit int64, filter repository.Filter) (*service.Page, error) {
	if m.ListFn == nil {
		return nil, errors.New("ListFn not set")
	}
	return m.ListFn(ctx, page, limit, filter)
}
func (m *svcMock) GetByID(ctx context.Context, id string) (*models.Farmer, error) {
	if m.GetByIDFn == nil {
		return nil, errors.New("GetByIDFn not set")
	}
	return m.GetByIDFn(ctx, id)
}
func (m *svcMock) UpdateProfile(ctx context.Context, id string, in service.UpdateProfileInput) (*models.Farmer, error) {
	if m.UpdateProfileFn == nil {
		return nil, errors.New("UpdateProfileFn not set")
	}
	return m.UpdateProfileFn(ctx, id, in)
}
func (m *svcMock) ToggleStatus(ctx context.Context, id string) (*models.Farmer, error) {
	if m.ToggleStatusFn == nil {
		return nil, errors.New("ToggleStatusFn not set")
	}
	return m.ToggleStatusFn(ctx, id)
}
func (m *svcMock) Remove(ctx context.Context, id string) error {
	if m.RemoveFn == nil {
		return errors.New("RemoveFn not set")
	}
	return m.RemoveFn(ctx, id)
}

type pubMock struct {
	PublishFn func(ctx context.Context, body string, headers amqp.Table) error
	CloseFn   func() error
}

func (p *pubMock) Publish(ctx context.Context, body string, headers amqp.Table) error {
	if p.PublishFn == nil {
		return nil
	}
	return p.PublishFn(ctx, body, headers)
}
func (p *pubMock) Close() error {
	if p.CloseFn == nil {
		return nil
	}
	return p.CloseFn()
}
