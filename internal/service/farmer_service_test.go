package service

/*

go test -run 'TestCreate_|TestList_|TestUpdateProfile_|TestToggleStatus_|TestRemove_' -v ./internal/service -count=1

*/

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Werneck0live/cadastro-agricultor/internal/models"
	"github.com/Werneck0live/cadastro-agricultor/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const validCPF = "111.444.777-35"
const validCPFDigits = "11144477735"

func TestCreate_Valid(t *testing.T) {
	var created *models.Farmer
	sm := &storeMock{
		CreateFn: func(_ context.Context, f *models.Farmer) (string, error) {
			created = f
			return primitive.NewObjectID().Hex(), nil
		},
	}
	svc := NewFarmerService(sm)

	f, err := svc.Create(context.Background(), CreateInput{
		FullName:  "José Carlos da Silva",
		CPF:       validCPF,
		BirthDate: "1968-03-12",
		Phone:     "(83) 98877-1234",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created == nil {
		t.Fatal("store.Create não foi chamado")
	}
	// CPF e telefone armazenados normalizados
	if f.CPF != validCPFDigits {
		t.Fatalf("cpf não normalizado: %q", f.CPF)
	}
	if f.Phone != "83988771234" {
		t.Fatalf("phone não normalizado: %q", f.Phone)
	}
	// active default true
	if !f.Active {
		t.Fatal("active deveria ser true por padrão")
	}
	if f.BirthDate == nil || !f.BirthDate.Equal(time.Date(1968, 3, 12, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("birthDate inesperado: %v", f.BirthDate)
	}
}

func TestCreate_DuplicateCPF(t *testing.T) {
	createCalled := false
	sm := &storeMock{
		GetByCPFFn: func(_ context.Context, cpf string) (*models.Farmer, error) {
			if cpf != validCPFDigits {
				t.Fatalf("lookup com cpf não normalizado: %q", cpf)
			}
			return &models.Farmer{CPF: cpf}, nil
		},
		CreateFn: func(_ context.Context, _ *models.Farmer) (string, error) {
			createCalled = true
			return "", nil
		},
	}
	svc := NewFarmerService(sm)

	_, err := svc.Create(context.Background(), CreateInput{FullName: "Maria", CPF: validCPF})
	if !errors.Is(err, ErrDuplicateCPF) {
		t.Fatalf("want ErrDuplicateCPF got=%v", err)
	}
	if createCalled {
		t.Fatal("não pode criar um segundo registro com CPF duplicado")
	}
}

func TestCreate_ValidationErrors(t *testing.T) {
	svc := NewFarmerService(&storeMock{})

	cases := []struct {
		name  string
		in    CreateInput
		field string
	}{
		{"short name", CreateInput{FullName: "Jo", CPF: validCPF}, "fullName"},
		{"bad cpf checksum", CreateInput{FullName: "Maria", CPF: "111.444.777-36"}, "cpf"},
		{"all equal cpf", CreateInput{FullName: "Maria", CPF: "000.000.000-00"}, "cpf"},
		{"bad phone ddd", CreateInput{FullName: "Maria", CPF: validCPF, Phone: "0187654321"}, "phone"},
		{"bad birth date", CreateInput{FullName: "Maria", CPF: validCPF, BirthDate: "1899-12-31"}, "birthDate"},
	}
	for _, tc := range cases {
		_, err := svc.Create(context.Background(), tc.in)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("%s: want ValidationError got=%v", tc.name, err)
		}
		if ve.Field != tc.field {
			t.Fatalf("%s: want field=%s got=%s", tc.name, tc.field, ve.Field)
		}
	}
}

// 25 registros com limit=20: página 1 tem 20, página 2 tem 5, totalPages=2
func TestList_Pagination(t *testing.T) {
	all := make([]models.Farmer, 25)
	for i := range all {
		all[i] = models.Farmer{ID: primitive.NewObjectID(), FullName: "Agricultor", CPF: validCPFDigits}
	}

	sm := &storeMock{
		FindFn: func(_ context.Context, _ repository.Filter, limit, skip int64) ([]models.Farmer, error) {
			end := skip + limit
			if end > int64(len(all)) {
				end = int64(len(all))
			}
			if skip >= int64(len(all)) {
				return []models.Farmer{}, nil
			}
			return all[skip:end], nil
		},
		CountFn: func(_ context.Context, _ repository.Filter) (int64, error) {
			return int64(len(all)), nil
		},
	}
	svc := NewFarmerService(sm)

	p1, err := svc.List(context.Background(), 1, 20, repository.Filter{})
	if err != nil {
		t.Fatalf("list p1: %v", err)
	}
	if len(p1.Farmers) != 20 || p1.Total != 25 || p1.Page != 1 || p1.TotalPages != 2 {
		t.Fatalf("p1 inesperada: len=%d total=%d page=%d totalPages=%d",
			len(p1.Farmers), p1.Total, p1.Page, p1.TotalPages)
	}

	p2, err := svc.List(context.Background(), 2, 20, repository.Filter{})
	if err != nil {
		t.Fatalf("list p2: %v", err)
	}
	if len(p2.Farmers) != 5 || p2.TotalPages != 2 {
		t.Fatalf("p2 inesperada: len=%d totalPages=%d", len(p2.Farmers), p2.TotalPages)
	}
}

// page/limit não-positivos caem no mínimo 1 em vez de skip negativo
func TestList_ClampsNonPositive(t *testing.T) {
	sm := &storeMock{
		FindFn: func(_ context.Context, _ repository.Filter, limit, skip int64) ([]models.Farmer, error) {
			if limit != 1 || skip != 0 {
				t.Fatalf("want limit=1 skip=0 got limit=%d skip=%d", limit, skip)
			}
			return []models.Farmer{}, nil
		},
		CountFn: func(_ context.Context, _ repository.Filter) (int64, error) { return 0, nil },
	}
	svc := NewFarmerService(sm)

	p, err := svc.List(context.Background(), -3, 0, repository.Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if p.Page != 1 || p.TotalPages != 0 {
		t.Fatalf("page=%d totalPages=%d", p.Page, p.TotalPages)
	}
}

// o filtro de CPF aceita entrada mascarada e consulta pelos dígitos
func TestList_SanitizesCPFFilter(t *testing.T) {
	sm := &storeMock{
		FindFn: func(_ context.Context, filter repository.Filter, _, _ int64) ([]models.Farmer, error) {
			if filter.CPF != "11144" {
				t.Fatalf("filtro cpf não sanitizado: %q", filter.CPF)
			}
			return []models.Farmer{}, nil
		},
		CountFn: func(_ context.Context, _ repository.Filter) (int64, error) { return 0, nil },
	}
	svc := NewFarmerService(sm)

	if _, err := svc.List(context.Background(), 1, 20, repository.Filter{CPF: "111.44"}); err != nil {
		t.Fatalf("list: %v", err)
	}
}

func TestUpdateProfile_PartialMerge(t *testing.T) {
	name := "Maria Aparecida Souza"
	sm := &storeMock{
		UpdateProfileFn: func(_ context.Context, id string, upd repository.ProfileUpdate) (*models.Farmer, error) {
			if upd.FullName == nil || *upd.FullName != name {
				t.Fatalf("fullName: %v", upd.FullName)
			}
			// campos omitidos não entram no $set
			if upd.BirthDate != nil || upd.Phone != nil || upd.Active != nil {
				t.Fatalf("campos omitidos presentes: %+v", upd)
			}
			return &models.Farmer{FullName: name}, nil
		},
	}
	svc := NewFarmerService(sm)

	f, err := svc.UpdateProfile(context.Background(), primitive.NewObjectID().Hex(), UpdateProfileInput{
		FullName: &name,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if f.FullName != name {
		t.Fatalf("payload: %#v", f)
	}
}

func TestUpdateProfile_InvalidField(t *testing.T) {
	svc := NewFarmerService(&storeMock{})

	bad := "0187654321"
	_, err := svc.UpdateProfile(context.Background(), primitive.NewObjectID().Hex(), UpdateProfileInput{
		Phone: &bad,
	})
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "phone" {
		t.Fatalf("want phone ValidationError got=%v", err)
	}
}

// chamar duas vezes devolve o registro ao estado original
func TestToggleStatus_Idempotence(t *testing.T) {
	id := primitive.NewObjectID()
	farmer := &models.Farmer{ID: id, FullName: "José", CPF: validCPFDigits, Active: true}

	sm := &storeMock{
		GetByIDFn: func(_ context.Context, _ string) (*models.Farmer, error) {
			cp := *farmer
			return &cp, nil
		},
		SetActiveFn: func(_ context.Context, _ string, active bool) (*models.Farmer, error) {
			farmer.Active = active
			cp := *farmer
			return &cp, nil
		},
	}
	svc := NewFarmerService(sm)

	f1, err := svc.ToggleStatus(context.Background(), id.Hex())
	if err != nil || f1.Active {
		t.Fatalf("1º toggle: active=%v err=%v", f1.Active, err)
	}
	f2, err := svc.ToggleStatus(context.Background(), id.Hex())
	if err != nil || !f2.Active {
		t.Fatalf("2º toggle: active=%v err=%v", f2.Active, err)
	}
}

func TestRemove_ActiveFails(t *testing.T) {
	deleteCalled := false
	sm := &storeMock{
		GetByIDFn: func(_ context.Context, id string) (*models.Farmer, error) {
			return &models.Farmer{Active: true}, nil
		},
		DeleteFn: func(_ context.Context, _ string) error {
			deleteCalled = true
			return nil
		},
	}
	svc := NewFarmerService(sm)

	err := svc.Remove(context.Background(), primitive.NewObjectID().Hex())
	if !errors.Is(err, ErrFarmerActive) {
		t.Fatalf("want ErrFarmerActive got=%v", err)
	}
	if deleteCalled {
		t.Fatal("registro ativo não pode ser deletado")
	}
}

func TestRemove_InactiveSucceeds(t *testing.T) {
	deleted := ""
	id := primitive.NewObjectID().Hex()
	sm := &storeMock{
		GetByIDFn: func(_ context.Context, _ string) (*models.Farmer, error) {
			return &models.Farmer{Active: false}, nil
		},
		DeleteFn: func(_ context.Context, delID string) error {
			deleted = delID
			return nil
		},
	}
	svc := NewFarmerService(sm)

	if err := svc.Remove(context.Background(), id); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if deleted != id {
		t.Fatalf("deletou id errado: %q", deleted)
	}
}

func TestRemove_NotFound(t *testing.T) {
	sm := &storeMock{
		GetByIDFn: func(_ context.Context, _ string) (*models.Farmer, error) {
			return nil, ErrNotFound
		},
	}
	svc := NewFarmerService(sm)

	err := svc.Remove(context.Background(), primitive.NewObjectID().Hex())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound got=%v", err)
	}
}
