package admin

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/Werneck0live/cadastro-agricultor/internal/repository"
	"github.com/Werneck0live/cadastro-agricultor/internal/service"
)

//go:embed seeds/farmers.json
var farmersJSON []byte

type seedItem struct {
	FullName  string `json:"fullName"`
	CPF       string `json:"cpf"`
	BirthDate string `json:"birthDate"`
	Phone     string `json:"phone"`
	Active    *bool  `json:"active"`
}

// Idempotente: cria se não existir; se o CPF já estiver cadastrado, ignora.
func SeedFarmers(ctx context.Context, repo *repository.FarmerRepository, log *slog.Logger) error {
	var items []seedItem
	if err := json.Unmarshal(farmersJSON, &items); err != nil {
		return err
	}

	svc := service.NewFarmerService(repo)

	for _, s := range items {
		// timeout curto por item pra não travar
		ictx, cancel := context.WithTimeout(ctx, 3*time.Second)
		f, err := svc.Create(ictx, service.CreateInput{
			FullName:  s.FullName,
			CPF:       s.CPF,
			BirthDate: s.BirthDate,
			Phone:     s.Phone,
			Active:    s.Active,
		})
		cancel()

		if err != nil {
			if errors.Is(err, service.ErrDuplicateCPF) {
				log.Info("seed_farmer_exists", "cpf", s.CPF)
				continue
			}
			var ve *service.ValidationError
			if errors.As(err, &ve) {
				log.Warn("seed_skip_invalid", "cpf", s.CPF, "err", ve.Error())
				continue
			}
			return err
		}
		log.Info("seed_farmer_created", "id", f.ID.Hex(), "cpf", f.CPF)
	}

	log.Info("seed_farmers_done", "count", len(items))
	return nil
}
