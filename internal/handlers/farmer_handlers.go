package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Werneck0live/cadastro-agricultor/internal/models"
	"github.com/Werneck0live/cadastro-agricultor/internal/repository"
	"github.com/Werneck0live/cadastro-agricultor/internal/service"
	"github.com/Werneck0live/cadastro-agricultor/internal/utils"
)

type Service interface {
	Create(ctx context.Context, in service.CreateInput) (*models.Farmer, error)
	List(ctx context.Context, page, limit int64, filter repository.Filter) (*service.Page, error)
	GetByID(ctx context.Context, id string) (*models.Farmer, error)
	UpdateProfile(ctx context.Context, id string, in service.UpdateProfileInput) (*models.Farmer, error)
	ToggleStatus(ctx context.Context, id string) (*models.Farmer, error)
	Remove(ctx context.Context, id string) error
}

type Publisher interface {
	Publish(ctx context.Context, body string, headers amqp.Table) error
	Close() error
}

type FarmerHandler struct {
	Svc Service
	Pub Publisher
}

func NewFarmerHandler(svc Service, pub Publisher) *FarmerHandler {
	return &FarmerHandler{Svc: svc, Pub: pub}
}

/*
garantir que a requisição venha no padrão:

	/api/farmers/{id}           -> sub == ""
	/api/farmers/{id}/profile   -> sub == "profile"
	/api/farmers/{id}/status    -> sub == "status"
*/
func parseIDFromPath(path string) (id, sub string, ok bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 3 || parts[0] != "api" || parts[1] != "farmers" || parts[2] == "" {
		return "", "", false
	}
	switch len(parts) {
	case 3:
		return parts[2], "", true
	case 4:
		return parts[2], parts[3], true
	}
	return "", "", false
}

func (h *FarmerHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Farmers atende /api/farmers: listagem paginada e criação.
func (h *FarmerHandler) Farmers(w http.ResponseWriter, r *http.Request) {

	switch r.Method {

	// list + filtros (fullName, cpf, active) + paginação 1-indexada
	case http.MethodGet:
		q := r.URL.Query()
		page := int64(1)
		limit := int64(20)
		if p := q.Get("page"); p != "" {
			if v, err := strconv.ParseInt(p, 10, 64); err == nil && v > 0 {
				page = v
			}
		}
		if l := q.Get("limit"); l != "" {
			if v, err := strconv.ParseInt(l, 10, 64); err == nil && v > 0 && v <= 100 {
				limit = v
			}
		}

		filter := repository.Filter{
			FullName: q.Get("fullName"),
			CPF:      q.Get("cpf"),
		}
		if a := q.Get("active"); a != "" {
			if v, err := strconv.ParseBool(a); err == nil {
				filter.Active = &v
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		pageResp, err := h.Svc.List(ctx, page, limit, filter)
		if err != nil {
			h.writeError(w, err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, pageResp)

	// create
	case http.MethodPost:
		var dto CreateFarmerDTO
		if err := utils.DecodeStrict(r.Body, &dto); err != nil {
			utils.BadRequest(w, err.Error())
			return
		}
		if err := validateCreateDTO(dto); err != nil {
			utils.BadRequest(w, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		f, err := h.Svc.Create(ctx, service.CreateInput{
			FullName:  dto.FullName,
			CPF:       dto.CPF,
			BirthDate: dto.BirthDate,
			Phone:     dto.Phone,
			Active:    dto.Active,
		})
		if err != nil {
			h.writeError(w, err)
			return
		}

		h.publishEvent("Cadastro", f)
		utils.WriteJSON(w, http.StatusCreated, f)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// FarmerByID atende /api/farmers/{id}[/profile|/status].
func (h *FarmerHandler) FarmerByID(w http.ResponseWriter, r *http.Request) {
	id, sub, ok := parseIDFromPath(r.URL.Path)
	if !ok {
		utils.WriteJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	// id malformado nem chega no store
	if !validIDFormat(id) {
		utils.BadRequest(w, "invalid id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	switch {
	case sub == "" && r.Method == http.MethodGet:
		f, err := h.Svc.GetByID(ctx, id)
		if err != nil {
			h.writeError(w, err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, f)

	case sub == "profile" && r.Method == http.MethodPut:
		var dto UpdateFarmerProfileDTO
		if err := utils.DecodeStrict(r.Body, &dto); err != nil {
			utils.BadRequest(w, err.Error())
			return
		}

		f, err := h.Svc.UpdateProfile(ctx, id, service.UpdateProfileInput{
			FullName:  dto.FullName,
			BirthDate: dto.BirthDate,
			Phone:     dto.Phone,
			Active:    dto.Active,
		})
		if err != nil {
			h.writeError(w, err)
			return
		}

		h.publishEvent("Edição", f)
		utils.WriteJSON(w, http.StatusOK, f)

	case sub == "status" && r.Method == http.MethodPatch:
		f, err := h.Svc.ToggleStatus(ctx, id)
		if err != nil {
			h.writeError(w, err)
			return
		}

		h.publishEvent("Status", f)
		utils.WriteJSON(w, http.StatusOK, f)

	case sub == "" && r.Method == http.MethodDelete:
		// busca antes de deletar para publicar o nome no evento
		f, err := h.Svc.GetByID(ctx, id)
		if err != nil {
			h.writeError(w, err)
			return
		}

		if err := h.Svc.Remove(ctx, id); err != nil {
			h.writeError(w, err)
			return
		}

		h.publishEvent("Exclusão", f)
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// Traduz a taxonomia do serviço para o status HTTP do contrato.
func (h *FarmerHandler) writeError(w http.ResponseWriter, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		utils.BadRequest(w, ve.Error())
	case errors.Is(err, service.ErrDuplicateCPF):
		utils.BadRequest(w, "cpf already registered")
	case errors.Is(err, service.ErrFarmerActive):
		utils.BadRequest(w, "cannot delete an active farmer")
	case errors.Is(err, service.ErrNotFound):
		utils.WriteJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	default:
		utils.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func (h *FarmerHandler) publishEvent(acao string, f *models.Farmer) {
	if h.Pub == nil || f == nil {
		return
	}
	nome := f.FullName
	if nome == "" {
		nome = utils.FormatCPF(f.CPF)
	}
	msg := fmt.Sprintf("%s de AGRICULTOR %s", acao, nome)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	headers := amqp.Table{
		"action":    strings.ToLower(acao), // cadastro|edição|status|exclusão
		"farmer_id": f.ID.Hex(),
		"cpf":       utils.FormatCPF(f.CPF),
		"nome":      nome,
		"active":    f.Active,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if f.Phone != "" {
		headers["phone"] = utils.FormatPhone(f.Phone)
	}
	_ = h.Pub.Publish(ctx, msg, headers)
}
