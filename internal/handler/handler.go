package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"managedb/internal/config"
	"managedb/internal/repository"
	"managedb/internal/service"
)

type Handlers struct {
	AuthService     service.AuthService
	AdminService    service.AdminService
	UserService     service.UserService
	PostService     service.PostService
	TransferService service.TransferService
	AdminRepo       repository.AdminRepository
	UserRepo        repository.UserRepository
	PostRepo        repository.PostRepository
	StatsRepo       repository.StatsRepository
	Cfg             *config.Config
	Validate        *validator.Validate
	Log             *zap.Logger
}

func NewHandlers(repo *repository.Repository, service *service.Service, config *config.Config, log *zap.Logger) *Handlers {
	return &Handlers{
		AuthService:     service.Auth,
		AdminService:    service.Admin,
		UserService:     service.User,
		PostService:     service.Post,
		TransferService: service.Transfer,
		AdminRepo:       repo.Admin,
		UserRepo:        repo.User,
		PostRepo:        repo.Post,
		StatsRepo:       repo.Stats,
		Cfg:             config,
		Validate:        validator.New(),
		Log:             log,
	}
}

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{"service": "managedb", "status": "ok"}, http.StatusOK)
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	counts, err := h.StatsRepo.CountRecords(r.Context())
	if err != nil {
		h.Log.Error("health check failed", zap.Error(err))
		WriteError(w, "База данных недоступна", http.StatusServiceUnavailable)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"status":  "ok",
		"records": counts,
	}, http.StatusOK)
}
