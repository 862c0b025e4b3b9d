package handlers

import (
	"encoding/json"
	"net/http"

	"managedb/internal/models"
)

type AdminUpdateRequest struct {
	AdminAccount  string `json:"adminAccount" validate:"required"`
	AdminName     string `json:"adminName" validate:"required"`
	AdminPassword string `json:"adminPassword" validate:"required"`
}

// GetAdmin ищет администраторов по подстроке имени без учёта регистра.
func (h *Handlers) GetAdmin(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		WriteError(w, "Отсутствует параметр name", http.StatusBadRequest)
		return
	}

	admins, err := h.AdminRepo.FindByName(r.Context(), name)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	if len(admins) == 0 {
		WriteError(w, "Администраторы не найдены", http.StatusNotFound)
		return
	}

	// forming the response
	result := make([]AdminResponse, 0, len(admins))
	for _, admin := range admins {
		result = append(result, AdminResponse{
			AdminAccount: admin.AdminAccount,
			AdminName:    admin.AdminName,
		})
	}

	WriteSuccess(w, map[string]interface{}{"data": result}, http.StatusOK)
}

func (h *Handlers) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	h.Register(w, r)
}

// UpdateAdmin - полная замена записи по имени из параметра name.
func (h *Handlers) UpdateAdmin(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		WriteError(w, "Отсутствует параметр name", http.StatusBadRequest)
		return
	}

	var req AdminUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	admin := reqToAdmin(req)
	if err := h.AdminService.UpdateAdmin(r.Context(), name, admin, req.AdminPassword); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Администратор " + name + " обновлен"}, http.StatusOK)
}

func (h *Handlers) DeleteAdmin(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		WriteError(w, "Отсутствует параметр name", http.StatusBadRequest)
		return
	}

	if err := h.AdminService.DeleteAdmin(r.Context(), name); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Администратор " + name + " удален"}, http.StatusOK)
}

func reqToAdmin(req AdminUpdateRequest) *models.Admin {
	return &models.Admin{
		AdminAccount: req.AdminAccount,
		AdminName:    req.AdminName,
	}
}
