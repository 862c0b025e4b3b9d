package handlers

import (
	"encoding/json"
	"net/http"
	"unicode/utf8"
)

type RegisterRequest struct {
	AdminAccount  string `json:"adminAccount" validate:"required"`
	AdminName     string `json:"adminName" validate:"required"`
	AdminPassword string `json:"adminPassword" validate:"required,min=6"`
}

type LoginRequest struct {
	AdminAccount  string `json:"adminAccount" validate:"required"`
	AdminPassword string `json:"adminPassword" validate:"required"`
}

type AuthResponse struct {
	AccessToken string        `json:"accessToken"`
	Admin       AdminResponse `json:"admin"`
}

type AdminResponse struct {
	AdminAccount string `json:"adminAccount"`
	AdminName    string `json:"adminName"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	// password verification
	if utf8.RuneCountInString(req.AdminPassword) < 6 {
		WriteError(w, "Пароль должен быть не менее 6 символов", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	admin, err := h.AuthService.Register(r.Context(), req.AdminAccount, req.AdminName, req.AdminPassword)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"message": "Регистрация прошла успешно",
		"admin": AdminResponse{
			AdminAccount: admin.AdminAccount,
			AdminName:    admin.AdminName,
		},
	}, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	admin, accessToken, err := h.AuthService.Login(r.Context(), req.AdminAccount, req.AdminPassword)
	if err != nil {
		WriteError(w, "Неверный аккаунт или пароль", http.StatusUnauthorized)
		return
	}

	// дашборд узнаёт администратора по cookie, как и раньше
	http.SetCookie(w, &http.Cookie{
		Name:     "adminAccount",
		Value:    admin.AdminAccount,
		Path:     "/",
		HttpOnly: true,
	})

	response := AuthResponse{
		AccessToken: accessToken,
		Admin: AdminResponse{
			AdminAccount: admin.AdminAccount,
			AdminName:    admin.AdminName,
		},
	}

	WriteSuccess(w, response, http.StatusOK)
}
