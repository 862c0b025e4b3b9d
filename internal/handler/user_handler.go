package handlers

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"

	"managedb/internal/models"
)

type CreateUserRequest struct {
	Nickname    string      `json:"nickname" validate:"required"`
	PhoneNumber json.Number `json:"phoneNumber" validate:"required"`
	Email       string      `json:"email" validate:"required"`
	Password    string      `json:"password" validate:"required"`
}

type UpdateUserRequest struct {
	Nickname    *string      `json:"nickname"`
	PhoneNumber *json.Number `json:"phoneNumber"`
	Email       *string      `json:"email"`
	Password    *string      `json:"password"`
}

type UserResponse struct {
	ID          string `json:"id,omitempty"`
	Nickname    string `json:"nickname"`
	PhoneNumber int64  `json:"phoneNumber"`
	Email       string `json:"email"`
}

var patternEmail = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func userToResponse(user models.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Nickname:    user.Nickname,
		PhoneNumber: user.PhoneNumber,
		Email:       user.Email,
	}
}

// GetUser обслуживает выборку по name / email / phone_number / all=true.
// Пароль и соль в ответ не попадают никогда.
func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if query.Get("all") == "true" {
		users, err := h.UserRepo.FindAll(r.Context())
		if err != nil {
			WriteDomainError(w, err)
			return
		}

		if len(users) == 0 {
			WriteError(w, "Не найдено ни одного пользователя", http.StatusNotFound)
			return
		}

		result := make([]UserResponse, 0, len(users))
		for _, user := range users {
			result = append(result, userToResponse(user))
		}

		WriteSuccess(w, map[string]interface{}{"data": result}, http.StatusOK)
		return
	}

	if name := query.Get("name"); name != "" {
		users, err := h.UserRepo.FindByName(r.Context(), name)
		if err != nil {
			WriteDomainError(w, err)
			return
		}

		if len(users) == 0 {
			WriteError(w, "Пользователи с никнеймом "+name+" не найдены", http.StatusNotFound)
			return
		}

		result := make([]UserResponse, 0, len(users))
		for _, user := range users {
			result = append(result, userToResponse(user))
		}

		WriteSuccess(w, map[string]interface{}{"data": result}, http.StatusOK)
		return
	}

	if email := query.Get("email"); email != "" {
		user, err := h.UserRepo.FindByEmail(r.Context(), email)
		if err != nil {
			WriteDomainError(w, err)
			return
		}

		WriteSuccess(w, map[string]interface{}{"data": userToResponse(*user)}, http.StatusOK)
		return
	}

	if rawNumber := query.Get("phone_number"); rawNumber != "" {
		number, err := strconv.ParseInt(rawNumber, 10, 64)
		if err != nil {
			WriteError(w, "Номер телефона должен быть числом", http.StatusBadRequest)
			return
		}

		user, err := h.UserRepo.FindByNumber(r.Context(), number)
		if err != nil {
			WriteDomainError(w, err)
			return
		}

		WriteSuccess(w, map[string]interface{}{"data": userToResponse(*user)}, http.StatusOK)
		return
	}

	WriteError(w, "Укажите параметр запроса: name, email, phone_number или all=true", http.StatusBadRequest)
}

func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	// email verification
	if !patternEmail.MatchString(req.Email) {
		WriteError(w, "Неверный формат email", http.StatusBadRequest)
		return
	}

	// phone number verification
	number, err := req.PhoneNumber.Int64()
	if err != nil {
		WriteError(w, "Номер телефона должен быть числом", http.StatusBadRequest)
		return
	}

	user := &models.User{
		Nickname:    req.Nickname,
		PhoneNumber: number,
		Email:       req.Email,
	}

	if err := h.UserService.CreateUser(r.Context(), user, req.Password); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"message": "Пользователь создан",
		"data":    userToResponse(*user),
	}, http.StatusCreated)
}

// UpdateUser - частичное обновление по никнейму из параметра nickname.
func (h *Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	nickname := r.URL.Query().Get("nickname")
	if nickname == "" {
		WriteError(w, "Отсутствует параметр nickname", http.StatusBadRequest)
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	patch := models.UserPatch{
		Nickname: req.Nickname,
		Email:    req.Email,
		Password: req.Password,
	}

	if req.PhoneNumber != nil {
		number, err := req.PhoneNumber.Int64()
		if err != nil {
			WriteError(w, "Номер телефона должен быть числом", http.StatusBadRequest)
			return
		}
		patch.PhoneNumber = &number
	}

	if patch.IsEmpty() {
		WriteError(w, "Нет полей для обновления", http.StatusBadRequest)
		return
	}

	if err := h.UserService.UpdateUserByNickname(r.Context(), nickname, patch); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Пользователь " + nickname + " обновлен"}, http.StatusOK)
}

func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	rawNumber := r.URL.Query().Get("phone_number")
	if rawNumber == "" {
		WriteError(w, "Отсутствует параметр phone_number", http.StatusBadRequest)
		return
	}

	number, err := strconv.ParseInt(rawNumber, 10, 64)
	if err != nil {
		WriteError(w, "Номер телефона должен быть числом", http.StatusBadRequest)
		return
	}

	if err := h.UserService.DeleteUser(r.Context(), number); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Пользователь удален"}, http.StatusOK)
}

// SearchUser возвращает пользователя вместе с его id по номеру телефона.
func (h *Handlers) SearchUser(w http.ResponseWriter, r *http.Request) {
	rawNumber := r.URL.Query().Get("phone_number")
	if rawNumber == "" {
		WriteError(w, "Отсутствует параметр phone_number", http.StatusBadRequest)
		return
	}

	number, err := strconv.ParseInt(rawNumber, 10, 64)
	if err != nil {
		WriteError(w, "Номер телефона должен быть числом", http.StatusBadRequest)
		return
	}

	id, err := h.UserRepo.FindIDByNumber(r.Context(), number)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	user, err := h.UserRepo.FindByNumber(r.Context(), number)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	response := userToResponse(*user)
	response.ID = id

	WriteSuccess(w, map[string]interface{}{"data": response}, http.StatusOK)
}
