package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"managedb/internal/models"
)

type CreatePostRequest struct {
	UserID  string `json:"userId" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

type UpdatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type PostResponse struct {
	ID      string    `json:"id"`
	UserID  string    `json:"userId"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Date    time.Time `json:"date"`
}

func postToResponse(post models.Post) PostResponse {
	return PostResponse{
		ID:      post.ID,
		UserID:  post.UserID,
		Title:   post.Title,
		Content: post.Content,
		Date:    post.Date,
	}
}

// GetPost обслуживает выборку по user_id / title / all=true.
// По user_id возвращается не более одного поста (известное ограничение).
func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if query.Get("all") == "true" {
		posts, err := h.PostRepo.FindAll(r.Context())
		if err != nil {
			WriteDomainError(w, err)
			return
		}

		result := make([]PostResponse, 0, len(posts))
		for _, post := range posts {
			result = append(result, postToResponse(post))
		}

		WriteSuccess(w, map[string]interface{}{"data": result}, http.StatusOK)
		return
	}

	if userID := query.Get("user_id"); userID != "" {
		post, err := h.PostRepo.FindByUserID(r.Context(), userID)
		if err != nil {
			WriteDomainError(w, err)
			return
		}

		WriteSuccess(w, map[string]interface{}{"data": postToResponse(*post)}, http.StatusOK)
		return
	}

	if title := query.Get("title"); title != "" {
		posts, err := h.PostRepo.FindByTitle(r.Context(), title)
		if err != nil {
			WriteDomainError(w, err)
			return
		}

		if len(posts) == 0 {
			WriteError(w, "Посты с заголовком "+title+" не найдены", http.StatusNotFound)
			return
		}

		result := make([]PostResponse, 0, len(posts))
		for _, post := range posts {
			result = append(result, postToResponse(post))
		}

		WriteSuccess(w, map[string]interface{}{"data": result}, http.StatusOK)
		return
	}

	WriteError(w, "Укажите параметр запроса: user_id, title или all=true", http.StatusBadRequest)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), req.UserID, req.Title, req.Content)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"message": "Пост создан",
		"data":    postToResponse(*post),
	}, http.StatusCreated)
}

// UpdatePost обновляет ВСЕ посты пользователя из параметра user_id.
func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		WriteError(w, "Отсутствует параметр user_id", http.StatusBadRequest)
		return
	}

	var req UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	patch := models.PostPatch{
		Title:   req.Title,
		Content: req.Content,
	}

	if patch.IsEmpty() {
		WriteError(w, "Нет полей для обновления", http.StatusBadRequest)
		return
	}

	if err := h.PostService.UpdatePosts(r.Context(), userID, patch); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Посты пользователя " + userID + " обновлены"}, http.StatusOK)
}

// DeletePost удаляет ВСЕ посты пользователя из параметра user_id.
func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		WriteError(w, "Отсутствует параметр user_id", http.StatusBadRequest)
		return
	}

	if err := h.PostService.DeletePosts(r.Context(), userID); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Посты пользователя " + userID + " удалены"}, http.StatusOK)
}
