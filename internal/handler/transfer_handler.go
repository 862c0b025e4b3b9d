package handlers

import (
	"net/http"
)

// ExportHandler выгружает коллекцию в файл на сервере.
// Параметры: collection (users|posts), format (csv|json), path,
// upload=true - дополнительно отправить файл в хранилище экспортов.
func (h *Handlers) ExportHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	collection := query.Get("collection")
	format := query.Get("format")
	filePath := query.Get("path")
	if collection == "" || format == "" || filePath == "" {
		WriteError(w, "Требуются параметры collection, format и path", http.StatusBadRequest)
		return
	}

	upload := query.Get("upload") == "true"

	exported, objectName, err := h.TransferService.Export(r.Context(), collection, format, filePath, upload)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	if !exported {
		WriteSuccess(w, map[string]interface{}{
			"exported": false,
			"message":  "Нет данных для экспорта",
		}, http.StatusOK)
		return
	}

	response := map[string]interface{}{
		"exported": true,
		"path":     filePath,
	}
	if objectName != "" {
		response["object"] = objectName
	}

	WriteSuccess(w, response, http.StatusOK)
}

// ImportHandler загружает коллекцию из файла. Импорт атомарный:
// при ошибке ни одна запись не сохраняется.
func (h *Handlers) ImportHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	collection := query.Get("collection")
	format := query.Get("format")
	filePath := query.Get("path")
	if collection == "" || format == "" || filePath == "" {
		WriteError(w, "Требуются параметры collection, format и path", http.StatusBadRequest)
		return
	}

	imported, err := h.TransferService.Import(r.Context(), collection, format, filePath)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"imported": imported,
		"message":  "Импорт завершен",
	}, http.StatusOK)
}
