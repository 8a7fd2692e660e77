package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const maxBodySize = 1 << 20

var errUnsupportedContentType = errors.New("unsupported content type")

// readBody - читает и парсит JSON тело запроса в структуру T.
// Запрос без Content-Type считается JSON
func readBody[T any](r *http.Request) (T, error) {
	var body T

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}

	if !strings.HasPrefix(contentType, "application/json") {
		return body, fmt.Errorf("failed to read request body: %w: %s", errUnsupportedContentType, contentType)
	}

	defer r.Body.Close()

	bodyBytes, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return body, fmt.Errorf("failed to read request body: %w", err)
	}

	if err := json.Unmarshal(bodyBytes, &body); err != nil {
		return body, fmt.Errorf("failed to read request body %s: %w", contentType, err)
	}

	return body, nil
}

// writeJSON - записывает ответ в формате JSON с указанным статусом и заголовком Content-Type: application/json
func writeJSON(w http.ResponseWriter, lg *zap.SugaredLogger, data any, statusCode int) {
	response, err := json.Marshal(data)
	if err != nil {
		lg.Errorf("failed to encode response body: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(response)
}
