package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"order-service/internal/generated/dto"
	"order-service/internal/service/order"
	"order-service/pkg/logger"
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

// StatusFor переводит ошибку сервиса заказов в HTTP-статус.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, order.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, order.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrInvalidTransition), errors.Is(err, order.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WriteError пишет статус и тело dto.Error. Для 5xx причина наружу не отдаётся.
func WriteError(w http.ResponseWriter, log errorLogger, err error) {
	status := StatusFor(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = http.StatusText(status)
	}

	WriteJSON(w, log, status, dto.Error{Message: message})
}

func WriteJSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}
