package order_status_put

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"order-service/internal/generated/dto"
	"order-service/internal/handlers/rest/response"
	"order-service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order_status_put"))

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	status, err := readStatus(r)
	if err != nil {
		response.WriteJSON(w, h.log, http.StatusBadRequest, dto.Error{Message: "invalid request body"})
		return
	}

	order, err := h.service.UpdateOrderStatus(r.Context(), id, status)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.WriteJSON(w, h.log, http.StatusOK, response.Order(order))
}

// readStatus берёт статус из тела, а при пустом теле из параметра ?status=.
func readStatus(r *http.Request) (string, error) {
	var req dto.UpdateOrderStatusJSONRequestBody

	err := json.NewDecoder(r.Body).Decode(&req)
	switch {
	case errors.Is(err, io.EOF):
		return r.URL.Query().Get("status"), nil
	case err != nil:
		return "", err
	}
	return req.Status, nil
}
