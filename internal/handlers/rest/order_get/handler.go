package order_get

import (
	"net/http"

	"github.com/gorilla/mux"

	"order-service/internal/handlers/rest/response"
	"order-service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order_get"))

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	order, err := h.service.GetOrderByID(r.Context(), id)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.WriteJSON(w, h.log, http.StatusOK, response.Order(order))
}
