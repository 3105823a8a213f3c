package orders_get

import (
	"net/http"

	"order-service/internal/handlers/rest/response"
	"order-service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "orders_get"))

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.GetOrders(r.Context())
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.WriteJSON(w, h.log, http.StatusOK, response.Orders(orders))
}
