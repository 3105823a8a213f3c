package order_post

import (
	"encoding/json"
	"net/http"

	"order-service/internal/entities"
	"order-service/internal/generated/dto"
	"order-service/internal/handlers/rest/response"
	"order-service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order_post"))

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderJSONRequestBody

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		response.WriteJSON(w, h.log, http.StatusBadRequest, dto.Error{Message: "invalid request body"})
		return
	}

	order, err := h.service.CreateOrder(r.Context(), toOrderCreate(&req))
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	w.Header().Set("Location", "/orders/"+order.ID)
	response.WriteJSON(w, h.log, http.StatusCreated, response.Order(order))
}

func toOrderCreate(req *dto.OrderCreate) *entities.OrderCreate {
	items := make([]entities.LineItemCreate, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, entities.LineItemCreate{
			VehicleID: item.VehicleId,
			Quantity:  item.Quantity,
		})
	}

	return &entities.OrderCreate{
		CustomerID: req.CustomerId,
		Items:      items,
	}
}
