package order

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"order-service/internal/entities"
	"order-service/pkg/logger"
)

const (
	opCreateOrder       = "create_order"
	opGetOrder          = "get_order"
	opGetOrders         = "get_orders"
	opUpdateOrderStatus = "update_order_status"
	opForwardToPayment  = "forward_to_payment"
)

type Service struct {
	log       serviceLogger
	store     OrderStore
	catalog   CatalogLookup
	customers CustomerLookup
	events    EventPublisher
	payments  PaymentQueue
	clock     Clock
	ids       IDGenerator
}

func New(
	log serviceLogger,
	store OrderStore,
	catalog CatalogLookup,
	customers CustomerLookup,
	events EventPublisher,
	payments PaymentQueue,
	clock Clock,
	ids IDGenerator,
) *Service {
	return &Service{
		log:       log,
		store:     store,
		catalog:   catalog,
		customers: customers,
		events:    events,
		payments:  payments,
		clock:     clock,
		ids:       ids,
	}
}

func (s *Service) CreateOrder(ctx context.Context, req *entities.OrderCreate) (_ *entities.Order, err error) {
	defer func() { recordOperation(opCreateOrder, err) }()

	if err := validateOrderCreate(req); err != nil {
		return nil, err
	}

	log := s.log.With(
		logger.NewField("operation", opCreateOrder),
		logger.NewField("customer", req.CustomerID),
	)

	customer, err := s.customers.GetCustomerByID(ctx, req.CustomerID)
	if err == nil && customer == nil {
		err = ErrCustomerNotFound
	}
	if err != nil {
		err = lookupError("customer", req.CustomerID, err)
		log.Warn("customer lookup failed", logger.NewField("error", err))
		return nil, err
	}

	// все позиции разрешаются до первой записи: один отсутствующий автомобиль
	// отменяет весь заказ
	items := make([]entities.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		vehicle, err := s.catalog.GetVehicleByID(ctx, item.VehicleID)
		if err == nil && vehicle == nil {
			err = ErrVehicleNotFound
		}
		if err != nil {
			err = lookupError("vehicle", item.VehicleID, err)
			log.Warn("vehicle lookup failed",
				logger.NewField("vehicle", item.VehicleID),
				logger.NewField("error", err),
			)
			return nil, err
		}
		items = append(items, newLineItem(vehicle, item.Quantity))
	}

	order := &entities.Order{
		ID:         s.ids.NewID(),
		Customer:   customer.Snapshot(),
		Items:      items,
		TotalPrice: totalPrice(items),
		Status:     entities.OrderCreated,
		Version:    1,
		CreatedAt:  s.clock.Now(),
	}
	log = log.With(logger.NewField("order", order.ID))

	created, err := s.store.Create(ctx, order)
	if err == nil && created == nil {
		err = errors.New("store returned no record")
	}
	if err != nil {
		err = fmt.Errorf("%w: create order %s: %w", ErrPersistenceFailure, order.ID, err)
		log.Error("failed to persist order", logger.NewField("error", err))
		return nil, err
	}

	// заказ уже сохранён, при ошибке публикации он не откатывается
	if err := s.publishPerItem(ctx, created, s.events.PublishPurchaseCompleted); err != nil {
		err = fmt.Errorf("%w: purchase completed for order %s: %w", ErrPublicationFailure, created.ID, err)
		log.Error("failed to publish purchase completed", logger.NewField("error", err))
		return nil, err
	}

	log.Info("order created",
		logger.NewField("total", created.TotalPrice.String()),
		logger.NewField("items", len(created.Items)),
	)
	return created, nil
}

func (s *Service) GetOrderByID(ctx context.Context, id string) (_ *entities.Order, err error) {
	defer func() { recordOperation(opGetOrder, err) }()

	if !isValidID(id) {
		return nil, ErrInvalidOrderID
	}

	order, err := s.loadOrder(ctx, id)
	if err != nil {
		s.logFailure(opGetOrder, id, err)
		return nil, err
	}
	return order, nil
}

// GetOrders возвращает заказы по возрастанию суммы. Сортировка стабильная,
// при равных суммах сохраняется порядок хранилища.
func (s *Service) GetOrders(ctx context.Context) (_ []entities.Order, err error) {
	defer func() { recordOperation(opGetOrders, err) }()

	orders, err := s.store.GetAll(ctx)
	if err != nil {
		err = fmt.Errorf("%w: get orders: %w", ErrPersistenceFailure, err)
		s.log.Error("failed to get orders",
			logger.NewField("operation", opGetOrders),
			logger.NewField("error", err),
		)
		return nil, err
	}

	if orders == nil {
		return []entities.Order{}, nil
	}

	slices.SortStableFunc(orders, func(a, b entities.Order) int {
		return a.TotalPrice.Cmp(b.TotalPrice)
	})
	return orders, nil
}

func (s *Service) UpdateOrderStatus(ctx context.Context, id, status string) (_ *entities.Order, err error) {
	defer func() { recordOperation(opUpdateOrderStatus, err) }()

	if !isValidID(id) {
		return nil, ErrInvalidOrderID
	}
	next, ok := entities.ParseOrderStatus(status)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	log := s.log.With(
		logger.NewField("operation", opUpdateOrderStatus),
		logger.NewField("order", id),
		logger.NewField("status", next.String()),
	)

	order, err := s.loadOrder(ctx, id)
	if err != nil {
		log.Warn("failed to load order", logger.NewField("error", err))
		return nil, err
	}

	if !order.Status.CanTransitionTo(next) {
		err = fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, next)
		log.Warn("status transition rejected", logger.NewField("error", err))
		return nil, err
	}

	updated, err := s.writeStatus(ctx, order, next)
	if err != nil {
		log.Error("failed to update order status", logger.NewField("error", err))
		return nil, err
	}

	// событие публикуется только при отмене, COMPLETED и PENDING_PAYMENT
	// ничего не отправляют
	if next == entities.OrderCanceled {
		if err := s.publishPerItem(ctx, updated, s.events.PublishPurchaseCanceled); err != nil {
			err = fmt.Errorf("%w: purchase canceled for order %s: %w", ErrPublicationFailure, updated.ID, err)
			log.Error("failed to publish purchase canceled", logger.NewField("error", err))
			return nil, err
		}
	}

	log.Info("order status updated", logger.NewField("previous", order.Status.String()))
	return updated, nil
}

func (s *Service) ForwardToPayment(ctx context.Context, order *entities.Order) (err error) {
	defer func() { recordOperation(opForwardToPayment, err) }()

	if order == nil {
		return ErrEmptyRequest
	}
	if !isValidID(order.ID) {
		return ErrInvalidOrderID
	}

	log := s.log.With(
		logger.NewField("operation", opForwardToPayment),
		logger.NewField("order", order.ID),
	)

	if !order.Status.CanTransitionTo(entities.OrderPendingPayment) {
		err = fmt.Errorf("%w: %w: %s -> %s",
			ErrPaymentForwardingFailure, ErrInvalidTransition, order.Status, entities.OrderPendingPayment)
		log.Warn("order cannot be forwarded to payment", logger.NewField("error", err))
		return err
	}

	updated, err := s.writeStatus(ctx, order, entities.OrderPendingPayment)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrPaymentForwardingFailure, err)
		log.Error("failed to mark order pending payment", logger.NewField("error", err))
		return err
	}

	request := newPaymentRequest(updated)
	// статус уже PENDING_PAYMENT, при ошибке очереди он не откатывается
	if err := s.payments.Send(ctx, request); err != nil {
		err = fmt.Errorf("%w: %w: send payment request for order %s: %w",
			ErrPaymentForwardingFailure, ErrPublicationFailure, updated.ID, err)
		log.Error("failed to send payment request", logger.NewField("error", err))
		return err
	}

	log.Info("order forwarded to payment", logger.NewField("amount", request.Amount.String()))
	return nil
}

func (s *Service) loadOrder(ctx context.Context, id string) (*entities.Order, error) {
	order, err := s.store.GetByID(ctx, id)
	if err == nil && order == nil {
		err = ErrOrderNotFound
	}
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("get order %s: %w", id, err)
		}
		return nil, fmt.Errorf("%w: get order %s: %w", ErrPersistenceFailure, id, err)
	}
	return order, nil
}

// writeStatus сохраняет новый статус, ожидая в хранилище версию order.Version.
func (s *Service) writeStatus(
	ctx context.Context,
	order *entities.Order,
	next entities.OrderStatusType,
) (*entities.Order, error) {
	now := s.clock.Now()

	changed := *order
	changed.Status = next
	changed.UpdatedAt = &now

	updated, err := s.store.UpdateStatus(ctx, order.ID, &changed)
	if err == nil && updated == nil {
		err = errors.New("store returned no record")
	}
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) {
			return nil, fmt.Errorf("update order %s status: %w", order.ID, err)
		}
		return nil, fmt.Errorf("%w: update order %s status: %w", ErrPersistenceFailure, order.ID, err)
	}
	return updated, nil
}

type publishFunc func(ctx context.Context, orderID, vehicleID string) error

func (s *Service) publishPerItem(ctx context.Context, order *entities.Order, publish publishFunc) error {
	for _, item := range order.Items {
		if err := publish(ctx, order.ID, item.VehicleID); err != nil {
			return fmt.Errorf("vehicle %s: %w", item.VehicleID, err)
		}
	}
	return nil
}

func (s *Service) logFailure(operation, id string, err error) {
	fields := []logger.Field{
		logger.NewField("operation", operation),
		logger.NewField("order", id),
		logger.NewField("error", err),
	}
	if errors.Is(err, ErrNotFound) {
		s.log.Warn("order operation failed", fields...)
		return
	}
	s.log.Error("order operation failed", fields...)
}

func lookupError(kind, id string, err error) error {
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("%s %s: %w", kind, id, err)
	}
	return fmt.Errorf("%w: get %s %s: %w", ErrLookupFailure, kind, id, err)
}
