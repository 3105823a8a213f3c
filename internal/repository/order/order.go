package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"order-service/internal/entities"
	"order-service/internal/repository"
	"order-service/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var orderColumns = []string{
	"id",
	"customer_id",
	"customer_document",
	"customer_first_name",
	"customer_last_name",
	"customer_email",
	"customer_birth_date",
	"customer_phone",
	"address_street",
	"address_house_number",
	"address_city",
	"address_state",
	"address_postal_code",
	"address_country",
	"total_price",
	"status",
	"version",
	"created_at",
	"updated_at",
}

var itemColumns = []string{
	"order_id",
	"position",
	"vehicle_id",
	"quantity",
	"unit_price",
	"line_total",
	"model",
	"brand",
	"color",
	"year",
}

type Repository struct {
	querier   Querier
	txManager TxManager
}

func New(querier Querier, txManager TxManager) *Repository {
	return &Repository{
		querier:   querier,
		txManager: txManager,
	}
}

// Create записывает заказ и его позиции в одной транзакции.
func (r *Repository) Create(ctx context.Context, orderEntity *entities.Order) (*entities.Order, error) {
	orderModel, itemModels := FromDomain(orderEntity)
	if orderModel == nil {
		return nil, fmt.Errorf("unexpected order repository create error: nil order")
	}

	orderQuery, orderArgs, err := qb.
		Insert("orders").
		Columns(orderColumns...).
		Values(
			orderModel.ID,
			orderModel.CustomerID,
			orderModel.CustomerDocument,
			orderModel.CustomerFirstName,
			orderModel.CustomerLastName,
			orderModel.CustomerEmail,
			orderModel.CustomerBirthDate,
			orderModel.CustomerPhone,
			orderModel.AddressStreet,
			orderModel.AddressHouseNumber,
			orderModel.AddressCity,
			orderModel.AddressState,
			orderModel.AddressPostalCode,
			orderModel.AddressCountry,
			orderModel.TotalPrice,
			orderModel.Status,
			orderModel.Version,
			orderModel.CreatedAt,
			orderModel.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	itemsBuilder := qb.Insert("order_items").Columns(itemColumns...)
	for _, item := range itemModels {
		itemsBuilder = itemsBuilder.Values(
			item.OrderID,
			item.Position,
			item.VehicleID,
			item.Quantity,
			item.UnitPrice,
			item.LineTotal,
			item.Model,
			item.Brand,
			item.Color,
			item.Year,
		)
	}

	err = r.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := r.querier.Exec(ctx, orderQuery, orderArgs...); err != nil {
			return err
		}

		if len(itemModels) == 0 {
			return nil
		}

		itemsQuery, itemsArgs, err := itemsBuilder.ToSql()
		if err != nil {
			return err
		}
		_, err = r.querier.Exec(ctx, itemsQuery, itemsArgs...)
		return err
	})
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, order.ErrConflict
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(orderModel, itemModels), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	query, args, err := qb.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	items, err := r.getItems(ctx, []string{id})
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(orderModel, items[id]), nil
}

// GetAll возвращает заказы в порядке создания, позиции подгружаются одним запросом.
func (r *Repository) GetAll(ctx context.Context) ([]entities.Order, error) {
	query, args, err := qb.
		Select(orderColumns...).
		From("orders").
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]*OrderDB, 0, 8)
	for rows.Next() {
		orderModel, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}

	orders := make([]entities.Order, 0, len(orderModels))
	if len(orderModels) == 0 {
		return orders, nil
	}

	ids := make([]string, 0, len(orderModels))
	for _, orderModel := range orderModels {
		ids = append(ids, orderModel.ID)
	}

	items, err := r.getItems(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}

	for _, orderModel := range orderModels {
		orders = append(orders, *ToDomain(orderModel, items[orderModel.ID]))
	}
	return orders, nil
}

// UpdateStatus - условная запись: строка меняется только если version в базе
// равна orderEntity.Version. Версия увеличивается на единицу.
func (r *Repository) UpdateStatus(ctx context.Context, id string, orderEntity *entities.Order) (*entities.Order, error) {
	query, args, err := qb.
		Update("orders").
		Set("status", orderEntity.Status.String()).
		Set("updated_at", orderEntity.UpdatedAt).
		Set("version", sq.Expr("version + 1")).
		Where(sq.Eq{
			"id":      id,
			"version": orderEntity.Version,
		}).
		Suffix("RETURNING version, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository updatestatus error: %w", err)
	}

	updated := *orderEntity
	updated.ID = id

	err = r.querier.QueryRow(ctx, query, args...).Scan(&updated.Version, &updated.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.missedUpdateError(ctx, id)
		}
		return nil, fmt.Errorf("unexpected order repository updatestatus error: %w", err)
	}

	return &updated, nil
}

// missedUpdateError различает отсутствие заказа и устаревшую версию.
func (r *Repository) missedUpdateError(ctx context.Context, id string) error {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("unexpected order repository updatestatus error: %w", err)
	}
	if !exists {
		return order.ErrOrderNotFound
	}
	return order.ErrConflict
}

func (r *Repository) getItems(ctx context.Context, orderIDs []string) (map[string][]OrderItemDB, error) {
	query, args, err := qb.
		Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("order_id", "position").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[string][]OrderItemDB, len(orderIDs))
	for rows.Next() {
		var item OrderItemDB
		err := rows.Scan(
			&item.OrderID,
			&item.Position,
			&item.VehicleID,
			&item.Quantity,
			&item.UnitPrice,
			&item.LineTotal,
			&item.Model,
			&item.Brand,
			&item.Color,
			&item.Year,
		)
		if err != nil {
			return nil, err
		}
		items[item.OrderID] = append(items[item.OrderID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*OrderDB, error) {
	var orderModel OrderDB
	err := row.Scan(
		&orderModel.ID,
		&orderModel.CustomerID,
		&orderModel.CustomerDocument,
		&orderModel.CustomerFirstName,
		&orderModel.CustomerLastName,
		&orderModel.CustomerEmail,
		&orderModel.CustomerBirthDate,
		&orderModel.CustomerPhone,
		&orderModel.AddressStreet,
		&orderModel.AddressHouseNumber,
		&orderModel.AddressCity,
		&orderModel.AddressState,
		&orderModel.AddressPostalCode,
		&orderModel.AddressCountry,
		&orderModel.TotalPrice,
		&orderModel.Status,
		&orderModel.Version,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &orderModel, nil
}
