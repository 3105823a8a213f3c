package outbox

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"order-service/internal/entities"
	"order-service/internal/repository"
	"order-service/internal/service/outbox"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Insert(ctx context.Context, message *entities.OutboxMessage) error {
	query, args, err := qb.
		Insert("outbox").
		Columns("id", "aggregate_id", "topic", "key", "payload", "attempts", "created_at").
		Values(
			message.ID,
			message.AggregateID,
			message.Topic,
			message.Key,
			message.Payload,
			message.Attempts,
			message.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected outbox repository insert error: %w", err)
	}

	if _, err := r.querier.Exec(ctx, query, args...); err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return outbox.ErrDuplicateMessage
		}
		return fmt.Errorf("unexpected outbox repository insert error: %w", err)
	}
	return nil
}

// LockPending захватывает недоставленные сообщения. Вызывать только внутри
// транзакции: блокировки держатся до её завершения, параллельные relay'и
// пропускают захваченные строки. Сообщения ключа, у которого есть более раннее
// сообщение с исчерпанными попытками, не выдаются до его разбора вручную.
func (r *Repository) LockPending(ctx context.Context, limit, maxAttempts int) ([]entities.OutboxMessage, error) {
	query, args, err := qb.
		Select("id", "aggregate_id", "topic", "key", "payload", "attempts", "last_error", "created_at", "delivered_at").
		From("outbox").
		Where(sq.Eq{"delivered_at": nil}).
		Where(sq.Lt{"attempts": maxAttempts}).
		Where(sq.Expr(`NOT EXISTS (
			SELECT 1 FROM outbox AS stuck
			WHERE stuck.key = outbox.key
				AND stuck.delivered_at IS NULL
				AND stuck.attempts >= ?
				AND (stuck.created_at, stuck.id) < (outbox.created_at, outbox.id)
		)`, maxAttempts)).
		OrderBy("created_at", "id").
		Limit(uint64(limit)).
		Suffix("FOR UPDATE SKIP LOCKED").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected outbox repository lockpending error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected outbox repository lockpending error: %w", err)
	}
	defer rows.Close()

	messages := make([]entities.OutboxMessage, 0, limit)
	for rows.Next() {
		var model MessageDB
		err := rows.Scan(
			&model.ID,
			&model.AggregateID,
			&model.Topic,
			&model.Key,
			&model.Payload,
			&model.Attempts,
			&model.LastError,
			&model.CreatedAt,
			&model.DeliveredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected outbox repository lockpending error: %w", err)
		}
		messages = append(messages, *ToDomain(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected outbox repository lockpending error: %w", err)
	}

	return messages, nil
}

func (r *Repository) MarkDelivered(ctx context.Context, id string, deliveredAt time.Time) error {
	query, args, err := qb.
		Update("outbox").
		Set("delivered_at", deliveredAt).
		Set("attempts", sq.Expr("attempts + 1")).
		Set("last_error", nil).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected outbox repository markdelivered error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected outbox repository markdelivered error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return outbox.ErrMessageNotFound
	}
	return nil
}

func (r *Repository) MarkFailed(ctx context.Context, id string, cause string) error {
	query, args, err := qb.
		Update("outbox").
		Set("attempts", sq.Expr("attempts + 1")).
		Set("last_error", cause).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected outbox repository markfailed error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected outbox repository markfailed error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return outbox.ErrMessageNotFound
	}
	return nil
}
