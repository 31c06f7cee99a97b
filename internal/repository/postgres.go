// Package repository содержит реализации хранилища заказов.
package repository

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/sethvargo/go-retry"
	"github.com/shopspring/decimal"

	"github.com/mmeshcher/courtside-store/internal/model"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var (
	// ErrOrderNotFound возвращается, если заказ с указанным номером не существует.
	ErrOrderNotFound = errors.New("order not found")
	// ErrStatusConflict возвращается, если статус заказа изменился до применения обновления.
	ErrStatusConflict = errors.New("order status changed concurrently")
)

// PostgresRepository предоставляет доступ к хранилищу заказов в PostgreSQL.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository создаёт новый репозиторий и инициализирует схему БД через миграции.
func NewPostgresRepository(dsn string) (*PostgresRepository, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	r := &PostgresRepository{pool: pool}

	if err := r.runMigrations(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return r, nil
}

func (r *PostgresRepository) runMigrations(ctx context.Context) error {
	db := stdlib.OpenDBFromPool(r.pool)
	defer db.Close()

	goose.SetBaseFS(migrationsFS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

// retryBase задаёт первую задержку экспоненциального backoff для повторов.
var retryBase = time.Second

const maxRetries = 3

func (r *PostgresRepository) withRetry(ctx context.Context, fn func() error) error {
	b := retry.WithMaxRetries(maxRetries, retry.NewExponential(retryBase))

	return retry.Do(ctx, b, func(ctx context.Context) error {
		err := fn()
		if err != nil && isRetryable(err) {
			return retry.RetryableError(err)
		}
		return err
	})
}

func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.SerializationFailure || pgErr.Code == pgerrcode.DeadlockDetected
	}

	return isConnectionError(err)
}

func isConnectionError(err error) bool {
	// Упрощённая проверка на ошибки соединения
	return strings.Contains(err.Error(), "connection refused") ||
		strings.Contains(err.Error(), "broken pipe") ||
		strings.Contains(err.Error(), "connection reset by peer")
}

// Close закрывает пул соединений с БД.
func (r *PostgresRepository) Close() error {
	r.pool.Close()
	return nil
}

func toCents(v decimal.Decimal) int64 {
	return v.Shift(2).Round(0).IntPart()
}

func fromCents(c int64) decimal.Decimal {
	return decimal.New(c, -2)
}

// CreateOrder сохраняет заказ со статусом "Novo" вместе с позициями.
func (r *PostgresRepository) CreateOrder(ctx context.Context, draft model.OrderDraft, createdAt time.Time) (model.Order, error) {
	var id int64

	err := r.withRetry(ctx, func() error {
		tx, err := r.pool.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin tx: %w", err)
		}
		defer tx.Rollback(ctx)

		err = tx.QueryRow(ctx,
			`INSERT INTO orders (customer, phone, address, notes, total, status, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 RETURNING id`,
			draft.Customer, draft.Phone, draft.Address, draft.Notes,
			toCents(draft.Total), string(model.OrderStatusNew), createdAt,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		batch := &pgx.Batch{}
		for i, it := range draft.Items {
			batch.Queue(
				`INSERT INTO order_items (order_id, position, name, quantity, unit_price, subtotal)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				id, i, it.Name, it.Quantity, toCents(it.UnitPrice), toCents(it.Subtotal),
			)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert order items: %w", err)
		}

		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("commit tx: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.Order{}, err
	}

	return newOrder(id, draft, createdAt), nil
}

// ListOrders возвращает все заказы, начиная с самых новых.
func (r *PostgresRepository) ListOrders(ctx context.Context) ([]model.Order, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, customer, phone, address, notes, total, status, created_at
		 FROM orders
		 ORDER BY id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	index := make(map[int64]int)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		index[o.ID] = len(orders)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	items, err := r.pool.Query(ctx,
		`SELECT order_id, name, quantity, unit_price, subtotal
		 FROM order_items
		 ORDER BY order_id, position`,
	)
	if err != nil {
		return nil, fmt.Errorf("select order items: %w", err)
	}
	defer items.Close()

	for items.Next() {
		orderID, it, err := scanItem(items)
		if err != nil {
			return nil, err
		}
		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, it)
		}
	}
	if err := items.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return orders, nil
}

// GetOrder возвращает заказ по номеру.
func (r *PostgresRepository) GetOrder(ctx context.Context, id int64) (*model.Order, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, customer, phone, address, notes, total, status, created_at
		 FROM orders
		 WHERE id = $1`,
		id,
	)

	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT order_id, name, quantity, unit_price, subtotal
		 FROM order_items
		 WHERE order_id = $1
		 ORDER BY position`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("select order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		_, it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		o.Items = append(o.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return &o, nil
}

// UpdateOrderStatus переводит заказ из статуса from в статус to.
// Если текущий статус уже не равен from, возвращается ErrStatusConflict.
func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, id int64, from, to model.OrderStatus) error {
	return r.withRetry(ctx, func() error {
		cmdTag, err := r.pool.Exec(ctx,
			`UPDATE orders SET status = $3 WHERE id = $1 AND status = $2`,
			id, string(from), string(to),
		)
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}
		if cmdTag.RowsAffected() == 1 {
			return nil
		}

		var exists bool
		err = r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, id).Scan(&exists)
		if err != nil {
			return fmt.Errorf("check order: %w", err)
		}
		if !exists {
			return ErrOrderNotFound
		}
		return ErrStatusConflict
	})
}

func scanOrder(row pgx.Row) (model.Order, error) {
	var (
		o      model.Order
		total  int64
		status string
	)
	err := row.Scan(&o.ID, &o.Customer, &o.Phone, &o.Address, &o.Notes, &total, &status, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Order{}, err
		}
		return model.Order{}, fmt.Errorf("scan order: %w", err)
	}
	o.Total = fromCents(total)
	o.Status = model.OrderStatus(status)
	return o, nil
}

func scanItem(row pgx.Row) (int64, model.OrderItem, error) {
	var (
		orderID             int64
		it                  model.OrderItem
		unitPrice, subtotal int64
	)
	if err := row.Scan(&orderID, &it.Name, &it.Quantity, &unitPrice, &subtotal); err != nil {
		return 0, model.OrderItem{}, fmt.Errorf("scan order item: %w", err)
	}
	it.UnitPrice = fromCents(unitPrice)
	it.Subtotal = fromCents(subtotal)
	return orderID, it, nil
}

func newOrder(id int64, draft model.OrderDraft, createdAt time.Time) model.Order {
	items := make([]model.OrderItem, len(draft.Items))
	copy(items, draft.Items)

	return model.Order{
		ID:        id,
		Customer:  draft.Customer,
		Phone:     draft.Phone,
		Address:   draft.Address,
		Notes:     draft.Notes,
		Items:     items,
		Total:     draft.Total,
		CreatedAt: createdAt,
		Status:    model.OrderStatusNew,
	}
}
