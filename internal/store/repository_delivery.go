package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-delivery-tracker/internal/logger"
	"github.com/MKhiriev/go-delivery-tracker/models"
	"github.com/jackc/pgerrcode"
)

// deliveryRepository is the PostgreSQL-backed implementation of
// [DeliveryRepository]. It owns the "deliveries" and "delivery_logs" tables:
// deliveries are created and status-mutated, log entries are insert-only.
type deliveryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDeliveryRepository constructs a [DeliveryRepository] backed by the
// provided database connection and logger.
func NewDeliveryRepository(db *DB, logger *logger.Logger) DeliveryRepository {
	logger.Debug().Msg("creating delivery repository")
	return &deliveryRepository{
		db:     db,
		logger: logger,
	}
}

// CreateDelivery persists a new delivery record and returns the canonical
// database representation (server-assigned CreatedAt/UpdatedAt).
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) on user_id → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *deliveryRepository) CreateDelivery(ctx context.Context, delivery models.Delivery) (models.Delivery, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createDelivery, delivery.DeliveryID, delivery.UserID, delivery.Description, delivery.Status)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*deliveryRepository.CreateDelivery").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Delivery{}, ErrUserNotFound
		default:
			log.Debug().Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).Send()
			return models.Delivery{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := scanDelivery(row, &delivery); err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Delivery{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*deliveryRepository.CreateDelivery").Msg("error: scanning error")
		return models.Delivery{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return delivery, nil
}

// ListDeliveries returns every delivery, ordered by creation time. No
// caller-based filtering or pagination is applied at this layer.
func (r *deliveryRepository) ListDeliveries(ctx context.Context) ([]models.Delivery, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListDeliveriesQuery()
	if err != nil {
		log.Err(err).Str("func", "*deliveryRepository.ListDeliveries").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*deliveryRepository.ListDeliveries").Msg("error executing query")
		log.Debug().Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).Send()
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	deliveries := make([]models.Delivery, 0)
	for rows.Next() {
		var delivery models.Delivery
		if err := scanDelivery(rows, &delivery); err != nil {
			log.Err(err).Str("func", "*deliveryRepository.ListDeliveries").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		deliveries = append(deliveries, delivery)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return deliveries, nil
}

// GetDeliveryByID retrieves a single delivery by primary key.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrDeliveryNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *deliveryRepository) GetDeliveryByID(ctx context.Context, deliveryID string) (models.Delivery, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetDeliveryQuery(deliveryID)
	if err != nil {
		log.Err(err).Str("func", "*deliveryRepository.GetDeliveryByID").Msg("error building query")
		return models.Delivery{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var delivery models.Delivery
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*deliveryRepository.GetDeliveryByID").Msg("error: row is nil")
		log.Debug().Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).Send()
		return models.Delivery{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := scanDelivery(row, &delivery); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Delivery{}, ErrDeliveryNotFound
		}
		log.Err(err).Str("func", "*deliveryRepository.GetDeliveryByID").Msg("error: scanning error")
		return models.Delivery{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return delivery, nil
}

// UpdateDeliveryStatus overwrites the status of an existing delivery and
// returns the updated record.
//
// Error handling:
//   - [sql.ErrNoRows] (no row matched the id) → [ErrDeliveryNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *deliveryRepository) UpdateDeliveryStatus(ctx context.Context, deliveryID string, status models.DeliveryStatus) (models.Delivery, error) {
	log := logger.FromContext(ctx)

	var delivery models.Delivery
	row := r.db.QueryRowContext(ctx, updateDeliveryStatus, deliveryID, status)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*deliveryRepository.UpdateDeliveryStatus").Msg("error: row is nil")
		log.Debug().Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).Send()
		return models.Delivery{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := scanDelivery(row, &delivery); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Delivery{}, ErrDeliveryNotFound
		}
		log.Err(err).Str("func", "*deliveryRepository.UpdateDeliveryStatus").Msg("error: scanning error")
		return models.Delivery{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return delivery, nil
}

// CreateDeliveryLog appends a new log entry for a delivery and returns the
// persisted record with the server-assigned timestamp.
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) on delivery_id → [ErrDeliveryNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *deliveryRepository) CreateDeliveryLog(ctx context.Context, deliveryLog models.DeliveryLog) (models.DeliveryLog, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createDeliveryLog, deliveryLog.LogID, deliveryLog.DeliveryID, deliveryLog.Description)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*deliveryRepository.CreateDeliveryLog").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.DeliveryLog{}, ErrDeliveryNotFound
		default:
			log.Debug().Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).Send()
			return models.DeliveryLog{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&deliveryLog.LogID, &deliveryLog.DeliveryID, &deliveryLog.Description, &deliveryLog.CreatedAt); err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.DeliveryLog{}, ErrDeliveryNotFound
		}
		log.Err(err).Str("func", "*deliveryRepository.CreateDeliveryLog").Msg("error: scanning error")
		return models.DeliveryLog{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return deliveryLog, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanDelivery(row rowScanner, d *models.Delivery) error {
	return row.Scan(&d.DeliveryID, &d.UserID, &d.Description, &d.Status, &d.CreatedAt, &d.UpdatedAt)
}
