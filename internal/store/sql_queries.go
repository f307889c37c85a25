package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (user_id, name, email, password_hash, role)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING user_id, name, email, password_hash, role, created_at;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, role, created_at
    FROM users
    WHERE email = $1;`

	createDelivery = `INSERT INTO deliveries (delivery_id, user_id, description, status)
    VALUES ($1, $2, $3, $4)
    RETURNING delivery_id, user_id, description, status, created_at, updated_at;`

	updateDeliveryStatus = `UPDATE deliveries
    SET status = $2, updated_at = NOW()
    WHERE delivery_id = $1
    RETURNING delivery_id, user_id, description, status, created_at, updated_at;`

	createDeliveryLog = `INSERT INTO delivery_logs (log_id, delivery_id, description)
    VALUES ($1, $2, $3)
    RETURNING log_id, delivery_id, description, created_at;`
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// placeholders ($1, $2, ...). Read queries are built with it; inserts and
// updates use the RETURNING constants above.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var deliveryColumns = []string{"delivery_id", "user_id", "description", "status", "created_at", "updated_at"}

// buildListDeliveriesQuery builds the unfiltered delivery listing, ordered by
// creation time so the audit trail reads oldest first.
func buildListDeliveriesQuery() (string, []any, error) {
	return psql.
		Select(deliveryColumns...).
		From("deliveries").
		OrderBy("created_at").
		ToSql()
}

// buildGetDeliveryQuery builds the single-delivery lookup by primary key.
func buildGetDeliveryQuery(deliveryID string) (string, []any, error) {
	return psql.
		Select(deliveryColumns...).
		From("deliveries").
		Where(sq.Eq{"delivery_id": deliveryID}).
		ToSql()
}
