package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/mcgege/openstudio/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type CustomerRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
	loc      *time.Location
}

// NewCustomerRepo: loc задаёт календарный день студии для активных членств.
func NewCustomerRepo(db *dbpg.DB, loc *time.Location) *CustomerRepository {
	return &CustomerRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
		loc: loc,
	}
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	query := `
		SELECT
			c.id, c.display_name, COALESCE(c.email, ''), c.telegram_chat_id,
			COALESCE(
				array_agg(m.membership_id::text ORDER BY m.membership_id)
					FILTER (WHERE m.membership_id IS NOT NULL),
				'{}'
			)
		FROM customers c
		LEFT JOIN customer_memberships m
			ON m.customer_id = c.id
			AND m.valid_from <= $2::date
			AND (m.valid_until IS NULL OR m.valid_until >= $2::date)
		WHERE c.id = $1
		GROUP BY c.id`

	today := time.Now().In(r.loc).Format(time.DateOnly)

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, today)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	var c domain.Customer
	if err = row.Scan(
		&c.ID, &c.DisplayName, &c.Email, &c.TelegramChatID,
		pq.Array(&c.ActiveMembershipIDs),
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("scan customer: %w", err)
	}

	return &c, nil
}
