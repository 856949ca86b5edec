package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/mcgege/openstudio/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ClassPassRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewClassPassRepo(db *dbpg.DB) *ClassPassRepository {
	return &ClassPassRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// ListOptions возвращает абонементы клиента; allowed считается по типу занятия.
func (r *ClassPassRepository) ListOptions(ctx context.Context, classID, customerID string) ([]domain.ClassPassOption, error) {
	query := `
		SELECT
			p.id, p.name, p.unlimited, p.classes_remaining, p.valid_until,
			c.class_type_id = ANY(p.allowed_class_types) AS allowed,
			p.required_membership_id
		FROM class_passes p
		JOIN classes c ON c.id = $1
		WHERE p.customer_id = $2
		ORDER BY p.valid_until, p.name, p.id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, classID, customerID)
	if err != nil {
		return nil, fmt.Errorf("list class passes: %w", err)
	}
	defer rows.Close()

	res := []domain.ClassPassOption{}
	for rows.Next() {
		var o domain.ClassPassOption
		if err = rows.Scan(
			&o.ID, &o.Name, &o.Unlimited, &o.ClassesRemaining, &o.ValidUntil,
			&o.Allowed, &o.RequiredMembershipID,
		); err != nil {
			return nil, fmt.Errorf("scan class pass: %w", err)
		}
		res = append(res, o)
	}

	return res, rows.Err()
}
