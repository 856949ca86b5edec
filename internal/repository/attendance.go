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

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type AttendanceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAttendanceRepo(db *dbpg.DB) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const selectAttendance = `SELECT a.id, a.class_id, a.customer_id, a.status, a.reservation_id,
			  a.class_pass_id, a.created_on, ct.name, c.starts_at
			  FROM attendances a
			  JOIN classes c ON c.id = a.class_id
			  JOIN class_types ct ON ct.id = c.class_type_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAttendance(row rowScanner) (*domain.Attendance, error) {
	var (
		a      domain.Attendance
		status string
	)
	if err := row.Scan(
		&a.ID, &a.ClassID, &a.CustomerID, &status,
		&a.ReservationID, &a.ClassPassID, &a.CreatedOn,
		&a.ClassName, &a.ClassStartsAt,
	); err != nil {
		return nil, err
	}

	// неизвестный статус в базе - ошибка, а не запись для показа
	s, err := domain.ParseBookingStatus(status)
	if err != nil {
		return nil, fmt.Errorf("attendance %s: %w", a.ID, err)
	}
	a.Status = s

	return &a, nil
}

func (r *AttendanceRepository) ListByClass(ctx context.Context, classID string) ([]*domain.Attendance, error) {
	query := selectAttendance + `
			  WHERE a.class_id = $1
			  ORDER BY a.created_on, a.id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, classID)
	if err != nil {
		return nil, fmt.Errorf("list attendances by class: %w", err)
	}
	defer rows.Close()

	var res []*domain.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		res = append(res, a)
	}

	return res, rows.Err()
}

func (r *AttendanceRepository) GetByID(ctx context.Context, id string) (*domain.Attendance, error) {
	query := selectAttendance + `
			  WHERE a.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get attendance: %w", err)
	}

	a, err := scanAttendance(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("scan attendance: %w", err)
	}

	return a, nil
}

func (r *AttendanceRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	query := `UPDATE attendances
			  SET status = $2, updated_at = now()
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return fmt.Errorf("update attendance status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("attendance rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrAttendanceNotFound
	}

	return nil
}

func (r *AttendanceRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM attendances WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete attendance: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("attendance rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrAttendanceNotFound
	}

	return nil
}

// CheckIn создаёт запись attending и списывает занятие с абонемента в одной транзакции.
func (r *AttendanceRepository) CheckIn(ctx context.Context, a *domain.Attendance) error {
	if a.ClassPassID == nil {
		return fmt.Errorf("%w: class pass is required", domain.ErrValidation)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	classQuery := `SELECT ct.name, c.starts_at
				   FROM classes c
				   JOIN class_types ct ON ct.id = c.class_type_id
				   WHERE c.id = $1`
	if err = tx.QueryRowContext(ctx, classQuery, a.ClassID).Scan(&a.ClassName, &a.ClassStartsAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrClassNotFound
		}
		return fmt.Errorf("get class: %w", err)
	}

	// Блокируем абонемент до конца транзакции
	passQuery := `SELECT unlimited, classes_remaining
				  FROM class_passes
				  WHERE id = $1 AND customer_id = $2
				  FOR UPDATE`
	var (
		unlimited bool
		remaining int
	)
	if err = tx.QueryRowContext(ctx, passQuery, *a.ClassPassID, a.CustomerID).Scan(&unlimited, &remaining); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrClassPassNotFound
		}
		return fmt.Errorf("lock class pass: %w", err)
	}

	if !unlimited && remaining <= 0 {
		return domain.ErrNoClassesRemaining
	}

	query := `INSERT INTO attendances (id, class_id, customer_id, status, class_pass_id, created_on, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $6)`
	_, err = tx.ExecContext(
		ctx, query, a.ID, a.ClassID, a.CustomerID,
		a.Status, *a.ClassPassID, a.CreatedOn,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return domain.ErrAlreadyAttending
			case pgForeignKeyViolation:
				return domain.ErrClassNotFound
			}
		}
		return fmt.Errorf("insert attendance: %w", err)
	}

	if !unlimited {
		decQuery := `UPDATE class_passes
					 SET classes_remaining = classes_remaining - 1
					 WHERE id = $1`
		if _, err = tx.ExecContext(ctx, decQuery, *a.ClassPassID); err != nil {
			return fmt.Errorf("decrement classes remaining: %w", err)
		}
	}

	return tx.Commit()
}
