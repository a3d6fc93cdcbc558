package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/nadavsagiv/beachrental2/internal/domain"
	"github.com/nadavsagiv/beachrental2/internal/repository"
)

const rentalColumns = `id, type, start_time, end_time, num_people, num_items, duration_min, customer_name, notes, discount, extra_time, base_price, final_price, payment_method, created_on, updated_on`

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (type, start_time, num_people, num_items, duration_min, customer_name, notes, discount, extra_time, base_price, payment_method, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		rt.Type, rt.StartTime, rt.NumPeople, rt.NumItems, rt.Duration,
		rt.CustomerName, rt.Notes, rt.Discount, rt.ExtraTime, rt.BasePrice,
		rt.PaymentMethod, time.Now(), time.Now(),
	).Scan(&rt.ID)
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	rt, err := scanRental(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRentalNotFound
		}
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET customer_name=$1, notes=$2, discount=$3, payment_method=$4, extra_time=$5, end_time=$6, final_price=$7, updated_on=$8 WHERE id=$9`
	res, err := r.db.ExecContext(ctx, query,
		rt.CustomerName, rt.Notes, rt.Discount, rt.PaymentMethod, rt.ExtraTime,
		rt.EndTime, rt.FinalPrice, time.Now(), rt.ID,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrRentalNotFound
	}
	return nil
}

func (r *rentalRepository) List(ctx context.Context, filter repository.RentalFilter) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals`

	var args []interface{}
	var where []string
	if filter.Type != nil {
		args = append(args, *filter.Type)
		where = append(where, fmt.Sprintf("type = $%d", len(args)))
	}
	if filter.Active != nil {
		if *filter.Active {
			where = append(where, "end_time IS NULL")
		} else {
			where = append(where, "end_time IS NOT NULL")
		}
	}
	for i, cond := range where {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY id ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) DeleteAll(ctx context.Context) (int32, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rentals`)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int32(affected), nil
}

// ResetDay runs snapshot-then-delete inside one transaction. If any step
// fails the transaction rolls back and the store is left untouched.
func (r *rentalRepository) ResetDay(ctx context.Context) (*domain.DailySummary, int32, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, 0, err
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, `SELECT `+rentalColumns+` FROM rentals ORDER BY id ASC`)
	if err != nil {
		return nil, 0, err
	}
	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			rows.Close()
			return nil, 0, err
		}
		rentals = append(rentals, *rt)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, 0, err
	}
	rows.Close()

	summary := domain.Summarize(rentals)

	res, err := tx.ExecContext(ctx, `DELETE FROM rentals`)
	if err != nil {
		return nil, 0, err
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return nil, 0, err
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, err
	}
	return &summary, int32(deleted), nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRental(row rowScanner) (*domain.Rental, error) {
	rt := &domain.Rental{}
	var endTime sql.NullTime
	var finalPrice sql.NullInt32
	err := row.Scan(
		&rt.ID, &rt.Type, &rt.StartTime, &endTime, &rt.NumPeople, &rt.NumItems,
		&rt.Duration, &rt.CustomerName, &rt.Notes, &rt.Discount, &rt.ExtraTime,
		&rt.BasePrice, &finalPrice, &rt.PaymentMethod, &rt.CreatedOn, &rt.UpdatedOn,
	)
	if err != nil {
		return nil, err
	}
	if endTime.Valid {
		t := endTime.Time
		rt.EndTime = &t
	}
	if finalPrice.Valid {
		p := finalPrice.Int32
		rt.FinalPrice = &p
	}
	return rt, nil
}
