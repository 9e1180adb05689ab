package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) GetByUser(ctx context.Context, userID int64) (*domain.UserBooking, error) {
	query := `SELECT b.id, rm.id, rm.name, rm.capacity, rm.hotel_id, rm.created_at, rm.updated_at
			  FROM bookings b
			  JOIN rooms rm ON rm.id = b.room_id
			  WHERE b.user_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var ub domain.UserBooking
	if err = row.Scan(
		&ub.ID, &ub.Room.ID, &ub.Room.Name, &ub.Room.Capacity,
		&ub.Room.HotelID, &ub.Room.CreatedAt, &ub.Room.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return &ub, nil
}

func (r *BookingRepository) ListByRoom(ctx context.Context, roomID int64) ([]*domain.Booking, error) {
	query := `SELECT id, user_id, room_id, created_at, updated_at
			  FROM bookings
			  WHERE room_id = $1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, roomID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by room: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan booking by room: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) Create(ctx context.Context, userID, roomID int64) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	capacity, err := lockRoom(ctx, tx, roomID)
	if err != nil {
		return 0, err
	}

	occupied, err := countOccupants(ctx, tx, roomID)
	if err != nil {
		return 0, err
	}
	if occupied >= capacity {
		return 0, domain.ErrRoomFull
	}

	id, err := insertBooking(ctx, tx, userID, roomID)
	if err != nil {
		return 0, err
	}

	return id, tx.Commit()
}

// Replace удаляет старую бронь и создаёт новую в одной транзакции,
// чтобы пользователь ни в какой момент не оставался без брони.
func (r *BookingRepository) Replace(ctx context.Context, bookingID, userID, roomID int64) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	capacity, err := lockRoom(ctx, tx, roomID)
	if err != nil {
		return 0, err
	}

	// Delete scoped to the owner: a guessed foreign booking id removes nothing.
	res, err := tx.ExecContext(ctx,
		`DELETE FROM bookings WHERE id = $1 AND user_id = $2`,
		bookingID, userID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete booking: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("booking rows affected: %w", err)
	}
	if deleted == 0 {
		return 0, domain.ErrBookingNotFound
	}

	// Counted after the delete so a swap within the same room sees its own freed slot.
	occupied, err := countOccupants(ctx, tx, roomID)
	if err != nil {
		return 0, err
	}
	if occupied >= capacity {
		return 0, domain.ErrRoomFull
	}

	id, err := insertBooking(ctx, tx, userID, roomID)
	if err != nil {
		return 0, err
	}

	return id, tx.Commit()
}

func lockRoom(ctx context.Context, tx *sql.Tx, roomID int64) (int, error) {
	var capacity int
	err := tx.QueryRowContext(ctx,
		`SELECT capacity FROM rooms WHERE id = $1 FOR UPDATE`,
		roomID,
	).Scan(&capacity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrRoomNotFound
		}
		return 0, fmt.Errorf("lock room: %w", err)
	}
	return capacity, nil
}

func countOccupants(ctx context.Context, tx *sql.Tx, roomID int64) (int, error) {
	var occupied int
	err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM bookings WHERE room_id = $1`,
		roomID,
	).Scan(&occupied)
	if err != nil {
		return 0, fmt.Errorf("count occupants: %w", err)
	}
	return occupied, nil
}

func insertBooking(ctx context.Context, tx *sql.Tx, userID, roomID int64) (int64, error) {
	now := time.Now().UTC()

	var id int64
	err := tx.QueryRowContext(ctx,
		`INSERT INTO bookings (user_id, room_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userID, roomID, now, now,
	).Scan(&id)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, domain.ErrAlreadyBooked
		}
		return 0, fmt.Errorf("insert booking: %w", err)
	}

	return id, nil
}
