package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type RoomRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRoomRepo(db *dbpg.DB) *RoomRepository {
	return &RoomRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	query := `SELECT id, name, capacity, hotel_id, created_at, updated_at
			  FROM rooms
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}

	var rm domain.Room
	if err = row.Scan(&rm.ID, &rm.Name, &rm.Capacity, &rm.HotelID, &rm.CreatedAt, &rm.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("scan room: %w", err)
	}

	return &rm, nil
}
