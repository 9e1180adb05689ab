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

type SessionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSessionRepo(db *dbpg.DB) *SessionRepository {
	return &SessionRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *SessionRepository) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	query := `SELECT id, user_id, token
			  FROM sessions
			  WHERE token = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, token)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var s domain.Session
	if err = row.Scan(&s.ID, &s.UserID, &s.Token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}

	return &s, nil
}
