package score

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// PGStore keeps the best score in a single-row PostgreSQL table
type PGStore struct {
	Pool *pgxpool.Pool
	log  *zap.Logger
}

func NewPGStore(ctx context.Context, dsn string, log *zap.Logger) (*PGStore, error) {
	if log == nil {
		log = zap.NewNop()
	}
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	poolCfg.MaxConns = 2

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect to db: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return &PGStore{Pool: pool, log: log.Named("score")}, nil
}

func (s *PGStore) Load(ctx context.Context) (int, error) {
	var best int
	err := s.Pool.QueryRow(ctx, `SELECT score FROM best_score WHERE id = 1`).Scan(&best)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load best score: %w", err)
	}
	return best, nil
}

func (s *PGStore) Save(ctx context.Context, best int) error {
	if best < 0 {
		return ErrNegative
	}
	tag, err := s.Pool.Exec(ctx,
		`INSERT INTO best_score (id, score, updated_at) VALUES (1, $1, now())
		 ON CONFLICT (id) DO UPDATE
		 SET score = GREATEST(best_score.score, EXCLUDED.score),
		     updated_at = CASE WHEN EXCLUDED.score > best_score.score THEN now() ELSE best_score.updated_at END`,
		best,
	)
	if err != nil {
		return fmt.Errorf("save best score: %w", err)
	}
	s.log.Debug("best score saved", zap.Int("score", best), zap.Int64("rows", tag.RowsAffected()))
	return nil
}

func (s *PGStore) Close() error {
	s.Pool.Close()
	return nil
}

func (s *PGStore) RecordRun(ctx context.Context, score int, frames int64) error {
	if score < 0 {
		return ErrNegative
	}
	_, err := s.Pool.Exec(ctx, `INSERT INTO runs (score, frames) VALUES ($1, $2)`, score, frames)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

func (s *PGStore) TopScores(ctx context.Context, n int) ([]int, error) {
	rows, err := s.Pool.Query(ctx, `SELECT score FROM runs ORDER BY score DESC, id LIMIT $1`, n)
	if err != nil {
		return nil, fmt.Errorf("top scores: %w", err)
	}
	scores, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, fmt.Errorf("top scores: %w", err)
	}
	return scores, nil
}
