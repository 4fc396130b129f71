package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"kundali-api/internal/domain/charts"
)

// Esquema esperado:
//
//	CREATE TABLE saved_charts (
//	    id            TEXT PRIMARY KEY,
//	    user_id       TEXT NOT NULL,
//	    name          TEXT NOT NULL,
//	    birth         JSONB NOT NULL,
//	    kundali       JSONB NOT NULL,
//	    location_name TEXT NOT NULL DEFAULT '',
//	    created_at    TIMESTAMPTZ NOT NULL,
//	    updated_at    TIMESTAMPTZ NOT NULL,
//	    UNIQUE (user_id, name)
//	);
//
// birth y kundali van como JSONB: la kundali es un snapshot derivado,
// nunca se consulta por dentro desde SQL.
type ChartsRepo struct {
	db *sql.DB
}

func NewChartsRepo(db *sql.DB) *ChartsRepo {
	return &ChartsRepo{db: db}
}

const uniqueViolation = "23505"

func (r *ChartsRepo) Create(ctx context.Context, c charts.SavedChart) error {
	birth, kundali, err := marshalChart(c)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO saved_charts (
			id, user_id, name,
			birth, kundali, location_name,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		c.ID,
		c.UserID,
		c.Name,
		birth,
		kundali,
		c.LocationName,
		c.CreatedAt,
		c.UpdatedAt,
	)
	return mapUniqueViolation(err)
}

func (r *ChartsRepo) Update(ctx context.Context, c charts.SavedChart) error {
	birth, kundali, err := marshalChart(c)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE saved_charts
		SET
			name = $2,
			birth = $3,
			kundali = $4,
			location_name = $5,
			updated_at = $6
		WHERE id = $1
	`,
		c.ID,
		c.Name,
		birth,
		kundali,
		c.LocationName,
		c.UpdatedAt,
	)
	if err != nil {
		return mapUniqueViolation(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return charts.ErrNotFound
	}
	return nil
}

func (r *ChartsRepo) GetByID(ctx context.Context, id string) (charts.SavedChart, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return charts.SavedChart{}, charts.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, user_id, name,
			birth, kundali, location_name,
			created_at, updated_at
		FROM saved_charts
		WHERE id = $1
	`, id)

	c, err := scanChart(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return charts.SavedChart{}, charts.ErrNotFound
		}
		return charts.SavedChart{}, err
	}
	return c, nil
}

func (r *ChartsRepo) ListByUser(ctx context.Context, userID string) ([]charts.SavedChart, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, user_id, name,
			birth, kundali, location_name,
			created_at, updated_at
		FROM saved_charts
		WHERE user_id = $1
		ORDER BY created_at ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]charts.SavedChart, 0)
	for rows.Next() {
		c, err := scanChart(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, rows.Err()
}

func (r *ChartsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM saved_charts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return charts.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanChart(row rowScanner) (charts.SavedChart, error) {
	var c charts.SavedChart
	var birth, kundali []byte

	if err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.Name,
		&birth,
		&kundali,
		&c.LocationName,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return charts.SavedChart{}, err
	}

	if err := json.Unmarshal(birth, &c.Birth); err != nil {
		return charts.SavedChart{}, err
	}
	if err := json.Unmarshal(kundali, &c.Kundali); err != nil {
		return charts.SavedChart{}, err
	}
	return c, nil
}

func marshalChart(c charts.SavedChart) (birth, kundali []byte, err error) {
	birth, err = json.Marshal(c.Birth)
	if err != nil {
		return nil, nil, err
	}
	kundali, err = json.Marshal(c.Kundali)
	if err != nil {
		return nil, nil, err
	}
	return birth, kundali, nil
}

// mapUniqueViolation traduce el 23505 de (user_id, name) al error de dominio.
func mapUniqueViolation(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return charts.ErrDuplicateName
	}
	return err
}
