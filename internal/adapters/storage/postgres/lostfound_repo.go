package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-adoption-market/internal/domain/lostfound"
)

type LostFoundRepo struct {
	db *sql.DB
}

func NewLostFoundRepo(db *sql.DB) *LostFoundRepo {
	return &LostFoundRepo{db: db}
}

const reportColumns = `
	id, reporter_user_id, kind,
	pet_name, species, description, last_seen_city, photo_url,
	status, created_at, updated_at
`

func (r *LostFoundRepo) Create(ctx context.Context, rep lostfound.Report) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO lostfound_reports (
			id, reporter_user_id, kind,
			pet_name, species, description, last_seen_city, photo_url,
			status, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		rep.ID,
		rep.ReporterUserID,
		string(rep.Kind),
		rep.PetName,
		rep.Species,
		rep.Description,
		rep.LastSeenCity,
		rep.PhotoURL,
		string(rep.Status),
		rep.CreatedAt,
		rep.UpdatedAt,
	)
	return err
}

func (r *LostFoundRepo) Update(ctx context.Context, rep lostfound.Report) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE lostfound_reports
		SET pet_name = $2, species = $3, description = $4,
			last_seen_city = $5, photo_url = $6, status = $7, updated_at = $8
		WHERE id = $1
	`,
		rep.ID,
		rep.PetName,
		rep.Species,
		rep.Description,
		rep.LastSeenCity,
		rep.PhotoURL,
		string(rep.Status),
		rep.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return lostfound.ErrNotFound
	}
	return nil
}

func (r *LostFoundRepo) GetByID(ctx context.Context, id string) (lostfound.Report, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return lostfound.Report{}, lostfound.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+reportColumns+`
		FROM lostfound_reports
		WHERE id = $1
	`, id)

	return scanReport(row)
}

func (r *LostFoundRepo) ListOpen(ctx context.Context, kind lostfound.Kind) ([]lostfound.Report, error) {
	query := `
		SELECT ` + reportColumns + `
		FROM lostfound_reports
		WHERE status = 'open'
	`
	args := []any{}
	if kind != "" {
		query += ` AND kind = $1`
		args = append(args, string(kind))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]lostfound.Report, 0)
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}

func scanReport(row rowScanner) (lostfound.Report, error) {
	var rep lostfound.Report
	var kind, status string

	if err := row.Scan(
		&rep.ID,
		&rep.ReporterUserID,
		&kind,
		&rep.PetName,
		&rep.Species,
		&rep.Description,
		&rep.LastSeenCity,
		&rep.PhotoURL,
		&status,
		&rep.CreatedAt,
		&rep.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return lostfound.Report{}, lostfound.ErrNotFound
		}
		return lostfound.Report{}, err
	}

	rep.Kind = lostfound.Kind(kind)
	rep.Status = lostfound.Status(status)
	return rep, nil
}
