package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"pet-adoption-market/internal/domain/vets"
)

type VetsRepo struct {
	db *sql.DB
}

func NewVetsRepo(db *sql.DB) *VetsRepo {
	return &VetsRepo{db: db}
}

const vetColumns = `
	id, user_id, clinic_name, bio, status,
	created_at, updated_at, decided_at
`

func (r *VetsRepo) Create(ctx context.Context, v vets.Vet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO vets (id, user_id, clinic_name, bio, status, created_at, updated_at, decided_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		v.ID,
		v.UserID,
		v.ClinicName,
		v.Bio,
		string(v.Status),
		v.CreatedAt,
		v.UpdatedAt,
		toNullTime(v.DecidedAt),
	)
	return err
}

func (r *VetsRepo) Update(ctx context.Context, v vets.Vet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE vets
		SET clinic_name = $2, bio = $3, status = $4, updated_at = $5, decided_at = $6
		WHERE id = $1
	`,
		v.ID,
		v.ClinicName,
		v.Bio,
		string(v.Status),
		v.UpdatedAt,
		toNullTime(v.DecidedAt),
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return vets.ErrNotFound
	}
	return nil
}

func (r *VetsRepo) GetByID(ctx context.Context, id string) (vets.Vet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return vets.Vet{}, vets.ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, `SELECT `+vetColumns+` FROM vets WHERE id = $1`, id)
	return scanVet(row)
}

func (r *VetsRepo) GetByUserID(ctx context.Context, userID string) (vets.Vet, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return vets.Vet{}, vets.ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, `SELECT `+vetColumns+` FROM vets WHERE user_id = $1`, userID)
	return scanVet(row)
}

func (r *VetsRepo) ListPendingReview(ctx context.Context) ([]vets.Vet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+vetColumns+`
		FROM vets
		WHERE status = 'pending_review'
		ORDER BY updated_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vets.Vet, 0)
	for rows.Next() {
		v, err := scanVet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// AddCredentials inserts the credential rows and moves the vet's state in
// one transaction.
func (r *VetsRepo) AddCredentials(ctx context.Context, v vets.Vet, qs []vets.Qualification, sps []vets.Specialization, slots []vets.ScheduleSlot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	for _, q := range qs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO vet_qualifications (id, vet_id, title, institution, year)
			VALUES ($1,$2,$3,$4,$5)
		`, q.ID, q.VetID, q.Title, q.Institution, q.Year); err != nil {
			return err
		}
	}
	for _, sp := range sps {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO vet_specializations (id, vet_id, name)
			VALUES ($1,$2,$3)
		`, sp.ID, sp.VetID, sp.Name); err != nil {
			return err
		}
	}
	for _, sl := range slots {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO vet_schedule_slots (id, vet_id, weekday, start_time, end_time)
			VALUES ($1,$2,$3,$4,$5)
		`, sl.ID, sl.VetID, int(sl.Weekday), sl.Start, sl.End); err != nil {
			return err
		}
	}

	if err := r.updateStateTx(ctx, tx, v); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

func (r *VetsRepo) GetQualification(ctx context.Context, id string) (vets.Qualification, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return vets.Qualification{}, vets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, vet_id, title, institution, year
		FROM vet_qualifications
		WHERE id = $1
	`, id)

	var q vets.Qualification
	if err := row.Scan(&q.ID, &q.VetID, &q.Title, &q.Institution, &q.Year); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return vets.Qualification{}, vets.ErrNotFound
		}
		return vets.Qualification{}, err
	}
	return q, nil
}

func (r *VetsRepo) ListQualifications(ctx context.Context, vetID string) ([]vets.Qualification, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, vet_id, title, institution, year
		FROM vet_qualifications
		WHERE vet_id = $1
		ORDER BY year DESC
	`, vetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vets.Qualification, 0)
	for rows.Next() {
		var q vets.Qualification
		if err := rows.Scan(&q.ID, &q.VetID, &q.Title, &q.Institution, &q.Year); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (r *VetsRepo) ListSpecializations(ctx context.Context, vetID string) ([]vets.Specialization, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, vet_id, name
		FROM vet_specializations
		WHERE vet_id = $1
		ORDER BY name ASC
	`, vetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vets.Specialization, 0)
	for rows.Next() {
		var sp vets.Specialization
		if err := rows.Scan(&sp.ID, &sp.VetID, &sp.Name); err != nil {
			return nil, err
		}
		out = append(out, sp)
	}
	return out, rows.Err()
}

func (r *VetsRepo) ListScheduleSlots(ctx context.Context, vetID string) ([]vets.ScheduleSlot, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, vet_id, weekday, start_time, end_time
		FROM vet_schedule_slots
		WHERE vet_id = $1
		ORDER BY weekday ASC, start_time ASC
	`, vetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vets.ScheduleSlot, 0)
	for rows.Next() {
		var sl vets.ScheduleSlot
		var weekday int
		if err := rows.Scan(&sl.ID, &sl.VetID, &weekday, &sl.Start, &sl.End); err != nil {
			return nil, err
		}
		sl.Weekday = weekdayFromInt(weekday)
		out = append(out, sl)
	}
	return out, rows.Err()
}

func (r *VetsRepo) AddDocument(ctx context.Context, v vets.Vet, d vets.ProofDocument) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO vet_proof_documents (id, vet_id, qualification_id, object_key, url, content_type, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`, d.ID, d.VetID, d.QualificationID, d.ObjectKey, d.URL, d.ContentType, d.CreatedAt); err != nil {
		return err
	}

	if err := r.updateStateTx(ctx, tx, v); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

func (r *VetsRepo) ListDocuments(ctx context.Context, vetID string) ([]vets.ProofDocument, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, vet_id, qualification_id, object_key, url, content_type, created_at
		FROM vet_proof_documents
		WHERE vet_id = $1
		ORDER BY created_at ASC
	`, vetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vets.ProofDocument, 0)
	for rows.Next() {
		var d vets.ProofDocument
		if err := rows.Scan(&d.ID, &d.VetID, &d.QualificationID, &d.ObjectKey, &d.URL, &d.ContentType, &d.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Verify flips the vet to verified and promotes the user role in one
// transaction. The vet write is conditional on pending_review so two admins
// racing cannot both verify.
func (r *VetsRepo) Verify(ctx context.Context, v vets.Vet) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, `
		UPDATE vets
		SET status = $2, updated_at = $3, decided_at = $4
		WHERE id = $1 AND status = 'pending_review'
	`, v.ID, string(v.Status), v.UpdatedAt, toNullTime(v.DecidedAt))
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return vets.ErrBadState
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE users SET role = 'vet', updated_at = $2 WHERE id = $1
	`, v.UserID, v.UpdatedAt); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

func (r *VetsRepo) updateStateTx(ctx context.Context, tx *sql.Tx, v vets.Vet) error {
	res, err := tx.ExecContext(ctx, `
		UPDATE vets SET status = $2, updated_at = $3 WHERE id = $1
	`, v.ID, string(v.Status), v.UpdatedAt)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return vets.ErrNotFound
	}
	return nil
}

func scanVet(row rowScanner) (vets.Vet, error) {
	var v vets.Vet
	var status string
	var decidedAt sql.NullTime

	if err := row.Scan(
		&v.ID,
		&v.UserID,
		&v.ClinicName,
		&v.Bio,
		&status,
		&v.CreatedAt,
		&v.UpdatedAt,
		&decidedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return vets.Vet{}, vets.ErrNotFound
		}
		return vets.Vet{}, err
	}

	v.Status = vets.Status(status)
	if decidedAt.Valid {
		t := decidedAt.Time
		v.DecidedAt = &t
	}
	return v, nil
}

func weekdayFromInt(d int) time.Weekday {
	if d < 0 || d > 6 {
		return time.Sunday
	}
	return time.Weekday(d)
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
