package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"pet-adoption-market/internal/domain/applications"
)

type ApplicationsRepo struct {
	db *sql.DB
}

func NewApplicationsRepo(db *sql.DB) *ApplicationsRepo {
	return &ApplicationsRepo{db: db}
}

// tableFor picks the legacy table; the two kinds live in parallel tables
// with identical columns.
func tableFor(kind applications.Kind) string {
	if kind == applications.KindFoster {
		return "foster_applications"
	}
	return "adoption_applications"
}

const applicationColumns = `
	id, pet_id, applicant_user_id, status,
	address, household_size, has_other_pets, agreement_accepted, message,
	created_at, updated_at
`

func (r *ApplicationsRepo) Create(ctx context.Context, a applications.Application) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO `+tableFor(a.Kind)+` (
			id, pet_id, applicant_user_id, status,
			address, household_size, has_other_pets, agreement_accepted, message,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		a.ID,
		a.PetID,
		a.ApplicantUserID,
		string(a.Status),
		a.Address,
		a.HouseholdSize,
		a.HasOtherPets,
		a.AgreementAccepted,
		a.Message,
		a.CreatedAt,
		a.UpdatedAt,
	)
	return err
}

func (r *ApplicationsRepo) GetByID(ctx context.Context, kind applications.Kind, id string) (applications.Application, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return applications.Application{}, applications.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+applicationColumns+`
		FROM `+tableFor(kind)+`
		WHERE id = $1
	`, id)

	return scanApplication(row, kind)
}

func (r *ApplicationsRepo) ListPendingForPet(ctx context.Context, kind applications.Kind, petID string) ([]applications.Application, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+applicationColumns+`
		FROM `+tableFor(kind)+`
		WHERE pet_id = $1 AND status = 'pending'
		ORDER BY created_at DESC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]applications.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows, kind)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

func (r *ApplicationsRepo) Delete(ctx context.Context, kind applications.Kind, id string) (applications.Application, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return applications.Application{}, applications.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		DELETE FROM `+tableFor(kind)+`
		WHERE id = $1
		RETURNING `+applicationColumns+`
	`, id)

	return scanApplication(row, kind)
}

// Approve runs the decision transaction:
//  1. target pending application -> approved (RETURNING pet_id; zero rows
//     distinguishes absent from already-decided, both abort);
//  2. pet -> kind-terminal placement, conditional on still being available
//     (zero rows affected means a concurrent approval won, abort);
//  3. every sibling application for the pet -> rejected.
//
// All three commit together or roll back together.
func (r *ApplicationsRepo) Approve(ctx context.Context, kind applications.Kind, id string) (applications.Application, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return applications.Application{}, applications.ErrNotFound
	}

	table := tableFor(kind)
	now := time.Now()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return applications.Application{}, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var petID string
	err = tx.QueryRowContext(ctx, `
		UPDATE `+table+`
		SET status = 'approved', updated_at = $2
		WHERE id = $1 AND status = 'pending'
		RETURNING pet_id
	`, id, now).Scan(&petID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return applications.Application{}, err
		}

		// No pending row matched: absent or already decided?
		var status string
		err = tx.QueryRowContext(ctx, `SELECT status FROM `+table+` WHERE id = $1`, id).Scan(&status)
		if errors.Is(err, sql.ErrNoRows) {
			return applications.Application{}, applications.ErrNotFound
		}
		if err != nil {
			return applications.Application{}, err
		}
		return applications.Application{}, applications.ErrBadState
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE pets
		SET placement_status = $2, updated_at = $3
		WHERE id = $1 AND placement_status = 'available'
	`, petID, string(kind.PlacementOutcome()), now)
	if err != nil {
		return applications.Application{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Pet already placed: a concurrent approval won. Abort so this
		// approval writes nothing at all.
		return applications.Application{}, applications.ErrConflict
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE `+table+`
		SET status = 'rejected', updated_at = $3
		WHERE pet_id = $1 AND id <> $2
	`, petID, id, now)
	if err != nil {
		return applications.Application{}, err
	}

	row := tx.QueryRowContext(ctx, `
		SELECT `+applicationColumns+`
		FROM `+table+`
		WHERE id = $1
	`, id)
	a, err := scanApplication(row, kind)
	if err != nil {
		return applications.Application{}, err
	}

	if err := tx.Commit(); err != nil {
		return applications.Application{}, err
	}
	committed = true

	return a, nil
}

// Reject flips only the target row. No pending precondition and no side
// effects; re-rejecting just runs the same UPDATE again.
func (r *ApplicationsRepo) Reject(ctx context.Context, kind applications.Kind, id string) (applications.Application, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return applications.Application{}, applications.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		UPDATE `+tableFor(kind)+`
		SET status = 'rejected', updated_at = $2
		WHERE id = $1
		RETURNING `+applicationColumns+`
	`, id, time.Now())

	return scanApplication(row, kind)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner, kind applications.Kind) (applications.Application, error) {
	var a applications.Application
	var status string
	if err := row.Scan(
		&a.ID,
		&a.PetID,
		&a.ApplicantUserID,
		&status,
		&a.Address,
		&a.HouseholdSize,
		&a.HasOtherPets,
		&a.AgreementAccepted,
		&a.Message,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return applications.Application{}, applications.ErrNotFound
		}
		return applications.Application{}, err
	}

	a.Kind = kind
	a.Status = applications.Status(status)
	return a, nil
}
