package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"planshop/internal/domain"
)

// SQLiteDraftRepo implements DraftRepo using a SQLite database.
type SQLiteDraftRepo struct {
	db *sql.DB
}

// NewSQLiteDraftRepo creates a new SQLiteDraftRepo.
func NewSQLiteDraftRepo(db *sql.DB) *SQLiteDraftRepo {
	return &SQLiteDraftRepo{db: db}
}

func (r *SQLiteDraftRepo) Save(ctx context.Context, d *domain.Draft) error {
	planJSON, err := json.Marshal(d.Plan)
	if err != nil {
		return fmt.Errorf("serializing draft plan: %w", err)
	}

	now := time.Now().UTC()
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	d.UpdatedAt = now

	query := `INSERT INTO drafts (id, name, plan_json, step_index, final_report, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			plan_json = excluded.plan_json,
			step_index = excluded.step_index,
			final_report = excluded.final_report,
			updated_at = excluded.updated_at`
	_, err = r.db.ExecContext(ctx, query,
		d.ID,
		d.Name,
		string(planJSON),
		d.StepIndex,
		d.FinalReport,
		d.CreatedAt.Format(time.RFC3339Nano),
		d.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("upserting draft: %w", err)
	}
	return nil
}

func (r *SQLiteDraftRepo) GetByName(ctx context.Context, name string) (*domain.Draft, error) {
	query := `SELECT id, name, plan_json, step_index, final_report, created_at, updated_at
		FROM drafts WHERE name = ?`
	return r.scanDraft(r.db.QueryRowContext(ctx, query, name))
}

func (r *SQLiteDraftRepo) GetLatest(ctx context.Context) (*domain.Draft, error) {
	query := `SELECT id, name, plan_json, step_index, final_report, created_at, updated_at
		FROM drafts ORDER BY updated_at DESC LIMIT 1`
	return r.scanDraft(r.db.QueryRowContext(ctx, query))
}

func (r *SQLiteDraftRepo) List(ctx context.Context) ([]*domain.Draft, error) {
	query := `SELECT id, name, plan_json, step_index, final_report, created_at, updated_at
		FROM drafts ORDER BY updated_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing drafts: %w", err)
	}
	defer rows.Close()

	var drafts []*domain.Draft
	for rows.Next() {
		d, err := scanDraftColumns(rows.Scan)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating drafts: %w", err)
	}
	return drafts, nil
}

func (r *SQLiteDraftRepo) Delete(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM drafts WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting draft: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("draft %q: %w", name, ErrNotFound)
	}
	return nil
}

func (r *SQLiteDraftRepo) scanDraft(row *sql.Row) (*domain.Draft, error) {
	d, err := scanDraftColumns(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("draft: %w", ErrNotFound)
	}
	return d, err
}

func scanDraftColumns(scan func(...any) error) (*domain.Draft, error) {
	var d domain.Draft
	var planJSON, createdAtStr, updatedAtStr string

	if err := scan(&d.ID, &d.Name, &planJSON, &d.StepIndex, &d.FinalReport, &createdAtStr, &updatedAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning draft: %w", err)
	}

	d.Plan = domain.NewPlan()
	if err := json.Unmarshal([]byte(planJSON), d.Plan); err != nil {
		return nil, fmt.Errorf("parsing draft plan: %w", err)
	}

	var err error
	if d.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing draft created_at: %w", err)
	}
	if d.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing draft updated_at: %w", err)
	}
	return &d, nil
}
