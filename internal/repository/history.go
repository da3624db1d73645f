package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"slipverify/constants"
)

// GeneratedCode is one payment-code generation event.
type GeneratedCode struct {
	ID        uuid.UUID
	Recipient string
	Kind      string // identifier.Kind string form
	Amount    string // decimal string; "0" for open-amount codes
	CreatedAt time.Time
}

// Verification is one slip verification event.
type Verification struct {
	ID        uuid.UUID
	Recipient string
	Status    constants.VerificationStatus
	Amount    *string // decimal string; nil when no amount evidence
	Message   string
	CreatedAt time.Time
}

// HistoryRepository records what the service generated and verified.
type HistoryRepository interface {
	InsertCode(ctx context.Context, c *GeneratedCode) error
	InsertVerification(ctx context.Context, v *Verification) error
	ListVerifications(ctx context.Context, limit int) ([]*Verification, error)
}

type historyRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewHistoryRepository(db *sql.DB, logger *slog.Logger) HistoryRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &historyRepository{db: db, logger: logger}
}

func (r *historyRepository) InsertCode(ctx context.Context, c *GeneratedCode) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO generated_codes (id, recipient, kind, amount, created_at) VALUES (?, ?, ?, ?, ?)`,
		c.ID.String(), c.Recipient, c.Kind, c.Amount, c.CreatedAt)
	if err != nil {
		r.logger.Error("failed to insert generated code", "recipient", c.Recipient, "error", err)
	}
	return err
}

func (r *historyRepository) InsertVerification(ctx context.Context, v *Verification) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO verifications (id, recipient, status, amount, message, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		v.ID.String(), v.Recipient, string(v.Status), v.Amount, v.Message, v.CreatedAt)
	if err != nil {
		r.logger.Error("failed to insert verification", "recipient", v.Recipient, "error", err)
	}
	return err
}

func (r *historyRepository) ListVerifications(ctx context.Context, limit int) ([]*Verification, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, recipient, status, amount, message, created_at FROM verifications ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		r.logger.Error("failed to list verifications", "error", err)
		return nil, err
	}
	defer rows.Close()

	var out []*Verification
	for rows.Next() {
		var (
			v      Verification
			id     string
			status string
		)
		if err := rows.Scan(&id, &v.Recipient, &status, &v.Amount, &v.Message, &v.CreatedAt); err != nil {
			return nil, err
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, err
		}
		v.ID = parsed
		v.Status = constants.VerificationStatus(status)
		out = append(out, &v)
	}
	return out, rows.Err()
}
