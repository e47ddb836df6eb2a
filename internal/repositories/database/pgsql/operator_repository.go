package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/caisse-pos/caisse_backend/internal/apperrors"
	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	portsrepo "github.com/caisse-pos/caisse_backend/internal/core/ports/repositories"
	"github.com/caisse-pos/caisse_backend/internal/models"
	"github.com/caisse-pos/caisse_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxOperatorRepository struct {
	BaseRepository
}

// newPgxOperatorRepository creates a new repository for operator data.
func newPgxOperatorRepository(pool *pgxpool.Pool) portsrepo.OperatorRepositoryWithTx {
	return &PgxOperatorRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.OperatorRepositoryWithTx = (*PgxOperatorRepository)(nil)

const operatorColumns = `operator_id, username, password_hash, name, created_at, created_by, last_updated_at, last_updated_by`

func scanOperator(row pgx.Row) (models.Operator, error) {
	var o models.Operator
	err := row.Scan(
		&o.OperatorID,
		&o.Username,
		&o.PasswordHash,
		&o.Name,
		&o.CreatedAt,
		&o.CreatedBy,
		&o.LastUpdatedAt,
		&o.LastUpdatedBy,
	)
	return o, err
}

// FindOperatorByID retrieves an operator by its unique identifier.
func (r *PgxOperatorRepository) FindOperatorByID(ctx context.Context, operatorID string) (*domain.Operator, error) {
	query := `
		SELECT ` + operatorColumns + `
		FROM operators
		WHERE operator_id = $1;
	`
	modelOperator, err := scanOperator(r.Pool.QueryRow(ctx, query, operatorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find operator by id %s: %w", operatorID, err)
	}

	domainOperator := mapping.ToDomainOperator(modelOperator)
	return &domainOperator, nil
}

// FindOperatorByUsername retrieves an operator by username for login.
func (r *PgxOperatorRepository) FindOperatorByUsername(ctx context.Context, username string) (*domain.Operator, error) {
	query := `
		SELECT ` + operatorColumns + `
		FROM operators
		WHERE username = $1;
	`
	modelOperator, err := scanOperator(r.Pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find operator by username %s: %w", username, err)
	}

	domainOperator := mapping.ToDomainOperator(modelOperator)
	return &domainOperator, nil
}

// SaveOperator persists an operator. A username collision surfaces as
// apperrors.ErrDuplicate.
func (r *PgxOperatorRepository) SaveOperator(ctx context.Context, operator domain.Operator) error {
	modelOperator := mapping.ToModelOperator(operator)
	query := `
		INSERT INTO operators (` + operatorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelOperator.OperatorID,
		modelOperator.Username,
		modelOperator.PasswordHash,
		modelOperator.Name,
		modelOperator.CreatedAt,
		modelOperator.CreatedBy,
		modelOperator.LastUpdatedAt,
		modelOperator.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save operator %s: %w", operator.OperatorID, err)
	}
	return nil
}
