package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-catalog-admin/internal/logger"
	"github.com/MKhiriev/go-catalog-admin/models"
)

// userRepository is the [Gateway]-backed implementation of [UserRepository].
// It reads credentials from the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger  *logger.Logger
	gateway Gateway
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// gateway and logger.
func NewUserRepository(gateway Gateway, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		gateway: gateway,
		logger:  logger,
	}
}

// FindActiveUserByEmail retrieves the single active user whose email
// matches exactly. The stored hash is returned in PasswordHash and must not
// leave the service layer.
//
// Error handling:
//   - no matching active row → [ErrNoUserWasFound].
//   - gateway failure → wrapped and returned.
//   - malformed id column → conversion error.
func (r *userRepository) FindActiveUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query := r.gateway.Builder().
		Select("id", "name", "email", "password", "role", "active").
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email, "active": 1}).
		Limit(1)

	rows, err := r.gateway.Query(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindActiveUserByEmail").Msg("error querying user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if len(rows) == 0 {
		return models.User{}, ErrNoUserWasFound
	}

	return userFromRow(rows[0])
}

func userFromRow(row Row) (models.User, error) {
	id, err := row.Int64("id")
	if err != nil {
		return models.User{}, fmt.Errorf("error reading user id: %w", err)
	}
	active, err := row.Int64("active")
	if err != nil {
		return models.User{}, fmt.Errorf("error reading user active flag: %w", err)
	}

	return models.User{
		UserID:       id,
		Name:         row.String("name"),
		Email:        row.String("email"),
		PasswordHash: row.String("password"),
		Role:         row.String("role"),
		Active:       active == 1,
	}, nil
}
