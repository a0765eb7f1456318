package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/what-to-cook/internal/logger"
	"github.com/MKhiriev/what-to-cook/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts the account and returns it with the server-assigned
// id and creation time.
//
// Error handling:
//   - unique_violation (23505) on username or email → [ErrUserAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.Email, user.PasswordHash)

	var created models.User
	err := scanUser(row, &created)
	switch {
	case err == nil:
		return created, nil
	case isUniqueViolation(err):
		log.Debug().Str("func", "*userRepository.CreateUser").Msg("username or email already taken")
		return models.User{}, ErrUserAlreadyExists
	default:
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

// FindUserByUsername looks the account up by its exact username.
// A missing row yields [ErrUserNotFound].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByUsername", findUserByUsername, username)
}

// FindUserByID looks the account up by id. A missing row yields [ErrUserNotFound].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

func (r *userRepository) findUser(ctx context.Context, funcName, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := scanUser(r.db.QueryRowContext(ctx, query, arg), &user)
	switch {
	case err == nil:
		return user, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	default:
		log.Err(err).Str("func", funcName).Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// UpdateProfilePicture stores pictureName as the user's picture reference.
// Zero affected rows yields [ErrUserNotFound].
func (r *userRepository) UpdateProfilePicture(ctx context.Context, userID int64, pictureName string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateProfilePicture, userID, pictureName)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfilePicture").Msg("error updating profile picture")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func scanUser(row *sql.Row, user *models.User) error {
	var picture sql.NullString
	if err := row.Scan(&user.UserID, &user.Username, &user.Email, &user.PasswordHash, &picture, &user.CreatedAt); err != nil {
		return err
	}
	if picture.Valid {
		user.ProfilePicture = &picture.String
	}
	return nil
}
