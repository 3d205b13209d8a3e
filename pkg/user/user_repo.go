package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var ErrUserNotFound = errors.New("user not found")

type Repo interface {
	CreateUser(ctx context.Context, user User, passwordHash string) (int, error)
	GetUser(ctx context.Context, id int) (User, error)
	GetUserByUid(ctx context.Context, uid string) (User, error)
	// GetCredentialsByEmail returns the stored user and password hash for a login check.
	GetCredentialsByEmail(ctx context.Context, email string) (User, string, error)
	UpdateSettings(ctx context.Context, userId int, settings Settings) (bool, error)
	GetAllUsers(ctx context.Context) ([]User, error)
	DeleteUser(ctx context.Context, id int) error
}

type RepoImpl struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

const userColumns = "id, uid, name, email, avatar_url, currency, locale, colombian_mode, payment_frequency"

func (r *RepoImpl) CreateUser(ctx context.Context, user User, passwordHash string) (int, error) {
	query := `INSERT INTO users (uid, name, email, password_hash, avatar_url, currency, locale, colombian_mode, payment_frequency)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, query,
		user.Uid,
		user.Name,
		user.Email,
		passwordHash,
		user.AvatarUrl,
		user.Settings.Currency,
		user.Settings.Locale,
		user.Settings.ColombianMode,
		user.Settings.PaymentFrequency,
	)
	if err != nil {
		log.Errorf("failed to create user: %v", err)
		return 0, err
	}
	lastInsertID, err := result.LastInsertId()
	if err != nil {
		err := fmt.Errorf("could not retrieve last insert id: %w", err)
		log.Error(err)
		return 0, err
	}
	return int(lastInsertID), nil
}

func (r *RepoImpl) GetUser(ctx context.Context, id int) (User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE id = ?", userColumns)
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *RepoImpl) GetUserByUid(ctx context.Context, uid string) (User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE uid = ?", userColumns)
	return r.scanUser(r.db.QueryRowContext(ctx, query, uid))
}

func (r *RepoImpl) GetCredentialsByEmail(ctx context.Context, email string) (User, string, error) {
	query := fmt.Sprintf("SELECT %s, password_hash FROM users WHERE email = ?", userColumns)
	var user User
	var passwordHash string
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.Id,
		&user.Uid,
		&user.Name,
		&user.Email,
		&user.AvatarUrl,
		&user.Settings.Currency,
		&user.Settings.Locale,
		&user.Settings.ColombianMode,
		&user.Settings.PaymentFrequency,
		&passwordHash,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, "", ErrUserNotFound
	} else if err != nil {
		log.Errorf("failed to get user by email: %v", err)
		return User{}, "", err
	}
	return user, passwordHash, nil
}

func (r *RepoImpl) UpdateSettings(ctx context.Context, userId int, settings Settings) (bool, error) {
	query := `UPDATE users SET currency = ?, locale = ?, colombian_mode = ?, payment_frequency = ? WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query,
		settings.Currency,
		settings.Locale,
		settings.ColombianMode,
		settings.PaymentFrequency,
		userId,
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}

func (r *RepoImpl) GetAllUsers(ctx context.Context) ([]User, error) {
	query := fmt.Sprintf("SELECT %s FROM users", userColumns)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query users: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var user User
		if err := rows.Scan(
			&user.Id,
			&user.Uid,
			&user.Name,
			&user.Email,
			&user.AvatarUrl,
			&user.Settings.Currency,
			&user.Settings.Locale,
			&user.Settings.ColombianMode,
			&user.Settings.PaymentFrequency,
		); err != nil {
			err := fmt.Errorf("could not scan user: %w", err)
			log.Error(err)
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return users, nil
}

func (r *RepoImpl) DeleteUser(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		log.Errorf("failed to delete user %d: %v", id, err)
		return err
	}
	return nil
}

func (r *RepoImpl) scanUser(row *sql.Row) (User, error) {
	var user User
	err := row.Scan(
		&user.Id,
		&user.Uid,
		&user.Name,
		&user.Email,
		&user.AvatarUrl,
		&user.Settings.Currency,
		&user.Settings.Locale,
		&user.Settings.ColombianMode,
		&user.Settings.PaymentFrequency,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrUserNotFound
	} else if err != nil {
		log.Errorf("failed to get user: %v", err)
		return User{}, err
	}
	return user, nil
}
