package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/Sai-Chandu-Mallelli/canteen-client/internal/domain"
)

// PostgresRepository backs both the identity store (credential rows) and the
// remote account document store.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// InitSchema creates the tables when they do not exist yet.
func (r *PostgresRepository) InitSchema(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			uid VARCHAR(36) UNIQUE NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS accounts (
			uid VARCHAR(36) PRIMARY KEY,
			name VARCHAR(255) NOT NULL DEFAULT '',
			email VARCHAR(255) NOT NULL DEFAULT '',
			profile_photo TEXT NOT NULL DEFAULT '',
			balance NUMERIC(12,2) NOT NULL DEFAULT 0
		)`,
	}
	for _, q := range queries {
		if _, err := r.db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

func (r *PostgresRepository) CreateUser(ctx context.Context, email, passwordHash string) (*domain.User, error) {
	user := &domain.User{UID: uuid.NewString(), Email: email, Password: passwordHash}
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO users (uid, email, password) VALUES ($1, $2, $3) RETURNING id",
		user.UID, email, passwordHash,
	).Scan(&user.ID)
	if err != nil {
		if strings.Contains(err.Error(), "users_email_key") {
			return nil, errors.New("email already in use")
		}
		return nil, err
	}
	return user, nil
}

func (r *PostgresRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user := &domain.User{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, uid, email, password FROM users WHERE email = $1", email,
	).Scan(&user.ID, &user.UID, &user.Email, &user.Password)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *PostgresRepository) GetAccount(ctx context.Context, uid string) (*domain.Account, error) {
	acct := &domain.Account{}
	err := r.db.QueryRowContext(ctx,
		"SELECT uid, name, email, profile_photo, balance FROM accounts WHERE uid = $1", uid,
	).Scan(&acct.UID, &acct.Name, &acct.Email, &acct.ProfilePhoto, &acct.Balance)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return acct, nil
}

func (r *PostgresRepository) SetAccount(ctx context.Context, acct *domain.Account) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (uid, name, email, profile_photo, balance)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (uid) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			profile_photo = EXCLUDED.profile_photo,
			balance = EXCLUDED.balance`,
		acct.UID, acct.Name, acct.Email, acct.ProfilePhoto, acct.Balance,
	)
	return err
}

// allowed column names for partial account updates
var accountColumns = map[string]bool{
	"name":          true,
	"email":         true,
	"profile_photo": true,
}

func (r *PostgresRepository) UpdateAccountFields(ctx context.Context, uid string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	for col := range fields {
		if !accountColumns[col] {
			return fmt.Errorf("unknown account field %q", col)
		}
	}
	set := make([]string, 0, len(fields))
	args := make([]interface{}, 0, len(fields)+1)
	i := 1
	for _, col := range []string{"name", "email", "profile_photo"} {
		val, ok := fields[col]
		if !ok {
			continue
		}
		set = append(set, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}
	args = append(args, uid)
	query := fmt.Sprintf("UPDATE accounts SET %s WHERE uid = $%d", strings.Join(set, ", "), i)
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return errors.New("account not found")
	}
	return nil
}

func (r *PostgresRepository) AddBalance(ctx context.Context, uid string, amount float64) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE accounts SET balance = balance + $1 WHERE uid = $2", amount, uid)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return errors.New("account not found")
	}
	return nil
}

// DeductBalance debits amount only when the stored balance covers it, so a
// stale client snapshot cannot drive the balance negative.
func (r *PostgresRepository) DeductBalance(ctx context.Context, uid string, amount float64) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE accounts SET balance = balance - $1 WHERE uid = $2 AND balance >= $1", amount, uid)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
