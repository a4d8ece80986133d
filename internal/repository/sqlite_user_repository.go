package repository

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"smartstore/internal/domain"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// SQLiteUserRepository is the durable user repository. SQLite allows only one
// writer, so all writes go through a single connection guarded by a mutex.
type SQLiteUserRepository struct {
	db     *sql.DB
	logger *zap.Logger
	mu     sync.Mutex
}

// NewSQLiteUserRepository opens (or creates) the database at path and
// initializes the schema.
func NewSQLiteUserRepository(path string, logger *zap.Logger) (*SQLiteUserRepository, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=1")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1) // single writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	repo := &SQLiteUserRepository{db: db, logger: logger}
	if err := repo.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	if err := repo.seedDefaults(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to seed default users: %w", err)
	}
	return repo, nil
}

func (r *SQLiteUserRepository) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		email TEXT PRIMARY KEY,
		password TEXT NOT NULL,
		name TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`
	_, err := r.db.Exec(schema)
	return err
}

func (r *SQLiteUserRepository) seedDefaults() error {
	defaults := []*domain.User{
		domain.NewUser("admin@store.com", "admin123", "Admin User"),
		domain.NewUser("user@store.com", "user123", "Regular User"),
	}
	now := time.Now().UTC().Format(time.RFC3339)
	for _, user := range defaults {
		_, err := r.db.Exec(
			`INSERT OR IGNORE INTO users (email, password, name, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
			user.Email, user.Password, user.Name, now, now,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database connection.
func (r *SQLiteUserRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func (r *SQLiteUserRepository) FindByEmail(email string) (*domain.User, error) {
	var user domain.User
	err := r.db.QueryRow(
		`SELECT email, password, name FROM users WHERE email = ?`, email,
	).Scan(&user.Email, &user.Password, &user.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.NewNotFound("find user", fmt.Sprintf("user %s not found", email))
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &user, nil
}

func (r *SQLiteUserRepository) Save(user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := r.db.Exec(
		`INSERT INTO users (email, password, name, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(email) DO UPDATE SET password = excluded.password, name = excluded.name, updated_at = excluded.updated_at`,
		user.Email, user.Password, user.Name, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *SQLiteUserRepository) Delete(email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	result, err := r.db.Exec(`DELETE FROM users WHERE email = ?`, email)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return domain.NewNotFound("delete user", fmt.Sprintf("user %s not found", email))
	}
	return nil
}

func (r *SQLiteUserRepository) ExistsByEmail(email string) (bool, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(1) FROM users WHERE email = ?`, email).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to query user: %w", err)
	}
	return count > 0, nil
}

func (r *SQLiteUserRepository) FindAll() (map[string]*domain.User, error) {
	rows, err := r.db.Query(`SELECT email, password, name FROM users`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := make(map[string]*domain.User)
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.Email, &user.Password, &user.Name); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users[user.Email] = &user
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return users, nil
}
