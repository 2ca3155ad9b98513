package database

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

func Connect() (*sql.DB, error) {
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "examace_user")
	password := getEnv("DB_PASSWORD", "examace_password")
	dbname := getEnv("DB_NAME", "exam_ace")
	sslmode := getEnv("DB_SSLMODE", "disable")

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

func Migrate(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		name VARCHAR(255) NOT NULL,
		password VARCHAR(255) NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);

	CREATE TABLE IF NOT EXISTS quiz_attempts (
		id         UUID PRIMARY KEY,
		user_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		subject    VARCHAR(200) NOT NULL,
		difficulty VARCHAR(20) NOT NULL,
		questions  JSONB NOT NULL,
		answers    JSONB,
		score      DECIMAL(5,2),
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_attempts_user ON quiz_attempts(user_id, created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_attempts_scored ON quiz_attempts(user_id) WHERE score IS NOT NULL;

	CREATE TABLE IF NOT EXISTS user_settings (
		user_id           BIGINT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		subject           VARCHAR(200) NOT NULL,
		difficulty        VARCHAR(20) NOT NULL,
		question_count    INT NOT NULL DEFAULT 10,
		time_limit        INT,
		auto_submit       BOOLEAN NOT NULL DEFAULT FALSE,
		show_explanations BOOLEAN NOT NULL DEFAULT TRUE,
		updated_at        TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	`

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
