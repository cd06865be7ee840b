package storage

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// CurrentStateKey is the app_state row holding the live calculator state.
const CurrentStateKey = "citylockers_current_state"

var db *sql.DB

func InitDB() *sql.DB {
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file")
	}
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")

	connStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		user, password, dbname, host, port)

	var err error
	db, err = sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Set connection pool settings optimized for light server load
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	if err := EnsureSchema(db); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	return db
}

func GetDB() *sql.DB {
	return db
}

// EnsureSchema creates the app_state table used for the live calculator state.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS app_state (
			key TEXT PRIMARY KEY,
			value JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create app_state table: %v", err)
	}
	return nil
}

// GetStateBlob returns the stored JSON blob for a state key. A missing row is
// not an error; found is false and the caller falls back to defaults.
func GetStateBlob(db *sql.DB, key string) ([]byte, bool, error) {
	var value []byte
	query := `SELECT value FROM app_state WHERE key = $1`
	err := db.QueryRow(query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load state %s: %v", key, err)
	}
	return value, true, nil
}

// SetStateBlob upserts the JSON blob for a state key.
func SetStateBlob(db *sql.DB, key string, value []byte) error {
	query := `INSERT INTO app_state (key, value, updated_at) VALUES ($1, $2, NOW())
	          ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
	_, err := db.Exec(query, key, value)
	if err != nil {
		return fmt.Errorf("failed to save state %s: %v", key, err)
	}
	return nil
}

// CleanupStaleStates removes state rows untouched for six months. The live
// calculator state is never pruned.
func CleanupStaleStates(db *sql.DB) error {
	threshold := time.Now().AddDate(0, -6, 0)
	_, err := db.Exec(`DELETE FROM app_state WHERE key <> $1 AND updated_at < $2`,
		CurrentStateKey, threshold)
	return err
}
