// Package history records run summaries in a MySQL database so a team
// can track regression trends across runs. Recording is optional: with
// no KTR_HISTORY_DB configured the recorder is a no-op.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"

	"ktr/internal/config"
	"ktr/internal/domain"
)

// Recorder writes run metadata rows into the history database.
type Recorder struct {
	cfg *config.Config
}

// NewRecorder creates a Recorder.
func NewRecorder(cfg *config.Config) *Recorder {
	return &Recorder{cfg: cfg}
}

// Enabled reports whether a history database is configured.
func (r *Recorder) Enabled() bool {
	r.loadEnv()
	return os.Getenv("KTR_HISTORY_DB") != ""
}

func (r *Recorder) loadEnv() {
	// .env might not exist; process env still applies.
	_ = godotenv.Load(filepath.Join(r.cfg.RootDir, ".env"))
}

// Record inserts one row for the finished run. Connection details come
// from the environment with local defaults.
func (r *Recorder) Record(meta domain.RunMeta) error {
	r.loadEnv()

	dbName := os.Getenv("KTR_HISTORY_DB")
	if dbName == "" {
		return nil
	}
	if !isValidDatabaseName(dbName) {
		return fmt.Errorf("invalid history database name: %s", dbName)
	}

	host := envOr("KTR_HISTORY_HOST", "127.0.0.1")
	port := envOr("KTR_HISTORY_PORT", "3306")
	user := envOr("KTR_HISTORY_USER", "root")
	password := os.Getenv("KTR_HISTORY_PASSWORD")

	// First connect without a database to make sure it exists.
	serverDSN := fmt.Sprintf("%s:%s@tcp(%s:%s)/", user, password, host, port)
	server, err := sql.Open("mysql", serverDSN)
	if err != nil {
		return fmt.Errorf("connect to history server: %w", err)
	}
	if err := server.Ping(); err != nil {
		server.Close()
		return fmt.Errorf("ping history server: %w", err)
	}
	if _, err := server.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", dbName)); err != nil {
		server.Close()
		return fmt.Errorf("create history database %s: %w", dbName, err)
	}
	server.Close()

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", user, password, host, port, dbName)
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("connect to history database: %w", err)
	}
	defer db.Close()

	const schema = `CREATE TABLE IF NOT EXISTS runs (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		run_at VARCHAR(64) NOT NULL,
		mode VARCHAR(32) NOT NULL,
		total_tests INT NOT NULL,
		passed_tests INT NOT NULL,
		failed_tests INT NOT NULL,
		unknown_tests INT NOT NULL,
		compile_warnings INT NOT NULL,
		workers INT NOT NULL,
		duration_seconds DOUBLE NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("create runs table: %w", err)
	}

	_, err = db.Exec(
		`INSERT INTO runs (run_at, mode, total_tests, passed_tests, failed_tests, unknown_tests, compile_warnings, workers, duration_seconds)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		meta.Timestamp, meta.Mode, meta.TotalTests, meta.PassedTests, meta.FailedTests,
		meta.UnknownTests, meta.CompileWarnings, meta.Workers, meta.DurationSeconds,
	)
	if err != nil {
		return fmt.Errorf("insert run row: %w", err)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// isValidDatabaseName validates the database name (basic check).
func isValidDatabaseName(name string) bool {
	if len(name) == 0 || len(name) > 64 {
		return false
	}
	invalid := []string{"'", "\"", ";", "--", "/*", "*/", "`"}
	for _, s := range invalid {
		if strings.Contains(name, s) {
			return false
		}
	}
	return true
}
