// Package storage persists inquiry records in MySQL or SQLite.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
	"gitlab.com/dirk.krummacker/inquiry-service/internal/model"
	"gitlab.com/dirk.krummacker/inquiry-service/pkg/config"
)

// ErrDuplicateUniqueNumber is returned by Create when another record already uses the unique
// number of the new record.
var ErrDuplicateUniqueNumber = errors.New("unique number already in use")

// mysqlDuplicateEntry is the MySQL server error number for a violated unique key.
const mysqlDuplicateEntry = 1062

// Store reads and writes records. It is safe for concurrent use.
type Store struct {
	db *sqlx.DB

	// insert is a prepared statement for creating a record.
	insert *sqlx.NamedStmt

	// selectAll is a prepared statement for listing all records, newest first.
	selectAll *sqlx.Stmt
}

// Open opens and pings the database described by the configuration.
func Open(cfg config.DatabaseConfig) (*sql.DB, error) {
	sqlDB, err := sql.Open(cfg.Driver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.Driver, err)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping %s database: %w", cfg.Driver, err)
	}
	return sqlDB, nil
}

// NewStore wraps the specified sql database and prepares all statements. The database argument can
// be a real database for production use or a mock database within unit tests.
func NewStore(sqlDB *sql.DB, driverName string) (*Store, error) {
	var err error
	s := &Store{db: sqlx.NewDb(sqlDB, driverName)}

	s.insert, err = s.db.PrepareNamed(`
		INSERT INTO records (first_name, last_name, phone, email, gender, marital_status, unique_number, created_at)
		VALUES (:first_name, :last_name, :phone, :email, :gender, :marital_status, :unique_number, :created_at)
	`)
	if err != nil {
		return nil, fmt.Errorf("prepare insert: %w", err)
	}
	s.selectAll, err = s.db.Preparex(`
		SELECT * FROM records ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("prepare select: %w", err)
	}
	return s, nil
}

// DB returns the sqlx handle the store works on.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Create inserts the record and sets its id.
func (s *Store) Create(ctx context.Context, record *model.Record) error {
	result, err := s.insert.ExecContext(ctx, record)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert record %s: %w", record.UniqueNumber, ErrDuplicateUniqueNumber)
		}
		return fmt.Errorf("insert record: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("read id of new record: %w", err)
	}
	record.Id = id
	return nil
}

// FindAll returns every record, the most recently created first.
func (s *Store) FindAll(ctx context.Context) ([]model.Record, error) {
	records := []model.Record{}
	if err := s.selectAll.SelectContext(ctx, &records); err != nil {
		return nil, fmt.Errorf("select records: %w", err)
	}
	return records, nil
}

// Close releases the prepared statements and the database.
func (s *Store) Close() error {
	return errors.Join(s.insert.Close(), s.selectAll.Close(), s.db.Close())
}

// isUniqueViolation reports whether the driver rejected a write because of a unique constraint.
// unique_number is the only unique column besides the generated id.
func isUniqueViolation(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
