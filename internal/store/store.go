// Package store is the data access layer: one named query function per use
// case, each with a fixed eager-loading shape. Single-record lookups return
// nil (not an error) when nothing matches.
package store

import (
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
)

// Sentinel errors mapped from unique-constraint violations so handlers can
// shape them into conflict responses instead of generic 500s.
var (
	ErrDuplicateEmail = errors.New("duplicate email")
	ErrDuplicateSlug  = errors.New("duplicate slug")
)

// Store wraps the relational capability.
type Store struct {
	DB *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{DB: db}
}

// MySQL error 1062: duplicate entry for a unique key.
func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
