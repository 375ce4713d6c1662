package control

import (
	"database/sql"
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned when a control id does not exist.
var ErrNotFound = errors.New("race control not found")

// store handles all database operations for race controls.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Control is a single race day run under a league.
type Control struct {
	ID     int64     `json:"id"`
	League string    `json:"league"`
	Date   time.Time `json:"date"`
}
