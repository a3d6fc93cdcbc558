package postgres

import (
	"database/sql"

	"github.com/nadavsagiv/beachrental2/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.RentalRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:               db,
		RentalRepository: NewRentalRepository(db),
	}
}
