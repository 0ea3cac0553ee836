package postgres

import (
	"database/sql"

	"github.com/mhr996/school-dash-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.CustomerRepository
	repository.LedgerRepository
	repository.DealRepository
	repository.BillRepository
	repository.ProviderRepository
	repository.BookingRepository
	repository.PayoutRepository
	repository.SchoolRepository
	repository.DestinationRepository
	repository.UserRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		CustomerRepository:    NewCustomerRepository(db),
		LedgerRepository:      NewLedgerRepository(db),
		DealRepository:        NewDealRepository(db),
		BillRepository:        NewBillRepository(db),
		ProviderRepository:    NewProviderRepository(db),
		BookingRepository:     NewBookingRepository(db),
		PayoutRepository:      NewPayoutRepository(db),
		SchoolRepository:      NewSchoolRepository(db),
		DestinationRepository: NewDestinationRepository(db),
		UserRepository:        NewUserRepository(db),
	}
}
