package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/mhr996/school-dash-backend/internal/domain"
)

func TestProviderTableMapping(t *testing.T) {
	// Every valid service type resolves to a table; anything else errors.
	for _, serviceType := range domain.ServiceTypes {
		table, err := providerTable(serviceType)
		assert.NoError(t, err)
		assert.NotEmpty(t, table)
	}
	_, err := providerTable("catering")
	assert.Error(t, err)
}

func TestProviderRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewProviderRepository(db)
	ctx := context.Background()

	cols := []string{"id", "name", "user_id", "phone", "email", "daily_rate", "status", "document_key", "created_at"}

	t.Run("QueriesTypeSpecificTable", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM guides WHERE id").
			WithArgs(int64(9)).
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow(9, "Dana", nil, "050-1234567", "dana@example.com", 1200.0, "active", "", time.Now()))

		p, err := repo.GetByID(ctx, domain.ServiceTypeGuide, 9)
		assert.NoError(t, err)
		assert.Equal(t, domain.ServiceTypeGuide, p.ServiceType)
		assert.Equal(t, "Dana", p.Name)
		assert.Nil(t, p.UserID)
	})

	t.Run("MissingRowIsNotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM paramedics WHERE id").
			WithArgs(int64(9)).
			WillReturnRows(sqlmock.NewRows(cols))

		_, err := repo.GetByID(ctx, domain.ServiceTypeParamedic, 9)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("UnknownTypeNeverReachesDatabase", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "catering", 9)
		assert.Error(t, err)
	})
}

func TestProviderRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewProviderRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		p := &domain.ServiceProvider{
			ServiceType: domain.ServiceTypeSecurity,
			Name:        "SecureCo",
			Status:      domain.ProviderStatusActive,
			DailyRate:   800,
		}

		mock.ExpectQuery("INSERT INTO security_companies").
			WithArgs(p.Name, p.UserID, p.Phone, p.Email, p.DailyRate, p.Status, p.DocumentKey).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(2, time.Now()))

		err := repo.Create(ctx, p)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), p.ID)
	})
}
