package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"freelance-marketplace/internal/data/entity"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func txFixtures() (*entity.Offer, *entity.OfferDetail) {
	now := time.Now()
	offer := &entity.Offer{
		Base:        entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		CreatorID:   uuid.New(),
		Title:       "Design Package",
		Description: "Full branding",
	}
	detail := &entity.OfferDetail{
		BaseSimple:         entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
		OfferID:            offer.ID,
		Title:              "Basic",
		Revisions:          2,
		DeliveryTimeInDays: 5,
		Price:              50,
		Features:           []string{"Logo"},
		OfferType:          entity.OfferTypeBasic,
	}
	return offer, detail
}

func TestRepository_InTx_RollsBackOnFailedInsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mock.Close()

	repo := NewRepository(mock, zap.NewNop())
	offer, detail := txFixtures()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO offers").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO offer_details").
		WillReturnError(fmt.Errorf("connection reset"))
	mock.ExpectRollback()

	err = repo.InTx(context.Background(), func(r *Repository) error {
		if err := r.Offer.Create(context.Background(), offer); err != nil {
			return err
		}
		return r.OfferDetail.Create(context.Background(), detail)
	})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_InTx_CommitsOnSuccess(t *testing.T) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mock.Close()

	repo := NewRepository(mock, zap.NewNop())
	offer, detail := txFixtures()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO offers").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO offer_details").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err = repo.InTx(context.Background(), func(r *Repository) error {
		if err := r.Offer.Create(context.Background(), offer); err != nil {
			return err
		}
		return r.OfferDetail.Create(context.Background(), detail)
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_InTx_BeginFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mock.Close()

	repo := NewRepository(mock, zap.NewNop())

	mock.ExpectBegin().WillReturnError(fmt.Errorf("pool exhausted"))

	err = repo.InTx(context.Background(), func(r *Repository) error {
		t.Fatal("callback must not run when the transaction cannot start")
		return nil
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "begin transaction")
	assert.NoError(t, mock.ExpectationsWereMet())
}
