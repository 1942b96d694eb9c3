package repository

import (
	"context"
	"testing"
	"time"

	"freelance-marketplace/internal/data/entity"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestOrderRepository_FindByID_DecodesFeatures(t *testing.T) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock, zap.NewNop())

	orderID := uuid.New()
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM orders").
		WithArgs(orderID).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "customer_id", "business_id", "offer_detail_id", "title",
			"revisions", "delivery_time_in_days", "price", "features",
			"offer_type", "status", "created_at", "updated_at",
		}).AddRow(orderID, uuid.New(), uuid.New(), uuid.New(), "Logo Design",
			3, 5, 150.0, []byte(`["Logo","Flyer"]`),
			entity.OfferTypeBasic, entity.OrderStatusInProgress, now, now))

	order, err := repo.FindByID(context.Background(), orderID)

	assert.NoError(t, err)
	assert.NotNil(t, order)
	assert.Equal(t, []string{"Logo", "Flyer"}, order.Features)
	assert.Equal(t, entity.OrderStatusInProgress, order.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock, zap.NewNop())

	now := time.Now()
	order := &entity.Order{
		Base:       entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		CustomerID:         uuid.New(),
		BusinessID:         uuid.New(),
		OfferDetailID:      uuid.New(),
		Title:              "Logo Design",
		Revisions:          3,
		DeliveryTimeInDays: 5,
		Price:              150,
		Features:           []string{"Logo"},
		OfferType:          entity.OfferTypeBasic,
		Status:             entity.OrderStatusInProgress,
	}

	mock.ExpectExec("INSERT INTO orders").
		WithArgs(order.ID, order.CustomerID, order.BusinessID, order.OfferDetailID,
			order.Title, order.Revisions, order.DeliveryTimeInDays, order.Price,
			[]byte(`["Logo"]`), order.OfferType, order.Status,
			order.CreatedAt, order.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), order)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock, zap.NewNop())

	orderID := uuid.New()
	now := time.Now()

	mock.ExpectExec("UPDATE orders").
		WithArgs(orderID, entity.OrderStatusCompleted, now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.UpdateStatus(context.Background(), orderID, entity.OrderStatusCompleted, now)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_UpdateStatus_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock, zap.NewNop())

	orderID := uuid.New()
	now := time.Now()

	mock.ExpectExec("UPDATE orders").
		WithArgs(orderID, entity.OrderStatusCancelled, now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.UpdateStatus(context.Background(), orderID, entity.OrderStatusCancelled, now)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_CountByBusinessAndStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock, zap.NewNop())

	businessID := uuid.New()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(businessID, entity.OrderStatusCompleted).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(4)))

	count, err := repo.CountByBusinessAndStatus(context.Background(), businessID, entity.OrderStatusCompleted)

	assert.NoError(t, err)
	assert.Equal(t, int64(4), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
