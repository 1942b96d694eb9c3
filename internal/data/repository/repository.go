package repository

import (
	"context"
	"fmt"

	"freelance-marketplace/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Session     SessionRepository
	Profile     ProfileRepository
	Offer       OfferRepository
	OfferDetail OfferDetailRepository
	Order       OrderRepository
	Review      ReviewRepository

	// InTx runs fn against a repository bound to one transaction,
	// committing on nil and rolling back on error.
	InTx func(ctx context.Context, fn func(r *Repository) error) error
}

func newRepositories(db database.Querier, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Session:     NewSessionRepository(db, log),
		Profile:     NewProfileRepository(db, log),
		Offer:       NewOfferRepository(db, log),
		OfferDetail: NewOfferDetailRepository(db, log),
		Order:       NewOrderRepository(db, log),
		Review:      NewReviewRepository(db, log),
	}
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	repo := newRepositories(db, log)

	repo.InTx = func(ctx context.Context, fn func(r *Repository) error) error {
		tx, err := db.Begin(ctx)
		if err != nil {
			log.Error("Failed to begin transaction", zap.Error(err))
			return fmt.Errorf("begin transaction: %w", err)
		}

		if err := fn(newRepositories(tx, log)); err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				log.Error("Failed to rollback transaction", zap.Error(rbErr))
			}
			return err
		}

		if err := tx.Commit(ctx); err != nil {
			log.Error("Failed to commit transaction", zap.Error(err))
			return fmt.Errorf("commit transaction: %w", err)
		}

		return nil
	}

	return repo
}
