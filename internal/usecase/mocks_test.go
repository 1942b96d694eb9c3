package usecase

import (
	"context"
	"time"

	"freelance-marketplace/internal/data/entity"
	"freelance-marketplace/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Func-field stubs so each test only wires the calls it cares about.

type mockUserRepo struct {
	CreateFn         func(ctx context.Context, user *entity.User) error
	FindByIDFn       func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmailFn    func(ctx context.Context, email string) (*entity.User, error)
	FindByUsernameFn func(ctx context.Context, username string) (*entity.User, error)
	UpdateFn         func(ctx context.Context, user *entity.User) error
	CountByRoleFn    func(ctx context.Context, role entity.UserRole) (int64, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	return m.CreateFn(ctx, user)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return m.FindByIDFn(ctx, id)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return m.FindByEmailFn(ctx, email)
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return m.FindByUsernameFn(ctx, username)
}

func (m *mockUserRepo) Update(ctx context.Context, user *entity.User) error {
	return m.UpdateFn(ctx, user)
}

func (m *mockUserRepo) CountByRole(ctx context.Context, role entity.UserRole) (int64, error) {
	return m.CountByRoleFn(ctx, role)
}

type mockSessionRepo struct {
	CreateFn                func(ctx context.Context, session *entity.Session) error
	FindValidSessionFn      func(ctx context.Context, token string) (*entity.Session, error)
	RevokeFn                func(ctx context.Context, token string) error
	RevokeAllUserSessionsFn func(ctx context.Context, userID uuid.UUID) error
}

func (m *mockSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	return m.CreateFn(ctx, session)
}

func (m *mockSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	return m.FindValidSessionFn(ctx, token)
}

func (m *mockSessionRepo) Revoke(ctx context.Context, token string) error {
	return m.RevokeFn(ctx, token)
}

func (m *mockSessionRepo) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	return m.RevokeAllUserSessionsFn(ctx, userID)
}

type mockProfileRepo struct {
	CreateFn        func(ctx context.Context, profile *entity.Profile) error
	FindByUserIDFn  func(ctx context.Context, userID uuid.UUID) (*entity.ProfileWithUser, error)
	FindAllByRoleFn func(ctx context.Context, role entity.UserRole) ([]*entity.ProfileWithUser, error)
	UpdateFn        func(ctx context.Context, profile *entity.Profile) error
}

func (m *mockProfileRepo) Create(ctx context.Context, profile *entity.Profile) error {
	return m.CreateFn(ctx, profile)
}

func (m *mockProfileRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.ProfileWithUser, error) {
	return m.FindByUserIDFn(ctx, userID)
}

func (m *mockProfileRepo) FindAllByRole(ctx context.Context, role entity.UserRole) ([]*entity.ProfileWithUser, error) {
	return m.FindAllByRoleFn(ctx, role)
}

func (m *mockProfileRepo) Update(ctx context.Context, profile *entity.Profile) error {
	return m.UpdateFn(ctx, profile)
}

type mockOfferRepo struct {
	CreateFn     func(ctx context.Context, offer *entity.Offer) error
	FindByIDFn   func(ctx context.Context, id uuid.UUID) (*entity.OfferSummary, error)
	FindAllFn    func(ctx context.Context, filter repository.OfferFilter) ([]*entity.OfferSummary, error)
	CountAllFn   func(ctx context.Context, filter repository.OfferFilter) (int64, error)
	UpdateFn     func(ctx context.Context, offer *entity.Offer) error
	DeleteFn     func(ctx context.Context, id uuid.UUID) error
	CountTotalFn func(ctx context.Context) (int64, error)
}

func (m *mockOfferRepo) Create(ctx context.Context, offer *entity.Offer) error {
	return m.CreateFn(ctx, offer)
}

func (m *mockOfferRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.OfferSummary, error) {
	return m.FindByIDFn(ctx, id)
}

func (m *mockOfferRepo) FindAll(ctx context.Context, filter repository.OfferFilter) ([]*entity.OfferSummary, error) {
	return m.FindAllFn(ctx, filter)
}

func (m *mockOfferRepo) CountAll(ctx context.Context, filter repository.OfferFilter) (int64, error) {
	return m.CountAllFn(ctx, filter)
}

func (m *mockOfferRepo) Update(ctx context.Context, offer *entity.Offer) error {
	return m.UpdateFn(ctx, offer)
}

func (m *mockOfferRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFn(ctx, id)
}

func (m *mockOfferRepo) CountTotal(ctx context.Context) (int64, error) {
	return m.CountTotalFn(ctx)
}

type mockOfferDetailRepo struct {
	CreateFn             func(ctx context.Context, detail *entity.OfferDetail) error
	FindByIDFn           func(ctx context.Context, id uuid.UUID) (*entity.OfferDetail, error)
	FindByOfferIDFn      func(ctx context.Context, offerID uuid.UUID) ([]*entity.OfferDetail, error)
	FindByOfferAndTypeFn func(ctx context.Context, offerID uuid.UUID, offerType entity.OfferType) (*entity.OfferDetail, error)
	UpdateFn             func(ctx context.Context, detail *entity.OfferDetail) error
	DeleteByOfferIDFn    func(ctx context.Context, offerID uuid.UUID) error
}

func (m *mockOfferDetailRepo) Create(ctx context.Context, detail *entity.OfferDetail) error {
	return m.CreateFn(ctx, detail)
}

func (m *mockOfferDetailRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.OfferDetail, error) {
	return m.FindByIDFn(ctx, id)
}

func (m *mockOfferDetailRepo) FindByOfferID(ctx context.Context, offerID uuid.UUID) ([]*entity.OfferDetail, error) {
	return m.FindByOfferIDFn(ctx, offerID)
}

func (m *mockOfferDetailRepo) FindByOfferAndType(ctx context.Context, offerID uuid.UUID, offerType entity.OfferType) (*entity.OfferDetail, error) {
	return m.FindByOfferAndTypeFn(ctx, offerID, offerType)
}

func (m *mockOfferDetailRepo) Update(ctx context.Context, detail *entity.OfferDetail) error {
	return m.UpdateFn(ctx, detail)
}

func (m *mockOfferDetailRepo) DeleteByOfferID(ctx context.Context, offerID uuid.UUID) error {
	return m.DeleteByOfferIDFn(ctx, offerID)
}

type mockOrderRepo struct {
	CreateFn                   func(ctx context.Context, order *entity.Order) error
	FindByIDFn                 func(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindAllForUserFn           func(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	UpdateStatusFn             func(ctx context.Context, id uuid.UUID, status entity.OrderStatus, updatedAt time.Time) error
	CountByBusinessAndStatusFn func(ctx context.Context, businessID uuid.UUID, status entity.OrderStatus) (int64, error)
}

func (m *mockOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	return m.CreateFn(ctx, order)
}

func (m *mockOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return m.FindByIDFn(ctx, id)
}

func (m *mockOrderRepo) FindAllForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	return m.FindAllForUserFn(ctx, userID)
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, updatedAt time.Time) error {
	return m.UpdateStatusFn(ctx, id, status, updatedAt)
}

func (m *mockOrderRepo) CountByBusinessAndStatus(ctx context.Context, businessID uuid.UUID, status entity.OrderStatus) (int64, error) {
	return m.CountByBusinessAndStatusFn(ctx, businessID, status)
}

type mockReviewRepo struct {
	CreateFn                    func(ctx context.Context, review *entity.Review) error
	FindByIDFn                  func(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	FindAllFn                   func(ctx context.Context, filter repository.ReviewFilter) ([]*entity.Review, error)
	FindByReviewerAndBusinessFn func(ctx context.Context, reviewerID, businessUserID uuid.UUID) (*entity.Review, error)
	UpdateFn                    func(ctx context.Context, review *entity.Review) error
	GetPlatformStatsFn          func(ctx context.Context) (float64, int64, error)
}

func (m *mockReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	return m.CreateFn(ctx, review)
}

func (m *mockReviewRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	return m.FindByIDFn(ctx, id)
}

func (m *mockReviewRepo) FindAll(ctx context.Context, filter repository.ReviewFilter) ([]*entity.Review, error) {
	return m.FindAllFn(ctx, filter)
}

func (m *mockReviewRepo) FindByReviewerAndBusiness(ctx context.Context, reviewerID, businessUserID uuid.UUID) (*entity.Review, error) {
	return m.FindByReviewerAndBusinessFn(ctx, reviewerID, businessUserID)
}

func (m *mockReviewRepo) Update(ctx context.Context, review *entity.Review) error {
	return m.UpdateFn(ctx, review)
}

func (m *mockReviewRepo) GetPlatformStats(ctx context.Context) (float64, int64, error) {
	return m.GetPlatformStatsFn(ctx)
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

// withInTx makes InTx run the callback against the same stubbed repositories.
func withInTx(repo *repository.Repository) *repository.Repository {
	repo.InTx = func(ctx context.Context, fn func(r *repository.Repository) error) error {
		return fn(repo)
	}
	return repo
}
