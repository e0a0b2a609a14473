package usecase

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosemall/flash-order-service/internal/domain"
	"github.com/rosemall/flash-order-service/internal/saleclock"
)

type stubSaleConfigRepo struct {
	cfg *domain.SaleConfig
	err error

	updates int
}

func (r *stubSaleConfigRepo) GetSaleConfig() (*domain.SaleConfig, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.cfg, nil
}

func (r *stubSaleConfigRepo) UpdateSaleWindow(listingStart, flashSaleStart string) (*domain.SaleConfig, error) {
	r.updates++
	r.cfg.ListingStart = listingStart
	r.cfg.FlashSaleStart = flashSaleStart
	return r.cfg, nil
}

func TestSaleConfigProvider_ServesDefaultsWhenStoreDown(t *testing.T) {
	repo := &stubSaleConfigRepo{err: errors.New("connection refused")}
	provider := NewDefaultSaleConfigProvider(repo)

	cfg := provider.Current()
	assert.Equal(t, saleclock.DefaultListingStart, cfg.ListingStart)
	assert.Equal(t, saleclock.DefaultFlashSaleStart, cfg.FlashSaleStart)
	assert.Equal(t, 3, cfg.MaxOrdersPerDay)
}

func TestSaleConfigProvider_ServesStoredConfig(t *testing.T) {
	repo := &stubSaleConfigRepo{cfg: &domain.SaleConfig{
		ListingStart:    "09:00",
		FlashSaleStart:  "09:45",
		MaxOrdersPerDay: 5,
	}}
	provider := NewDefaultSaleConfigProvider(repo)

	cfg := provider.Current()
	assert.Equal(t, "09:00", cfg.ListingStart)
	assert.Equal(t, 5, cfg.MaxOrdersPerDay)
}

func TestSaleConfigProvider_UpdateValidatesWindow(t *testing.T) {
	repo := &stubSaleConfigRepo{cfg: &domain.SaleConfig{
		ListingStart:   "10:00",
		FlashSaleStart: "10:30",
	}}
	provider := NewDefaultSaleConfigProvider(repo)

	_, err := provider.UpdateSaleWindow("11:00", "10:30")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, 0, repo.updates, "an invalid window must never reach the store")

	updated, err := provider.UpdateSaleWindow("09:00", "09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:00", updated.ListingStart)
	assert.Equal(t, "09:00", provider.Current().ListingStart, "cache follows the write")
}

type stubProductRepo struct {
	products []*domain.Product
}

func (r *stubProductRepo) CreateProduct(p *domain.Product) (string, error) { return p.ID, nil }
func (r *stubProductRepo) GetProductByID(id string) (*domain.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}
func (r *stubProductRepo) ListProducts() ([]*domain.Product, error) { return r.products, nil }
func (r *stubProductRepo) UpdateProduct(*domain.Product) error      { return nil }
func (r *stubProductRepo) DeleteProduct(string) error               { return nil }

func fixedProvider(cfg domain.SaleConfig) *DefaultSaleConfigProvider {
	return NewDefaultSaleConfigProvider(&stubSaleConfigRepo{cfg: &cfg})
}

func TestFlashSaleSnapshot(t *testing.T) {
	productRepo := &stubProductRepo{products: []*domain.Product{
		{ID: "p1", Title: "Rose Box", BasePrice: decimal.NewFromInt(100)},
	}}
	provider := fixedProvider(domain.SaleConfig{
		ListingStart:    "10:00",
		FlashSaleStart:  "10:30",
		DailyGrowthRate: decimal.NewFromFloat(0.05),
		BasePriceDate:   time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC),
	})

	uc := NewDefaultFlashSaleUsecase(productRepo, provider, time.UTC)
	uc.Now = func() time.Time { return time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC) }

	snapshot, err := uc.Snapshot()
	require.NoError(t, err)

	assert.Equal(t, saleclock.PhaseBeforeListing, snapshot.Status)
	assert.Equal(t, "10:00", snapshot.ListingAt)
	assert.Equal(t, "10:30", snapshot.OpenAt)
	assert.Equal(t, "01:00:00", snapshot.Countdown)
	require.Len(t, snapshot.Products, 1)
	assert.Equal(t, "105.00", snapshot.Products[0].Price, "one day of 5% growth")
}

func TestFlashSaleSnapshot_NoCountdownDuringSale(t *testing.T) {
	provider := fixedProvider(domain.SaleConfig{
		ListingStart:    "10:00",
		FlashSaleStart:  "10:30",
		DailyGrowthRate: decimal.NewFromFloat(0.05),
		BasePriceDate:   time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
	})

	uc := NewDefaultFlashSaleUsecase(&stubProductRepo{}, provider, time.UTC)
	uc.Now = func() time.Time { return time.Date(2024, 6, 15, 14, 0, 0, 0, time.UTC) }

	snapshot, err := uc.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, saleclock.PhaseFlashSale, snapshot.Status)
	assert.Empty(t, snapshot.Countdown)
}

type stubUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	repo := &stubUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *stubUserRepo) CreateUser(user *domain.User) (string, error) {
	if user.ID == "" {
		r.seq++
		user.ID = fmt.Sprintf("user-%d", r.seq)
	}
	r.users[user.ID] = user
	return user.ID, nil
}

func (r *stubUserRepo) GetUserByID(id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (r *stubUserRepo) GetUserByPhone(phone string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Phone == phone {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubUserRepo) GetUserByInviteCode(code string) (*domain.User, error) {
	for _, u := range r.users {
		if u.InviteCode == code {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubUserRepo) ListUsers() ([]*domain.User, error) {
	var users []*domain.User
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}

func (r *stubUserRepo) CountUsers() (int64, error) { return int64(len(r.users)), nil }

func (r *stubUserRepo) SetAgreementSigned(id string, at time.Time) error {
	if u, ok := r.users[id]; ok {
		u.AgreementSignedAt = &at
		return nil
	}
	return domain.ErrNotFound
}

type stubReferralRepo struct {
	referrals []*domain.Referral
}

func (r *stubReferralRepo) CreateReferral(ref *domain.Referral) (string, error) {
	ref.ID = fmt.Sprintf("ref-%d", len(r.referrals)+1)
	r.referrals = append(r.referrals, ref)
	return ref.ID, nil
}

func (r *stubReferralRepo) ListByReferrerID(referrerID string) ([]*domain.ReferralEntry, error) {
	var entries []*domain.ReferralEntry
	for _, ref := range r.referrals {
		if ref.ReferrerID == referrerID {
			entries = append(entries, &domain.ReferralEntry{ID: ref.ID})
		}
	}
	return entries, nil
}

func (r *stubReferralRepo) CountByReferrerID(referrerID string) (int64, error) {
	entries, _ := r.ListByReferrerID(referrerID)
	return int64(len(entries)), nil
}

func TestRegister(t *testing.T) {
	referrer := &domain.User{ID: "ref-user", Phone: "13800000001", InviteCode: "WELCOME1"}
	userRepo := newStubUserRepo(referrer)
	referralRepo := &stubReferralRepo{}
	uc := NewDefaultUserUsecase(userRepo, referralRepo)

	user, err := uc.Register(&RegisterInput{
		Phone:      "13900000002",
		Code:       "123456",
		InviteCode: "WELCOME1",
		Password:   "secret99",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.NotEmpty(t, user.InviteCode)
	assert.NotEqual(t, "secret99", user.PasswordHash, "password must be hashed")
	assert.Equal(t, "139****0002", user.Nickname)

	require.Len(t, referralRepo.referrals, 1)
	assert.Equal(t, referrer.ID, referralRepo.referrals[0].ReferrerID)
	assert.Equal(t, user.ID, referralRepo.referrals[0].ReferredUserID)
}

func TestRegister_UnknownInviteCode(t *testing.T) {
	uc := NewDefaultUserUsecase(newStubUserRepo(), &stubReferralRepo{})

	_, err := uc.Register(&RegisterInput{
		Phone:      "13900000002",
		Code:       "123456",
		InviteCode: "NOPE",
		Password:   "secret99",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRegister_DuplicatePhone(t *testing.T) {
	referrer := &domain.User{ID: "ref-user", Phone: "13800000001", InviteCode: "WELCOME1"}
	taken := &domain.User{ID: "taken", Phone: "13900000002"}
	uc := NewDefaultUserUsecase(newStubUserRepo(referrer, taken), &stubReferralRepo{})

	_, err := uc.Register(&RegisterInput{
		Phone:      "13900000002",
		Code:       "123456",
		InviteCode: "WELCOME1",
		Password:   "secret99",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLogin(t *testing.T) {
	referrer := &domain.User{ID: "ref-user", Phone: "13800000001", InviteCode: "WELCOME1"}
	userRepo := newStubUserRepo(referrer)
	uc := NewDefaultUserUsecase(userRepo, &stubReferralRepo{})

	registered, err := uc.Register(&RegisterInput{
		Phone:      "13900000002",
		Code:       "123456",
		InviteCode: "WELCOME1",
		Password:   "secret99",
	})
	require.NoError(t, err)

	user, err := uc.Login("13900000002", "secret99")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, err = uc.Login("13900000002", "wrong")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login("13911111111", "secret99")
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "unknown phone must not be distinguishable")
}

func TestReferralSummary(t *testing.T) {
	owner := &domain.User{ID: "owner", InviteCode: "OWNER123"}
	userRepo := newStubUserRepo(owner)
	referralRepo := &stubReferralRepo{referrals: []*domain.Referral{
		{ID: "r1", ReferrerID: "owner", ReferredUserID: "a"},
		{ID: "r2", ReferrerID: "owner", ReferredUserID: "b"},
		{ID: "r3", ReferrerID: "other", ReferredUserID: "c"},
	}}
	provider := fixedProvider(domain.SaleConfig{
		ListingStart:          "10:00",
		FlashSaleStart:        "10:30",
		ReferralRewardPerUser: decimal.NewFromInt(10),
	})

	uc := NewDefaultReferralUsecase(referralRepo, userRepo, provider)
	summary, err := uc.Summary("owner")
	require.NoError(t, err)

	assert.Equal(t, "OWNER123", summary.InviteCode)
	assert.Equal(t, int64(2), summary.Count)
	assert.Equal(t, "20.00", summary.TotalReward.StringFixed(2))
}

// stubOrderCounts fakes only the counting surface the profile and dashboard
// flows touch; anything else panics through the embedded nil interface.
type stubOrderCounts struct {
	domain.OrderRepository
	userCount    int64
	totalCount   int64
	revenue      decimal.Decimal
	pendingCount int64
	listedCount  int64
}

func (r *stubOrderCounts) CountUserOrders(string, time.Time, time.Time) (int64, error) {
	return r.userCount, nil
}
func (r *stubOrderCounts) CountOrders(time.Time, time.Time) (int64, error) {
	return r.totalCount, nil
}
func (r *stubOrderCounts) SumOrderAmount(time.Time, time.Time) (decimal.Decimal, error) {
	return r.revenue, nil
}
func (r *stubOrderCounts) CountOrdersByStatus(status domain.OrderStatus) (int64, error) {
	if status == domain.StatusPendingPay {
		return r.pendingCount, nil
	}
	return r.listedCount, nil
}

type stubCouponRepo struct {
	balance decimal.Decimal
}

func (r *stubCouponRepo) CreateCoupon(c *domain.Coupon) (string, error)        { return "c1", nil }
func (r *stubCouponRepo) ListCouponsByUserID(string) ([]*domain.Coupon, error) { return nil, nil }
func (r *stubCouponRepo) ListCoupons() ([]*domain.Coupon, error)               { return nil, nil }
func (r *stubCouponRepo) SumUnusedByUserID(string) (decimal.Decimal, error)    { return r.balance, nil }

func TestProfile(t *testing.T) {
	member := &domain.User{ID: "member", Phone: "13800000003"}
	userRepo := newStubUserRepo(member)
	orderRepo := &stubOrderCounts{userCount: 2}
	couponRepo := &stubCouponRepo{balance: decimal.NewFromInt(30)}
	referralRepo := &stubReferralRepo{referrals: []*domain.Referral{
		{ID: "r1", ReferrerID: "member"},
	}}
	provider := fixedProvider(domain.SaleConfig{
		ListingStart:        "10:00",
		FlashSaleStart:      "10:30",
		MaxOrdersPerDay:     3,
		CouponCashThreshold: decimal.NewFromInt(100),
	})

	uc := NewDefaultProfileUsecase(userRepo, orderRepo, couponRepo, referralRepo, provider, time.UTC)
	profile, err := uc.Profile("member")
	require.NoError(t, err)

	assert.Equal(t, int64(2), profile.TodayOrders)
	require.NotNil(t, profile.RemainingQuota)
	assert.Equal(t, 1, *profile.RemainingQuota)
	assert.Equal(t, "30.00", profile.CouponsBalance.StringFixed(2))
	assert.Equal(t, int64(1), profile.ReferralCount)
	assert.False(t, profile.AgreementSigned)
}

func TestProfile_MainAccountHasNoQuota(t *testing.T) {
	main := &domain.User{ID: "main", IsMainAccount: true}
	uc := NewDefaultProfileUsecase(
		newStubUserRepo(main),
		&stubOrderCounts{userCount: 50},
		&stubCouponRepo{},
		&stubReferralRepo{},
		fixedProvider(domain.SaleConfig{ListingStart: "10:00", FlashSaleStart: "10:30", MaxOrdersPerDay: 3}),
		time.UTC,
	)

	profile, err := uc.Profile("main")
	require.NoError(t, err)
	assert.Nil(t, profile.RemainingQuota)
}

func TestDashboardStats(t *testing.T) {
	orderRepo := &stubOrderCounts{
		totalCount:   7,
		revenue:      decimal.NewFromFloat(712.50),
		pendingCount: 2,
		listedCount:  4,
	}
	userRepo := newStubUserRepo(&domain.User{ID: "u1"}, &domain.User{ID: "u2"})

	uc := NewDefaultDashboardUsecase(orderRepo, userRepo, time.UTC)
	stats, err := uc.Stats()
	require.NoError(t, err)

	assert.Equal(t, int64(7), stats.TodayOrders)
	assert.Equal(t, "712.50", stats.TodayRevenue.StringFixed(2))
	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(2), stats.PendingOrders)
	assert.Equal(t, int64(4), stats.ListedOrders)
}

func TestGrantCoupon_Validation(t *testing.T) {
	uc := NewDefaultCouponUsecase(&stubCouponRepo{}, newStubUserRepo(&domain.User{ID: "u1"}))

	_, err := uc.GrantCoupon(&GrantCouponInput{UserID: "u1", Amount: decimal.Zero, Reason: "promo"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.GrantCoupon(&GrantCouponInput{UserID: "u1", Amount: decimal.NewFromInt(10), Reason: " "})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.GrantCoupon(&GrantCouponInput{UserID: "missing", Amount: decimal.NewFromInt(10), Reason: "promo"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	coupon, err := uc.GrantCoupon(&GrantCouponInput{UserID: "u1", Amount: decimal.NewFromInt(10), Reason: "promo"})
	require.NoError(t, err)
	assert.Equal(t, domain.CouponUnused, coupon.Status)
}
