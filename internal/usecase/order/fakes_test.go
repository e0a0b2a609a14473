package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rosemall/flash-order-service/internal/domain"
	"github.com/rosemall/flash-order-service/internal/fees"
)

// memOrderRepo mirrors the transactional guarantees of the postgres
// repository: the quota recount and the status checks run under one lock.
type memOrderRepo struct {
	mu     sync.Mutex
	seq    int
	orders map[string]*domain.Order
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *memOrderRepo) nextID() string {
	r.seq++
	return fmt.Sprintf("order-%d", r.seq)
}

func (r *memOrderRepo) CreateOrder(order *domain.Order) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.insert(order), nil
}

func (r *memOrderRepo) insert(order *domain.Order) string {
	if order.ID == "" {
		order.ID = r.nextID()
	}
	stored := *order
	r.orders[order.ID] = &stored
	return order.ID
}

func (r *memOrderRepo) CreateOrderWithQuota(order *domain.Order, maxPerDay int, dayStart, dayEnd time.Time) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int
	for _, o := range r.orders {
		if o.UserID == order.UserID && o.Status != domain.StatusCancelled &&
			!o.CreatedAt.Before(dayStart) && o.CreatedAt.Before(dayEnd) {
			count++
		}
	}
	if count >= maxPerDay {
		return "", domain.ErrQuotaExceeded
	}
	return r.insert(order), nil
}

func (r *memOrderRepo) GetOrderByID(orderID string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *order
	return &copied, nil
}

func (r *memOrderRepo) ListOrdersByUserID(userID string) ([]*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var orders []*domain.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			copied := *o
			orders = append(orders, &copied)
		}
	}
	return orders, nil
}

func (r *memOrderRepo) ListOrders(filters domain.OrderFilters) ([]*domain.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var orders []*domain.Order
	for _, o := range r.orders {
		if filters.UserID != "" && o.UserID != filters.UserID {
			continue
		}
		if len(filters.Statuses) > 0 {
			matched := false
			for _, s := range filters.Statuses {
				if o.Status == s {
					matched = true
				}
			}
			if !matched {
				continue
			}
		}
		copied := *o
		orders = append(orders, &copied)
	}
	return orders, int64(len(orders)), nil
}

func (r *memOrderRepo) CountUserOrders(userID string, from, to time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, o := range r.orders {
		if o.UserID == userID && o.Status != domain.StatusCancelled &&
			!o.CreatedAt.Before(from) && o.CreatedAt.Before(to) {
			count++
		}
	}
	return count, nil
}

func (r *memOrderRepo) CountOrdersByStatus(status domain.OrderStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, o := range r.orders {
		if o.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *memOrderRepo) CountOrders(from, to time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, o := range r.orders {
		if !o.CreatedAt.Before(from) && o.CreatedAt.Before(to) {
			count++
		}
	}
	return count, nil
}

func (r *memOrderRepo) SumOrderAmount(from, to time.Time) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sum := decimal.Zero
	for _, o := range r.orders {
		if o.Status != domain.StatusCancelled && !o.CreatedAt.Before(from) && o.CreatedAt.Before(to) {
			sum = sum.Add(o.Price)
		}
	}
	return sum, nil
}

func (r *memOrderRepo) MarkPaid(orderID string, fees domain.ListingFees, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	if order.Status != domain.StatusPendingPay {
		return domain.ErrStateConflict
	}
	order.Status = domain.StatusListed
	order.PaidAt = &at
	order.ListedAt = &at
	order.AvailableAt = &at
	order.ListingPrice = fees.ListingPrice
	order.ListingFee = fees.ListingFee
	order.CommissionFee = fees.CommissionFee
	order.PlatformServiceFee = fees.PlatformServiceFee
	order.MemberProfit = fees.MemberProfit
	return nil
}

func (r *memOrderRepo) SplitOrder(parentID string, children []*domain.Order, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	parent, ok := r.orders[parentID]
	if !ok {
		return domain.ErrNotFound
	}
	if parent.Status != domain.StatusListed {
		return domain.ErrStateConflict
	}
	parent.Status = domain.StatusSplit
	parent.SplitAt = &at
	for _, child := range children {
		r.insert(child)
	}
	return nil
}

func (r *memOrderRepo) AssignOrder(orderID string, assignee string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	if order.Status.IsTerminal() {
		return domain.ErrStateConflict
	}
	order.AssignedTo = assignee
	order.AssignedAt = &at
	if order.Status == domain.StatusListed {
		order.Status = domain.StatusAssigned
	}
	return nil
}

func (r *memOrderRepo) CompleteOrder(orderID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	if order.Status != domain.StatusListed && order.Status != domain.StatusAssigned {
		return domain.ErrStateConflict
	}
	order.Status = domain.StatusCompleted
	order.CompletedAt = &at
	return nil
}

func (r *memOrderRepo) CancelOrder(orderID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	if order.Status != domain.StatusPendingPay {
		return domain.ErrStateConflict
	}
	order.Status = domain.StatusCancelled
	order.CancelledAt = &at
	return nil
}

func (r *memOrderRepo) FindExpiredPendingOrders(createdBefore time.Time) ([]*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var orders []*domain.Order
	for _, o := range r.orders {
		if o.Status == domain.StatusPendingPay && o.CreatedAt.Before(createdBefore) {
			copied := *o
			orders = append(orders, &copied)
		}
	}
	return orders, nil
}

func (r *memOrderRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.orders)
}

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newMemUserRepo(users ...*domain.User) *memUserRepo {
	repo := &memUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *memUserRepo) CreateUser(user *domain.User) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return user.ID, nil
}

func (r *memUserRepo) GetUserByID(userID string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *memUserRepo) GetUserByPhone(phone string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Phone == phone {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memUserRepo) GetUserByInviteCode(inviteCode string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.InviteCode == inviteCode {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memUserRepo) ListUsers() ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var users []*domain.User
	for _, u := range r.users {
		copied := *u
		users = append(users, &copied)
	}
	return users, nil
}

func (r *memUserRepo) CountUsers() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

func (r *memUserRepo) SetAgreementSigned(userID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return domain.ErrNotFound
	}
	user.AgreementSignedAt = &at
	return nil
}

type memProductRepo struct {
	products map[string]*domain.Product
}

func newMemProductRepo(products ...*domain.Product) *memProductRepo {
	repo := &memProductRepo{products: make(map[string]*domain.Product)}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (r *memProductRepo) CreateProduct(product *domain.Product) (string, error) {
	r.products[product.ID] = product
	return product.ID, nil
}

func (r *memProductRepo) GetProductByID(productID string) (*domain.Product, error) {
	product, ok := r.products[productID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

func (r *memProductRepo) ListProducts() ([]*domain.Product, error) {
	var products []*domain.Product
	for _, p := range r.products {
		products = append(products, p)
	}
	return products, nil
}

func (r *memProductRepo) UpdateProduct(product *domain.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *memProductRepo) DeleteProduct(productID string) error {
	delete(r.products, productID)
	return nil
}

// staticConfigProvider serves a fixed config.
type staticConfigProvider struct {
	cfg domain.SaleConfig
}

func (p *staticConfigProvider) Current() domain.SaleConfig { return p.cfg }
func (p *staticConfigProvider) Refresh() error             { return nil }
func (p *staticConfigProvider) UpdateSaleWindow(listingStart, flashSaleStart string) (domain.SaleConfig, error) {
	p.cfg.ListingStart = listingStart
	p.cfg.FlashSaleStart = flashSaleStart
	return p.cfg, nil
}

// memLocker behaves like the redis SetNX lock: one holder per user.
type memLocker struct {
	mu   sync.Mutex
	held map[string]string
}

func newMemLocker() *memLocker {
	return &memLocker{held: make(map[string]string)}
}

func (l *memLocker) Acquire(_ context.Context, userID, token string, _ time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, taken := l.held[userID]; taken {
		return false, nil
	}
	l.held[userID] = token
	return true, nil
}

func (l *memLocker) Release(_ context.Context, userID, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[userID] == token {
		delete(l.held, userID)
	}
	return nil
}

type testEnv struct {
	uc        *DefaultOrderUsecase
	orderRepo *memOrderRepo
	userRepo  *memUserRepo
	now       time.Time
}

const (
	testUserID     = "user-1"
	testMainID     = "main-1"
	testProductID  = "product-1"
	testProduct2ID = "product-2"
)

// newTestEnv wires the usecase against in-memory collaborators, with the
// clock pinned inside the flash-sale phase.
func newTestEnv() *testEnv {
	orderRepo := newMemOrderRepo()
	userRepo := newMemUserRepo(
		&domain.User{ID: testUserID, Phone: "13800000001", Nickname: "m1"},
		&domain.User{ID: testMainID, Phone: "13800000002", Nickname: "hq", IsMainAccount: true},
	)
	productRepo := newMemProductRepo(
		&domain.Product{
			ID:        testProductID,
			Title:     "Rose Box",
			BasePrice: decimal.NewFromInt(100),
		},
		&domain.Product{
			ID:        testProduct2ID,
			Title:     "Lily Box",
			BasePrice: decimal.NewFromInt(80),
		},
	)

	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	provider := &staticConfigProvider{cfg: domain.SaleConfig{
		ListingStart:    "10:00",
		FlashSaleStart:  "10:30",
		DailyGrowthRate: decimal.NewFromFloat(0.05),
		BasePriceDate:   time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		MaxOrdersPerDay: 3,
	}}

	uc := NewDefaultOrderUsecase(
		orderRepo,
		userRepo,
		productRepo,
		provider,
		fees.NewRatioPolicy(0.06, 0.01, 0.02, 0.01),
		newMemLocker(),
		nil,
		nil,
		"order-events",
		time.UTC,
		24*time.Hour,
	)

	env := &testEnv{uc: uc, orderRepo: orderRepo, userRepo: userRepo, now: now}
	uc.Now = func() time.Time { return env.now }
	return env
}
