package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rosemall/flash-order-service/internal/domain"
	"github.com/rosemall/flash-order-service/internal/pricing"
	"github.com/rosemall/flash-order-service/internal/saleclock"
	orderdto "github.com/rosemall/flash-order-service/internal/usecase/dto/order"
)

const createLockTTL = 15 * time.Second

// CreateFlashOrder runs the full eligibility gate: phase, signature and
// agreement, per-user submission lock, then the quota-checked insert. The
// price is locked from the pricing curve at this instant and never
// recomputed.
func (uc *DefaultOrderUsecase) CreateFlashOrder(ctx context.Context, input *orderdto.CreateFlashOrderInput) (*orderdto.OrderOutput, error) {
	start := uc.now()

	order, err := uc.createFlashOrder(ctx, input, start)
	outcome := "ok"
	if err != nil {
		outcome = "rejected"
	}
	if uc.Metrics != nil {
		uc.Metrics.RecordCreateDuration(outcome, time.Since(start).Seconds())
	}
	if err != nil {
		return nil, err
	}
	return orderdto.ToOrderOutput(order), nil
}

func (uc *DefaultOrderUsecase) createFlashOrder(ctx context.Context, input *orderdto.CreateFlashOrderInput, now time.Time) (*domain.Order, error) {
	if strings.TrimSpace(input.Signature) == "" {
		uc.rejectCreate("missing_signature")
		return nil, fmt.Errorf("%w: signature is required", domain.ErrValidation)
	}
	if !input.AgreementAccepted {
		uc.rejectCreate("agreement_not_accepted")
		return nil, fmt.Errorf("%w: purchase agreement must be accepted", domain.ErrValidation)
	}

	cfg := uc.ConfigProvider.Current()
	window := saleWindow(cfg)
	if phase := saleclock.PhaseAt(now, window); phase != saleclock.PhaseFlashSale {
		uc.rejectCreate("phase_not_open")
		return nil, fmt.Errorf("%w: current phase is %s", domain.ErrPhaseNotOpen, phase)
	}

	user, err := uc.UserRepo.GetUserByID(input.UserID)
	if err != nil {
		return nil, err
	}
	product, err := uc.ProductRepo.GetProductByID(input.ProductID)
	if err != nil {
		return nil, err
	}

	// At most one create submission in flight per user: a second tap (or
	// a second device, or another product) is rejected until the first
	// resolves, keeping the quota count honest.
	token := uuid.New().String()
	acquired, err := uc.Locker.Acquire(ctx, user.ID, token, createLockTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire create lock: %w", err)
	}
	if !acquired {
		uc.rejectCreate("submission_in_flight")
		return nil, fmt.Errorf("%w: another submission is already in flight", domain.ErrStateConflict)
	}
	defer func() {
		if err := uc.Locker.Release(ctx, user.ID, token); err != nil {
			slog.Error("failed to release create lock", "user_id", user.ID, "error", err.Error())
		}
	}()

	price := pricing.PriceForDay(product.BasePrice, cfg.DailyGrowthRate, cfg.BasePriceDate, now)

	order := &domain.Order{
		OrderNo:   uc.newOrderNo(),
		UserID:    user.ID,
		ProductID: product.ID,
		Price:     price,
		Note:      input.Note,
		Status:    domain.StatusPendingPay,
		CreatedAt: now,
	}

	if user.IsMainAccount {
		// Main accounts bypass the daily quota entirely.
		if _, err := uc.OrderRepo.CreateOrder(order); err != nil {
			return nil, err
		}
	} else {
		dayStart, dayEnd := saleclock.DayBounds(now, uc.Location)
		if _, err := uc.OrderRepo.CreateOrderWithQuota(order, cfg.MaxOrdersPerDay, dayStart, dayEnd); err != nil {
			if err == domain.ErrQuotaExceeded {
				uc.rejectCreate("quota_exceeded")
			}
			return nil, err
		}
	}

	// First signed submission stamps the agreement on the user record.
	if user.AgreementSignedAt == nil {
		if err := uc.UserRepo.SetAgreementSigned(user.ID, now); err != nil {
			slog.Error("failed to stamp agreement", "user_id", user.ID, "error", err.Error())
		}
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordOrderCreated(product.ID, "flash_sale")
	}
	uc.publishOrderEvent(order, "create")

	slog.Info("flash order created", "order_id", order.ID, "user_id", user.ID, "product_id", product.ID, "price", price.StringFixed(2))
	return order, nil
}

func (uc *DefaultOrderUsecase) rejectCreate(reason string) {
	if uc.Metrics != nil {
		uc.Metrics.RecordCreateRejected(reason)
	}
}

// saleWindow parses the configured window, falling back to the defaults
// when the stored strings are malformed.
func saleWindow(cfg domain.SaleConfig) saleclock.Window {
	window, err := saleclock.ParseWindow(cfg.ListingStart, cfg.FlashSaleStart)
	if err != nil {
		slog.Error("invalid sale window in config, using defaults", "error", err.Error())
		return saleclock.DefaultWindow()
	}
	return window
}
