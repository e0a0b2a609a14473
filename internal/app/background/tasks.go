package background

import (
	"context"
	"log"
	"log/slog"
	"time"

	"github.com/rosemall/flash-order-service/internal/infrastructure/metrics"
	"github.com/rosemall/flash-order-service/internal/saleclock"
	uc "github.com/rosemall/flash-order-service/internal/usecase"
	orderuc "github.com/rosemall/flash-order-service/internal/usecase/order"
)

type BackgroundTasks struct {
	OrderUsecase   orderuc.OrderUsecase
	ConfigProvider *uc.DefaultSaleConfigProvider
	Metrics        *metrics.OrderMetrics
	Location       *time.Location
}

func NewBackgroundTasks(
	orderUC orderuc.OrderUsecase,
	configProvider *uc.DefaultSaleConfigProvider,
	orderMetrics *metrics.OrderMetrics,
	loc *time.Location) *BackgroundTasks {

	return &BackgroundTasks{
		OrderUsecase:   orderUC,
		ConfigProvider: configProvider,
		Metrics:        orderMetrics,
		Location:       loc,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startOrderAutoCancel(ctx)
	go bt.startConfigRefresh(ctx)
	go bt.startPhaseWatcher(ctx)
}

func (bt *BackgroundTasks) startOrderAutoCancel(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := bt.OrderUsecase.CancelExpiredOrders(ctx); err != nil {
				log.Printf("Auto-cancel error: %v\n", err)
			}
		}
	}
}

func (bt *BackgroundTasks) startConfigRefresh(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := bt.ConfigProvider.Refresh(); err != nil {
				log.Printf("Sale config refresh error: %v\n", err)
			}
		}
	}
}

// startPhaseWatcher re-derives the sale phase every second and mirrors
// transitions into the phase gauge and the log.
func (bt *BackgroundTasks) startPhaseWatcher(ctx context.Context) {
	source := func() saleclock.Window {
		cfg := bt.ConfigProvider.Current()
		window, err := saleclock.ParseWindow(cfg.ListingStart, cfg.FlashSaleStart)
		if err != nil {
			return saleclock.DefaultWindow()
		}
		return window
	}

	scheduler := saleclock.NewScheduler(source, time.Second, bt.Location)
	changes := scheduler.Subscribe()

	allPhases := []string{
		string(saleclock.PhaseBeforeListing),
		string(saleclock.PhaseListing),
		string(saleclock.PhaseFlashSale),
	}
	if bt.Metrics != nil {
		now := time.Now().In(bt.Location)
		bt.Metrics.RecordSalePhase(string(saleclock.PhaseAt(now, source())), allPhases)
	}

	go scheduler.Run(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case change := <-changes:
			slog.Info("sale phase changed", "from", change.From, "to", change.To)
			if bt.Metrics != nil {
				bt.Metrics.RecordSalePhase(string(change.To), allPhases)
			}
		}
	}
}
