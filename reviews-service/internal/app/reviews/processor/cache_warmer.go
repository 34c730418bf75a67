package processor

import (
	"context"

	"chillgamer/pkg/logger"
	"chillgamer/pkg/metrics"
	"chillgamer/reviews-service/internal/app/reviews/service"

	"github.com/robfig/cron/v3"
)

// CacheWarmer периодически пересчитывает топ отзывов в Redis,
// чтобы GET /topreviews не ходил в MongoDB после инвалидации
type CacheWarmer struct {
	cron      *cron.Cron
	refresher service.TopReviewsRefresher
}

func NewCacheWarmer(refresher service.TopReviewsRefresher) *CacheWarmer {
	c := cron.New(cron.WithLogger(cron.PrintfLogger(logger.Get())))

	return &CacheWarmer{
		cron:      c,
		refresher: refresher,
	}
}

func (w *CacheWarmer) Start(ctx context.Context, schedule string) error {
	logger.Info().Str("schedule", schedule).Msg("Starting top reviews cache warmer")

	_, err := w.cron.AddFunc(schedule, func() {
		w.refresh(ctx)
	})
	if err != nil {
		return err
	}

	w.cron.Start()

	// Первичное заполнение кеша
	w.refresh(ctx)

	return nil
}

func (w *CacheWarmer) refresh(ctx context.Context) {
	if err := w.refresher.RefreshTopReviews(ctx); err != nil {
		metrics.CacheWarmerRuns.WithLabelValues("error").Inc()
		logger.Warn().Err(err).Msg("Failed to refresh top reviews cache")
		return
	}

	metrics.CacheWarmerRuns.WithLabelValues("success").Inc()
	logger.Debug().Msg("Top reviews cache refreshed")
}

func (w *CacheWarmer) Stop() {
	logger.Info().Msg("Stopping top reviews cache warmer...")
	ctx := w.cron.Stop()
	<-ctx.Done()
	logger.Info().Msg("Top reviews cache warmer stopped")
}

func (w *CacheWarmer) entries() []cron.Entry {
	return w.cron.Entries()
}
