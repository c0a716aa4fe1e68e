package service

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"radar/internal/datarights/models"
	dErrors "radar/pkg/domain-errors"
	"radar/pkg/requestcontext"
)

// MaxErasureWindow caps how long a deletion request may wait for erasure.
const MaxErasureWindow = 30 * 24 * time.Hour

// PurgeExpired erases participants whose deletion was requested more than
// window ago. Windows outside (0, MaxErasureWindow] are clamped to
// MaxErasureWindow. One failed erasure does not stop the others; only a
// failure to list candidates is returned.
func (s *Service) PurgeExpired(ctx context.Context, window time.Duration) (*models.PurgeReport, error) {
	if window <= 0 || window > MaxErasureWindow {
		window = MaxErasureWindow
	}
	ctx, span := tracer.Start(ctx, "datarights.PurgeExpired",
		trace.WithAttributes(attribute.String("purge.window", window.String())),
	)
	defer span.End()

	report := &models.PurgeReport{Cutoff: requestcontext.Now(ctx).Add(-window)}

	candidates, err := s.participants.ListDeletedBefore(ctx, report.Cutoff, s.purgeBatch)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeStorage, "failed to list purge candidates")
	}
	report.Candidates = len(candidates)

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.purgeConcurrency)
	for _, participantID := range candidates {
		g.Go(func() error {
			erasure, err := s.EraseAll(gctx, participantID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err != nil:
				report.Failed++
				s.logger.Warn("purge could not erase participant",
					zap.String("participant_id", participantID.String()),
					zap.Error(err),
				)
			case erasure.Complete:
				report.Erased++
			default:
				report.Incomplete++
			}
			return nil
		})
	}
	_ = g.Wait()

	s.logger.Info("purge finished",
		zap.Time("cutoff", report.Cutoff),
		zap.Int("candidates", report.Candidates),
		zap.Int("erased", report.Erased),
		zap.Int("incomplete", report.Incomplete),
		zap.Int("failed", report.Failed),
	)
	return report, nil
}
