package service

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"radar/internal/datarights/models"
	id "radar/pkg/domain"
	dErrors "radar/pkg/domain-errors"
	audit "radar/pkg/platform/audit"
	"radar/pkg/platform/sentinel"
	"radar/pkg/requestcontext"
)

type erasureStep struct {
	name  string
	erase func(ctx context.Context, participantID id.ParticipantID) error
}

// dependentSteps lists every owned record set, dependents before the root.
func (s *Service) dependentSteps() []erasureStep {
	return []erasureStep{
		{name: models.StepFlags, erase: s.flags.DeleteByParticipant},
		{name: models.StepAnswers, erase: s.answers.DeleteByParticipant},
		{name: models.StepRadar, erase: s.profiles.DeleteByParticipant},
		{name: models.StepRadarCache, erase: s.evictProfile},
		{name: models.StepConsents, erase: s.consents.DeleteBySubject},
	}
}

func (s *Service) evictProfile(ctx context.Context, participantID id.ParticipantID) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, participantID)
}

// EraseAll marks the participant deleted, then erases each dependent record
// set in order. A failing step is logged and the remaining steps still run.
// The participant row is removed only when every dependent step succeeded;
// otherwise it stays behind as a deleted tombstone for the purge job to
// retry.
func (s *Service) EraseAll(ctx context.Context, participantID id.ParticipantID) (*models.ErasureReport, error) {
	ctx, span := tracer.Start(ctx, "datarights.EraseAll")
	defer span.End()
	span.SetAttributes(attribute.String("participant.id", participantID.String()))

	p, err := s.participants.FindByID(ctx, participantID)
	if err != nil {
		return nil, participantLoadError(err)
	}
	now := requestcontext.Now(ctx)
	if !p.IsDeleted() {
		if err := p.MarkDeleted(now); err != nil {
			return nil, err
		}
		if err := s.participants.Update(ctx, p); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeStorage, "failed to mark participant deleted")
		}
	}

	report := &models.ErasureReport{ParticipantID: participantID.String(), ErasedAt: now}
	failed := 0
	for _, step := range s.dependentSteps() {
		if !s.runStep(ctx, participantID, step, report) {
			failed++
		}
	}
	if failed > 0 {
		report.Steps = append(report.Steps, models.StepResult{Step: models.StepParticipant, Skipped: true})
	} else {
		report.Complete = s.runStep(ctx, participantID, erasureStep{name: models.StepParticipant, erase: s.deleteParticipant}, report)
	}
	span.SetAttributes(attribute.Bool("erasure.complete", report.Complete))

	s.auditErasure(ctx, participantID, report)
	if report.Complete {
		if s.metrics != nil {
			s.metrics.IncErasures()
		}
		s.logger.Info("participant erased", zap.String("participant_id", participantID.String()))
	} else {
		s.logger.Warn("participant erasure incomplete",
			zap.String("participant_id", participantID.String()),
			zap.Strings("failed_steps", report.FailedSteps()),
		)
	}
	return report, nil
}

func (s *Service) deleteParticipant(ctx context.Context, participantID id.ParticipantID) error {
	err := s.participants.Delete(ctx, participantID)
	if errors.Is(err, sentinel.ErrNotFound) {
		// A concurrent erasure got there first.
		return nil
	}
	return err
}

func (s *Service) runStep(ctx context.Context, participantID id.ParticipantID, step erasureStep, report *models.ErasureReport) bool {
	if err := step.erase(ctx, participantID); err != nil {
		s.logger.Error("erasure step failed",
			zap.String("participant_id", participantID.String()),
			zap.String("step", step.name),
			zap.Error(err),
		)
		if s.metrics != nil {
			s.metrics.IncErasureStepFailure(step.name)
		}
		report.Steps = append(report.Steps, models.StepResult{Step: step.name, Error: "failed to erase " + step.name})
		return false
	}
	report.Steps = append(report.Steps, models.StepResult{Step: step.name, OK: true})
	return true
}

// auditErasure records the outcome. The records are already gone, so an audit
// failure is logged rather than returned.
func (s *Service) auditErasure(ctx context.Context, participantID id.ParticipantID, report *models.ErasureReport) {
	if s.auditor == nil {
		return
	}
	event := audit.Event{
		ParticipantID: participantID,
		Action:        string(audit.EventParticipantErased),
		Purpose:       "data_rights",
		Decision:      "erased",
		RequestID:     requestcontext.RequestID(ctx),
		ActorID:       requestcontext.Subject(ctx),
	}
	if !report.Complete {
		event.Action = string(audit.EventErasureIncomplete)
		event.Decision = "retained_tombstone"
		event.Reason = strings.Join(report.FailedSteps(), ",")
	}
	if err := s.auditor.Emit(ctx, event); err != nil {
		s.logger.Error("failed to audit erasure",
			zap.String("participant_id", participantID.String()),
			zap.String("event", event.Action),
			zap.Error(err),
		)
	}
}
