package service

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	assessmentModels "radar/internal/assessment/models"
	"radar/internal/datarights/models"
	flagModels "radar/internal/flags/models"
	radarModels "radar/internal/radar/models"
	id "radar/pkg/domain"
	dErrors "radar/pkg/domain-errors"
	audit "radar/pkg/platform/audit"
	"radar/pkg/platform/sentinel"
	"radar/pkg/requestcontext"
)

// ExportAll gathers the participant's records in one read-only transaction
// and decrypts protected answers. A missing radar profile is exported as
// null. Deleted and unknown participants are NotFound.
func (s *Service) ExportAll(ctx context.Context, participantID id.ParticipantID) (*models.Bundle, error) {
	ctx, span := tracer.Start(ctx, "datarights.ExportAll")
	defer span.End()
	span.SetAttributes(attribute.String("participant.id", participantID.String()))

	bundle := &models.Bundle{}
	err := s.tx.RunReadOnly(ctx, func(ctx context.Context) error {
		p, err := s.participants.FindByID(ctx, participantID)
		if err != nil {
			return participantLoadError(err)
		}
		if p.IsDeleted() {
			return dErrors.New(dErrors.CodeNotFound, "participant not found")
		}
		bundle.Participant = assessmentModels.ToResponse(p)

		profile, err := s.profiles.FindByParticipant(ctx, participantID)
		switch {
		case errors.Is(err, sentinel.ErrNotFound):
		case err != nil:
			return dErrors.Wrap(err, dErrors.CodeStorage, "failed to load radar profile")
		default:
			resp := radarModels.ToResponse(profile)
			bundle.Radar = &resp
		}

		answers, err := s.answers.ListByParticipant(ctx, participantID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeStorage, "failed to load answers")
		}
		if bundle.Answers, err = s.exportAnswers(answers); err != nil {
			return err
		}

		flags, err := s.flags.ListForParticipant(ctx, participantID)
		if err != nil {
			return err
		}
		bundle.Flags = make([]flagModels.FlagResponse, 0, len(flags))
		for _, f := range flags {
			bundle.Flags = append(bundle.Flags, flagModels.ToResponse(f))
		}

		history, err := s.consents.History(ctx, participantID)
		if err != nil {
			return err
		}
		bundle.Consents = make([]models.ExportedConsent, 0, len(history))
		for _, r := range history {
			bundle.Consents = append(bundle.Consents, models.NewExportedConsent(r))
		}
		return nil
	})
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeDecryptionFailed) {
			s.logger.Error("export aborted on undecryptable answer",
				zap.String("participant_id", participantID.String()),
				zap.Error(err),
			)
		}
		return nil, err
	}
	bundle.ExportedAt = requestcontext.Now(ctx)

	if s.auditor != nil {
		if err := s.auditor.Emit(ctx, audit.Event{
			ParticipantID: participantID,
			Action:        string(audit.EventDataExported),
			Purpose:       "data_rights",
			Decision:      "served",
			RequestID:     requestcontext.RequestID(ctx),
			ActorID:       requestcontext.Subject(ctx),
		}); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeStorage, "failed to record export")
		}
	}
	if s.metrics != nil {
		s.metrics.IncExports()
	}
	return bundle, nil
}

func (s *Service) exportAnswers(answers []*assessmentModels.Answer) ([]models.ExportedAnswer, error) {
	out := make([]models.ExportedAnswer, 0, len(answers))
	for _, a := range answers {
		text := a.RawAnswer
		if a.Encrypted {
			plain, err := s.cipher.Decrypt(a.RawAnswer)
			if err != nil {
				if s.metrics != nil {
					s.metrics.IncDecryptionFailures()
				}
				if !dErrors.HasCode(err, dErrors.CodeDecryptionFailed) {
					err = dErrors.Wrap(err, dErrors.CodeDecryptionFailed, "answer could not be decrypted")
				}
				return nil, err
			}
			text = plain
		}
		out = append(out, models.ExportedAnswer{
			QuestionNumber: a.QuestionNumber,
			QuestionText:   a.QuestionText,
			Answer:         text,
			Encrypted:      a.Encrypted,
			AnsweredAt:     a.AnsweredAt,
		})
	}
	return out, nil
}

func participantLoadError(err error) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "participant not found")
	}
	return dErrors.Wrap(err, dErrors.CodeStorage, "failed to load participant")
}
