package service

import (
	"context"

	"go.uber.org/zap"

	"ailiteracy/internal/cache"
	"ailiteracy/internal/model"
	"ailiteracy/internal/repository"
)

// PersistService fans a completed session out to the configured sinks.
// Every sink is optional and best-effort: failures are logged and swallowed,
// never surfaced to the chat turn, never retried.
type PersistService struct {
	reports repository.ReportRepo  // optional
	archive repository.ArchiveRepo // optional
	cache   cache.ReportCache      // optional
	logger  *zap.Logger
}

// NewPersistService creates the persistence orchestrator. Any sink may be nil.
func NewPersistService(reports repository.ReportRepo, archive repository.ArchiveRepo, reportCache cache.ReportCache, logger *zap.Logger) *PersistService {
	return &PersistService{
		reports: reports,
		archive: archive,
		cache:   reportCache,
		logger:  logger,
	}
}

// PersistFinal writes the completed session to every configured sink
func (s *PersistService) PersistFinal(ctx context.Context, sess *model.Session) {
	if sess.Report == nil {
		return
	}

	if s.reports != nil {
		if err := s.reports.SaveFinal(ctx, sess); err != nil {
			s.logger.Warn("report row persistence failed",
				zap.String("sessionId", sess.ID), zap.Error(err))
		}
	}

	if s.archive != nil {
		if err := s.archive.SaveTranscript(ctx, sess); err != nil {
			s.logger.Warn("transcript archive failed",
				zap.String("sessionId", sess.ID), zap.Error(err))
		}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, sess.ID, sess.Report); err != nil {
			s.logger.Warn("report cache write failed",
				zap.String("sessionId", sess.ID), zap.Error(err))
		}
	}
}

// LookupReport serves the reports endpoint for sessions no longer in memory:
// cache first, then the report rows.
func (s *PersistService) LookupReport(ctx context.Context, sessionID string) (*model.Report, error) {
	if s.cache != nil {
		report, err := s.cache.Get(ctx, sessionID)
		if err != nil {
			s.logger.Warn("report cache read failed",
				zap.String("sessionId", sessionID), zap.Error(err))
		} else if report != nil {
			return report, nil
		}
	}

	if s.reports != nil {
		return s.reports.GetReport(ctx, sessionID)
	}
	return nil, nil
}
