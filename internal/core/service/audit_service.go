package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jokehub/jokes-service/internal/core/domain"
	"github.com/jokehub/jokes-service/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists authentication events
// to the diagnostic trail. This is the only place detailed failure causes are
// written down; the HTTP responses stay generic.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Record(ctx context.Context, event domain.AuthEvent) error {
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}
	if err := s.repo.Insert(ctx, &event); err != nil {
		s.log.Error().Err(err).
			Str("username", event.Username).
			Str("kind", string(event.Kind)).
			Msg("audit insert failed")
		return err
	}
	return nil
}
