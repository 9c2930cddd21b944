package ports

import (
	"context"

	"github.com/jokehub/jokes-service/internal/core/domain"
)

// AuditService records authentication events on the internal diagnostic trail.
type AuditService interface {
	Record(ctx context.Context, event domain.AuthEvent) error
}

// AuditRepository persists audit trail entries.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuthEvent) error
}
