package auditlog

import (
	"context"
)

type Service interface {
	LogAction(ctx context.Context, actorEmail, targetID, action string, details map[string]interface{}, ip string, status string) error
	GetAuditLogs(ctx context.Context, limit int64) ([]AuditLog, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// LogAction creates a new audit log entry
func (s *service) LogAction(ctx context.Context, actorEmail, targetID, action string, details map[string]interface{}, ip string, status string) error {
	if details == nil {
		details = map[string]interface{}{}
	}

	return s.repo.Create(ctx, &AuditLog{
		ActorEmail: actorEmail,
		Action:     action,
		TargetID:   targetID,
		Details:    details,
		IPAddress:  ip,
		Status:     status,
	})
}

// GetAuditLogs retrieves entries newest-first
func (s *service) GetAuditLogs(ctx context.Context, limit int64) ([]AuditLog, error) {
	return s.repo.List(ctx, limit)
}
