package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"steelcatalog/internal/model"
	"steelcatalog/internal/repository"
)

type AuditLogResponse struct {
	ID         uint      `json:"id"`
	ActorUID   string    `json:"actor_uid"`
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type"`
	EntityID   uint      `json:"entity_id"`
	Details    string    `json:"details"`
	CreatedAt  time.Time `json:"created_at"`
}

type AuditLogPage struct {
	Items  []AuditLogResponse `json:"items"`
	Total  int64              `json:"total"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}

type AuditService interface {
	GetAuditLogs(ctx context.Context, filter repository.AuditFilter) (AuditLogPage, error)
}

type auditService struct {
	auditRepo repository.AuditRepository
}

// NewAuditService creates a new AuditService instance
func NewAuditService(auditRepo repository.AuditRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

// GetAuditLogs returns one page of the trail, newest first
func (s *auditService) GetAuditLogs(ctx context.Context, filter repository.AuditFilter) (AuditLogPage, error) {
	logs, total, err := s.auditRepo.List(ctx, filter)
	if err != nil {
		return AuditLogPage{}, fmt.Errorf("failed to fetch audit logs: %w", err)
	}

	items := make([]AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		items = append(items, AuditLogResponse{
			ID:         l.ID,
			ActorUID:   l.ActorUID,
			Action:     l.Action,
			EntityType: l.EntityType,
			EntityID:   l.EntityID,
			Details:    l.Details,
			CreatedAt:  l.CreatedAt,
		})
	}
	return AuditLogPage{Items: items, Total: total, Limit: filter.Limit, Offset: filter.Offset}, nil
}

// recordAudit writes one audit row with the context's transaction, if any
func recordAudit(ctx context.Context, repo repository.AuditRepository, actorUID, action, entityType string, entityID uint, details interface{}) error {
	raw, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("failed to encode audit details: %w", err)
	}
	entry := &model.AuditLog{
		ActorUID:   actorUID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    string(raw),
	}
	if err := repo.Log(ctx, entry); err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}
