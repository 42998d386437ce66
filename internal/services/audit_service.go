package services

import (
	"go.uber.org/zap"

	"splitledger/internal/logger"
)

// auditService records ledger mutations on the audit logger.
type auditService struct {
	log *zap.SugaredLogger
}

// NewAuditService creates a new AuditServicer.
func NewAuditService() AuditServicer {
	return &auditService{log: logger.Audit()}
}

// Log records an audit event. It never fails the surrounding operation.
func (s *auditService) Log(action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{}) {
	fields := []interface{}{
		"action", action,
		"resource_type", resourceType,
		"resource_id", resourceID,
		"ip_address", ipAddress,
	}
	if len(changes) > 0 {
		fields = append(fields, "changes", changes)
	}
	s.log.Infow("ledger change", fields...)
}
