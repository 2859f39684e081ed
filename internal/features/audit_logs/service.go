package audit_logs

import (
	"time"

	"fieldlog/internal/util/logger"

	"github.com/google/uuid"
)

type AuditLogService struct {
	auditLogRepository *AuditLogRepository
}

// WriteAuditLog persists an audit record. Failures are logged and swallowed
// so auditing never breaks the operation being audited.
func (s *AuditLogService) WriteAuditLog(message string, userID *uuid.UUID, workspaceID *string) {
	auditLog := &AuditLog{
		ID:          uuid.New(),
		Message:     message,
		UserID:      userID,
		WorkspaceID: workspaceID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.auditLogRepository.CreateAuditLog(auditLog); err != nil {
		logger.GetLogger().Error("failed to write audit log", "error", err, "message", message)
	}
}

func (s *AuditLogService) GetAuditLogs(limit int, offset int) ([]AuditLog, int64, error) {
	return s.auditLogRepository.GetAuditLogs(limit, offset)
}

func (s *AuditLogService) GetAuditLogsByUser(
	userID uuid.UUID, limit int, offset int,
) ([]AuditLog, int64, error) {
	return s.auditLogRepository.GetAuditLogsByUser(userID, limit, offset)
}

func (s *AuditLogService) GetAuditLogsByWorkspace(
	workspaceID string, limit int, offset int,
) ([]AuditLog, int64, error) {
	return s.auditLogRepository.GetAuditLogsByWorkspace(workspaceID, limit, offset)
}
