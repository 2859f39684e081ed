package audit_logs

import (
	"fmt"

	"fieldlog/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditLogRepository struct{}

func (r *AuditLogRepository) CreateAuditLog(auditLog *AuditLog) error {
	if err := storage.GetDb().Create(auditLog).Error; err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}

func (r *AuditLogRepository) GetAuditLogs(limit int, offset int) ([]AuditLog, int64, error) {
	return r.queryAuditLogs(storage.GetDb().Model(&AuditLog{}), limit, offset)
}

func (r *AuditLogRepository) GetAuditLogsByUser(
	userID uuid.UUID, limit int, offset int,
) ([]AuditLog, int64, error) {
	query := storage.GetDb().Model(&AuditLog{}).Where("user_id = ?", userID)

	return r.queryAuditLogs(query, limit, offset)
}

func (r *AuditLogRepository) GetAuditLogsByWorkspace(
	workspaceID string, limit int, offset int,
) ([]AuditLog, int64, error) {
	query := storage.GetDb().Model(&AuditLog{}).Where("workspace_id = ?", workspaceID)

	return r.queryAuditLogs(query, limit, offset)
}

func (r *AuditLogRepository) queryAuditLogs(
	query *gorm.DB, limit int, offset int,
) ([]AuditLog, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	var auditLogs []AuditLog
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&auditLogs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get audit logs: %w", err)
	}

	return auditLogs, total, nil
}
