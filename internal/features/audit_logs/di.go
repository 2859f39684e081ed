package audit_logs

import (
	"fieldlog/internal/features/join_secrets"
	"fieldlog/internal/features/observations"
	users_services "fieldlog/internal/features/users/services"
	workspaces_services "fieldlog/internal/features/workspaces/services"
)

var auditLogRepository = &AuditLogRepository{}

var auditLogService = &AuditLogService{
	auditLogRepository: auditLogRepository,
}

var auditLogController = &AuditLogController{
	auditLogService:  auditLogService,
	workspaceService: workspaces_services.GetWorkspaceService(),
}

func GetAuditLogService() *AuditLogService {
	return auditLogService
}

func GetAuditLogController() *AuditLogController {
	return auditLogController
}

// SetupDependencies wires the audit writer into services that cannot import
// this package directly.
func SetupDependencies() {
	users_services.GetUserService().SetAuditLogService(auditLogService)
	users_services.GetSettingsService().SetAuditLogService(auditLogService)
	workspaces_services.GetWorkspaceService().SetAuditLogService(auditLogService)
	workspaces_services.GetMembershipService().SetAuditLogService(auditLogService)
	workspaces_services.GetNoticeService().SetAuditLogService(auditLogService)
	join_secrets.GetJoinSecretService().SetAuditLogService(auditLogService)
	observations.GetObservationService().SetAuditLogService(auditLogService)
}
