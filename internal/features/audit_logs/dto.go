package audit_logs

type GetAuditLogsRequest struct {
	Limit  int `form:"limit,default=100" binding:"omitempty,min=1,max=1000"`
	Offset int `form:"offset,default=0"  binding:"omitempty,min=0"`
}

type GetAuditLogsResponse struct {
	AuditLogs []AuditLog `json:"auditLogs"`
	Total     int64      `json:"total"`
}
