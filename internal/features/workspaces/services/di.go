package workspaces_services

import (
	"fieldlog/internal/cache"
	users_services "fieldlog/internal/features/users/services"
	workspaces_models "fieldlog/internal/features/workspaces/models"
	workspaces_repositories "fieldlog/internal/features/workspaces/repositories"
	cache_utils "fieldlog/internal/util/cache"
	"fieldlog/internal/util/rate_limit"
)

var workspaceRepository = &workspaces_repositories.WorkspaceRepository{}
var membershipRepository = &workspaces_repositories.MembershipRepository{}
var noticeRepository = &workspaces_repositories.NoticeRepository{}

var workspaceService = &WorkspaceService{
	workspaceRepository:  workspaceRepository,
	membershipRepository: membershipRepository,
	settingsService:      users_services.GetSettingsService(),
	workspaceCache: cache_utils.NewCacheUtil[workspaces_models.Workspace](
		cache.GetCache(), "workspace:",
	),
}

var membershipService = &MembershipService{
	membershipRepository: membershipRepository,
	workspaceService:     workspaceService,
	userService:          users_services.GetUserService(),
	rateLimiter:          rate_limit.NewRateLimiter(),
}

var noticeService = &NoticeService{
	noticeRepository: noticeRepository,
	workspaceService: workspaceService,
}

func GetWorkspaceService() *WorkspaceService {
	return workspaceService
}

func GetMembershipService() *MembershipService {
	return membershipService
}

func GetNoticeService() *NoticeService {
	return noticeService
}
