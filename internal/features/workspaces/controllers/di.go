package workspaces_controllers

import (
	workspaces_services "fieldlog/internal/features/workspaces/services"
)

var workspaceController = &WorkspaceController{
	workspaceService: workspaces_services.GetWorkspaceService(),
}

var membershipController = &MembershipController{
	membershipService: workspaces_services.GetMembershipService(),
}

var noticeController = &NoticeController{
	noticeService: workspaces_services.GetNoticeService(),
}

func GetWorkspaceController() *WorkspaceController {
	return workspaceController
}

func GetMembershipController() *MembershipController {
	return membershipController
}

func GetNoticeController() *NoticeController {
	return noticeController
}
