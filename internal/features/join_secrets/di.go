package join_secrets

import (
	workspaces_services "fieldlog/internal/features/workspaces/services"
)

var joinSecretRepository = &JoinSecretRepository{}

var joinSecretService = &JoinSecretService{
	joinSecretRepository: joinSecretRepository,
	workspaceService:     workspaces_services.GetWorkspaceService(),
}

var joinSecretController = &JoinSecretController{
	joinSecretService: joinSecretService,
}

func GetJoinSecretService() *JoinSecretService {
	return joinSecretService
}

func GetJoinSecretController() *JoinSecretController {
	return joinSecretController
}

// SetupDependencies hands the verifier to the membership service, which
// cannot import this package directly.
func SetupDependencies() {
	workspaces_services.GetMembershipService().SetJoinSecretVerifier(joinSecretService)
}
