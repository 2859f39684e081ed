package observations

import (
	workspaces_services "fieldlog/internal/features/workspaces/services"
)

var observationRepository = &ObservationRepository{}

var observationService = &ObservationService{
	observationRepository: observationRepository,
	workspaceService:      workspaces_services.GetWorkspaceService(),
}

var observationController = &ObservationController{
	observationService: observationService,
}

func GetObservationService() *ObservationService {
	return observationService
}

func GetObservationController() *ObservationController {
	return observationController
}
