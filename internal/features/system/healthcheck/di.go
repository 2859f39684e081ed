package healthcheck

import (
	"fieldlog/internal/downdetect"
)

var healthCheckService = &HealthCheckService{
	downdetectService: downdetect.GetDowndetectService(),
}

var healthCheckController = &HealthCheckController{
	healthCheckService: healthCheckService,
}

func GetHealthCheckController() *HealthCheckController {
	return healthCheckController
}
