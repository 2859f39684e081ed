package healthcheck

import (
	"fieldlog/internal/config"
	"fieldlog/internal/downdetect"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

type HealthStatus struct {
	Status            string  `json:"status"`
	MemoryUsedPercent float64 `json:"memoryUsedPercent"`
	MemoryTotalMb     uint64  `json:"memoryTotalMb"`
	DiskUsedPercent   float64 `json:"diskUsedPercent"`
	DiskFreeGb        float64 `json:"diskFreeGb"`
	StorageOk         bool    `json:"storageOk"`
}

type HealthCheckService struct {
	downdetectService *downdetect.DowndetectService
}

// GetHealthStatus reports host resource usage along with backing store
// reachability.
func (s *HealthCheckService) GetHealthStatus() *HealthStatus {
	status := &HealthStatus{Status: "ok", StorageOk: true}

	if err := s.downdetectService.CheckLiveness(); err != nil {
		status.Status = "degraded"
		status.StorageOk = false
	}

	if memStat, err := mem.VirtualMemory(); err == nil {
		status.MemoryUsedPercent = memStat.UsedPercent
		status.MemoryTotalMb = memStat.Total / 1024 / 1024
	}

	if diskStat, err := disk.Usage(config.GetEnv().BackendRootPath); err == nil {
		status.DiskUsedPercent = diskStat.UsedPercent
		status.DiskFreeGb = float64(diskStat.Free) / 1024 / 1024 / 1024
	}

	return status
}
