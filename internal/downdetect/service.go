package downdetect

import (
	"context"
	"fmt"
	"time"

	"fieldlog/internal/cache"
	"fieldlog/internal/storage"
)

const probeTimeout = 5 * time.Second

type DowndetectService struct{}

// CheckLiveness verifies that both backing stores answer. Used by the
// public liveness endpoint and by deploy health probes.
func (s *DowndetectService) CheckLiveness() error {
	if err := s.checkDatabase(); err != nil {
		return fmt.Errorf("database is unreachable: %w", err)
	}

	if err := s.checkCache(); err != nil {
		return fmt.Errorf("cache is unreachable: %w", err)
	}

	return nil
}

func (s *DowndetectService) checkDatabase() error {
	sqlDb, err := storage.GetDb().DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	return sqlDb.PingContext(ctx)
}

func (s *DowndetectService) checkCache() error {
	client := cache.GetCache()

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	return client.Do(ctx, client.B().Ping().Build()).Error()
}
