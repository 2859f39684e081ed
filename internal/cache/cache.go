// Package cache owns the process-wide Valkey connection. Workspace reads,
// the join rate limiter and the startup probe all share this one client.
package cache

import (
	"crypto/tls"
	"net"
	"sync"

	"fieldlog/internal/config"

	"github.com/valkey-io/valkey-go"
)

var (
	clientOnce sync.Once
	client     valkey.Client
)

// GetCache returns the shared Valkey client, dialing on first use. A failed
// dial is fatal: every caller holds the same client for the process
// lifetime, so there is nothing sensible to retry here.
func GetCache() valkey.Client {
	clientOnce.Do(func() {
		dialed, err := valkey.NewClient(clientOptions(config.GetEnv()))
		if err != nil {
			panic(err)
		}

		client = dialed
	})

	return client
}

func clientOptions(env *config.EnvVariables) valkey.ClientOption {
	options := valkey.ClientOption{
		InitAddress: []string{net.JoinHostPort(env.ValkeyHost, env.ValkeyPort)},
		Username:    env.ValkeyUsername,
		Password:    env.ValkeyPassword,
	}

	if env.ValkeyIsSsl {
		options.TLSConfig = &tls.Config{ServerName: env.ValkeyHost}
	}

	return options
}
