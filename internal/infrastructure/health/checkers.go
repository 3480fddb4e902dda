package health

import (
	"context"

	"github.com/coprra/price-compare/internal/core/ports"
	"github.com/coprra/price-compare/internal/infrastructure/db"
	"github.com/go-redis/redis/v8"
)

// probe adapts a named check function to ports.HealthChecker.
type probe struct {
	name  string
	check func(ctx context.Context) error
}

func (p *probe) Name() string                    { return p.name }
func (p *probe) Check(ctx context.Context) error { return p.check(ctx) }

// New builds a checker from a name and a check function.
func New(name string, check func(ctx context.Context) error) ports.HealthChecker {
	return &probe{name: name, check: check}
}

// Postgres probes the repository pool.
func Postgres(database *db.Database) ports.HealthChecker {
	return New("database", database.DB.PingContext)
}

// Redis probes the comparison cache's Redis backend.
func Redis(client *redis.Client) ports.HealthChecker {
	return New("redis", func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	})
}
