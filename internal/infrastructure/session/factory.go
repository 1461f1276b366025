package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/config"
)

// NewStore creates the session store named by session.store. There is no
// silent fallback: a deployment that asked for redis and cannot reach it
// must not quietly degrade to per-instance sessions.
func NewStore(cfg config.SessionConfig, redisCfg config.RedisConfig, logger *zap.Logger) (Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch cfg.Store {
	case "redis":
		store, err := NewRedisStore(redisCfg)
		if err != nil {
			return nil, fmt.Errorf("redis session store: %w", err)
		}
		logger.Info("using redis session store", zap.String("addr", redisCfg.Addr()))
		return store, nil
	case "memory", "":
		logger.Info("using in-memory session store")
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.Store)
	}
}
