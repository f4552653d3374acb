package global

import (
	"engipec/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var (
	Config *config.Config
	Redis  *redis.Client
	Log    *zap.SugaredLogger
)
