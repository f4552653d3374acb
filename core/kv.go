package core

import (
	"engipec/global"
	"engipec/service/kv_ser"

	"go.uber.org/zap"
)

// InitKV 根据配置选择持久化底座后端
// redis不可用或未配置后端时退回内存底座，进程内仍可正常工作
func InitKV() kv_ser.Store {
	storeConf := global.Config.Store

	switch storeConf.Backend {
	case "redis":
		rdb := InitRedis()
		if rdb == nil {
			global.Log.Warn("Redis不可用，退回内存底座")
			return kv_ser.NewMemoryStore()
		}
		global.Redis = rdb
		return kv_ser.NewRedisStore(rdb, storeConf.Prefix)
	case "sqlite":
		kv, err := kv_ser.NewSqliteStore(storeConf.Path, storeConf.Prefix)
		if err != nil {
			global.Log.Fatal("打开sqlite底座失败", zap.String("path", storeConf.Path), zap.String("error", err.Error()))
		}
		global.Log.Info("sqlite底座就绪", zap.String("path", storeConf.Path))
		return kv
	case "memory":
		global.Log.Info("使用内存底座，进程退出后状态不保留")
		return kv_ser.NewMemoryStore()
	default:
		global.Log.Warn("未知的底座后端，退回内存底座", zap.String("backend", storeConf.Backend))
		return kv_ser.NewMemoryStore()
	}
}
