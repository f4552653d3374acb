package config

// Store 持久化底座配置
type Store struct {
	Backend string `mapstructure:"backend"` // 后端类型：redis/sqlite/memory
	Prefix  string `mapstructure:"prefix"`  // 键前缀
	Path    string `mapstructure:"path"`    // sqlite数据库文件路径
}
