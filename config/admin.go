package config

// Admin 内置管理员账号配置
type Admin struct {
	Name     string `mapstructure:"name"`
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
}
