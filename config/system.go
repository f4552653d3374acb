package config

type System struct {
	Env      string `mapstructure:"env"`      // 运行环境：debug/release
	Timezone string `mapstructure:"timezone"` // 定时任务时区
}
