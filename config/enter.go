package config

type Config struct {
	System System `mapstructure:"system"`
	Log    Log    `mapstructure:"log"`
	Redis  Redis  `mapstructure:"redis"`
	Store  Store  `mapstructure:"store"`
	Admin  Admin  `mapstructure:"admin"`
}
