package ctypes

// AccountRole 账号角色
type AccountRole string

const (
	RoleAdmin    AccountRole = "admin"
	RoleEmployee AccountRole = "employee"
)
