package kv_ser

// 所有键统一加上前缀，避免和同一底座上的其他应用冲突
const Prefix = "engipec:"

// 固定键集合，账号侧状态整体以JSON快照写入
const (
	KeySession     = "user"        // 当前登录账号
	KeyEmployees   = "employees"   // 员工名册
	KeyPositions   = "positions"   // 职位词表
	KeyDepartments = "departments" // 部门词表
)

// Keys 返回底座上使用的全部固定键
func Keys() []string {
	return []string{KeySession, KeyEmployees, KeyPositions, KeyDepartments}
}

// Store 持久化键值底座契约
// Get 的第二个返回值表示键是否存在，缺失不是错误
type Store interface {
	Get(key string) (string, bool, error)
	Set(key string, value string) error
	Remove(key string) error
}
