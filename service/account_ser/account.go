package account_ser

import (
	"encoding/json"

	"engipec/global"
	"engipec/models"
	"engipec/models/ctypes"
	"engipec/service/kv_ser"
	"engipec/utils"

	"go.uber.org/zap"
)

// AdminID 管理员占用的保留id，员工id从2开始分配
const AdminID uint = 1

// 内置管理员的默认凭据，可被配置覆盖
const (
	DefaultAdminName     = "Administrador"
	DefaultAdminEmail    = "admin@engipec.com.br"
	DefaultAdminPassword = "admin123"
)

// DefaultAdmin 返回默认管理员账号
func DefaultAdmin() models.Account {
	return models.Account{
		ID:       AdminID,
		Name:     DefaultAdminName,
		Email:    DefaultAdminEmail,
		Password: DefaultAdminPassword,
		Role:     ctypes.RoleAdmin,
	}
}

// AccountStore 账号仓库，管理内置管理员、员工名册和当前会话
// 每次变更后同步写入持久化底座，启动时从底座恢复
type AccountStore struct {
	kv    kv_ser.Store
	admin models.Account

	employees   []models.Account
	current     *models.Account // 会话持有的账号副本，不是名册里的引用
	positions   []string
	departments []string

	// OnLogout 登出后触发的导航回调，由组装方注入
	OnLogout func()
}

// NewAccountStore 创建账号仓库并从底座恢复员工名册、会话和词表
func NewAccountStore(admin models.Account, kv kv_ser.Store) *AccountStore {
	admin.ID = AdminID
	admin.Role = ctypes.RoleAdmin
	s := &AccountStore{kv: kv, admin: admin}
	s.load(kv_ser.KeyEmployees, &s.employees)
	s.load(kv_ser.KeyPositions, &s.positions)
	s.load(kv_ser.KeyDepartments, &s.departments)
	s.load(kv_ser.KeySession, &s.current)
	return s
}

// Login 校验邮箱和密码，成功时建立会话并返回true
// 先匹配内置管理员，再逐个匹配员工名册，都不匹配时会话保持不变
func (s *AccountStore) Login(email, password string) bool {
	if email == s.admin.Email && password == s.admin.Password {
		account := s.admin
		s.current = &account
		s.persist(kv_ser.KeySession, s.current)
		global.Log.Info("管理员登录成功", zap.String("email", email))
		return true
	}

	for _, emp := range s.employees {
		if emp.Email == email && emp.Password == password {
			account := emp
			s.current = &account
			s.persist(kv_ser.KeySession, s.current)
			global.Log.Info("员工登录成功", zap.String("email", email))
			return true
		}
	}

	global.Log.Warn("登录失败", zap.String("email", email))
	return false
}

// Logout 清除会话并触发导航回调
func (s *AccountStore) Logout() {
	s.current = nil
	if err := s.kv.Remove(kv_ser.KeySession); err != nil {
		global.Log.Error("删除会话失败", zap.String("error", err.Error()))
	}
	if s.OnLogout != nil {
		s.OnLogout()
	}
}

// Current 返回当前会话账号，未登录时第二个返回值为false
func (s *AccountStore) Current() (models.Account, bool) {
	if s.current == nil {
		return models.Account{}, false
	}
	return *s.current, true
}

// IsAuthenticated 是否已登录
func (s *AccountStore) IsAuthenticated() bool {
	return s.current != nil
}

// IsAdmin 当前会话是否为管理员
func (s *AccountStore) IsAdmin() bool {
	return s.current != nil && s.current.Role == ctypes.RoleAdmin
}

// UpdateProfile 合并字段到当前会话账号
// 会话为员工时同步更新名册里的对应条目，保持两份视图一致
func (s *AccountStore) UpdateProfile(patch models.AccountPatch) {
	if s.current == nil {
		return
	}

	patch.Apply(s.current)
	s.persist(kv_ser.KeySession, s.current)

	if s.current.Role == ctypes.RoleEmployee {
		for i := range s.employees {
			if s.employees[i].ID == s.current.ID {
				s.employees[i] = *s.current
				break
			}
		}
		s.persist(kv_ser.KeyEmployees, s.employees)
	}
}

// Employees 返回员工名册的只读快照
func (s *AccountStore) Employees() []models.Account {
	out := make([]models.Account, len(s.employees))
	copy(out, s.employees)
	return out
}

// AddEmployee 添加员工，分配id并强制角色为employee
// 未提供头像时根据邮箱生成确定性的默认头像
func (s *AccountStore) AddEmployee(draft models.EmployeeDraft) models.Account {
	imageSrc := draft.ImageSrc
	if imageSrc == "" {
		imageSrc = utils.GenAvatar(draft.Email)
	}

	employee := models.Account{
		ID:         s.nextEmployeeID(),
		Name:       draft.Name,
		Email:      draft.Email,
		Password:   draft.Password,
		Role:       ctypes.RoleEmployee,
		Phone:      draft.Phone,
		Position:   draft.Position,
		Department: draft.Department,
		ImageSrc:   imageSrc,
	}

	s.employees = append(s.employees, employee)
	s.persist(kv_ser.KeyEmployees, s.employees)
	return employee
}

// UpdateEmployee 合并字段到名册条目，id不存在时静默忽略
func (s *AccountStore) UpdateEmployee(id uint, patch models.AccountPatch) {
	for i := range s.employees {
		if s.employees[i].ID == id {
			patch.Apply(&s.employees[i])
			s.persist(kv_ser.KeyEmployees, s.employees)
			return
		}
	}
}

// RemoveEmployee 从名册中删除员工，id不存在时静默忽略
func (s *AccountStore) RemoveEmployee(id uint) {
	for i := range s.employees {
		if s.employees[i].ID == id {
			s.employees = append(s.employees[:i], s.employees[i+1:]...)
			s.persist(kv_ser.KeyEmployees, s.employees)
			return
		}
	}
}

// Checkpoint 把账号侧全部状态重写到底座，供定时任务调用
// 写入是幂等的，可以在任意时刻重复执行
func (s *AccountStore) Checkpoint() {
	s.persist(kv_ser.KeyEmployees, s.employees)
	s.persist(kv_ser.KeyPositions, s.positions)
	s.persist(kv_ser.KeyDepartments, s.departments)
	if s.current != nil {
		s.persist(kv_ser.KeySession, s.current)
	}
}

// nextEmployeeID 分配员工id：现有最大id加一，名册为空时为2（1为管理员保留）
func (s *AccountStore) nextEmployeeID() uint {
	if len(s.employees) == 0 {
		return AdminID + 1
	}
	var max uint
	for _, emp := range s.employees {
		if emp.ID > max {
			max = emp.ID
		}
	}
	return max + 1
}

// load 从底座读取并反序列化到目标，键缺失时保持零值
func (s *AccountStore) load(key string, target interface{}) {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		global.Log.Error("读取底座失败", zap.String("key", key), zap.String("error", err.Error()))
		return
	}
	if !ok {
		return
	}
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		global.Log.Error("解析底座数据失败", zap.String("key", key), zap.String("error", err.Error()))
	}
}

// persist 序列化并整体写入底座，失败只记录日志不影响调用方
func (s *AccountStore) persist(key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		global.Log.Error("序列化底座数据失败", zap.String("key", key), zap.String("error", err.Error()))
		return
	}
	if err := s.kv.Set(key, string(raw)); err != nil {
		global.Log.Error("写入底座失败", zap.String("key", key), zap.String("error", err.Error()))
	}
}
