package account_ser

import (
	"strings"

	"engipec/service/kv_ser"
)

// 职位和部门词表：后台下拉框的候选项，独立于员工条目维护
// 删除词表项不会级联修改仍引用它的员工

// Positions 返回职位词表的只读快照
func (s *AccountStore) Positions() []string {
	out := make([]string, len(s.positions))
	copy(out, s.positions)
	return out
}

// AddPosition 添加职位，去掉首尾空白，重复或为空时忽略
func (s *AccountStore) AddPosition(name string) {
	name = strings.TrimSpace(name)
	if name == "" || contains(s.positions, name) {
		return
	}
	s.positions = append(s.positions, name)
	s.persist(kv_ser.KeyPositions, s.positions)
}

// RemovePosition 移除职位标签
func (s *AccountStore) RemovePosition(name string) {
	if removed := remove(&s.positions, name); removed {
		s.persist(kv_ser.KeyPositions, s.positions)
	}
}

// Departments 返回部门词表的只读快照
func (s *AccountStore) Departments() []string {
	out := make([]string, len(s.departments))
	copy(out, s.departments)
	return out
}

// AddDepartment 添加部门，去掉首尾空白，重复或为空时忽略
func (s *AccountStore) AddDepartment(name string) {
	name = strings.TrimSpace(name)
	if name == "" || contains(s.departments, name) {
		return
	}
	s.departments = append(s.departments, name)
	s.persist(kv_ser.KeyDepartments, s.departments)
}

// RemoveDepartment 移除部门标签
func (s *AccountStore) RemoveDepartment(name string) {
	if removed := remove(&s.departments, name); removed {
		s.persist(kv_ser.KeyDepartments, s.departments)
	}
}

func contains(list []string, name string) bool {
	for _, item := range list {
		if item == name {
			return true
		}
	}
	return false
}

func remove(list *[]string, name string) bool {
	for i, item := range *list {
		if item == name {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return true
		}
	}
	return false
}
