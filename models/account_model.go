package models

import (
	"engipec/models/ctypes"
)

// Account 账号模型
type Account struct {
	ID         uint               `json:"id"`
	Name       string             `json:"name"`
	Email      string             `json:"email"`
	Password   string             `json:"password"` // 明文比较串，仅在底座内流转
	Role       ctypes.AccountRole `json:"role"`
	Phone      string             `json:"phone,omitempty"`
	Position   string             `json:"position,omitempty"`   // 职位
	Department string             `json:"department,omitempty"` // 部门
	ImageSrc   string             `json:"image_src,omitempty"`  // 头像引用
}

// EmployeeDraft 员工表单数据，不含id和角色
type EmployeeDraft struct {
	Name       string `json:"name" validate:"required,min=2,max=50"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	Phone      string `json:"phone"`
	Position   string `json:"position"`
	Department string `json:"department"`
	ImageSrc   string `json:"image_src"`
}

// AccountPatch 账号部分更新，nil字段表示不修改
// 角色不在其中，任何更新路径都不能改变角色
type AccountPatch struct {
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Password   *string `json:"password,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Position   *string `json:"position,omitempty"`
	Department *string `json:"department,omitempty"`
	ImageSrc   *string `json:"image_src,omitempty"`
}

// Apply 将补丁合并到账号上
func (p AccountPatch) Apply(a *Account) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Email != nil {
		a.Email = *p.Email
	}
	if p.Password != nil {
		a.Password = *p.Password
	}
	if p.Phone != nil {
		a.Phone = *p.Phone
	}
	if p.Position != nil {
		a.Position = *p.Position
	}
	if p.Department != nil {
		a.Department = *p.Department
	}
	if p.ImageSrc != nil {
		a.ImageSrc = *p.ImageSrc
	}
}
