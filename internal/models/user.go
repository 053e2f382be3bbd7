package models

import (
	"time"
)

// 用户角色
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// IsValidRole 校验角色取值
func IsValidRole(r string) bool {
	return r == RoleAdmin || r == RoleEmployee
}

// User 对应于用户集合 users 中的一条文档
type User struct {
	ID           string    `json:"uid" gorm:"primaryKey;size:36"`
	Email        string    `json:"email" gorm:"column:email;unique;not null;size:255"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null;size:255"` // 密码哈希不通过JSON暴露
	DisplayName  string    `json:"displayName" gorm:"column:display_name;not null;size:255"`
	Role         string    `json:"role" gorm:"column:role;not null;default:'employee';size:50"`
	CreatedAt    time.Time `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName 指定 User 结构体对应的集合名
func (User) TableName() string {
	return CollectionUsers
}
