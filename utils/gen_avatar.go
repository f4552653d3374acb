package utils

import "fmt"

// GenAvatar 根据邮箱生成确定性的默认头像地址
func GenAvatar(email string) string {
	return fmt.Sprintf("https://api.dicebear.com/7.x/avatars/svg?seed=%s", email)
}
