package corn_ser

import (
	"engipec/global"
	"engipec/service/account_ser"
)

// CheckpointAccountState 把账号侧状态整体重写到持久化底座
// 正常路径下每次变更已经同步落盘，这里兜底处理底座被清空或切换的情况
func CheckpointAccountState(store *account_ser.AccountStore) {
	store.Checkpoint()
	global.Log.Info("账号状态检查点写入完成")
}
