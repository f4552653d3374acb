package main

import (
	"os"
	"os/signal"
	"syscall"

	"engipec/core"
	"engipec/flags"
	"engipec/global"
	"engipec/service/account_ser"
	"engipec/service/article_ser"
	"engipec/service/corn_ser"
)

func main() {
	// 初始化配置
	core.InitConf()
	// 初始化日志
	global.Log = core.NewLogManager(&global.Config.Log)
	// 初始化持久化底座
	kv := core.InitKV()

	// 组装管理员账号，配置可覆盖默认凭据
	admin := account_ser.DefaultAdmin()
	if global.Config.Admin.Name != "" {
		admin.Name = global.Config.Admin.Name
	}
	if global.Config.Admin.Email != "" {
		admin.Email = global.Config.Admin.Email
	}
	if global.Config.Admin.Password != "" {
		admin.Password = global.Config.Admin.Password
	}

	// 初始化账号仓库，启动时从底座恢复名册和会话
	accountStore := account_ser.NewAccountStore(admin, kv)
	// 初始化文章仓库，文章只存活于进程生命周期内
	articleStore := article_ser.NewArticleStore(nil)
	global.Log.Infof("仓库就绪，员工数:%d，文章数:%d",
		len(accountStore.Employees()), len(articleStore.Articles()))

	// 初始化命令行参数
	flags.Newflags(accountStore, kv)
	// 初始化corn
	scheduler := corn_ser.CornInit(accountStore)

	// 等待中断信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// 退出前写入最终检查点
	scheduler.Stop()
	corn_ser.CheckpointAccountState(accountStore)
	global.Log.Info("服务已关闭")
}
