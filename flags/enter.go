package flags

import (
	"os"

	"engipec/global"
	"engipec/service/account_ser"
	"engipec/service/kv_ser"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// 命令行依赖的仓库实例，由Newflags注入
var (
	accountStore *account_ser.AccountStore
	substrate    kv_ser.Store
)

func Newflags(store *account_ser.AccountStore, kv kv_ser.Store) {
	accountStore = store
	substrate = kv

	var app = cli.NewApp()
	app.Name = "engipec"
	app.Usage = "ENGIPEC官网内容后台"
	app.Commands = []*cli.Command{
		{
			Name:    "employee",
			Aliases: []string{"e"},
			Usage:   "创建员工账号",
			Action:  Employee,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "name",
					Aliases: []string{"n"},
					Usage:   "员工姓名",
				},
				&cli.StringFlag{
					Name:    "email",
					Aliases: []string{"m"},
					Usage:   "员工邮箱",
				},
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "登录密码",
				},
				&cli.StringFlag{
					Name:  "position",
					Usage: "职位",
				},
				&cli.StringFlag{
					Name:  "department",
					Usage: "部门",
				},
			},
		},
		{
			Name:    "list-employees",
			Aliases: []string{"le"},
			Usage:   "列出员工名册",
			Action:  ListEmployees,
		},
		{
			Name:    "export-state",
			Aliases: []string{"e-s"},
			Usage:   "导出底座状态",
			Action:  StateExport,
		},
		{
			Name:    "import-state",
			Aliases: []string{"i-s"},
			Usage:   "导入底座状态",
			Action:  StateImport,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name: "path",
				},
			},
		},
	}
	if len(os.Args) > 1 {
		err := app.Run(os.Args)
		if err != nil {
			global.Log.Fatal("初始化命令失败", zap.String("error", err.Error()))
		}
		os.Exit(0)

	}
}
