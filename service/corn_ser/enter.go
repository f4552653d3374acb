package corn_ser

import (
	"time"

	"engipec/global"
	"engipec/service/account_ser"

	"github.com/robfig/cron/v3"
)

// 每隔10分钟执行一次
//"0 */10 * * * *"    //每隔10分钟（00:10:00, 00:20:00, ...)

// 每天执行一次
//"0 0 0 * * *"      // 每天凌晨（00:00:00）

func CornInit(store *account_ser.AccountStore) *cron.Cron {
	timezone, err := time.LoadLocation(global.Config.System.Timezone)
	if err != nil {
		timezone = time.Local
	}
	Cron := cron.New(cron.WithSeconds(), cron.WithLocation(timezone))
	Cron.AddFunc("0 */10 * * * *", func() { CheckpointAccountState(store) })
	Cron.Start()
	return Cron
}
