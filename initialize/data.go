package initialize

import (
	"gitee.com/taoJie_1/fin-assistant/global"
	"gitee.com/taoJie_1/fin-assistant/task"
)

// loadData 加载业务所需数据
func (i *Initializer) loadData(taskManager *task.Manager) {
	if err := taskManager.RuleReloader(); err != nil {
		global.Log.Errorln("启动时加载规则目录失败, 使用内置规则:", err)
	}
}
