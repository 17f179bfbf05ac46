package task

import (
	"time"

	"gitee.com/taoJie_1/fin-assistant/global"
)

// DebounceRuleReload 为 RuleReloader 提供防抖调用功能。
// 每次调用都会重置定时器。
func (m *Manager) DebounceRuleReload(delay time.Duration) {
	m.reloadMu.Lock()
	defer m.reloadMu.Unlock()

	// 如果已存在一个定时器，则停止它
	if m.reloadTimer != nil {
		m.reloadTimer.Stop()
	}

	// 创建一个新的定时器，在延迟时间后执行加载任务
	m.reloadTimer = time.AfterFunc(delay, func() {
		global.Log.Info("触发经防抖处理的规则重载任务...")
		if err := m.RuleReloader(); err != nil {
			global.Log.Errorf("执行经防抖处理的规则重载任务失败: %v", err)
		}
	})
	global.Log.Debugf("规则重载任务已调度在 %v 后执行", delay)
}

// StopDebounce 取消尚未执行的重载
func (m *Manager) StopDebounce() {
	m.reloadMu.Lock()
	defer m.reloadMu.Unlock()
	if m.reloadTimer != nil {
		m.reloadTimer.Stop()
		m.reloadTimer = nil
	}
}
