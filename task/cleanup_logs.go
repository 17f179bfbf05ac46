package task

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gitee.com/taoJie_1/fin-assistant/global"
	"gitee.com/taoJie_1/fin-assistant/utils"
)

// KeepLogFiles 登记进程正在写入的日志文件, 清理时跳过
func (m *Manager) KeepLogFiles(paths ...string) {
	m.logMu.Lock()
	defer m.logMu.Unlock()
	for _, p := range paths {
		m.liveLogs[cleanPath(p)] = struct{}{}
	}
}

func (m *Manager) keptLogs() map[string]struct{} {
	m.logMu.Lock()
	defer m.logMu.Unlock()
	out := make(map[string]struct{}, len(m.liveLogs))
	for p := range m.liveLogs {
		out[p] = struct{}{}
	}
	return out
}

// 清除日志文件
func (m *Manager) CleanUpLogs() error {
	retentionDays := global.Config.LogRetentionDays
	if retentionDays == 0 {
		global.Log.Info("日志清理功能已禁用 (log_retention_days = 0)")
		return nil
	}

	global.Log.Info("开始执行日志清理任务...")

	// 假设 gin_log_path 和 run_log_path 在同一个目录下
	logDir := filepath.Dir(global.Config.RunLogPath)
	now := time.Now().In(global.Tz)
	// 当天的零点
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, global.Tz)
	cutoffDate := today.AddDate(0, 0, -int(retentionDays))

	deletedCount, err := removeLogsBefore(logDir, cutoffDate, m.keptLogs())
	if err != nil {
		return err
	}

	global.Log.Infof("日志清理任务完成，共删除 %d 个文件", deletedCount)
	return nil
}

// removeLogsBefore 删除目录下日期早于cutoff的日志文件, keep 中的文件除外
func removeLogsBefore(logDir string, cutoff time.Time, keep map[string]struct{}) (int, error) {
	deletedCount := 0
	var errs []string

	err := filepath.WalkDir(logDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		// 从文件名中解析日期, e.g., run.log.2025-10-28
		fileDate, ok := utils.ParseDateFromLogFileName(d.Name(), cutoff.Location())
		if !ok {
			return nil // 不是带日期的日志文件，跳过
		}

		if _, ok := keep[cleanPath(path)]; ok {
			return nil
		}

		if fileDate.Before(cutoff) {
			if err := os.Remove(path); err != nil {
				errMsg := fmt.Sprintf("删除旧日志文件 %s 失败: %v", path, err)
				global.Log.Error(errMsg)
				errs = append(errs, errMsg)
			} else {
				global.Log.Infof("已删除旧日志文件: %s", path)
				deletedCount++
			}
		}
		return nil
	})

	if err != nil {
		return deletedCount, fmt.Errorf("遍历日志目录 '%s' 失败: %w", logDir, err)
	}

	if len(errs) > 0 {
		return deletedCount, fmt.Errorf("日志清理过程中发生错误: %s", strings.Join(errs, "; "))
	}
	return deletedCount, nil
}

func cleanPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}
