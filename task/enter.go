package task

import (
	"sync"
	"time"
)

type Manager struct {
	reloadMu    sync.Mutex
	reloadTimer *time.Timer

	logMu    sync.Mutex
	liveLogs map[string]struct{}
}

// NewManager 创建一个新的任务管理器
func NewManager() *Manager {
	return &Manager{liveLogs: make(map[string]struct{})}
}
