package global

import (
	"sync"
	"time"

	"gitee.com/taoJie_1/fin-assistant/internal/llm"
	"gitee.com/taoJie_1/fin-assistant/internal/redis"
	"gitee.com/taoJie_1/fin-assistant/internal/responder"
	"gitee.com/taoJie_1/fin-assistant/model/config"
	"github.com/sirupsen/logrus"
)

const Version = "v1.0.0"

// 全局变量
// 业务逻辑禁止修改
var (
	Config      *config.Config = new(config.Config) //指针类型, 给与其内存空间
	Log         *logrus.Logger = logrus.New()       //InitLog前使用默认输出
	Tz          *time.Location = time.Local
	RedisClient redis.Service
	LlmService  llm.Service
	Selector    *SelectorHolder = &SelectorHolder{Data: responder.Default()}
)

// SelectorHolder 当前生效的规则目录, 重新加载时整体替换
type SelectorHolder struct {
	sync.RWMutex
	Data *responder.Selector
}

func (h *SelectorHolder) Get() *responder.Selector {
	h.RLock()
	defer h.RUnlock()
	return h.Data
}

func (h *SelectorHolder) Set(s *responder.Selector) {
	h.Lock()
	h.Data = s
	h.Unlock()
}
