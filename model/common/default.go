package common

import "gitee.com/taoJie_1/fin-assistant/model/enum"

// HistoryItem 会话历史中的一轮消息
type HistoryItem struct {
	Role    enum.HistoryRole `json:"role"`
	Content string           `json:"content"`
	Time    int64            `json:"time"`
}

// LlmMessage 结构体定义了发送给LLM的聊天消息格式
type LlmMessage struct {
	Role    string `json:"role"`    // 消息角色，例如 "user", "assistant", "system"
	Content string `json:"content"` // 消息内容
}
