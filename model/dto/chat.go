package dto

import "gitee.com/taoJie_1/fin-assistant/internal/responder"

// ChatRequest 聊天请求, 来自HTTP或websocket
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Content   string `json:"content"`
}

// ChatReply 聊天回复
type ChatReply struct {
	SessionID string         `json:"session_id"`
	Answer    string         `json:"answer"`
	Kind      responder.Kind `json:"kind"`
	Rule      string         `json:"rule,omitempty"`
	Term      string         `json:"term,omitempty"`
	// Source 为 "llm" 表示兜底回复由大模型生成
	Source string `json:"source"`
}

const (
	SourceCanned = "canned"
	SourceLlm    = "llm"
)
