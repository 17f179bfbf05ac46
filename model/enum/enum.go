package enum

type DbType string

const (
	MYSQL  DbType = `mysql`
	SQLITE DbType = `sqlite3`
)

type Msg string

const (
	DefaultSuccessMsg Msg = `ok`
	DefaultFailMsg    Msg = `错误`
)

type ResCode int8

const (
	SuccessCode ResCode = 0
	ErrorCode   ResCode = 1
)

type SystemPrompt string

const (
	SystemPromptDefault SystemPrompt = `You are the assistant of a personal finance dashboard. Answer the user's question about markets, investing or the dashboard briefly and in plain language.
- Keep the answer under 120 words.
- Never give personalised investment advice or price predictions.
- If the question is unrelated to finance or the dashboard, politely say you can only help with financial topics.
- Answer in the same language as the question.`
)

type HistoryRole string

const (
	RoleUser      HistoryRole = "user"
	RoleAssistant HistoryRole = "assistant"
)
