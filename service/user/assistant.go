package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gitee.com/taoJie_1/fin-assistant/global"
	"gitee.com/taoJie_1/fin-assistant/internal/metrics"
	"gitee.com/taoJie_1/fin-assistant/internal/responder"
	"gitee.com/taoJie_1/fin-assistant/model/common"
	"gitee.com/taoJie_1/fin-assistant/model/dto"
	"gitee.com/taoJie_1/fin-assistant/model/enum"
	"gitee.com/taoJie_1/fin-assistant/utils"
	"github.com/google/uuid"
)

const llmTimeout = 30 * time.Second

type AssistantService interface {
	// Reply 匹配预设回复; 未命中且开启了大模型兜底时交给LLM
	Reply(ctx context.Context, sessionID, query string) (*dto.ChatReply, error)
}

type assistantService struct {
	history         HistoryService
	maxPromptLength uint
	llmFallback     bool
}

func NewAssistantService(history HistoryService) AssistantService {
	return &assistantService{
		history:         history,
		maxPromptLength: global.Config.Ai.MaxPromptLength,
		llmFallback:     global.Config.Ai.LlmFallback,
	}
}

func (a *assistantService) Reply(ctx context.Context, sessionID, query string) (*dto.ChatReply, error) {
	if utils.TooLong(query, a.maxPromptLength) {
		return nil, fmt.Errorf("问题过长, 最多 %d 个字符", a.maxPromptLength)
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	res := global.Selector.Get().Match(query)
	reply := &dto.ChatReply{
		SessionID: sessionID,
		Answer:    res.Response,
		Kind:      res.Kind,
		Rule:      res.Rule,
		Term:      res.Term,
		Source:    dto.SourceCanned,
	}

	if res.Kind == responder.KindFallback && a.llmFallback && strings.TrimSpace(query) != "" {
		if answer, err := a.askLlm(ctx, sessionID, query); err == nil {
			reply.Answer = answer
			reply.Source = dto.SourceLlm
		} else if !errors.Is(err, context.Canceled) {
			global.Log.Warnf("[assistant]LLM兜底失败, 使用预设回复: %v", err)
		}
	}

	metrics.ObserveReply(string(reply.Kind), reply.Source)

	// 历史记录失败不影响回复
	if err := a.history.Append(ctx, sessionID, query, reply.Answer); err != nil {
		global.Log.Warnf("[assistant]会话 %s 保存历史失败: %v", sessionID, err)
	}

	return reply, nil
}

func (a *assistantService) askLlm(ctx context.Context, sessionID, query string) (string, error) {
	if global.LlmService == nil {
		return "", errors.New("LLM服务未初始化")
	}

	var history []common.LlmMessage
	if items, err := a.history.List(ctx, sessionID); err == nil {
		for _, item := range items {
			history = append(history, common.LlmMessage{Role: string(item.Role), Content: item.Content})
		}
	}

	ctx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()
	return global.LlmService.ChatCompletionWithHistory(ctx, enum.SystemPromptDefault, query, history)
}
