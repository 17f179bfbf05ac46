package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"gitee.com/taoJie_1/fin-assistant/model/common"
	"gitee.com/taoJie_1/fin-assistant/model/config"
	"gitee.com/taoJie_1/fin-assistant/model/enum"
	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

type Service interface {
	// 调用LLM进行实时对话
	ChatCompletion(ctx context.Context, systemPrompt enum.SystemPrompt, content string) (string, error)
	// 调用LLM进行实时对话，并支持传入历史消息
	ChatCompletionWithHistory(ctx context.Context, systemPrompt enum.SystemPrompt, content string, history []common.LlmMessage) (string, error)
}

// completer 是 *openai.Client 中用到的部分
type completer interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// client 封装了与LLM交互的底层逻辑
type client struct {
	log    *logrus.Logger
	api    completer
	config config.Llm
}

// NewClient 根据配置创建LLM客户端
func NewClient(log *logrus.Logger, cfg config.Llm) Service {
	openaiConfig := openai.DefaultConfig(cfg.Auth)
	if cfg.Url != "" {
		openaiConfig.BaseURL = cfg.Url
	}
	openaiConfig.HTTPClient = &http.Client{Timeout: time.Duration(cfg.Timeout) * time.Second}

	return newClient(log, openai.NewClientWithConfig(openaiConfig), cfg)
}

func newClient(log *logrus.Logger, api completer, cfg config.Llm) *client {
	return &client{
		log:    log,
		api:    api,
		config: cfg,
	}
}

// filterContent 从LLM的原始响应中剥离思考过程标签
func (c *client) filterContent(rawAnswer string) string {
	if parts := strings.SplitN(rawAnswer, "</think>", 2); len(parts) > 1 {
		return strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(rawAnswer)
}

func (c *client) ChatCompletion(ctx context.Context, systemPrompt enum.SystemPrompt, content string) (string, error) {
	return c.ChatCompletionWithHistory(ctx, systemPrompt, content, nil)
}

// systemPrompt: LLM的系统提示词
// content: 用户问题
// history: 之前的对话历史消息列表
func (c *client) ChatCompletionWithHistory(ctx context.Context, systemPrompt enum.SystemPrompt, content string, history []common.LlmMessage) (string, error) {
	if c.config.Model == "" {
		return "", errors.New("未配置LLM模型")
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: string(systemPrompt),
	})

	// 添加历史消息
	for _, msg := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	// 添加当前用户消息
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: content,
	})

	req := openai.ChatCompletionRequest{
		Model:    c.config.Model,
		Messages: messages,
	}
	if c.config.Temperature != nil {
		req.Temperature = *c.config.Temperature
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return "", err
		}
		c.log.Errorf("LLM API调用失败: %v", err)
		return "", errors.New("LLM服务暂不可用, 请稍后再试")
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", errors.New("LLM服务返回了空结果")
	}
	return c.filterContent(resp.Choices[0].Message.Content), nil
}
