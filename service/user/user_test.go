package user

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"gitee.com/taoJie_1/fin-assistant/global"
	"gitee.com/taoJie_1/fin-assistant/internal/responder"
	"gitee.com/taoJie_1/fin-assistant/model/common"
	"gitee.com/taoJie_1/fin-assistant/model/dto"
	"gitee.com/taoJie_1/fin-assistant/model/enum"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	global.Log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// fakeRedis 只实现会话历史用到的list操作
type fakeRedis struct {
	mu       sync.Mutex
	lists    map[string][]string
	expires  map[string]time.Duration
	failPush bool
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{lists: map[string][]string{}, expires: map[string]time.Duration{}}
}

func (f *fakeRedis) RPush(_ context.Context, key string, values ...interface{}) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failPush {
		return redis.NewIntResult(0, errors.New("redis down"))
	}
	for _, v := range values {
		f.lists[key] = append(f.lists[key], v.(string))
	}
	return redis.NewIntResult(int64(len(f.lists[key])), nil)
}

func (f *fakeRedis) LRange(_ context.Context, key string, start, stop int64) *redis.StringSliceCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	return redis.NewStringSliceResult(append([]string(nil), f.lists[key]...), nil)
}

func (f *fakeRedis) LTrim(_ context.Context, key string, start, stop int64) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	// 只支持 LTRIM key -n -1
	l := f.lists[key]
	if n := -start; start < 0 && int64(len(l)) > n {
		f.lists[key] = l[int64(len(l))-n:]
	}
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Expire(_ context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.expires[key] = expiration
	return redis.NewBoolResult(true, nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range keys {
		delete(f.lists, k)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func (f *fakeRedis) Ping(context.Context) *redis.StatusCmd { return redis.NewStatusResult("PONG", nil) }
func (f *fakeRedis) Close() error                          { return nil }

type fakeLlm struct {
	answer  string
	err     error
	history []common.LlmMessage
	calls   int
}

func (f *fakeLlm) ChatCompletion(ctx context.Context, p enum.SystemPrompt, content string) (string, error) {
	return f.ChatCompletionWithHistory(ctx, p, content, nil)
}

func (f *fakeLlm) ChatCompletionWithHistory(_ context.Context, _ enum.SystemPrompt, _ string, history []common.LlmMessage) (string, error) {
	f.calls++
	f.history = history
	return f.answer, f.err
}

func withGlobals(t *testing.T, rdb *fakeRedis, llm *fakeLlm) {
	t.Helper()
	oldCfg := *global.Config
	if rdb != nil {
		global.RedisClient = rdb
	}
	if llm != nil {
		global.LlmService = llm
	}
	t.Cleanup(func() {
		*global.Config = oldCfg
		global.RedisClient = nil
		global.LlmService = nil
		global.Selector.Set(responder.Default())
	})
}

func TestReplyCanned(t *testing.T) {
	withGlobals(t, nil, nil)
	svc := NewAssistantService(NewHistoryService())

	reply, err := svc.Reply(context.Background(), "s1", "Show me the CHART")
	require.NoError(t, err)
	assert.Equal(t, "s1", reply.SessionID)
	assert.Equal(t, responder.ChartResponse, reply.Answer)
	assert.Equal(t, responder.KindRule, reply.Kind)
	assert.Equal(t, responder.RuleChart, reply.Rule)
	assert.Equal(t, dto.SourceCanned, reply.Source)

	reply, err = svc.Reply(context.Background(), "s1", "What is a bull market?")
	require.NoError(t, err)
	assert.Equal(t, responder.BullMarketDefinition, reply.Answer)
	assert.Equal(t, "bull market", reply.Term)
}

func TestReplyEmptyQueryAndSession(t *testing.T) {
	withGlobals(t, nil, nil)
	svc := NewAssistantService(NewHistoryService())

	reply, err := svc.Reply(context.Background(), "", "")
	require.NoError(t, err)
	assert.NotEmpty(t, reply.SessionID)
	assert.Equal(t, responder.FallbackResponse, reply.Answer)
	assert.Equal(t, responder.KindFallback, reply.Kind)
}

func TestReplyTooLong(t *testing.T) {
	withGlobals(t, nil, nil)
	global.Config.Ai.MaxPromptLength = 5
	svc := NewAssistantService(NewHistoryService())

	_, err := svc.Reply(context.Background(), "s", "portfolio")
	assert.Error(t, err)
}

func TestReplyUsesReloadedSelector(t *testing.T) {
	withGlobals(t, nil, nil)
	global.Selector.Set(responder.New(
		[]responder.Rule{{Name: "hi", Patterns: []string{"hello"}, Response: "hi!"}},
		responder.DefaultGlossary(), responder.FallbackResponse,
	))
	svc := NewAssistantService(NewHistoryService())

	reply, err := svc.Reply(context.Background(), "s", "hello")
	require.NoError(t, err)
	assert.Equal(t, "hi!", reply.Answer)
}

func TestReplyLlmFallback(t *testing.T) {
	llm := &fakeLlm{answer: "An IPO is a first sale of shares."}
	rdb := newFakeRedis()
	withGlobals(t, rdb, llm)
	global.Config.Ai.LlmFallback = true
	history := NewHistoryService()
	svc := NewAssistantService(history)

	// 命中规则时不调用LLM
	_, err := svc.Reply(context.Background(), "s", "portfolio")
	require.NoError(t, err)
	assert.Zero(t, llm.calls)

	reply, err := svc.Reply(context.Background(), "s", "tell me about IPOs")
	require.NoError(t, err)
	assert.Equal(t, llm.answer, reply.Answer)
	assert.Equal(t, dto.SourceLlm, reply.Source)
	assert.Equal(t, 1, llm.calls)
	// 之前的一问一答作为上下文
	require.Len(t, llm.history, 2)
	assert.Equal(t, "portfolio", llm.history[0].Content)

	// 空问题不调用LLM
	_, err = svc.Reply(context.Background(), "s", "  ")
	require.NoError(t, err)
	assert.Equal(t, 1, llm.calls)
}

func TestReplyLlmErrorKeepsCanned(t *testing.T) {
	withGlobals(t, nil, &fakeLlm{err: errors.New("boom")})
	global.Config.Ai.LlmFallback = true
	svc := NewAssistantService(NewHistoryService())

	reply, err := svc.Reply(context.Background(), "s", "hello")
	require.NoError(t, err)
	assert.Equal(t, responder.FallbackResponse, reply.Answer)
	assert.Equal(t, dto.SourceCanned, reply.Source)
}

func TestReplyLlmDisabled(t *testing.T) {
	llm := &fakeLlm{answer: "x"}
	withGlobals(t, nil, llm)
	svc := NewAssistantService(NewHistoryService())

	reply, err := svc.Reply(context.Background(), "s", "hello")
	require.NoError(t, err)
	assert.Equal(t, responder.FallbackResponse, reply.Answer)
	assert.Zero(t, llm.calls)
}

func TestHistoryAppendAndList(t *testing.T) {
	rdb := newFakeRedis()
	withGlobals(t, rdb, nil)
	global.Config.Ai.HistoryLimit = 4
	global.Config.Redis.ConversationHistoryTTL = 60
	global.Config.Redis.KeyPrefix = "fin:"
	history := NewHistoryService()
	svc := NewAssistantService(history)

	for _, q := range []string{"chart", "portfolio", "hello"} {
		_, err := svc.Reply(context.Background(), "abc", q)
		require.NoError(t, err)
	}

	items, err := history.List(context.Background(), "abc")
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, enum.RoleUser, items[0].Role)
	assert.Equal(t, "portfolio", items[0].Content)
	assert.Equal(t, enum.RoleAssistant, items[3].Role)
	assert.Equal(t, responder.FallbackResponse, items[3].Content)

	assert.GreaterOrEqual(t, rdb.expires["fin:history:abc"], 60*time.Second)
}

func TestHistoryClear(t *testing.T) {
	rdb := newFakeRedis()
	withGlobals(t, rdb, nil)
	global.Config.Redis.KeyPrefix = "fin:"
	history := NewHistoryService()

	require.NoError(t, history.Append(context.Background(), "abc", "q", "a"))
	require.NoError(t, history.Append(context.Background(), "other", "q", "a"))
	require.NoError(t, history.Clear(context.Background(), "abc"))

	items, err := history.List(context.Background(), "abc")
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotContains(t, rdb.lists, "fin:history:abc")

	items, err = history.List(context.Background(), "other")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestHistoryWithoutRedis(t *testing.T) {
	withGlobals(t, nil, nil)
	history := NewHistoryService()

	require.NoError(t, history.Clear(context.Background(), "s"))
	require.NoError(t, history.Append(context.Background(), "s", "q", "a"))
	items, err := history.List(context.Background(), "s")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestHistoryFailureDoesNotFailReply(t *testing.T) {
	rdb := newFakeRedis()
	rdb.failPush = true
	withGlobals(t, rdb, nil)
	svc := NewAssistantService(NewHistoryService())

	reply, err := svc.Reply(context.Background(), "s", "chart")
	require.NoError(t, err)
	assert.Equal(t, responder.ChartResponse, reply.Answer)
}

func TestValidatorChatRequest(t *testing.T) {
	withGlobals(t, nil, nil)
	global.Config.Ai.MaxPromptLength = 10
	v := &Validator{}

	assert.NoError(t, v.ValidatorChatRequest(&dto.ChatRequest{Content: ""}))
	assert.NoError(t, v.ValidatorChatRequest(&dto.ChatRequest{SessionID: "abc-123_x", Content: "chart"}))
	assert.Error(t, v.ValidatorChatRequest(&dto.ChatRequest{SessionID: "bad id!", Content: "chart"}))
	assert.Error(t, v.ValidatorChatRequest(&dto.ChatRequest{Content: strings.Repeat("a", 11)}))
	assert.Error(t, v.ValidatorChatRequest(nil))
}
