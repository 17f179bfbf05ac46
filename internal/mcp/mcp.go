package mcp

import (
	"context"
	"net/http"
	"strings"

	"gitee.com/taoJie_1/fin-assistant/internal/responder"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
)

const (
	ToolAsk     = "ask_assistant"
	ToolExplain = "explain_term"
)

type AskInput struct {
	Query string `json:"query"`
}

type ExplainInput struct {
	Term string `json:"term"`
}

// Output 工具的结构化输出
type Output struct {
	Answer string         `json:"answer"`
	Kind   responder.Kind `json:"kind"`
}

// SelectorFunc 返回当前生效的 Selector, 规则重新加载后立即可见
type SelectorFunc func() *responder.Selector

type handler struct {
	log      *logrus.Logger
	selector SelectorFunc
}

// NewServer 创建把应答规则暴露为工具的MCP服务
func NewServer(log *logrus.Logger, name, version string, selector SelectorFunc) *mcp.Server {
	h := &handler{log: log, selector: selector}

	server := mcp.NewServer(&mcp.Implementation{Name: name, Version: version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolAsk,
		Description: "Answer a question about the finance dashboard (charts, portfolio, trading, transactions, alerts) or explain a financial term.",
		InputSchema: objectSchema("query", "The user's question in free text."),
	}, h.ask)

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolExplain,
		Description: "Explain a financial term such as bull market, volatility or liquidity.",
		InputSchema: objectSchema("term", "The financial term to explain."),
	}, h.explain)

	return server
}

// NewHTTPHandler 以 streamable HTTP 方式提供MCP服务
func NewHTTPHandler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
}

// RunStdio 通过标准输入输出提供MCP服务, 阻塞直到ctx结束或连接断开
func RunStdio(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

func objectSchema(field, description string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			field: {Type: "string", Description: description},
		},
		Required: []string{field},
	}
}

func (h *handler) ask(ctx context.Context, req *mcp.CallToolRequest, in AskInput) (*mcp.CallToolResult, Output, error) {
	res := h.selector().Match(in.Query)
	h.log.Debugf("[mcp]%s 命中: %s", ToolAsk, res.Kind)
	return textResult(res.Response), Output{Answer: res.Response, Kind: res.Kind}, nil
}

func (h *handler) explain(ctx context.Context, req *mcp.CallToolRequest, in ExplainInput) (*mcp.CallToolResult, Output, error) {
	term := strings.TrimSpace(in.Term)
	res := h.selector().Match("what is " + term)
	h.log.Debugf("[mcp]%s 命中: %s", ToolExplain, res.Kind)
	return textResult(res.Response), Output{Answer: res.Response, Kind: res.Kind}, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
