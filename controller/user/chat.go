package user

import (
	"encoding/json"
	"net/http"
	"time"

	"gitee.com/taoJie_1/fin-assistant/global"
	"gitee.com/taoJie_1/fin-assistant/model/common"
	"gitee.com/taoJie_1/fin-assistant/model/dto"
	"gitee.com/taoJie_1/fin-assistant/service"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = wsPongWait * 9 / 10
	wsMaxMessage = 16 << 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     checkOrigin,
}

// checkOrigin 与 cors 中间件使用同一份白名单, "*" 或空列表表示不限制.
// 没有 Origin 头的请求不是浏览器发起的, 直接放行
func checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	allowed := global.Config.Cors
	if len(allowed) == 0 {
		return true
	}
	for _, o := range allowed {
		if o == "*" || o == origin {
			return true
		}
	}
	global.Log.Warnf("[ws]拒绝来源: %s", origin)
	return false
}

type ChatApi struct{}

func (d *ChatApi) HandleChat(ctx *gin.Context) {
	var req dto.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		common.Fail(ctx, "参数无效")
		return
	}

	if err := service.Service.UserServiceGroup.Validator.ValidatorChatRequest(&req); err != nil {
		common.Fail(ctx, err.Error())
		return
	}

	reply, err := service.Service.UserServiceGroup.AssistantService.Reply(ctx.Request.Context(), req.SessionID, req.Content)
	if err != nil {
		common.Fail(ctx, err.Error())
		return
	}
	common.Success(ctx, reply)
}

// HandleWs 同一连接上的问题按顺序回答
func (d *ChatApi) HandleWs(ctx *gin.Context) {
	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		global.Log.Warnf("[ws]升级连接失败: %v", err)
		return
	}
	defer conn.Close()

	out := make(chan *common.Response, 8)
	done := make(chan struct{})
	go d.wsWriter(conn, out, done)

	conn.SetReadLimit(wsMaxMessage)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	reqCtx := ctx.Request.Context()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				global.Log.Warnf("[ws]读取消息失败: %v", err)
			}
			break
		}

		// 单帧格式错误只回复错误, 连接继续可用
		var req dto.ChatRequest
		if err := json.Unmarshal(data, &req); err != nil {
			common.FailWs(out, "参数无效")
			continue
		}

		if err := service.Service.UserServiceGroup.Validator.ValidatorChatRequest(&req); err != nil {
			common.FailWs(out, err.Error())
			continue
		}

		reply, err := service.Service.UserServiceGroup.AssistantService.Reply(reqCtx, req.SessionID, req.Content)
		if err != nil {
			common.FailWs(out, err.Error())
			continue
		}
		common.SuccessWs(out, reply)
	}

	close(out)
	<-done
}

func (d *ChatApi) wsWriter(conn *websocket.Conn, out <-chan *common.Response, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case res, ok := <-out:
			if !ok {
				_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(res); err != nil {
				global.Log.Warnf("[ws]发送消息失败: %v", err)
				// 关闭连接让读循环退出, 继续消费避免阻塞
				_ = conn.Close()
				for range out {
				}
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				_ = conn.Close()
				for range out {
				}
				return
			}
		}
	}
}

func sessionParam(ctx *gin.Context) (string, bool) {
	sessionID := ctx.Param("session_id")
	if err := service.Service.UserServiceGroup.Validator.ValidatorChatRequest(&dto.ChatRequest{SessionID: sessionID}); err != nil || sessionID == "" {
		common.Fail(ctx, "session_id 格式错误")
		return "", false
	}
	return sessionID, true
}

func (d *ChatApi) History(ctx *gin.Context) {
	sessionID, ok := sessionParam(ctx)
	if !ok {
		return
	}

	items, err := service.Service.UserServiceGroup.HistoryService.List(ctx.Request.Context(), sessionID)
	if err != nil {
		common.Fail(ctx, err.Error())
		return
	}
	common.Success(ctx, items)
}

func (d *ChatApi) ClearHistory(ctx *gin.Context) {
	sessionID, ok := sessionParam(ctx)
	if !ok {
		return
	}

	if err := service.Service.UserServiceGroup.HistoryService.Clear(ctx.Request.Context(), sessionID); err != nil {
		common.Fail(ctx, err.Error())
		return
	}
	common.SuccessOk(ctx, "会话历史已清除")
}
