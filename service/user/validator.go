package user

import (
	"errors"
	"fmt"
	"regexp"

	"gitee.com/taoJie_1/fin-assistant/global"
	"gitee.com/taoJie_1/fin-assistant/model/dto"
	"gitee.com/taoJie_1/fin-assistant/utils"
)

type IValidator interface {
	ValidatorChatRequest(data *dto.ChatRequest) error
}

type Validator struct{}

var sessionIDPattern = regexp.MustCompile(`^[A-Za-z0-9_\-]{1,64}$`)

// ValidatorChatRequest 空问题是合法的, 会得到兜底回复
func (v *Validator) ValidatorChatRequest(data *dto.ChatRequest) error {
	if data == nil {
		return errors.New("参数错误[gftsd]")
	}
	if data.SessionID != "" && !sessionIDPattern.MatchString(data.SessionID) {
		return errors.New("session_id 格式错误")
	}
	if max := global.Config.Ai.MaxPromptLength; utils.TooLong(data.Content, max) {
		return fmt.Errorf("问题过长, 最多 %d 个字符", max)
	}
	return nil
}
