package enum

import (
	"strings"
	"testing"
)

// TestSystemPromptConstraints 确保系统提示词保留了必须的约束,
// 防止修改提示词时把投资建议的限制删掉
func TestSystemPromptConstraints(t *testing.T) {
	prompt := string(SystemPromptDefault)

	required := []string{
		"finance dashboard",
		"Never give personalised investment advice",
		"same language as the question",
	}

	for _, s := range required {
		if !strings.Contains(prompt, s) {
			t.Errorf("SystemPromptDefault应包含: %s", s)
		}
	}
}
