package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gitee.com/taoJie_1/fin-assistant/global"
	"gitee.com/taoJie_1/fin-assistant/initialize"
	"gitee.com/taoJie_1/fin-assistant/service"
	"gitee.com/taoJie_1/fin-assistant/task"
	"github.com/spf13/cobra"
)

var (
	askJSON    bool
	askSession string
)

var askCmd = &cobra.Command{
	Use:   "ask [query...]",
	Short: "Print the assistant's answer to a query",
	RunE: func(cmd *cobra.Command, args []string) error {
		// 日志只写文件, 标准输出留给回答
		initSvc, err := bootstrap(nil)
		if err != nil {
			return err
		}
		defer initSvc.Close()

		loadCatalog(initSvc)
		initialize.InitServices(task.NewManager())

		reply, err := service.Service.UserServiceGroup.AssistantService.Reply(context.Background(), askSession, strings.Join(args, " "))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !askJSON {
			_, err = fmt.Fprintln(out, reply.Answer)
			return err
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(reply)
	},
}

func init() {
	askCmd.Flags().BoolVar(&askJSON, "json", false, "print the full reply as JSON")
	askCmd.Flags().StringVar(&askSession, "session", "", "session id used for conversation history")
	rootCmd.AddCommand(askCmd)
}

// loadCatalog 数据库不可用时退回内置规则目录
func loadCatalog(initSvc *initialize.Initializer) {
	if err := initSvc.Run(); err != nil {
		global.Log.Warnf("初始化失败, 使用内置规则目录: %v", err)
		return
	}
	if err := task.NewManager().RuleReloader(); err != nil {
		global.Log.Warnf("加载规则目录失败, 使用内置规则目录: %v", err)
	}
}
