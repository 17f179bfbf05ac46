package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"gitee.com/taoJie_1/fin-assistant/global"
	"gitee.com/taoJie_1/fin-assistant/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the assistant as MCP tools over stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		// 标准输出被MCP协议占用
		initSvc, err := bootstrap(os.Stderr)
		if err != nil {
			return err
		}
		defer initSvc.Close()

		loadCatalog(initSvc)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		server := mcp.NewServer(global.Log, global.Config.ProjectName, global.Version, global.Selector.Get)
		return mcp.RunStdio(ctx, server)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
