package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gitee.com/taoJie_1/fin-assistant/task"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server (default)",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	startTime := time.Now()

	initSvc, err := bootstrap(os.Stdout)
	if err != nil {
		return err
	}
	defer initSvc.Close()

	if err := initSvc.Run(); err != nil {
		return err
	}
	if err := initSvc.InitLogger(); err != nil {
		return err
	}

	// 等待关闭信号(ctrl+C)
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return initSvc.Start(ctx, task.NewManager(), startTime)
}
