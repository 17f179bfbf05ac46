package cmd

import (
	"fmt"
	"io"
	"os"

	"gitee.com/taoJie_1/fin-assistant/global"
	"gitee.com/taoJie_1/fin-assistant/initialize"
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:           "fin-assistant",
	Short:         "Keyword-driven assistant for a personal finance dashboard",
	Version:       global.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./"+initialize.DefaultConfigPath+")")
}

// bootstrap 加载配置、时区和日志, 返回的初始化器需要调用 Close
func bootstrap(console io.Writer) (*initialize.Initializer, error) {
	initSvc, err := initialize.New(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := initSvc.InitTz(); err != nil {
		return nil, fmt.Errorf("初始化时区失败: %w", err)
	}
	if err := initSvc.InitLog(console); err != nil {
		return nil, fmt.Errorf("初始化日志失败[fbvk89]: %w", err)
	}
	return initSvc, nil
}
