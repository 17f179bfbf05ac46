package main

import "gitee.com/taoJie_1/fin-assistant/cmd"

func main() {
	cmd.Execute()
}
