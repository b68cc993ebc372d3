/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
// @title           商品现房备案 API
// @version         1.0
// @description     商品现房备案申请提交与审核服务

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1
package main

import "github.com/mautops/filing-gin/cmd"

func main() {
	cmd.Execute()
}
