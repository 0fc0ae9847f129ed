/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package main

import (
	"github.com/josephgoksu/TodoWing/cmd"
	"github.com/josephgoksu/TodoWing/internal/logger"
)

func main() {
	defer logger.HandlePanic()
	cmd.Execute()
}
