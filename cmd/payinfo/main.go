// filepath: cmd/payinfo/main.go
package main

import (
	"payinfo/internal/cli"

	// Import docs for Swagger
	_ "payinfo/docs"
)

// @title Payment Info API
// @version 0.1.0
// @description Serves payment infos published by merchants, looked up by reference id.
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a token from 'payinfo token'.

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
