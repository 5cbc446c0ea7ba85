package main

import (
	_ "kaenpro_os/docs"
	"kaenpro_os/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           KaenPro OS API
// @version         1.0
// @description     Service order composition (drafts, AI suggestions, invoices, payments) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey SessionUser
// @in header
// @name X-Session-User
// @description Operator username; namespaces every persisted collection.

func main() {
	routes.Run()
}
