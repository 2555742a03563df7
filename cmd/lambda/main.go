package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/saulo-duarte/dissertai-lambda/internal/container"
)

// @title DissertAI API
// @version 1.0
// @description Essay coaching backend: repertoires, coach, text style and saved conversations.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	c := container.New()
	adapter := httpadapter.New(c.Router())

	lambda.Start(adapter.ProxyWithContext)
}
