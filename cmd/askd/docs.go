package main

// General API documentation for swaggo. Run `swag init -g cmd/askd/docs.go` to regenerate docs/.
//
// @title           askd API
// @version         1.0
// @description     HTTP API that forwards text to a hosted generative model and runs smoke-test evaluations.
//
// @contact.name   askd maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
