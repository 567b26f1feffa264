package main

// General API documentation for swaggo. Run `swag init -g cmd/petra/docs.go -o docs` to regenerate.
//
// @title           petra API
// @version         1.0
// @description     JSON API of the oil-spill detection dashboard.
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
