//go:build tools

package main

// Pin the swagger doc generator so `go run github.com/swaggo/swag/cmd/swag init`
// uses the module-locked version.
import _ "github.com/swaggo/swag/cmd/swag"
