package main

import (
	"pomelox-server/cmd/server"
)

func main() {
	server.Init()
	server.Run()
}
