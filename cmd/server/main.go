package main

import "paysim/internal/app/server"

func main() {
	server.Run()
}
