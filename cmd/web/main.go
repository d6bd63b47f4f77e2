package main

import "studio_backend/internal/app"

func main() {
	app.Run()
}
