package main

import "bid-tracking-api/app"

func main() {
	app.Run()
}
