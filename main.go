package main

import (
	"stickerDesk/cmd/app"
)

func main() {
	app.GetApp().LetsGo()
}
