package main

import (
	"log"
	"ttsweb/config"
	V1 "ttsweb/hander/v1"
	"ttsweb/serve"
)

type App struct {
	Service *serve.HttpServer
	config  *config.Config
	v1      *V1.Handers
}

// @title Gemini TTS Web API
// @version 1.0
// @description Single-page form backend that forwards text-to-speech requests to the Gemini 2.5 TTS API.
func main() {
	app := InitializeApp()
	if err := app.Service.Echo.Start(app.config.Port); err != nil {
		log.Fatal(err)
		return
	}
}
