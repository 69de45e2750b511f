package V1

import (
	"ttsweb/hander"
	"ttsweb/usecase"

	"github.com/google/wire"
)

type Handers struct {
	Hello *HelloHander
	Tts   *TtsHander
}

var ProviderSet = wire.NewSet(
	hander.NewBaseHandler,
	NewHelloHander,
	NewTtsHander,
	usecase.ProviderSet,

	wire.Struct(new(Handers), "*"),
)
