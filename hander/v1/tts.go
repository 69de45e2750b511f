package V1

import (
	"errors"
	"fmt"
	"net/http"
	_ "ttsweb/docs"
	"ttsweb/domain"
	"ttsweb/hander"
	"ttsweb/pkg/log"
	"ttsweb/serve"
	"ttsweb/usecase"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type TtsHander struct {
	*hander.BaseHandler
	logger  *log.Logger
	tts     *usecase.TtsUsecase
	catalog *usecase.CatalogUsecase
}

func NewTtsHander(s *serve.HttpServer, base *hander.BaseHandler, logger *log.Logger, tts *usecase.TtsUsecase, catalog *usecase.CatalogUsecase) *TtsHander {
	g := s.Echo.Group("/v1")
	g.GET("/swagger/*", echoSwagger.WrapHandler)

	h := &TtsHander{
		BaseHandler: base,
		logger:      logger,
		tts:         tts,
		catalog:     catalog,
	}
	s.Echo.GET("/", h.Index)
	g.POST("/tts", h.Generate)
	g.GET("/voices", h.Voices)
	g.GET("/models", h.Models)
	g.GET("/languages", h.Languages)
	g.GET("/stats", h.Stats)
	return h
}

// Index serves the single-page form.
func (h *TtsHander) Index(c echo.Context) error {
	return c.HTML(http.StatusOK, index)
}

// Generate godoc
// @Summary Generate speech from text
// @Description Forwards one synthesis request to the Gemini TTS API and returns WAV audio
// @Tags Tts
// @Accept  json
// @Produce audio/wav
// @Param request body domain.SpeechRequest true "Synthesis request"
// @Success 200 {file} binary "WAV audio"
// @Failure 400 {object} hander.Response "Invalid input"
// @Failure 401 {object} hander.Response "API key rejected"
// @Failure 429 {object} hander.Response "Rate limit exceeded"
// @Router /v1/tts [post]
func (h *TtsHander) Generate(c echo.Context) error {
	var req domain.SpeechRequest
	if err := c.Bind(&req); err != nil {
		return h.NewResponseWithError(c, http.StatusBadRequest, "Invalid request body", err)
	}
	result, err := h.tts.Synthesize(c.Request().Context(), &req)
	if err != nil {
		status, msg := speechError(err)
		h.logger.Warn("speech generation failed", log.Error(err))
		return h.NewResponseWithError(c, status, msg, err)
	}
	c.Response().Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Response().Header().Set("X-Audio-Filename", result.Filename)
	return c.Blob(http.StatusOK, result.MimeType, result.Audio)
}

// Voices godoc
// @Summary List voice presets
// @Tags Catalog
// @Produce json
// @Success 200 {object} hander.Response{data=[]domain.Option}
// @Router /v1/voices [get]
func (h *TtsHander) Voices(c echo.Context) error {
	return h.NewResponseWithData(c, h.catalog.Voices())
}

// Models godoc
// @Summary List TTS models
// @Tags Catalog
// @Produce json
// @Success 200 {object} hander.Response{data=[]domain.Option}
// @Router /v1/models [get]
func (h *TtsHander) Models(c echo.Context) error {
	return h.NewResponseWithData(c, h.catalog.Models())
}

// Languages godoc
// @Summary List supported languages
// @Tags Catalog
// @Produce json
// @Success 200 {object} hander.Response{data=[]domain.Option}
// @Router /v1/languages [get]
func (h *TtsHander) Languages(c echo.Context) error {
	return h.NewResponseWithData(c, h.catalog.Languages())
}

// Stats godoc
// @Summary Form footer statistics
// @Tags Catalog
// @Produce json
// @Success 200 {object} hander.Response{data=domain.FormStats}
// @Router /v1/stats [get]
func (h *TtsHander) Stats(c echo.Context) error {
	return h.NewResponseWithData(c, h.catalog.Stats())
}

// speechError picks the HTTP status and the user-facing message for one
// failed generation. Every failure returns control to the form.
func speechError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidApiKey):
		return http.StatusBadRequest, "Invalid API key format. Please check your key."
	case errors.Is(err, domain.ErrMissingText):
		return http.StatusBadRequest, "Please enter some text to convert to speech"
	case errors.Is(err, domain.ErrTextTooLong):
		return http.StatusBadRequest, "Text is too long. Please limit to ~8000 characters."
	case errors.Is(err, domain.ErrUnknownModel):
		return http.StatusBadRequest, "Unknown model"
	case errors.Is(err, domain.ErrUnknownVoice):
		return http.StatusBadRequest, "Unknown voice"
	case errors.Is(err, domain.ErrTooManySpeakers), errors.Is(err, domain.ErrMissingSpeaker):
		return http.StatusBadRequest, "Invalid speaker configuration"
	case errors.Is(err, domain.ErrBadRequest):
		return http.StatusBadRequest, "Bad request - please check your input"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "Invalid API key. Please check your Gemini API key."
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "API access forbidden. Please check your API key permissions."
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests, "Rate limit exceeded. Please wait a moment and try again."
	case errors.Is(err, domain.ErrTimeout):
		return http.StatusGatewayTimeout, "Request timed out. Please try again."
	case errors.Is(err, domain.ErrNetwork):
		return http.StatusBadGateway, "Network error"
	case errors.Is(err, domain.ErrNoAudio):
		return http.StatusBadGateway, "Failed to generate speech. Please check your settings and try again."
	default:
		return http.StatusInternalServerError, "Unexpected error"
	}
}
