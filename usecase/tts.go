package usecase

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"ttsweb/config"
	"ttsweb/domain"
	"ttsweb/pkg/log"
	"ttsweb/pkg/wav"
	"unicode/utf8"

	"golang.org/x/time/rate"
)

// TtsUsecase forwards one generation request to the speech API and turns
// the response into playable audio. One synchronous call per user action,
// no retries, no state across calls.
type TtsUsecase struct {
	l       *log.Logger
	config  *config.Config
	client  *http.Client
	limiter *rate.Limiter
}

// NewTtsUsecase creates TtsUsecase. The outbound limiter is only installed
// when tts.rps is set; the default is the original unthrottled behavior.
func NewTtsUsecase(l *log.Logger, c *config.Config) *TtsUsecase {
	timeout := time.Duration(c.Tts.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	var limiter *rate.Limiter
	if c.Tts.Rps > 0 {
		limiter = rate.NewLimiter(rate.Limit(c.Tts.Rps), 1)
	}
	return &TtsUsecase{
		l:       l.WithModule("TtsUsecase"),
		config:  c,
		client:  &http.Client{Timeout: timeout},
		limiter: limiter,
	}
}

// Synthesize validates the request, POSTs it to the generateContent
// endpoint and returns decoded audio ready for playback and download.
func (t *TtsUsecase) Synthesize(ctx context.Context, req *domain.SpeechRequest) (*domain.SpeechResult, error) {
	if err := t.validate(req); err != nil {
		return nil, err
	}
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrRateLimited, err)
		}
	}

	body, err := json.Marshal(buildPayload(req))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		strings.TrimSuffix(t.config.Tts.BaseUrl, "/"), req.Model, url.QueryEscape(req.ApiKey))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		t.l.Warn("speech API call failed",
			log.Int("status", resp.StatusCode),
			log.Error(err))
		return nil, err
	}

	var result domain.GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNoAudio, err)
	}
	audio, mimeType, err := extractAudio(&result)
	if err != nil {
		return nil, err
	}

	// Inline data is raw L16 PCM; wrap it so browsers can play it. Anything
	// already in a container passes through untouched.
	if wav.IsPCM(mimeType) {
		audio = wav.Encode(audio, wav.RateFromMime(mimeType), wav.DefaultChannels, wav.DefaultBitDepth)
		mimeType = "audio/wav"
	}

	mode := "single"
	if req.MultiSpeaker() {
		mode = "multi"
	}
	t.l.Info("speech generated",
		log.String("model", req.Model),
		log.String("mode", mode),
		log.Int("bytes", len(audio)),
		log.Duration("took", time.Since(start)))

	return &domain.SpeechResult{
		Audio:    audio,
		MimeType: mimeType,
		Filename: fmt.Sprintf("gemini_tts_%s_%d.wav", mode, time.Now().Unix()),
	}, nil
}

// validate applies the local checks and fills in configured defaults.
func (t *TtsUsecase) validate(req *domain.SpeechRequest) error {
	if req.ApiKey == "" {
		req.ApiKey = t.config.Tts.ApiKey
	}
	if !domain.ValidApiKey(req.ApiKey) {
		return domain.ErrInvalidApiKey
	}
	if req.Model == "" {
		req.Model = t.config.Tts.Model
	}
	if _, ok := domain.Models[req.Model]; !ok {
		return domain.ErrUnknownModel
	}
	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		return domain.ErrMissingText
	}
	maxLen := t.config.Tts.MaxTextLen
	if maxLen <= 0 {
		maxLen = 8000
	}
	if utf8.RuneCountInString(req.Text) > maxLen {
		return domain.ErrTextTooLong
	}
	if req.MultiSpeaker() {
		if len(req.Speakers) > domain.MaxSpeakers {
			return domain.ErrTooManySpeakers
		}
		for _, s := range req.Speakers {
			if strings.TrimSpace(s.Speaker) == "" {
				return domain.ErrMissingSpeaker
			}
			if _, ok := domain.Voices[s.Voice]; !ok {
				return domain.ErrUnknownVoice
			}
		}
		return nil
	}
	if _, ok := domain.Voices[req.Voice]; !ok {
		return domain.ErrUnknownVoice
	}
	return nil
}

// buildPayload constructs the generateContent body: a prebuilt voice config
// in single-speaker mode, the speaker-voice-config list (input order) in
// multi-speaker mode.
func buildPayload(req *domain.SpeechRequest) *domain.GenerateRequest {
	speech := domain.SpeechConfig{}
	if req.MultiSpeaker() {
		configs := make([]domain.SpeakerVoiceConfig, 0, len(req.Speakers))
		for _, s := range req.Speakers {
			configs = append(configs, domain.SpeakerVoiceConfig{
				Speaker: s.Speaker,
				VoiceConfig: domain.VoiceConfig{
					PrebuiltVoiceConfig: domain.PrebuiltVoiceConfig{VoiceName: s.Voice},
				},
			})
		}
		speech.MultiSpeakerVoiceConfig = &domain.MultiSpeakerVoiceConfig{SpeakerVoiceConfigs: configs}
	} else {
		speech.VoiceConfig = &domain.VoiceConfig{
			PrebuiltVoiceConfig: domain.PrebuiltVoiceConfig{VoiceName: req.Voice},
		}
	}
	return &domain.GenerateRequest{
		Contents: []domain.Content{{Parts: []domain.Part{{Text: req.Text}}}},
		GenerationConfig: domain.GenerationConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig:       speech,
		},
	}
}

// checkStatus maps non-200 responses onto the error taxonomy. A 400 body
// carries an error.message worth surfacing to the user verbatim.
func checkStatus(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusBadRequest:
		var body domain.GenerateResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != nil && body.Error.Message != "" {
			return fmt.Errorf("%w: %s", domain.ErrBadRequest, body.Error.Message)
		}
		return domain.ErrBadRequest
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusTooManyRequests:
		return domain.ErrRateLimited
	default:
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("%w: status %d: %s", domain.ErrUpstream, resp.StatusCode, strings.TrimSpace(string(detail)))
	}
}

func classifyTransportError(err error) error {
	var urlErr *url.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &urlErr) && urlErr.Timeout()) {
		return fmt.Errorf("%w: %v", domain.ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
}

// extractAudio walks candidates[0].content.parts for the first inline data
// part and base64-decodes it. Any structural mismatch yields ErrNoAudio.
func extractAudio(resp *domain.GenerateResponse) ([]byte, string, error) {
	if len(resp.Candidates) == 0 {
		return nil, "", domain.ErrNoAudio
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.InlineData == nil || part.InlineData.Data == "" {
			continue
		}
		raw, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", domain.ErrNoAudio, err)
		}
		return raw, part.InlineData.MimeType, nil
	}
	return nil, "", domain.ErrNoAudio
}
