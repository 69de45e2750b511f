package usecase

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"ttsweb/config"
	"ttsweb/domain"
	"ttsweb/pkg/log"
)

const testApiKey = "AIzaSyTestKey1234567890"

func newTestUsecase(baseURL string) *TtsUsecase {
	cfg := &config.Config{
		Tts: config.TtsConfig{
			BaseUrl:    baseURL,
			Model:      "gemini-2.5-flash-preview-tts",
			Timeout:    5,
			MaxTextLen: 8000,
		},
	}
	return NewTtsUsecase(log.NewLogger(cfg), cfg)
}

func singleRequest() *domain.SpeechRequest {
	return &domain.SpeechRequest{
		ApiKey: testApiKey,
		Model:  "gemini-2.5-flash-preview-tts",
		Text:   "Say cheerfully: Have a wonderful day!",
		Voice:  "Kore",
	}
}

// dig walks a decoded JSON object along a key path.
func dig(t *testing.T, v any, path ...string) any {
	t.Helper()
	for _, key := range path {
		m, ok := v.(map[string]any)
		if !ok {
			t.Fatalf("expected object at %q, got %T", key, v)
		}
		v, ok = m[key]
		if !ok {
			t.Fatalf("missing key %q", key)
		}
	}
	return v
}

func TestBuildPayloadSingleSpeaker(t *testing.T) {
	raw, err := json.Marshal(buildPayload(singleRequest()))
	if err != nil {
		t.Fatal(err)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatal(err)
	}

	voice := dig(t, body, "generationConfig", "speechConfig", "voiceConfig", "prebuiltVoiceConfig", "voiceName")
	if voice != "Kore" {
		t.Errorf("voiceName = %v, want Kore", voice)
	}
	speech := dig(t, body, "generationConfig", "speechConfig").(map[string]any)
	if _, ok := speech["multiSpeakerVoiceConfig"]; ok {
		t.Error("single-speaker payload must not carry multiSpeakerVoiceConfig")
	}
	modalities := dig(t, body, "generationConfig", "responseModalities").([]any)
	if len(modalities) != 1 || modalities[0] != "AUDIO" {
		t.Errorf("responseModalities = %v, want [AUDIO]", modalities)
	}
	text := dig(t, body, "contents").([]any)[0].(map[string]any)["parts"].([]any)[0].(map[string]any)["text"]
	if text != "Say cheerfully: Have a wonderful day!" {
		t.Errorf("unexpected text %v", text)
	}
}

func TestBuildPayloadMultiSpeaker(t *testing.T) {
	req := singleRequest()
	req.Voice = ""
	req.Speakers = []domain.SpeakerVoice{
		{Speaker: "Alice", Voice: "Puck"},
		{Speaker: "Bob", Voice: "Charon"},
	}

	raw, err := json.Marshal(buildPayload(req))
	if err != nil {
		t.Fatal(err)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatal(err)
	}

	configs := dig(t, body, "generationConfig", "speechConfig", "multiSpeakerVoiceConfig", "speakerVoiceConfigs").([]any)
	if len(configs) != 2 {
		t.Fatalf("got %d speaker configs, want 2", len(configs))
	}
	want := []struct{ speaker, voice string }{
		{"Alice", "Puck"},
		{"Bob", "Charon"},
	}
	for i, w := range want {
		entry := configs[i].(map[string]any)
		if entry["speaker"] != w.speaker {
			t.Errorf("config %d speaker = %v, want %s", i, entry["speaker"], w.speaker)
		}
		voice := dig(t, entry, "voiceConfig", "prebuiltVoiceConfig", "voiceName")
		if voice != w.voice {
			t.Errorf("config %d voice = %v, want %s", i, voice, w.voice)
		}
	}
	speech := dig(t, body, "generationConfig", "speechConfig").(map[string]any)
	if _, ok := speech["voiceConfig"]; ok {
		t.Error("multi-speaker payload must not carry voiceConfig")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.SpeechRequest)
		wantErr error
	}{
		{"valid single", func(r *domain.SpeechRequest) {}, nil},
		{"valid multi", func(r *domain.SpeechRequest) {
			r.Voice = ""
			r.Speakers = []domain.SpeakerVoice{{Speaker: "A", Voice: "Puck"}, {Speaker: "B", Voice: "Kore"}}
		}, nil},
		{"short key", func(r *domain.SpeechRequest) { r.ApiKey = "AIzaShort" }, domain.ErrInvalidApiKey},
		{"wrong prefix", func(r *domain.SpeechRequest) { r.ApiKey = "sk-00000000000000000000000" }, domain.ErrInvalidApiKey},
		{"empty key", func(r *domain.SpeechRequest) { r.ApiKey = "" }, domain.ErrInvalidApiKey},
		{"missing text", func(r *domain.SpeechRequest) { r.Text = "  \n " }, domain.ErrMissingText},
		{"over-length text", func(r *domain.SpeechRequest) { r.Text = strings.Repeat("a", 8001) }, domain.ErrTextTooLong},
		{"unknown model", func(r *domain.SpeechRequest) { r.Model = "gemini-1.0-tts" }, domain.ErrUnknownModel},
		{"unknown voice", func(r *domain.SpeechRequest) { r.Voice = "HAL9000" }, domain.ErrUnknownVoice},
		{"three speakers", func(r *domain.SpeechRequest) {
			r.Speakers = []domain.SpeakerVoice{
				{Speaker: "A", Voice: "Puck"}, {Speaker: "B", Voice: "Kore"}, {Speaker: "C", Voice: "Charon"},
			}
		}, domain.ErrTooManySpeakers},
		{"blank speaker name", func(r *domain.SpeechRequest) {
			r.Speakers = []domain.SpeakerVoice{{Speaker: " ", Voice: "Puck"}}
		}, domain.ErrMissingSpeaker},
		{"unknown speaker voice", func(r *domain.SpeechRequest) {
			r.Speakers = []domain.SpeakerVoice{{Speaker: "A", Voice: "HAL9000"}}
		}, domain.ErrUnknownVoice},
	}

	u := newTestUsecase("http://unused")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := singleRequest()
			tt.mutate(req)
			err := u.validate(req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateAppliesDefaults(t *testing.T) {
	u := newTestUsecase("http://unused")
	u.config.Tts.ApiKey = testApiKey

	req := singleRequest()
	req.ApiKey = ""
	req.Model = ""
	if err := u.validate(req); err != nil {
		t.Fatalf("validate() = %v", err)
	}
	if req.ApiKey != testApiKey {
		t.Errorf("server-side key not applied, got %q", req.ApiKey)
	}
	if req.Model != "gemini-2.5-flash-preview-tts" {
		t.Errorf("default model not applied, got %q", req.Model)
	}
}

func TestSynthesizeStatusMapping(t *testing.T) {
	tests := []struct {
		status  int
		wantErr error
	}{
		{http.StatusUnauthorized, domain.ErrUnauthorized},
		{http.StatusForbidden, domain.ErrForbidden},
		{http.StatusTooManyRequests, domain.ErrRateLimited},
		{http.StatusInternalServerError, domain.ErrUpstream},
		{http.StatusServiceUnavailable, domain.ErrUpstream},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := newTestUsecase(srv.URL).Synthesize(context.Background(), singleRequest())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Synthesize() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSynthesizeBadRequestMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"code":400,"message":"Voice not supported for this model","status":"INVALID_ARGUMENT"}}`)
	}))
	defer srv.Close()

	_, err := newTestUsecase(srv.URL).Synthesize(context.Background(), singleRequest())
	if !errors.Is(err, domain.ErrBadRequest) {
		t.Fatalf("Synthesize() = %v, want ErrBadRequest", err)
	}
	if !strings.Contains(err.Error(), "Voice not supported for this model") {
		t.Errorf("upstream message not surfaced: %v", err)
	}
}

func TestSynthesizeNoAudio(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty object", `{}`},
		{"no candidates", `{"candidates":[]}`},
		{"text-only parts", `{"candidates":[{"content":{"parts":[{"text":"sorry"}]}}]}`},
		{"empty inline data", `{"candidates":[{"content":{"parts":[{"inlineData":{"mimeType":"audio/L16","data":""}}]}}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, tt.body)
			}))
			defer srv.Close()

			_, err := newTestUsecase(srv.URL).Synthesize(context.Background(), singleRequest())
			if !errors.Is(err, domain.ErrNoAudio) {
				t.Errorf("Synthesize() = %v, want ErrNoAudio", err)
			}
		})
	}
}

func TestSynthesizePCMRoundTrip(t *testing.T) {
	pcm := make([]byte, 256)
	for i := range pcm {
		pcm[i] = byte(i)
	}

	var gotPath, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		resp := domain.GenerateResponse{
			Candidates: []domain.Candidate{{Content: domain.Content{Parts: []domain.Part{{
				InlineData: &domain.InlineData{
					MimeType: "audio/L16;codec=pcm;rate=24000",
					Data:     base64.StdEncoding.EncodeToString(pcm),
				},
			}}}}},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	result, err := newTestUsecase(srv.URL).Synthesize(context.Background(), singleRequest())
	if err != nil {
		t.Fatalf("Synthesize() = %v", err)
	}

	if gotPath != "/v1beta/models/gemini-2.5-flash-preview-tts:generateContent" {
		t.Errorf("unexpected request path %q", gotPath)
	}
	if gotKey != testApiKey {
		t.Errorf("key query parameter = %q, want %q", gotKey, testApiKey)
	}
	if result.MimeType != "audio/wav" {
		t.Errorf("MimeType = %q, want audio/wav", result.MimeType)
	}
	if !bytes.HasPrefix(result.Audio, []byte("RIFF")) {
		t.Error("PCM payload was not wrapped in a RIFF header")
	}
	if !bytes.Equal(result.Audio[44:], pcm) {
		t.Error("decoded samples do not round-trip through the parser")
	}
	if !strings.HasPrefix(result.Filename, "gemini_tts_single_") || !strings.HasSuffix(result.Filename, ".wav") {
		t.Errorf("unexpected filename %q", result.Filename)
	}
}

func TestSynthesizeContainerPassthrough(t *testing.T) {
	audio := []byte("OggS fake container bytes")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := domain.GenerateResponse{
			Candidates: []domain.Candidate{{Content: domain.Content{Parts: []domain.Part{{
				InlineData: &domain.InlineData{
					MimeType: "audio/ogg",
					Data:     base64.StdEncoding.EncodeToString(audio),
				},
			}}}}},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	req := singleRequest()
	req.Voice = ""
	req.Speakers = []domain.SpeakerVoice{{Speaker: "A", Voice: "Puck"}, {Speaker: "B", Voice: "Kore"}}
	result, err := newTestUsecase(srv.URL).Synthesize(context.Background(), req)
	if err != nil {
		t.Fatalf("Synthesize() = %v", err)
	}
	if result.MimeType != "audio/ogg" {
		t.Errorf("MimeType = %q, want audio/ogg", result.MimeType)
	}
	if !bytes.Equal(result.Audio, audio) {
		t.Error("container audio was modified")
	}
	if !strings.HasPrefix(result.Filename, "gemini_tts_multi_") {
		t.Errorf("unexpected filename %q", result.Filename)
	}
}

func TestSynthesizeTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer srv.Close()

	u := newTestUsecase(srv.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := u.Synthesize(ctx, singleRequest())
	if !errors.Is(err, domain.ErrTimeout) {
		t.Errorf("Synthesize() = %v, want ErrTimeout", err)
	}
}

func TestSynthesizeNetworkError(t *testing.T) {
	// Closed server: connection refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := newTestUsecase(srv.URL).Synthesize(context.Background(), singleRequest())
	if !errors.Is(err, domain.ErrNetwork) {
		t.Errorf("Synthesize() = %v, want ErrNetwork", err)
	}
}
