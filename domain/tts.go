package domain

import (
	"errors"
	"strings"
)

const (
	// MaxSpeakers is the upstream limit on multi-speaker synthesis.
	MaxSpeakers = 2

	apiKeyPrefix = "AIza"
	apiKeyMinLen = 21
)

// SpeakerVoice maps a named conversational speaker to a prebuilt voice.
type SpeakerVoice struct {
	Speaker string `json:"speaker"`
	Voice   string `json:"voice"`
}

// SpeechRequest is one user-triggered generation request. Single-speaker
// mode uses Voice; multi-speaker mode uses Speakers (in input order).
type SpeechRequest struct {
	ApiKey   string         `json:"api_key"`
	Model    string         `json:"model"`
	Text     string         `json:"text"`
	Voice    string         `json:"voice,omitempty"`
	Speakers []SpeakerVoice `json:"speakers,omitempty"`
}

func (r *SpeechRequest) MultiSpeaker() bool {
	return len(r.Speakers) > 0
}

// SpeechResult carries the decoded audio, ready for playback and download.
type SpeechResult struct {
	Audio    []byte
	MimeType string
	Filename string
}

// ValidApiKey is a superficial format check, not an auth check: real keys
// start with "AIza" and are well over 20 characters.
func ValidApiKey(key string) bool {
	return len(key) >= apiKeyMinLen && strings.HasPrefix(key, apiKeyPrefix)
}

// Local validation failures.
var (
	ErrInvalidApiKey   = errors.New("invalid API key format")
	ErrMissingText     = errors.New("no text to convert")
	ErrTextTooLong     = errors.New("text is too long")
	ErrUnknownModel    = errors.New("unknown model")
	ErrUnknownVoice    = errors.New("unknown voice")
	ErrTooManySpeakers = errors.New("at most two speakers are supported")
	ErrMissingSpeaker  = errors.New("speaker name is required")
)

// Remote failures. Every one is terminal for the request; the form
// resubmits, nothing is retried.
var (
	ErrBadRequest   = errors.New("bad request rejected by the speech API")
	ErrUnauthorized = errors.New("API key rejected")
	ErrForbidden    = errors.New("API access forbidden")
	ErrRateLimited  = errors.New("rate limit exceeded")
	ErrUpstream     = errors.New("unexpected speech API error")
	ErrTimeout      = errors.New("request timed out")
	ErrNetwork      = errors.New("network error")
	ErrNoAudio      = errors.New("no audio data in response")
)
