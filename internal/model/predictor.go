// Package model adapts a locally served vision model into a material vote.
//
// The adapter talks to an Ollama server over its chat API, sends the photo
// as an attached image with a constrained prompt, and parses the reply into
// a single material/confidence vote. The model is strictly advisory: any
// failure (server down, timeout, unparseable reply) surfaces as a declined
// vote or ErrModelUnavailable and the caller classifies without it.
package model

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/ollama/ollama/api"

	"github.com/plastiscan/plastiscan/internal/classify"
	"github.com/plastiscan/plastiscan/internal/material"
)

// ErrModelUnavailable is returned when the Ollama server cannot be reached
// or refuses the request.
var ErrModelUnavailable = errors.New("vision model unavailable")

const (
	// DefaultURL is the standard local Ollama endpoint.
	DefaultURL = "http://127.0.0.1:11434"

	// DefaultModel must be a vision-capable tag pulled into the server.
	DefaultModel = "llava:7b"

	// Vision inference on CPU is slow; this bounds a request only when the
	// caller's context carries no deadline of its own.
	defaultTimeout = 120 * time.Second
)

const classifyPrompt = `You are identifying the plastic material of the single most prominent object in the photo.
Answer with JSON only, no prose: {"material": "<LABEL>", "confidence": <0.0-1.0>}
LABEL must be exactly one of: PET, HDPE, PVC, LDPE, PP, PS, OTHER, NON_PLASTIC.
Use NON_PLASTIC when the object is not made of plastic at all.`

// Config holds the Ollama connection settings.
type Config struct {
	URL     string
	Model   string
	Timeout time.Duration
}

// OllamaPredictor votes on materials by querying an Ollama vision model.
// The API client is built lazily on first use so constructing a predictor
// never fails even when the URL is malformed; the error is reported on the
// first Predict instead.
type OllamaPredictor struct {
	cfg Config

	once    sync.Once
	client  *api.Client
	initErr error
}

var _ classify.Predictor = (*OllamaPredictor)(nil)

// NewOllamaPredictor builds a predictor from cfg, filling defaults for any
// unset field.
func NewOllamaPredictor(cfg Config) *OllamaPredictor {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &OllamaPredictor{cfg: cfg}
}

func (p *OllamaPredictor) init() {
	parsed, err := url.Parse(p.cfg.URL)
	if err != nil {
		p.initErr = fmt.Errorf("%w: invalid URL %q: %v", ErrModelUnavailable, p.cfg.URL, err)
		return
	}
	base := &url.URL{Scheme: parsed.Scheme, Host: parsed.Host}
	p.client = api.NewClient(base, http.DefaultClient)
}

// Predict sends the image to the vision model and parses its reply into a
// vote. A nil signal with a nil error means the model answered but its
// reply could not be read as a usable vote.
func (p *OllamaPredictor) Predict(ctx context.Context, img image.Image) (*classify.Signal, error) {
	p.once.Do(p.init)
	if p.initErr != nil {
		return nil, p.initErr
	}
	if img == nil {
		return nil, nil
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.Timeout)
		defer cancel()
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding image for model: %w", err)
	}

	stream := false
	req := &api.ChatRequest{
		Model: p.cfg.Model,
		Messages: []api.Message{{
			Role:    "user",
			Content: classifyPrompt,
			Images:  []api.ImageData{api.ImageData(buf.Bytes())},
		}},
		Stream: &stream,
	}

	var reply string
	err := p.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		reply += resp.Message.Content
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	return parseVote(reply), nil
}

// modelVote is the JSON shape the prompt asks for.
type modelVote struct {
	Material   string  `json:"material"`
	Confidence float64 `json:"confidence"`
}

// parseVote turns a model reply into a vote, returning nil when the reply
// cannot be used. Vision models wrap JSON in fences and prose often enough
// that the raw reply is sanitized before unmarshaling.
func parseVote(reply string) *classify.Signal {
	raw := sanitizeJSON(reply)
	if !strings.HasPrefix(raw, "{") {
		return nil
	}

	var vote modelVote
	if err := json.Unmarshal([]byte(raw), &vote); err != nil {
		return nil
	}

	mat, ok := material.Parse(strings.ToUpper(strings.TrimSpace(vote.Material)))
	if !ok {
		return nil
	}
	if vote.Confidence <= 0 {
		return nil
	}
	if vote.Confidence > 1 {
		vote.Confidence = 1
	}
	return &classify.Signal{
		Material:   mat,
		Confidence: vote.Confidence,
		Source:     "vision model",
	}
}

var (
	reBlockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	reLineComment  = regexp.MustCompile(`(?m)//.*$`)
	reTrailing     = regexp.MustCompile(`,(\s*[}\]])`)
)

// sanitizeJSON strips code fences, comments, and trailing commas, then
// slices out the outermost object.
func sanitizeJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		if i := strings.Index(raw, "\n"); i >= 0 {
			raw = raw[i+1:]
		}
		if j := strings.LastIndex(raw, "```"); j >= 0 {
			raw = raw[:j]
		}
	}
	raw = strings.Trim(strings.TrimSpace(raw), "`")

	raw = reBlockComment.ReplaceAllString(raw, "")
	raw = reLineComment.ReplaceAllString(raw, "")
	raw = reTrailing.ReplaceAllString(raw, "$1")

	if start := strings.Index(raw, "{"); start >= 0 {
		if end := strings.LastIndex(raw, "}"); end > start {
			raw = raw[start : end+1]
		}
	}
	return strings.TrimSpace(raw)
}
