package ollama

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/moonpath/tarotd/internal/ports"
)

// FallbackMessage is the single sentence emitted in place of an
// interpretation whenever the backend fails, regardless of the failure
// kind. End users never see backend error detail.
const FallbackMessage = "The cards suggest a moment of reflection. Consider how their symbols resonate with your current path."

// maxLineSize bounds a single NDJSON record from the backend.
const maxLineSize = 1 << 20

// Client implements ports.InterpretationStreamer via the Ollama
// /api/generate streaming API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
	logger     *slog.Logger
}

// NewClient builds a streaming client. The http.Client's Timeout is the
// hard ceiling for one whole interpretation call, headers through last
// byte; exceeding it is handled like any other transport failure.
func NewClient(httpClient *http.Client, baseURL, model string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		logger:     logger,
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	System string `json:"system"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// generateChunk is one NDJSON record of the streaming response.
type generateChunk struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
	Error    string `json:"error"`
}

// StreamInterpretation issues a single streaming generation request and
// pushes each decoded text fragment to emit in arrival order. All backend
// failures are absorbed: the consumer receives FallbackMessage exactly
// once and the method returns nil. No retries are attempted.
func (c *Client) StreamInterpretation(ctx context.Context, system, prompt string, emit ports.EmitFunc) error {
	body, err := json.Marshal(generateRequest{
		Model:  c.model,
		System: system,
		Prompt: prompt,
		Stream: true,
	})
	if err != nil {
		c.logger.ErrorContext(ctx, "marshal generate request", "error", err)
		return emit(FallbackMessage)
	}

	url := c.baseURL + "/api/generate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.logger.ErrorContext(ctx, "build generate request", "error", err)
		return emit(FallbackMessage)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "generate request failed", "error", err)
		return emit(FallbackMessage)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.ErrorContext(ctx, "generate request rejected",
			"status", resp.StatusCode, "body", string(detail))
		return emit(FallbackMessage)
	}

	sc := bufio.NewScanner(resp.Body)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}

		var chunk generateChunk
		if err := json.Unmarshal(line, &chunk); err != nil {
			c.logger.WarnContext(ctx, "skipping malformed stream chunk", "error", err)
			continue
		}

		if chunk.Error != "" {
			c.logger.ErrorContext(ctx, "error in generate stream", "error", chunk.Error)
			return emit(FallbackMessage)
		}

		if chunk.Response != "" {
			if err := emit(chunk.Response); err != nil {
				// Consumer is gone; releasing the connection is all
				// that is left to do.
				return err
			}
		}

		if chunk.Done {
			c.logger.DebugContext(ctx, "generate stream completed")
			return nil
		}
	}

	if err := sc.Err(); err != nil {
		c.logger.ErrorContext(ctx, "generate stream broken", "error", err)
		return emit(FallbackMessage)
	}

	// Transport closed cleanly without a done record; treat as normal end.
	return nil
}
