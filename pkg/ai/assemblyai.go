package ai

import (
	"bytes"
	"context"
	"fmt"
	"os"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/johnquangdev/meetscribe/pkg/config"
)

// AssemblyAIClient transcribes raw audio bytes through the official SDK.
// The SDK uploads the payload and blocks until the transcript completes,
// so a single call maps to the gateway's synchronous transcribe contract.
type AssemblyAIClient struct {
	client *aai.Client
}

// NewAssemblyAIClient creates an AssemblyAI client using the provided config.
// If cfg is nil, falls back to environment variables.
func NewAssemblyAIClient(cfg *config.AssemblyAIConfig) *AssemblyAIClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("ASSEMBLYAI_API_KEY")
	}
	return &AssemblyAIClient{
		client: aai.NewClient(apiKey),
	}
}

// Transcribe uploads the audio bytes and waits for the completed transcript.
// mimeType is informational only; AssemblyAI sniffs the container itself.
func (c *AssemblyAIClient) Transcribe(ctx context.Context, mimeType string, audio []byte) (string, error) {
	if len(audio) == 0 {
		return "", fmt.Errorf("empty audio payload")
	}

	uploadURL, err := c.client.Upload(ctx, bytes.NewReader(audio))
	if err != nil {
		return "", fmt.Errorf("upload audio: %w", err)
	}

	transcript, err := c.client.Transcripts.TranscribeFromURL(ctx, uploadURL, nil)
	if err != nil {
		return "", fmt.Errorf("transcribe: %w", err)
	}

	if transcript.Status == "error" {
		reason := "unknown"
		if transcript.Error != nil {
			reason = *transcript.Error
		}
		return "", fmt.Errorf("transcription failed: %s", reason)
	}
	if transcript.Text == nil || *transcript.Text == "" {
		return "", fmt.Errorf("empty transcription")
	}
	return *transcript.Text, nil
}
