package genai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/tsawler/toccata/outline"
)

// Errors returned before any request is sent.
var (
	// ErrEmptyDocument indicates a zero-length document.
	ErrEmptyDocument = errors.New("empty document")

	// ErrDocumentTooLarge indicates a document above Config.MaxDocumentSize.
	ErrDocumentTooLarge = errors.New("document exceeds size limit")

	// ErrNotPDF indicates a document without the %PDF file signature.
	ErrNotPDF = errors.New("document is not a PDF")
)

// Producer produces a document outline from raw document bytes. It is the
// generative counterpart of the typographic pipeline: both yield the same
// *outline.Outline.
type Producer interface {
	Produce(ctx context.Context, data []byte) (*outline.Outline, error)
}

// Client asks a chat completions endpoint to extract a document outline.
// The document is base64-inlined into the prompt and the model is
// instructed to answer with outline JSON only.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

var _ Producer = (*Client)(nil)

// NewClient creates a client for the given configuration. URL and Token
// are required; zero limits are filled from DefaultConfig.
//
// Example:
//
//	client, err := genai.NewClient(genai.ConfigFromEnv())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := client.ProduceFile(ctx, "report.pdf")
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	defaults := DefaultConfig()
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaults.MaxTokens
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaults.Timeout
	}
	if cfg.MaxDocumentSize <= 0 {
		cfg.MaxDocumentSize = defaults.MaxDocumentSize
	}

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}, nil
}

// Produce sends the document to the model and returns the extracted
// outline. The document must carry the PDF file signature and fit within
// Config.MaxDocumentSize; the response must decode to valid outline JSON
// with H1-H6 levels and 1-based pages.
func (c *Client) Produce(ctx context.Context, data []byte) (*outline.Outline, error) {
	if len(data) == 0 {
		return nil, ErrEmptyDocument
	}
	if len(data) > c.cfg.MaxDocumentSize {
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", ErrDocumentTooLarge, len(data), c.cfg.MaxDocumentSize)
	}
	if !pdfMagic(data) {
		return nil, ErrNotPDF
	}

	reqBody := chatRequest{
		Messages: []chatMessage{
			{
				Role:    "system",
				Content: "You are a helpful assistant specialized in document structure analysis and outline extraction",
			},
			{
				Role:    "user",
				Content: buildPrompt(data),
			},
		},
		Model:          c.cfg.Model,
		MaxTokens:      c.cfg.MaxTokens,
		ResponseFormat: responseFormat{Type: "text"},
		Stream:         false,
		Temperature:    c.cfg.Temperature,
		TopP:           1,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.cfg.Token))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			Body:       string(body),
		}
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("empty response from model")
	}

	content := strings.TrimSpace(chatResp.Choices[0].Message.Content)

	var result outline.Outline
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("model returned invalid JSON: %w", err)
	}
	if err := validateOutline(&result); err != nil {
		return nil, fmt.Errorf("model returned invalid outline: %w", err)
	}

	return &result, nil
}

// ProduceFile reads the document at path and calls Produce.
func (c *Client) ProduceFile(ctx context.Context, path string) (*outline.Outline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return c.Produce(ctx, data)
}

// buildPrompt describes the extraction task and inlines the document.
func buildPrompt(data []byte) string {
	encoded := base64.StdEncoding.EncodeToString(data)
	return fmt.Sprintf(
		"The document below is a base64-encoded PDF. Extract its title and heading outline: \n- title: the document title as a string, empty string if the document has none.\n- outline: every heading in reading order, each an object with keys 'level' (one of H1, H2, H3, H4, H5, H6), 'text' (the heading text) and 'page' (1-based page number where the heading appears). Exclude body text, running headers, footers and page numbers.\nReturn ONLY a json string without any explanations, additional text, text formatting or text/code blocks, with keys: title, outline.\n\nDocument: %s",
		encoded,
	)
}

// pdfMagic reports whether data begins with the %PDF file signature.
func pdfMagic(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	return data[0] == '%' && data[1] == 'P' && data[2] == 'D' && data[3] == 'F'
}

// validateOutline checks that every entry decoded from the model carries
// a valid level, text and page.
func validateOutline(o *outline.Outline) error {
	for i, h := range o.Headings {
		if h.Level < outline.HeadingLevel1 || h.Level > outline.HeadingLevel6 {
			return fmt.Errorf("entry %d: invalid heading level %d", i, int(h.Level))
		}
		if strings.TrimSpace(h.Text) == "" {
			return fmt.Errorf("entry %d: empty heading text", i)
		}
		if h.Page < 1 {
			return fmt.Errorf("entry %d: invalid page %d", i, h.Page)
		}
	}
	return nil
}
