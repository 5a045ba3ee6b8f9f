// Package absa provides the client adapter to the external ATEPC model
// service. The model (a pretrained aspect-based sentiment transformer
// and its fine-tuning procedure) is consumed as a black box over HTTP.
package absa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/seclens-labs/seclens-cli/internal/core/domain"
	"github.com/seclens-labs/seclens-cli/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.AspectModel = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL    = "http://localhost:8500"
	DefaultCheckpoint = "english"
	DefaultTimeout    = 120 * time.Second

	// DefaultTrainTimeout covers a full fine-tuning run.
	DefaultTrainTimeout = 4 * time.Hour
)

// Config holds configuration for the ATEPC model service client.
type Config struct {
	// BaseURL is the model service base URL (default: http://localhost:8500).
	BaseURL string

	// Checkpoint is the checkpoint used for inference (default: english,
	// the pretrained multilingual baseline).
	Checkpoint string

	// Timeout is the per-request timeout for inference calls.
	Timeout time.Duration

	// TrainTimeout is the timeout for fine-tuning runs.
	TrainTimeout time.Duration
}

// Client talks to the ATEPC model service.
type Client struct {
	client      *http.Client
	trainClient *http.Client
	baseURL     string
	checkpoint  string
}

// predictRequest is the /v1/predict request format.
type predictRequest struct {
	Checkpoint string   `json:"checkpoint"`
	Texts      []string `json:"texts"`
}

// predictResponse is the /v1/predict response format.
type predictResponse struct {
	Results []predictionResult `json:"results"`
}

// predictionResult is one example's inference output.
type predictionResult struct {
	Text        string    `json:"text"`
	Aspects     []string  `json:"aspect"`
	Sentiments  []string  `json:"sentiment"`
	Confidences []float64 `json:"confidence"`
	Error       string    `json:"error,omitempty"`
}

// trainRequest is the /v1/train request format.
type trainRequest struct {
	DatasetDir string `json:"dataset_dir"`
	Checkpoint string `json:"checkpoint"`
}

// trainResponse is the /v1/train response format.
type trainResponse struct {
	Checkpoint string `json:"checkpoint"`
}

// checkpointsResponse is the /v1/checkpoints response format.
type checkpointsResponse struct {
	Checkpoints []string `json:"checkpoints"`
}

// New creates an ATEPC model service client.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Checkpoint == "" {
		cfg.Checkpoint = DefaultCheckpoint
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.TrainTimeout == 0 {
		cfg.TrainTimeout = DefaultTrainTimeout
	}

	return &Client{
		client:      &http.Client{Timeout: cfg.Timeout},
		trainClient: &http.Client{Timeout: cfg.TrainTimeout},
		baseURL:     cfg.BaseURL,
		checkpoint:  cfg.Checkpoint,
	}
}

// Checkpoint returns the checkpoint the client runs inference with.
func (c *Client) Checkpoint() string {
	return c.checkpoint
}

// Predict runs inference on a single text.
func (c *Client) Predict(ctx context.Context, text string) (domain.Prediction, error) {
	predictions, err := c.BatchPredict(ctx, []string{text})
	if err != nil {
		return domain.Prediction{}, err
	}
	if len(predictions) != 1 {
		return domain.Prediction{}, fmt.Errorf("model service returned %d results for 1 text", len(predictions))
	}
	return predictions[0], nil
}

// BatchPredict runs inference on a batch of texts. Per-example failures
// come back with the Error field set and do not fail the batch; only
// transport or protocol failures return an error.
func (c *Client) BatchPredict(ctx context.Context, texts []string) ([]domain.Prediction, error) {
	reqBody := predictRequest{
		Checkpoint: c.checkpoint,
		Texts:      texts,
	}

	var resp predictResponse
	if err := c.post(ctx, c.client, "/v1/predict", reqBody, &resp); err != nil {
		return nil, err
	}
	if len(resp.Results) != len(texts) {
		return nil, fmt.Errorf("model service returned %d results for %d texts", len(resp.Results), len(texts))
	}

	predictions := make([]domain.Prediction, len(resp.Results))
	for i, result := range resp.Results {
		predictions[i] = toPrediction(result)
	}
	return predictions, nil
}

// Train fine-tunes the model on the dataset directory and returns the
// new checkpoint name.
func (c *Client) Train(ctx context.Context, datasetDir string) (string, error) {
	reqBody := trainRequest{
		DatasetDir: datasetDir,
		Checkpoint: c.checkpoint,
	}

	var resp trainResponse
	if err := c.post(ctx, c.trainClient, "/v1/train", reqBody, &resp); err != nil {
		return "", err
	}
	if resp.Checkpoint == "" {
		return "", fmt.Errorf("training finished without a checkpoint: %w", domain.ErrNoCheckpoint)
	}
	return resp.Checkpoint, nil
}

// Checkpoints lists the checkpoints available on the model service,
// with the APC F1 score parsed from fine-tuned checkpoint names.
func (c *Client) Checkpoints(ctx context.Context) ([]driven.Checkpoint, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/checkpoints", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrModelUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, serviceError(resp)
	}

	var body checkpointsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	checkpoints := make([]driven.Checkpoint, len(body.Checkpoints))
	for i, name := range body.Checkpoints {
		checkpoints[i] = driven.Checkpoint{
			Name:  name,
			APCF1: ParseAPCF1(name),
		}
	}
	return checkpoints, nil
}

// Ping validates the model service is reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/checkpoints", http.NoBody)
	if err != nil {
		return fmt.Errorf("create ping request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrModelUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return serviceError(resp)
	}
	return nil
}

// post sends a JSON request and decodes the JSON response.
func (c *Client) post(ctx context.Context, client *http.Client, path string, in, out any) error {
	jsonBody, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrModelUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return serviceError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func serviceError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("model service error (status %d): failed to read response", resp.StatusCode)
	}
	return fmt.Errorf("model service error (status %d): %s", resp.StatusCode, string(body))
}

// toPrediction converts a wire result into the domain type.
func toPrediction(result predictionResult) domain.Prediction {
	p := domain.Prediction{
		Text:        result.Text,
		Aspects:     result.Aspects,
		Confidences: result.Confidences,
		Error:       result.Error,
	}
	p.Sentiments = make([]domain.Sentiment, len(result.Sentiments))
	for i, word := range result.Sentiments {
		p.Sentiments[i] = parseSentiment(word)
	}
	return p
}

// parseSentiment maps the service's sentiment words to domain values.
func parseSentiment(word string) domain.Sentiment {
	switch word {
	case "Negative", "negative", "-1":
		return domain.SentimentNegative
	case "Positive", "positive", "1":
		return domain.SentimentPositive
	default:
		return domain.SentimentNeutral
	}
}

// apcF1Pattern matches the F1 score fine-tuned checkpoint names embed,
// e.g. "fast_lcf_atepc_custom_cybersecurity_apcf1_85.43".
var apcF1Pattern = regexp.MustCompile(`apcf1_([0-9]+(?:\.[0-9]+)?)`)

// ParseAPCF1 extracts the APC F1 score from a checkpoint name. Returns
// zero when the name carries no score.
func ParseAPCF1(name string) float64 {
	matches := apcF1Pattern.FindStringSubmatch(name)
	if len(matches) < 2 {
		return 0
	}
	score, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0
	}
	return score
}
