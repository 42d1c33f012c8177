package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mebelart/catalogbot/internal/config"
	"github.com/mebelart/catalogbot/internal/domain"
)

// NanoBananaService talks to the Nano Banana image generation API.
// The per-call timeout bounds a single HTTP round trip; the overall
// polling budget lives in GeneratorService.
type NanoBananaService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewNanoBananaService(apiKey, baseURL string, timeout time.Duration) *NanoBananaService {
	return &NanoBananaService{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type generationPayload struct {
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size"`
	ResponseFormat string `json:"response_format"`
	Image          string `json:"image,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type generationResponse struct {
	TaskID string `json:"task_id"`
	Data   []struct {
		URL string `json:"url"`
	} `json:"data"`
	Error *apiError `json:"error"`
}

type taskStatusResponse struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
	Result struct {
		URL string `json:"url"`
	} `json:"result"`
	Error *apiError `json:"error"`
}

// CreateTask submits a generation request. In the asynchronous mode the
// response carries a task identifier to poll; the legacy synchronous
// mode returns the result URL directly, in which case the returned task
// is already completed.
func (s *NanoBananaService) CreateTask(ctx context.Context, reqID string, req domain.GenerationRequest) (*domain.GenerationTask, error) {
	payload := generationPayload{
		Prompt:         req.Prompt,
		N:              config.ImageCount,
		Size:           config.ImageSize,
		ResponseFormat: config.ResponseFormat,
	}
	if len(req.Image) > 0 {
		payload.Image = "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(req.Image)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+"/images/generations", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	s.setHeaders(httpReq, reqID)

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("submit generation: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("generation API status %d: %s", resp.StatusCode, truncateBody(respBody))
	}

	var genResp generationResponse
	if err := json.Unmarshal(respBody, &genResp); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	if genResp.Error != nil {
		return nil, fmt.Errorf("generation API error: %s", genResp.Error.Message)
	}

	// Legacy synchronous mode: result arrives with the acknowledgment.
	if len(genResp.Data) > 0 {
		return &domain.GenerationTask{
			Status:    domain.TaskCompleted,
			ResultURL: genResp.Data[0].URL,
		}, nil
	}

	if genResp.TaskID == "" {
		return nil, fmt.Errorf("generation API returned neither task_id nor result")
	}

	return &domain.GenerationTask{
		ID:     genResp.TaskID,
		Status: domain.TaskPending,
	}, nil
}

// QueryTask fetches the current status of a submitted task.
func (s *NanoBananaService) QueryTask(ctx context.Context, reqID, taskID string) (*domain.GenerationTask, error) {
	httpReq, err := http.NewRequestWithContext(ctx, "GET", s.baseURL+"/tasks/"+taskID, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	s.setHeaders(httpReq, reqID)

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("query task: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("task API status %d: %s", resp.StatusCode, truncateBody(respBody))
	}

	var statusResp taskStatusResponse
	if err := json.Unmarshal(respBody, &statusResp); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	task := &domain.GenerationTask{
		ID:        taskID,
		Status:    domain.TaskStatus(statusResp.Status),
		ResultURL: statusResp.Result.URL,
	}
	if statusResp.Error != nil {
		task.Detail = statusResp.Error.Message
	}

	switch task.Status {
	case domain.TaskPending, domain.TaskProcessing, domain.TaskCompleted, domain.TaskFailed:
	default:
		return nil, fmt.Errorf("task API returned unknown status %q", statusResp.Status)
	}

	return task, nil
}

func (s *NanoBananaService) setHeaders(req *http.Request, reqID string) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	if reqID != "" {
		req.Header.Set("X-Request-ID", reqID)
	}
}

func truncateBody(body []byte) string {
	const max = 256
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
