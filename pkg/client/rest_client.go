// Package client binds the builder's persistence protocol to the survey
// REST API over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"surveyforge/internal/builder"
)

// ServerError is a non-2xx reply that carried a readable message body.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Client talks to the survey backend. It satisfies builder.SurveyAPI and
// builder.QuestionAPI, so a builder.Saver can run directly against it.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// CreateSurvey runs phase 1 of the save protocol. The decoded payload is
// returned as-is; the saver extracts the id from whichever field the backend
// used.
func (c *Client) CreateSurvey(ctx context.Context, req builder.SurveyCreateRequest) (map[string]any, error) {
	body, err := c.post(ctx, "/surveys", req)
	if err != nil {
		return nil, err
	}
	return decodePayload(body)
}

// CreateQuestion runs one phase-2 create.
func (c *Client) CreateQuestion(ctx context.Context, req builder.QuestionCreateRequest) error {
	_, err := c.post(ctx, "/questions", req)
	return err
}

// QuestionRecord is one persisted question as the backend reports it.
type QuestionRecord struct {
	ID            string   `json:"id"`
	SurveysID     string   `json:"surveysId"`
	QuestionsText string   `json:"questionsText"`
	QuestionType  string   `json:"questionType"`
	Required      bool     `json:"required"`
	Choices       []string `json:"choices"`
}

// FetchQuestions lists a survey's questions, used when hydrating an
// existing survey into a draft for editing.
func (c *Client) FetchQuestions(ctx context.Context, surveyID string) ([]QuestionRecord, error) {
	body, err := c.get(ctx, "/questions?surveyId="+url.QueryEscape(surveyID))
	if err != nil {
		return nil, err
	}

	var records []QuestionRecord
	if err := decodeInto(body, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// FetchDraft hydrates a persisted survey back into an editable draft:
// metadata from the survey resource, questions in stored order. The hydrated
// questions get fresh local ids; the durable ids stay behind.
func (c *Client) FetchDraft(ctx context.Context, surveyID string) (*builder.Draft, error) {
	body, err := c.get(ctx, "/surveys/"+url.PathEscape(surveyID))
	if err != nil {
		return nil, err
	}

	var meta struct {
		Title           string           `json:"title"`
		Description     string           `json:"description"`
		Category        string           `json:"category"`
		Tags            []string         `json:"tags"`
		IsActive        bool             `json:"isActive"`
		BackgroundImage string           `json:"backgroundImage"`
		Settings        builder.Settings `json:"settings"`
	}
	if err := decodeInto(body, &meta); err != nil {
		return nil, err
	}

	records, err := c.FetchQuestions(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	d := builder.NewDraft()
	d.Title = meta.Title
	d.Description = meta.Description
	d.Category = meta.Category
	d.Tags = meta.Tags
	d.BackgroundImage = meta.BackgroundImage
	d.Settings = meta.Settings
	if meta.IsActive {
		d.Status = builder.StatusActive
	}

	for _, rec := range records {
		q := d.AddQuestion(builder.QuestionType(rec.QuestionType))
		title := rec.QuestionsText
		required := rec.Required
		choices := rec.Choices
		if err := d.UpdateQuestion(q.LocalID, builder.QuestionPatch{
			Title:    &title,
			Required: &required,
			Options:  &choices,
		}); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// GenerateQuestions asks the backend's AI endpoint for candidate questions.
// A failed request leaves the caller's draft and pool untouched.
func (c *Client) GenerateQuestions(ctx context.Context, reqBody any) ([]builder.Suggestion, error) {
	body, err := c.post(ctx, "/ai/generate-questions", reqBody)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Questions []builder.Suggestion `json:"questions"`
	}
	if err := decodeInto(body, &payload); err != nil {
		return nil, err
	}
	return payload.Questions, nil
}

// ConsumeGeneratedDraft fetches a parked AI-generated draft. The token is
// invalid after the first successful call.
func (c *Client) ConsumeGeneratedDraft(ctx context.Context, token string) (*builder.Draft, error) {
	body, err := c.get(ctx, "/ai/handoff/"+url.PathEscape(token))
	if err != nil {
		return nil, err
	}

	var draft builder.Draft
	if err := decodeInto(body, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ServerError{
			StatusCode: resp.StatusCode,
			Message:    extractMessage(body),
		}
	}
	return body, nil
}

// decodePayload returns the response object as a generic map, unwrapping the
// APIResponse envelope when present. Raw (un-enveloped) objects pass through
// so older backend shapes keep working.
func decodePayload(body []byte) (map[string]any, error) {
	var outer map[string]any
	if err := json.Unmarshal(body, &outer); err != nil {
		return nil, fmt.Errorf("unexpected response body: %w", err)
	}

	if data, ok := outer["data"].(map[string]any); ok {
		return data, nil
	}
	return outer, nil
}

// decodeInto decodes the response into dst, unwrapping the envelope when
// present.
func decodeInto(body []byte, dst any) error {
	var envelope struct {
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Status != "" && len(envelope.Data) > 0 {
		return json.Unmarshal(envelope.Data, dst)
	}
	return json.Unmarshal(body, dst)
}

func extractMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	const max = 200
	if len(body) > max {
		return string(body[:max])
	}
	return string(body)
}
