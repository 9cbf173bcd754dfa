package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"healthcare-assistant-client/config"
	"healthcare-assistant-client/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const apiPrefix = "/api/v1"

// transport owns the HTTP plumbing shared by every resource service: URL
// construction, request correlation ids, and the status/body decode rules
// from the backend contract. It never retries, caches, or deduplicates.
type transport struct {
	baseURL   string
	rootURL   string
	wsBaseURL string
	http      *http.Client
	log       *logrus.Logger
	validate  *validator.RequestValidator
}

func newTransport(cfg config.APIConfig, log *logrus.Logger) *transport {
	if log == nil {
		log = logrus.StandardLogger()
	}
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	return &transport{
		baseURL:   baseURL,
		rootURL:   strings.TrimSuffix(baseURL, apiPrefix),
		wsBaseURL: strings.TrimSuffix(cfg.WSBaseURL, "/"),
		http:      &http.Client{Timeout: cfg.Timeout},
		log:       log,
		validate:  validator.NewRequestValidator(),
	}
}

// endpoint builds a versioned API URL; query keys are only present when the
// caller set them, so omitted filters never reach the wire.
func (t *transport) endpoint(path string, query url.Values) string {
	u := t.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// rootEndpoint addresses the endpoints living outside /api/v1.
func (t *transport) rootEndpoint(path string) string {
	return t.rootURL + path
}

func (t *transport) do(ctx context.Context, method, rawURL string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	t.log.WithFields(logrus.Fields{
		"method":     method,
		"url":        rawURL,
		"request_id": requestID,
	}).Debug("api request")

	resp, err := t.http.Do(req)
	if err != nil {
		t.log.WithFields(logrus.Fields{
			"method":     method,
			"url":        rawURL,
			"request_id": requestID,
		}).Warnf("api request failed: %v", err)
		return nil, err
	}
	return resp, nil
}

// statusError normalizes a non-2xx response: the body message wins when one
// parses, an unparseable body falls back to the status text, and a parsed
// body without a message collapses into the generic failure.
func statusError(status int, raw []byte, readErr error) *APIError {
	apiErr := &APIError{Status: status, Message: http.StatusText(status)}
	if readErr == nil {
		var failure struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(raw, &failure); err == nil {
			if failure.Message != "" {
				apiErr.Message = failure.Message
			} else {
				apiErr.Message = "API request failed"
			}
		}
	}
	return apiErr
}

// decodeEnvelope applies the contract's error normalization: non-2xx rejects
// with an *APIError carrying the body message when one parses, else the
// status text; a 2xx body is returned verbatim as the envelope, falling back
// to a generic failure when it does not parse at all.
func decodeEnvelope[T any](resp *http.Response) (*Envelope[T], error) {
	defer resp.Body.Close()
	raw, readErr := io.ReadAll(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		return nil, statusError(resp.StatusCode, raw, readErr)
	}

	if readErr != nil {
		return nil, &APIError{Status: resp.StatusCode, Message: "API request failed"}
	}
	var env Envelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &APIError{Status: resp.StatusCode, Message: "API request failed"}
	}
	return &env, nil
}

// decodePlain is the decode path for the endpoints that are not enveloped
// (health and root info): the 2xx body unmarshals straight into T under the
// same error normalization as the enveloped path.
func decodePlain[T any](resp *http.Response) (*T, error) {
	defer resp.Body.Close()
	raw, readErr := io.ReadAll(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		return nil, statusError(resp.StatusCode, raw, readErr)
	}

	if readErr != nil {
		return nil, &APIError{Status: resp.StatusCode, Message: "API request failed"}
	}
	var body T
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, &APIError{Status: resp.StatusCode, Message: "API request failed"}
	}
	return &body, nil
}

func call[T any](ctx context.Context, t *transport, method, rawURL string, body io.Reader, contentType string) (*Envelope[T], error) {
	resp, err := t.do(ctx, method, rawURL, body, contentType)
	if err != nil {
		return nil, err
	}
	return decodeEnvelope[T](resp)
}

func get[T any](ctx context.Context, t *transport, rawURL string) (*Envelope[T], error) {
	return call[T](ctx, t, http.MethodGet, rawURL, nil, "")
}

func getPlain[T any](ctx context.Context, t *transport, rawURL string) (*T, error) {
	resp, err := t.do(ctx, http.MethodGet, rawURL, nil, "")
	if err != nil {
		return nil, err
	}
	return decodePlain[T](resp)
}

func postJSON[T any](ctx context.Context, t *transport, rawURL string, payload any) (*Envelope[T], error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return call[T](ctx, t, http.MethodPost, rawURL, bytes.NewReader(body), "application/json")
}

func putJSON[T any](ctx context.Context, t *transport, rawURL string, payload any) (*Envelope[T], error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return call[T](ctx, t, http.MethodPut, rawURL, bytes.NewReader(body), "application/json")
}

func putEmpty[T any](ctx context.Context, t *transport, rawURL string) (*Envelope[T], error) {
	return call[T](ctx, t, http.MethodPut, rawURL, nil, "")
}

func del[T any](ctx context.Context, t *transport, rawURL string) (*Envelope[T], error) {
	return call[T](ctx, t, http.MethodDelete, rawURL, nil, "")
}

// Upload names one file destined for a multipart request.
type Upload struct {
	Filename string
	Reader   io.Reader
}

// postMultipart sends every file under the repeated "files" form field, which
// is what the document upload endpoint expects.
func postMultipart[T any](ctx context.Context, t *transport, rawURL string, files []Upload) (*Envelope[T], error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, f := range files {
		part, err := writer.CreateFormFile("files", f.Filename)
		if err != nil {
			return nil, err
		}
		if _, err := io.Copy(part, f.Reader); err != nil {
			return nil, fmt.Errorf("reading upload %q: %w", f.Filename, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return call[T](ctx, t, http.MethodPost, rawURL, &buf, writer.FormDataContentType())
}
