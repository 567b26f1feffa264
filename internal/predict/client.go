package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Defaults applied when corresponding Options fields are unset.
const (
	DefaultEndpoint = "http://127.0.0.1:8000"
	DefaultPath     = "/predict"
	DefaultTimeout  = 60 * time.Second

	maxErrorBody    = 4 << 10
	maxSuccessBody  = 8 << 20
	defaultFilename = "upload"
)

// Options configures a Client.
type Options struct {
	Endpoint string
	Path     string
	Timeout  time.Duration
	Doer     Doer
	Logger   *zerolog.Logger
}

// Client forwards images or image URLs to the inference service. It keeps no
// state between calls and issues exactly one request per call.
type Client struct {
	endpoint string
	path     string
	timeout  time.Duration
	doer     Doer
	log      zerolog.Logger
}

// New constructs a Client, applying defaults for unset options.
func New(opts Options) *Client {
	c := &Client{
		endpoint: strings.TrimRight(strings.TrimSpace(opts.Endpoint), "/"),
		path:     strings.TrimSpace(opts.Path),
		timeout:  opts.Timeout,
		doer:     opts.Doer,
		log:      zerolog.Nop(),
	}
	if c.endpoint == "" {
		c.endpoint = DefaultEndpoint
	}
	if c.path == "" {
		c.path = DefaultPath
	}
	if !strings.HasPrefix(c.path, "/") {
		c.path = "/" + c.path
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.doer == nil {
		c.doer = NewHTTPClient(0)
	}
	if opts.Logger != nil {
		c.log = opts.Logger.With().Str("component", "predict").Logger()
	}
	return c
}

// Endpoint returns the configured base address.
func (c *Client) Endpoint() string { return c.endpoint }

// URL returns the full prediction URL.
func (c *Client) URL() string { return c.endpoint + c.path }

// PredictByFile posts data as multipart field "file".
func (c *Client) PredictByFile(ctx context.Context, data []byte, filename string) Result {
	return c.Predict(ctx, FileRequest(data, filename))
}

// PredictByURL posts {"url": url} as JSON.
func (c *Client) PredictByURL(ctx context.Context, url string) Result {
	return c.Predict(ctx, URLRequest(url))
}

// Predict sends req and normalizes every outcome into a Result. It never
// returns an error and never retries.
func (c *Client) Predict(ctx context.Context, req Request) Result {
	mode := req.Mode()
	start := time.Now()
	c.log.Debug().Str("mode", mode).Str("url", c.URL()).Msg("predict start")

	var res Result
	payload, err := c.do(ctx, req)
	if err != nil {
		res = Failure(err)
	} else {
		res = Success(payload)
	}

	dur := time.Since(start)
	requestsTotal.WithLabelValues(mode, outcome(res)).Inc()
	requestDuration.WithLabelValues(mode).Observe(dur.Seconds())
	ev := c.log.Info().Str("mode", mode).Dur("dur", dur).Bool("ok", res.OK)
	if !res.OK {
		ev = ev.Str("kind", string(res.Kind)).Str("error", res.Message)
		if res.StatusCode != 0 {
			ev = ev.Int("status", res.StatusCode)
		}
	}
	ev.Msg("predict end")
	return res
}

func (c *Client) do(ctx context.Context, req Request) (any, error) {
	if err := req.Validate(); err != nil {
		return nil, TransportError{Err: err}
	}
	body, contentType, err := encode(req)
	if err != nil {
		return nil, TransportError{Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL(), body)
	if err != nil {
		return nil, TransportError{Err: err}
	}
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.doer.Do(httpReq)
	if err != nil {
		return nil, TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxSuccessBody+1))
	if err != nil {
		return nil, TransportError{Err: fmt.Errorf("read response: %w", err)}
	}
	if len(b) > maxSuccessBody {
		return nil, TransportError{Err: fmt.Errorf("response exceeds %d MiB", maxSuccessBody>>20)}
	}
	var payload any
	if err := json.Unmarshal(b, &payload); err != nil {
		return nil, TransportError{Err: fmt.Errorf("decode response: %w", err)}
	}
	return payload, nil
}

// encode renders the wire body for either request variant.
func encode(req Request) (io.Reader, string, error) {
	if !req.IsFile() {
		b, err := json.Marshal(map[string]string{"url": req.URL})
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(b), "application/json", nil
	}
	name := strings.TrimSpace(req.Filename)
	if name == "" {
		name = defaultFilename
	}
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", name)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(req.Image); err != nil {
		return nil, "", err
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return &buf, mw.FormDataContentType(), nil
}
