package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"petra/internal/httpapi"
	"petra/internal/predict"
	"petra/internal/session"
)

// upstreamCall is what the fake inference service observed.
type upstreamCall struct {
	ContentType string
	Filename    string
	File        []byte
	URL         string
}

// fakeInference stands in for the remote /predict service.
type fakeInference struct {
	mu     sync.Mutex
	calls  []upstreamCall
	status int
	body   string
}

func (f *fakeInference) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || r.URL.Path != "/predict" {
		http.NotFound(w, r)
		return
	}
	var c upstreamCall
	c.ContentType = r.Header.Get("Content-Type")
	if file, hdr, err := r.FormFile("file"); err == nil {
		c.Filename = hdr.Filename
		c.File, _ = io.ReadAll(file)
		_ = file.Close()
	} else {
		var in struct {
			URL string `json:"url"`
		}
		_ = json.NewDecoder(r.Body).Decode(&in)
		c.URL = in.URL
	}
	f.mu.Lock()
	f.calls = append(f.calls, c)
	status, body := f.status, f.body
	f.mu.Unlock()

	if status == 0 {
		status = http.StatusOK
	}
	if body == "" {
		body = `{"label":"oil_spill","confidence":0.87}`
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func (f *fakeInference) Calls() []upstreamCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]upstreamCall(nil), f.calls...)
}

// newStack starts the dashboard wired to a real prediction client talking to
// endpoint.
func newStack(t *testing.T, endpoint string, timeout time.Duration) *httptest.Server {
	t.Helper()
	sessions, err := session.NewStore(session.Options{Size: 16})
	if err != nil {
		t.Fatalf("session store: %v", err)
	}
	client := predict.New(predict.Options{Endpoint: endpoint, Timeout: timeout})
	mux := httpapi.NewMux(httpapi.Deps{
		Predictor: client,
		Sessions:  sessions,
		AssetsDir: t.TempDir(),
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// browser is an HTTP client that keeps cookies across requests.
func browser(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return &http.Client{Jar: jar, Timeout: 10 * time.Second}
}

func do(t *testing.T, c *http.Client, method, url, contentType string, body io.Reader) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), method, url, body)
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := c.Do(req)
	if err != nil {
		t.Fatalf("do req: %v", err)
	}
	b, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, b
}

func multipartFile(t *testing.T, field, name string, data []byte) (string, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, name)
	if err != nil {
		t.Fatal(err)
	}
	_, _ = part.Write(data)
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	return mw.FormDataContentType(), &buf
}
