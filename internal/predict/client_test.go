package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"
)

// recordingDoer captures every request and answers with a canned response.
type recordingDoer struct {
	calls  []*http.Request
	bodies [][]byte
	status int
	body   string
	err    error
}

func (d *recordingDoer) Do(r *http.Request) (*http.Response, error) {
	b, _ := io.ReadAll(r.Body)
	d.calls = append(d.calls, r)
	d.bodies = append(d.bodies, b)
	if d.err != nil {
		return nil, d.err
	}
	return &http.Response{
		StatusCode: d.status,
		Status:     http.StatusText(d.status),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(d.body)),
		Request:    r,
	}, nil
}

// object asserts that a payload is a JSON object.
func object(t *testing.T, v any) map[string]any {
	t.Helper()
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("payload %T is not an object: %v", v, v)
	}
	return m
}

func newTestClient(d Doer) *Client {
	return New(Options{Endpoint: "http://inference.test/", Doer: d})
}

func TestPredictByFile_SendsMultipartFileField(t *testing.T) {
	d := &recordingDoer{status: http.StatusOK, body: `{"oil_spill": true, "confidence": 0.87}`}
	c := newTestClient(d)
	img := []byte{0x89, 'P', 'N', 'G', 0, 1, 2, 3, 4, 5}

	res := c.PredictByFile(context.Background(), img, "scene.png")

	if len(d.calls) != 1 {
		t.Fatalf("expected exactly one request, got %d", len(d.calls))
	}
	req := d.calls[0]
	if req.Method != http.MethodPost || req.URL.String() != "http://inference.test/predict" {
		t.Fatalf("unexpected request %s %s", req.Method, req.URL)
	}
	mt, params, err := mime.ParseMediaType(req.Header.Get("Content-Type"))
	if err != nil || mt != "multipart/form-data" {
		t.Fatalf("content-type=%q err=%v", req.Header.Get("Content-Type"), err)
	}
	mr := multipart.NewReader(bytes.NewReader(d.bodies[0]), params["boundary"])
	part, err := mr.NextPart()
	if err != nil {
		t.Fatalf("next part: %v", err)
	}
	if part.FormName() != "file" || part.FileName() != "scene.png" {
		t.Fatalf("part name=%q filename=%q", part.FormName(), part.FileName())
	}
	got, _ := io.ReadAll(part)
	if !bytes.Equal(got, img) {
		t.Fatalf("part bytes=%v want %v", got, img)
	}
	if _, err := mr.NextPart(); err != io.EOF {
		t.Fatalf("expected a single part, got err=%v", err)
	}

	if !res.OK {
		t.Fatalf("expected success, got %+v", res)
	}
	if p := object(t, res.Payload); p["oil_spill"] != true || p["confidence"] != 0.87 {
		t.Fatalf("payload=%v", res.Payload)
	}
}

func TestPredictByURL_SendsJSONBody(t *testing.T) {
	d := &recordingDoer{status: http.StatusOK, body: `{"label":"clean"}`}
	c := newTestClient(d)
	url := "https://example.com/sat.jpg?a=1&b=<2>"

	res := c.PredictByURL(context.Background(), url)

	if len(d.calls) != 1 {
		t.Fatalf("expected exactly one request, got %d", len(d.calls))
	}
	if ct := d.calls[0].Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content-type=%q", ct)
	}
	var body map[string]any
	if err := json.Unmarshal(d.bodies[0], &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(body) != 1 || body["url"] != url {
		t.Fatalf("body=%v", body)
	}
	if !res.OK || object(t, res.Payload)["label"] != "clean" {
		t.Fatalf("result=%+v", res)
	}
}

func TestPredict_StatusFailureEmbedsCodeAndBody(t *testing.T) {
	d := &recordingDoer{status: http.StatusInternalServerError, body: "internal error"}
	res := newTestClient(d).PredictByFile(context.Background(), []byte("0123456789"), "x.jpg")
	if res.OK {
		t.Fatalf("expected failure")
	}
	if res.Kind != KindStatus || res.StatusCode != 500 {
		t.Fatalf("kind=%q status=%d", res.Kind, res.StatusCode)
	}
	if !strings.Contains(res.Message, "500") || !strings.Contains(res.Message, "internal error") {
		t.Fatalf("message=%q", res.Message)
	}
	if !IsStatus(res.Err()) {
		t.Fatalf("expected status error, got %T", res.Err())
	}
	if object(t, res.Body())["error"] != res.Message {
		t.Fatalf("body=%v", res.Body())
	}
}

func TestPredict_TransportFailureNeverRaises(t *testing.T) {
	d := &recordingDoer{err: errors.New("dial tcp 127.0.0.1:8000: connect: connection refused")}
	res := newTestClient(d).PredictByURL(context.Background(), "https://example.com/a.png")
	if res.OK || res.Kind != KindTransport {
		t.Fatalf("result=%+v", res)
	}
	if !strings.Contains(res.Message, "connection refused") {
		t.Fatalf("message=%q", res.Message)
	}
	if !IsTransport(res.Err()) {
		t.Fatalf("expected transport error")
	}
}

func TestPredict_InvalidJSONOnSuccessIsFailure(t *testing.T) {
	d := &recordingDoer{status: http.StatusOK, body: "not json"}
	res := newTestClient(d).PredictByURL(context.Background(), "https://example.com/a.png")
	if res.OK || res.Kind != KindTransport {
		t.Fatalf("result=%+v", res)
	}
	if !strings.Contains(res.Message, "decode response") {
		t.Fatalf("message=%q", res.Message)
	}
}

func TestPredict_EmptyInputsSkipNetwork(t *testing.T) {
	d := &recordingDoer{status: http.StatusOK, body: `{}`}
	c := newTestClient(d)
	if res := c.PredictByFile(context.Background(), nil, "x.png"); res.OK || !strings.Contains(res.Message, "empty") {
		t.Fatalf("empty file result=%+v", res)
	}
	if res := c.PredictByURL(context.Background(), "   "); res.OK {
		t.Fatalf("blank url result=%+v", res)
	}
	if len(d.calls) != 0 {
		t.Fatalf("expected no requests, got %d", len(d.calls))
	}
}

func TestPredict_TimeoutIsTransportFailure(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer ts.Close()
	defer close(release)

	c := New(Options{Endpoint: ts.URL, Timeout: 50 * time.Millisecond})
	res := c.PredictByURL(context.Background(), "https://example.com/a.png")
	if res.OK || res.Kind != KindTransport {
		t.Fatalf("result=%+v", res)
	}
	if !strings.Contains(res.Message, "deadline exceeded") {
		t.Fatalf("message=%q", res.Message)
	}
}

func TestPredict_AgainstHTTPServer(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/predict" {
			http.NotFound(w, r)
			return
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer f.Close()
		b, _ := io.ReadAll(f)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"name": hdr.Filename, "size": len(b)})
	}))
	defer ts.Close()

	res := New(Options{Endpoint: ts.URL}).PredictByFile(context.Background(), []byte("0123456789"), "dummy.jpg")
	if !res.OK {
		t.Fatalf("result=%+v", res)
	}
	if p := object(t, res.Payload); p["name"] != "dummy.jpg" || p["size"] != float64(10) {
		t.Fatalf("payload=%v", res.Payload)
	}
}

func TestNew_Defaults(t *testing.T) {
	c := New(Options{Path: "infer"})
	if c.Endpoint() != DefaultEndpoint {
		t.Fatalf("endpoint=%q", c.Endpoint())
	}
	if c.URL() != DefaultEndpoint+"/infer" {
		t.Fatalf("url=%q", c.URL())
	}
	if c.timeout != DefaultTimeout {
		t.Fatalf("timeout=%s", c.timeout)
	}
}

func TestPredict_AnyJSONBodyIsSuccess(t *testing.T) {
	cases := []struct {
		body string
		want any
	}{
		{`[{"oil_spill":true}]`, []any{map[string]any{"oil_spill": true}}},
		{`true`, true},
		{`0.87`, 0.87},
		{`"oil"`, "oil"},
		{`null`, nil},
	}
	for _, tc := range cases {
		d := &recordingDoer{status: http.StatusOK, body: tc.body}
		res := newTestClient(d).PredictByURL(context.Background(), "https://example.com/a.jpg")
		if !res.OK {
			t.Fatalf("%s: expected success, got %+v", tc.body, res)
		}
		if !reflect.DeepEqual(res.Payload, tc.want) {
			t.Fatalf("%s: payload=%#v want %#v", tc.body, res.Payload, tc.want)
		}
	}
}

func TestPredict_StatusBodyTruncated(t *testing.T) {
	body := "upstream exploded: " + strings.Repeat("x", 10<<10)
	d := &recordingDoer{status: http.StatusInternalServerError, body: body}
	res := newTestClient(d).PredictByURL(context.Background(), "https://example.com/a.jpg")
	if res.OK || res.Kind != KindStatus {
		t.Fatalf("result=%+v", res)
	}
	if !strings.HasPrefix(res.Message, "500: upstream exploded: xxx") {
		t.Fatalf("message prefix=%q", res.Message[:40])
	}
	if len(res.Message) > len("500: ")+maxErrorBody {
		t.Fatalf("message not truncated: %d bytes", len(res.Message))
	}
	if len(res.Message) != len("500: ")+maxErrorBody {
		t.Fatalf("expected exactly %d body bytes, got %d", maxErrorBody, len(res.Message)-len("500: "))
	}
}

func TestPredict_OversizedSuccessBody(t *testing.T) {
	body := `["` + strings.Repeat("a", maxSuccessBody) + `"]`
	d := &recordingDoer{status: http.StatusOK, body: body}
	res := newTestClient(d).PredictByURL(context.Background(), "https://example.com/a.jpg")
	if res.OK || res.Kind != KindTransport {
		t.Fatalf("expected transport failure, got ok=%v kind=%q", res.OK, res.Kind)
	}
	if res.Message != "response exceeds 8 MiB" {
		t.Fatalf("message=%q", res.Message)
	}

	// A body exactly at the limit still decodes.
	at := `"` + strings.Repeat("a", maxSuccessBody-2) + `"`
	d = &recordingDoer{status: http.StatusOK, body: at}
	if res := newTestClient(d).PredictByURL(context.Background(), "https://example.com/a.jpg"); !res.OK {
		t.Fatalf("body at limit should succeed: %s", res.Message)
	}
}
