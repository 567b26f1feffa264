package httpapi

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"petra/internal/predict"
	"petra/internal/session"
)

type fakePredictor struct {
	mu    sync.Mutex
	calls []predict.Request
	res   predict.Result
}

func (f *fakePredictor) Predict(ctx context.Context, req predict.Request) predict.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, req)
	return f.res
}

func (f *fakePredictor) Endpoint() string { return "http://inference.test" }

func (f *fakePredictor) Calls() []predict.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]predict.Request(nil), f.calls...)
}

func newTestMux(t *testing.T, res predict.Result) (http.Handler, *fakePredictor) {
	t.Helper()
	store, err := session.NewStore(session.Options{Size: 16})
	if err != nil {
		t.Fatalf("session store: %v", err)
	}
	fp := &fakePredictor{res: res}
	return NewMux(Deps{Predictor: fp, Sessions: store, AssetsDir: t.TempDir()}), fp
}

// multipartBody builds a form with a single "file" part.
func multipartBody(t *testing.T, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	_, _ = part.Write(data)
	if err := mw.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}
