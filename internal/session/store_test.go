package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIntroFlagLifecycle(t *testing.T) {
	s, err := NewStore(Options{})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	id, _ := NewID()
	if s.IntroShown(id) {
		t.Fatalf("fresh session must not have seen the intro")
	}
	s.MarkIntroShown(id)
	s.MarkIntroShown(id)
	if !s.IntroShown(id) || s.Len() != 1 {
		t.Fatalf("flag not set once: shown=%v len=%d", s.IntroShown(id), s.Len())
	}
	s.MarkIntroShown("")
	if s.IntroShown("") || s.Len() != 1 {
		t.Fatalf("empty id must be ignored")
	}
}

func TestStoreEvictsOldestSession(t *testing.T) {
	s, _ := NewStore(Options{Size: 2})
	s.MarkIntroShown("a")
	s.MarkIntroShown("b")
	s.MarkIntroShown("c")
	if s.IntroShown("a") {
		t.Fatalf("oldest session should have been evicted")
	}
	if !s.IntroShown("b") || !s.IntroShown("c") {
		t.Fatalf("recent sessions lost")
	}
}

func TestIDIssuesAndReusesCookie(t *testing.T) {
	s, _ := NewStore(Options{})
	w := httptest.NewRecorder()
	id, err := s.ID(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil || len(id) != 32 {
		t.Fatalf("id=%q err=%v", id, err)
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != CookieName || !cookies[0].HttpOnly {
		t.Fatalf("cookies=%+v", cookies)
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(cookies[0])
	w2 := httptest.NewRecorder()
	again, _ := s.ID(w2, r)
	if again != id {
		t.Fatalf("expected cookie reuse, got %q want %q", again, id)
	}
	if len(w2.Result().Cookies()) != 0 {
		t.Fatalf("existing session must not be reissued")
	}
}

func TestIDRejectsForgedCookie(t *testing.T) {
	s, _ := NewStore(Options{})
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "not-hex"})
	id, _ := s.ID(httptest.NewRecorder(), r)
	if id == "not-hex" || len(id) != 32 {
		t.Fatalf("forged cookie accepted: %q", id)
	}
}
