package httpapi

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"petra/internal/content"
	"petra/internal/geo"
	"petra/internal/predict"
	"petra/internal/preview"
	"petra/pkg/types"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = template.Must(template.New("pages").Funcs(template.FuncMap{
	"fixed2": func(f float64) string { return strconv.FormatFloat(f, 'f', 2, 64) },
	// Thumbnails are data URIs produced by the preview package.
	"safeURL": func(s string) template.URL { return template.URL(s) },
}).ParseFS(templatesFS, "templates/*.html"))

const previewUnavailable = "Preview not available. The file will still be sent to the API."

type pointView struct {
	types.DemoPoint
	Color template.CSS
}

type resultView struct {
	OK   bool
	JSON string
}

type previewView struct {
	DataURI string
	Caption string
	Note    string
}

type dashboardView struct {
	Brand        string
	Tagline      string
	Headline     string
	Tabs         []content.Tab
	Active       string
	Overview     []content.Section
	OverviewHint string
	Evaluation   content.Evaluation
	Points       []pointView
	Coordinates  string
	View         types.ViewState
	MapboxToken  string
	Endpoint     string
	Result       *resultView
	Preview      *previewView
	URLInput     string
	InputError   string
}

type splashView struct {
	Brand    string
	Subtitle string
	Video    string
}

func (s *server) newDashboardView(tab string) dashboardView {
	pts := geo.DemoPoints()
	views := make([]pointView, 0, len(pts))
	for _, p := range pts {
		views = append(views, pointView{DemoPoint: p, Color: template.CSS(geo.CSSColor(p.Confidence))})
	}
	v := dashboardView{
		Brand:        content.Brand,
		Tagline:      content.Tagline,
		Headline:     content.Headline,
		Tabs:         content.Tabs,
		Active:       content.LookupTab(tab).ID,
		Overview:     content.Overview,
		OverviewHint: content.OverviewHint,
		Evaluation:   content.ModelEvaluation(),
		Points:       views,
		Coordinates:  geo.FormatCoordinates(pts),
		View:         geo.DefaultView,
		MapboxToken:  s.MapboxToken,
	}
	if s.Predictor != nil {
		v.Endpoint = s.Predictor.Endpoint()
	}
	return v
}

func (s *server) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	var buf bytes.Buffer
	if err := s.pages.ExecuteTemplate(&buf, name, data); err != nil {
		l := reqLogger(r)
		l.Error().Err(err).Str("template", name).Msg("render failed")
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// handleSplash shows the intro once per session, then forwards to the dashboard.
func (s *server) handleSplash(w http.ResponseWriter, r *http.Request) {
	id, err := s.Sessions.ID(w, r)
	if err != nil {
		writeErr(w, err)
		return
	}
	if s.Sessions.IntroShown(id) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	s.render(w, r, "splash", splashView{Brand: content.Brand, Subtitle: content.Subtitle, Video: "/assets/" + content.SplashVideo})
}

// handleIntro marks the splash as seen.
func (s *server) handleIntro(w http.ResponseWriter, r *http.Request) {
	id, err := s.Sessions.ID(w, r)
	if err != nil {
		writeErr(w, err)
		return
	}
	if !s.Sessions.IntroShown(id) {
		s.Sessions.MarkIntroShown(id)
		introCompletedTotal.Inc()
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "dashboard", s.newDashboardView(r.URL.Query().Get("tab")))
}

func (s *server) handleDashboardPredictFile(w http.ResponseWriter, r *http.Request) {
	v := s.newDashboardView("test")
	data, name, err := readUpload(w, r)
	if err != nil {
		v.InputError = err.Error()
		s.render(w, r, "dashboard", v)
		return
	}
	pv := &previewView{Caption: name}
	if th, err := preview.Thumbnail(data, preview.DefaultMaxSide); err == nil {
		pv.DataURI = th.DataURI()
	} else {
		pv.Note = previewUnavailable
	}
	v.Preview = pv
	v.Result = newResultView(s.forward(r, predict.FileRequest(data, name)))
	s.render(w, r, "dashboard", v)
}

func (s *server) handleDashboardPredictURL(w http.ResponseWriter, r *http.Request) {
	v := s.newDashboardView("test")
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseForm(); err != nil {
		v.InputError = "invalid form"
		s.render(w, r, "dashboard", v)
		return
	}
	v.URLInput = strings.TrimSpace(r.PostForm.Get("url"))
	if v.URLInput == "" {
		v.InputError = "Enter a public image URL"
		s.render(w, r, "dashboard", v)
		return
	}
	v.Result = newResultView(s.forward(r, predict.URLRequest(v.URLInput)))
	s.render(w, r, "dashboard", v)
}

func newResultView(res predict.Result) *resultView {
	b, err := json.MarshalIndent(res.Body(), "", "  ")
	if err != nil {
		b = []byte(`{"error": "unprintable response"}`)
	}
	return &resultView{OK: res.OK, JSON: string(b)}
}
