package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"petra/internal/content"
	"petra/internal/geo"
	"petra/internal/predict"
	"petra/internal/preview"
	"petra/pkg/types"
)

// allowedImageExts mirrors the upload widget of the dashboard.
var allowedImageExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}

// handlePoints godoc
// @Summary      Demo detection points
// @Description  Hardcoded markers and the initial map camera.
// @Tags         map
// @Produce      json
// @Success      200 {object} types.PointsResponse
// @Router       /api/points [get]
func (s *server) handlePoints(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.PointsResponse{Points: geo.DemoPoints(), View: geo.DefaultView})
}

// handlePointsGeoJSON godoc
// @Summary      Demo detection points as GeoJSON
// @Tags         map
// @Produce      json
// @Success      200 {object} geo.FeatureCollection
// @Router       /api/points.geojson [get]
func (s *server) handlePointsGeoJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/geo+json")
	_ = json.NewEncoder(w).Encode(geo.ToFeatureCollection(geo.DemoPoints()))
}

// handleEvaluation godoc
// @Summary      Model evaluation summary
// @Tags         content
// @Produce      json
// @Success      200 {object} content.Evaluation
// @Router       /api/evaluation [get]
func (s *server) handleEvaluation(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, content.ModelEvaluation())
}

// handlePredict godoc
// @Summary      Forward an image to the inference service
// @Description  Accepts either multipart/form-data with field "file" or a JSON body {"url": "..."}.
// @Description  Exactly one request is sent to the inference service; failures are not retried.
// @Tags         predict
// @Accept       mpfd,json
// @Produce      json
// @Param        file formData file false "Satellite image (JPG/PNG)"
// @Param        body body types.PredictURLRequest false "Image URL"
// @Success      200 {object} types.PredictResponse
// @Failure      400 {object} types.ErrorResponse
// @Failure      415 {object} types.ErrorResponse
// @Failure      502 {object} types.PredictResponse
// @Failure      504 {object} types.PredictResponse
// @Router       /api/predict [post]
func (s *server) handlePredict(w http.ResponseWriter, r *http.Request) {
	req, err := decodePredictRequest(w, r)
	if err != nil {
		writeErr(w, err)
		return
	}
	res := s.forward(r, req)
	writeJSON(w, statusFor(res), toResponse(res, s.Predictor.Endpoint()))
}

// handlePreview godoc
// @Summary      Render a PNG thumbnail of an uploaded image
// @Tags         predict
// @Accept       mpfd
// @Produce      png
// @Param        file formData file true "Image"
// @Success      200 {file} binary
// @Failure      400 {object} types.ErrorResponse
// @Failure      415 {object} types.ErrorResponse
// @Router       /api/preview [post]
func (s *server) handlePreview(w http.ResponseWriter, r *http.Request) {
	data, _, err := readUpload(w, r)
	if err != nil {
		writeErr(w, err)
		return
	}
	th, err := preview.Thumbnail(data, preview.DefaultMaxSide)
	if err != nil {
		writeJSONError(w, http.StatusUnsupportedMediaType, err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(th.PNG)
}

// forward sends req with a context canceled by either the client or shutdown.
func (s *server) forward(r *http.Request, req predict.Request) predict.Result {
	ctx, cancel := joinContexts(serverBaseCtx, r.Context())
	defer cancel()

	lvl := requestLogLevel(r)
	l := reqLogger(r)
	if lvl >= LevelDebug {
		ev := l.Debug().Str("mode", req.Mode())
		if req.IsFile() {
			ev = ev.Str("filename", req.Filename).Int("bytes", len(req.Image))
		} else {
			ev = ev.Str("image_url", req.URL)
		}
		ev.Msg("predict forward")
	}
	res := s.Predictor.Predict(ctx, req)
	switch {
	case !res.OK && lvl >= LevelError:
		l.Error().Str("mode", req.Mode()).Str("kind", string(res.Kind)).Str("error", res.Message).Msg("predict failed")
	case res.OK && lvl >= LevelInfo:
		l.Info().Str("mode", req.Mode()).Msg("predict ok")
	}
	return res
}

// decodePredictRequest accepts multipart ("file") or JSON ({"url"}).
func decodePredictRequest(w http.ResponseWriter, r *http.Request) (predict.Request, error) {
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mt {
	case "multipart/form-data":
		data, name, err := readUpload(w, r)
		if err != nil {
			return predict.Request{}, err
		}
		return predict.FileRequest(data, name), nil
	case "application/json":
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		var body types.PredictURLRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return predict.Request{}, badRequest("invalid JSON body")
		}
		req := predict.URLRequest(strings.TrimSpace(body.URL))
		if err := req.Validate(); err != nil {
			return predict.Request{}, badRequest("url is required")
		}
		return req, nil
	default:
		return predict.Request{}, requestError{code: http.StatusUnsupportedMediaType, msg: "Content-Type must be multipart/form-data or application/json"}
	}
}

// readUpload extracts the "file" part of a multipart form.
func readUpload(w http.ResponseWriter, r *http.Request) ([]byte, string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return nil, "", requestError{code: http.StatusRequestEntityTooLarge, msg: fmt.Sprintf("upload exceeds %d bytes", mbe.Limit)}
		}
		return nil, "", badRequest("invalid multipart form")
	}
	f, hdr, err := r.FormFile("file")
	if err != nil {
		return nil, "", badRequest(`missing multipart field "file"`)
	}
	defer f.Close()
	if !allowedImageExts[strings.ToLower(filepath.Ext(hdr.Filename))] {
		return nil, "", requestError{code: http.StatusUnsupportedMediaType, msg: "file must be a JPG or PNG image"}
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", badRequest("failed to read upload")
	}
	if len(data) == 0 {
		return nil, "", badRequest("uploaded file is empty")
	}
	return data, hdr.Filename, nil
}

func toResponse(res predict.Result, endpoint string) types.PredictResponse {
	out := types.PredictResponse{OK: res.OK, Endpoint: endpoint}
	if res.OK {
		out.Payload = res.Payload
		return out
	}
	out.Error = res.Message
	out.Kind = string(res.Kind)
	out.StatusCode = res.StatusCode
	return out
}
