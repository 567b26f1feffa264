package predict

import (
	"errors"
	"strings"
)

// Request is one prediction submission. Exactly one variant is set:
// image bytes with a filename, or an image URL.
type Request struct {
	Image    []byte
	Filename string
	URL      string
}

// FileRequest builds the file variant.
func FileRequest(data []byte, filename string) Request {
	if data == nil {
		data = []byte{}
	}
	return Request{Image: data, Filename: filename}
}

// URLRequest builds the URL variant.
func URLRequest(url string) Request {
	return Request{URL: url}
}

// IsFile reports whether r carries image bytes.
func (r Request) IsFile() bool { return r.Image != nil }

// Mode returns the metric/log label of the variant.
func (r Request) Mode() string {
	if r.IsFile() {
		return "file"
	}
	return "url"
}

// Validate enforces that exactly one non-empty variant is set.
func (r Request) Validate() error {
	hasFile := r.Image != nil
	hasURL := strings.TrimSpace(r.URL) != ""
	switch {
	case hasFile && hasURL:
		return errors.New("request carries both an image and a url")
	case hasFile && len(r.Image) == 0:
		return errors.New("image is empty")
	case hasFile:
		return nil
	case hasURL:
		return nil
	default:
		return errors.New("request carries neither an image nor a url")
	}
}
