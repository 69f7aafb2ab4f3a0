package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// PreviewController serves the standalone preview app and forwards its API
// calls to the backend.
type PreviewController struct {
	dir   string
	proxy *httputil.ReverseProxy
}

func NewPreviewController(apiURL, dir string) (*PreviewController, error) {
	target, err := url.Parse(apiURL)
	if err != nil || target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("invalid backend URL %q", apiURL)
	}

	proxy := &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			r.SetURL(target)
			r.Out.Host = target.Host
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			log.WithError(err).WithField("path", r.URL.Path).Warn("Backend API unavailable")
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusBadGateway)
			_ = json.NewEncoder(w).Encode(gin.H{"error": "Python API unavailable"})
		},
	}
	return &PreviewController{dir: dir, proxy: proxy}, nil
}

// Index serves preview.html.
func (pc *PreviewController) Index(c *gin.Context) {
	c.File(filepath.Join(pc.dir, "preview.html"))
}

// Dir is the directory served under /preview.
func (pc *PreviewController) Dir() string {
	return pc.dir
}

// Proxy forwards /api/* to the backend unchanged.
func (pc *PreviewController) Proxy(c *gin.Context) {
	pc.proxy.ServeHTTP(c.Writer, c.Request)
}
