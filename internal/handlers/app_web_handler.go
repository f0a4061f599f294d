package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Hyken1/OdontoClinic/internal/httperr"
)

// AppWebHandler serves the front-office site that sits next to the API.
type AppWebHandler struct {
	staticDir string
}

func NewAppWebHandler(staticDir string) *AppWebHandler {
	return &AppWebHandler{staticDir: staticDir}
}

// CatchAll serves an existing static file, otherwise the site entry page.
func (h *AppWebHandler) CatchAll(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		httperr.NotFound(c, "Rota não encontrada.")
		return
	}

	if path, ok := h.staticFile(c.Request.URL.Path); ok {
		c.File(path)
		return
	}

	index := filepath.Join(h.staticDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		httperr.NotFound(c, "Página não encontrada.")
		return
	}
	c.File(index)
}

func (h *AppWebHandler) staticFile(urlPath string) (string, bool) {
	rel := filepath.Clean("/" + urlPath)
	if rel == "/" || isPrivate(rel) {
		return "", false
	}

	path := filepath.Join(h.staticDir, rel)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	return path, true
}

// isPrivate hides dotfiles and the service account credentials, which live
// in the same directory as the site when running locally.
func isPrivate(rel string) bool {
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	base := filepath.Base(rel)
	return base == "credenciais.json" || strings.HasSuffix(base, ".go")
}
