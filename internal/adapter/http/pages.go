package adapthttp

import (
	"net/http"
	"os"
	"path"
)

// pagesFromDisk serves storefront pages from the web directory. The page
// middleware has already stripped any locale prefix; the negotiated locale
// is surfaced in the Content-Language header for the rendered markup.
func pagesFromDisk(dir string) http.Handler {
	fileServer := http.FileServer(http.Dir(dir))
	indexPath := path.Join(dir, "index.html")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Language", localeFromContext(r.Context()).String())

		reqPath := path.Clean(r.URL.Path)
		if reqPath == "/" {
			http.ServeFile(w, r, indexPath)
			return
		}

		// Pages are stored as {path}.html; static files pass through as-is.
		if pagePath := path.Join(dir, reqPath+".html"); fileExists(pagePath) {
			http.ServeFile(w, r, pagePath)
			return
		}
		if fileExists(path.Join(dir, reqPath)) {
			fileServer.ServeHTTP(w, r)
			return
		}

		http.ServeFile(w, r, indexPath)
	})
}

func fileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
