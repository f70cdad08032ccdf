package http

import (
	stdhttp "net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// MountSwagger serves the embedded OpenAPI document and a swagger UI under /docs
func MountSwagger(r Router, doc []byte, enabled bool) {
	if !enabled || len(doc) == 0 {
		return
	}
	r.Get("/docs/openapi.json", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write(doc)
	})
	ui := httpSwagger.Handler(httpSwagger.URL("/docs/openapi.json"))
	r.Get("/docs/*", func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		ui.ServeHTTP(w, req)
	})
}
