package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/goliatone/go-formfields/components/utcoffsets"
	"github.com/goliatone/go-formfields/pkg/renderers/vanilla"
)

const shutdownTimeout = 5 * time.Second

// formHandler serves the settings form. POST applies the submitted values and
// re-renders the form with validation feedback.
type formHandler struct {
	mu       sync.Mutex
	form     *settings
	renderer *vanilla.Renderer
	apiPath  string
}

func (h *formHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
	default:
		w.Header().Set("Allow", "GET, HEAD, POST")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.mu.Lock()
	if r.Method == http.MethodPost {
		h.form.apply(r.PostForm)
		if _, err := h.form.result(); err != nil {
			slog.DebugContext(r.Context(), "settings rejected", slog.Any("error", err))
		}
	}
	body, err := h.form.renderHTML(h.renderer)
	h.mu.Unlock()
	if err != nil {
		slog.ErrorContext(r.Context(), "could not render form", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = fmt.Fprintf(w, pageLayout, h.apiPath, body)
}

const pageLayout = `<!doctype html>
<html>
<head><meta charset="utf-8"><title>Settings</title></head>
<body data-offsets-api="%s">
<form method="post">
%s<button type="submit">Save</button>
</form>
</body>
</html>
`

func serve(ctx context.Context, addr string, form *settings, renderer *vanilla.Renderer) error {
	mux := http.NewServeMux()

	apiPath, err := utcoffsets.New().Mount(mux, "")
	if err != nil {
		return err
	}
	mux.Handle("/", &formHandler{form: form, renderer: renderer, apiPath: apiPath})

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.InfoContext(ctx, "starting server", slog.String("address", addr), slog.String("offsets", apiPath))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("formfields-cli: serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	slog.InfoContext(ctx, "shutting down server")
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("formfields-cli: shutdown: %w", err)
	}
	return nil
}
