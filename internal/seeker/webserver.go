package seeker

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/apogee-robotics/seeker/internal/version"
)

// WebServer exposes the controller over HTTP for monitoring: a health check
// and a JSON snapshot of the behavior state and perception flags.
type WebServer struct {
	address    string
	controller *Controller
	server     *http.Server
}

// NewWebServer creates a web server reporting on controller.
func NewWebServer(address string, controller *Controller) *WebServer {
	ws := &WebServer{
		address:    address,
		controller: controller,
	}
	ws.server = &http.Server{
		Addr:    ws.address,
		Handler: ws.ServeMux(),
	}
	return ws
}

// Start begins serving in a goroutine and blocks until ctx is cancelled,
// then shuts the server down.
func (ws *WebServer) Start(ctx context.Context) error {
	go func() {
		log.Printf("starting HTTP server on %s", ws.address)
		if err := ws.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	if err := ws.server.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
		if err := ws.server.Close(); err != nil {
			log.Printf("HTTP server force close error: %v", err)
		}
	}
	return nil
}

// ServeMux returns the route table. Split out so tests can drive handlers
// without a listener.
func (ws *WebServer) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", ws.handleHealth)
	mux.HandleFunc("/api/status", ws.handleStatus)
	return mux
}

func (ws *WebServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":    "ok",
		"service":   "seeker",
		"version":   version.String(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (ws *WebServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(ws.controller.Status()); err != nil {
		http.Error(w, "failed to encode status: "+err.Error(), http.StatusInternalServerError)
	}
}

// Close shuts down the web server.
func (ws *WebServer) Close() error {
	if ws.server != nil {
		return ws.server.Close()
	}
	return nil
}
