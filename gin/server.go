// Package gin provides the HTTP API front-end for the mining pipeline.
package gin

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	miner "github.com/Raavan18/b2b-data-miner"
)

// ShutdownTimeout is the time given for outstanding requests to finish
// before the server is killed.
const ShutdownTimeout = 5 * time.Second

// Server serves the mining API over HTTP. Set the service fields before
// calling Open or ServeHTTP.
type Server struct {
	ln     net.Listener
	server *http.Server
	router *gin.Engine

	// Bind address for the server's listener, such as ":8080".
	Addr string

	// Services used by the API routes.
	MiningService miner.MiningService
	ReportService miner.ReportService

	// Logger, when set, receives one line per handled request.
	Logger *slog.Logger
}

// NewServer creates a new server with all routes registered. It does not
// start listening until Open is called.
func NewServer() *Server {
	s := &Server{
		server: &http.Server{},
		router: gin.New(),
	}
	s.router.Use(gin.Recovery(), s.logRequest)
	s.server.Handler = s.router

	s.router.GET("/healthz", s.handleHealth)
	s.router.POST("/mine", s.handleMine)

	runs := s.router.Group("/runs")
	{
		runs.GET("", s.handleRunList)
		runs.GET("/:id", s.handleRunShow)
		runs.DELETE("/:id", s.handleRunDelete)
	}

	return s
}

// Open begins listening on the bind address and serves requests in a
// separate goroutine.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	go s.server.Serve(s.ln)
	return nil
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the base URL of the running server. Useful when the server
// was opened on an ephemeral port.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// ServeHTTP dispatches a request through the server's router without
// requiring an open listener.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// handleHealth handles GET /healthz.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// logRequest is middleware that reports each handled request to the
// server's logger, when one is set.
func (s *Server) logRequest(c *gin.Context) {
	begin := time.Now()
	c.Next()
	if s.Logger == nil {
		return
	}
	s.Logger.Info("http request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"duration", time.Since(begin),
	)
}

// errorResponse is the body returned by the run management routes on
// failure.
type errorResponse struct {
	Error string `json:"error"`
}

// errStatus translates an application error code into an HTTP status.
func errStatus(err error) int {
	switch miner.ErrorCode(err) {
	case miner.EINVALID, miner.ECONFIG:
		return http.StatusBadRequest
	case miner.ENOTFOUND:
		return http.StatusNotFound
	case miner.ECONFLICT:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
