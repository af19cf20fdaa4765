package report

import (
	"strings"
	"sync"
	"time"

	"cucharon/internal/resp"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DuplicateWindow is how long an identical report is ignored.
const DuplicateWindow = 5 * time.Second

type Handler struct {
	logger *zap.Logger
	now    func() time.Time

	mu   sync.Mutex
	seen map[string]time.Time
}

func NewHandler(logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		logger: logger,
		now:    time.Now,
		seen:   make(map[string]time.Time),
	}
}

// POST /api/client-errors
func (h *Handler) Create(c *gin.Context) {
	var report ClientError
	if err := c.ShouldBindJSON(&report); err != nil {
		resp.BadRequest(c, "invalid request")
		return
	}

	if strings.TrimSpace(report.Message) == "" {
		resp.BadRequest(c, "message required")
		return
	}

	if h.duplicate(report) {
		resp.OK(c, gin.H{"logged": false})
		return
	}

	h.logger.Warn("client error",
		zap.String("message", report.Message),
		zap.String("url", report.URL),
		zap.String("user_agent", report.UserAgent),
		zap.String("timestamp", report.Timestamp),
		zap.String("source", report.Source),
		zap.Int("line", report.Line),
		zap.Int("column", report.Column),
		zap.String("stack", report.Stack),
		zap.String("component_stack", report.ComponentStack),
		zap.Bool("error_boundary", report.ErrorBoundary),
	)

	resp.OK(c, gin.H{"logged": true})
}

func (h *Handler) duplicate(report ClientError) bool {
	now := h.now()
	key := report.key()

	h.mu.Lock()
	defer h.mu.Unlock()

	for k, at := range h.seen {
		if now.Sub(at) >= DuplicateWindow {
			delete(h.seen, k)
		}
	}

	if _, ok := h.seen[key]; ok {
		return true
	}
	h.seen[key] = now
	return false
}
