package http

import (
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/modelctx/modelctx/internal/mcp"
)

const processChanCap = 1000

type processCtx struct {
	conn *SSEConn
	req  *mcp.Request
}

// Hub tracks open SSE channels and feeds their queued requests through
// a single worker, so channel POSTs return immediately and responses
// flow back on the stream.
type Hub struct {
	server *mcp.Server

	mu    sync.Mutex
	conns map[string]*SSEConn

	processChan chan processCtx
	wg          sync.WaitGroup
}

func NewHub(server *mcp.Server) *Hub {
	return &Hub{
		server:      server,
		conns:       make(map[string]*SSEConn),
		processChan: make(chan processCtx, processChanCap),
	}
}

func (h *Hub) Start() {
	h.wg.Add(1)
	go h.worker()
}

func (h *Hub) Stop() {
	close(h.processChan)
	h.wg.Wait()
}

func (h *Hub) worker() {
	defer h.wg.Done()
	for p := range h.processChan {
		resp := h.server.HandleRequest(context.Background(), p.conn, p.req)
		if resp == nil {
			continue
		}
		if err := p.conn.Send(resp); err != nil {
			log.Debug().Err(err).Str("channel", p.conn.id).Msg("sse send failed")
		}
	}
}

func (h *Hub) getConn(id string) *SSEConn {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.conns[id]
}

// HandleMessages accepts one request for an open SSE channel. The reply
// is queued, not returned: a 202 here only means the request was
// enqueued.
func (h *Hub) HandleMessages(c *gin.Context) {

	// Clients disagree on the query key; accept both spellings.
	channelID := c.Query("sessionId")
	if channelID == "" {
		channelID = c.Query("session_id")
	}
	if channelID == "" {
		c.JSON(http.StatusBadRequest, mcp.ErrInvalidRequest.WithData("missing sessionId").Response(nil))
		c.Abort()
		return
	}

	conn := h.getConn(channelID)
	if conn == nil {
		c.JSON(http.StatusNotFound, mcp.ErrInvalidRequest.WithData("unknown sessionId").Response(nil))
		c.Abort()
		return
	}

	var req mcp.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, mcp.ErrParseError.WithData(err.Error()).Response(nil))
		c.Abort()
		return
	}

	select {
	case h.processChan <- processCtx{conn: conn, req: &req}:
	default:
		c.JSON(http.StatusTooManyRequests, mcp.ErrInternalError.WithData("request queue full").Response(req.ID))
		c.Abort()
		return
	}

	c.String(http.StatusAccepted, "Accepted")
}
