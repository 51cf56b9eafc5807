package http

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	ssePingInterval = 30 * time.Second
	sseContentType  = "text/event-stream; charset=utf-8"
)

// SSEConn is the push side of one SSE channel pair. It satisfies the
// protocol connection contract so notifications and responses both
// travel on the stream.
type SSEConn struct {
	id string
	c  *gin.Context
	mu sync.Mutex
}

func NewSSEConn(c *gin.Context, id string) *SSEConn {
	c.Writer.Header().Set("Content-Type", sseContentType)
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Flush()

	conn := &SSEConn{id: id, c: c}
	conn.writeEndpoint()
	go conn.ping()
	return conn
}

// Send marshals a response or notification onto the stream as one
// message event.
func (s *SSEConn) Send(msg interface{}) error {
	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	s.writeEvent("message", string(b))
	return nil
}

func (s *SSEConn) writeEvent(event, data string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Writer.WriteString(fmt.Sprintf("event: %s\n", event))
	s.c.Writer.WriteString(fmt.Sprintf("data: %s\n\n", data))
	s.c.Writer.Flush()
}

// writeEndpoint announces where this channel's requests go.
//
//	event: endpoint
//	data: /message?sessionId=285d67ee-1c17-40d9-ab03-173d5ff48419
func (s *SSEConn) writeEndpoint() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Writer.WriteString("event: endpoint\n")
	s.c.Writer.WriteString(fmt.Sprintf("data: /message?sessionId=%s\n\n", s.id))
	s.c.Writer.Flush()
}

func (s *SSEConn) ping() {
	for {
		select {
		case <-time.After(ssePingInterval):
			s.mu.Lock()
			s.c.Writer.WriteString(fmt.Sprintf(": ping - %s\n\n", time.Now().Format("2006-01-02 15:04:05.999999-07:00")))
			s.c.Writer.Flush()
			s.mu.Unlock()
		case <-s.c.Request.Context().Done():
			return
		}
	}
}

// HandleSSE opens the stream and blocks until the client goes away.
func (h *Hub) HandleSSE(c *gin.Context) {
	id := uuid.New().String()
	conn := NewSSEConn(c, id)

	h.mu.Lock()
	h.conns[id] = conn
	h.mu.Unlock()

	c.Stream(func(w io.Writer) bool {
		<-c.Request.Context().Done()
		return false
	})

	h.mu.Lock()
	delete(h.conns, id)
	h.mu.Unlock()

	log.Debug().Str("channel", id).Msg("sse channel closed")
}
