package http

import (
	"context"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const wsWriteTimeout = 10 * time.Second

// WSConn adapts a websocket to the protocol connection contract.
type WSConn struct {
	ws *websocket.Conn
}

func (w *WSConn) Send(msg interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), wsWriteTimeout)
	defer cancel()
	return wsjson.Write(ctx, w.ws, msg)
}

// HandleWebSocket runs the protocol over one websocket. Each text frame
// is a JSON-RPC message; responses and subscription notifications are
// pushed back on the same socket.
func (s *Service) HandleWebSocket(c *gin.Context) {
	ws, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		log.Debug().Err(err).Msg("websocket accept failed")
		return
	}
	defer ws.CloseNow()

	conn := &WSConn{ws: ws}
	server := s.mcp.GetServer()
	ctx := c.Request.Context()

	for {
		typ, data, err := ws.Read(ctx)
		if err != nil {
			log.Debug().Err(err).Msg("websocket closed")
			return
		}
		if typ != websocket.MessageText {
			continue
		}

		if resp := server.Handle(ctx, conn, data); resp != nil {
			if err := conn.Send(resp); err != nil {
				log.Debug().Err(err).Msg("websocket send failed")
				return
			}
		}
	}
}
