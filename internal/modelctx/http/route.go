package http

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/modelctx/modelctx/internal/errors"
	"github.com/modelctx/modelctx/internal/mcp"
)

func (s *Service) initRouter() {
	s.initBaseRouter()
	s.initAPIRouter()
	s.initMCPRouter()
}

func (s *Service) initBaseRouter() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func (s *Service) initAPIRouter() {
	api := s.router.Group("/api/v1")
	{
		api.GET("/health", s.handleHealth)
		api.GET("/info", s.handleInfo)
		api.POST("/messages", s.handleMessage)
	}
}

func (s *Service) initMCPRouter() {
	s.router.GET("/mcp", s.HandleWebSocket)
	s.router.GET("/sse", s.hub.HandleSSE)
	s.router.POST("/message", s.hub.HandleMessages)
	s.router.POST("/rpc", s.handleRPC)
}

// handleRPC is the one-shot transport: one request in, one response
// out, no connection for notifications to ride on.
func (s *Service) handleRPC(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		errors.Err(c, errors.HTTP("read request body failed", err))
		return
	}

	resp := s.mcp.GetServer().Handle(c.Request.Context(), nil, body)
	if resp == nil {
		c.String(http.StatusAccepted, "Accepted")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Service) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"initialized": s.conf.LiveSampling(),
	})
}

func (s *Service) handleInfo(c *gin.Context) {
	tools := s.mcp.GetServer().Tools().List()
	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Name)
	}

	c.JSON(http.StatusOK, gin.H{
		"server": s.mcp.GetServer().Info(),
		"tools":  names,
		"model": gin.H{
			"name":        s.conf.GetModel(),
			"provider":    "openrouter",
			"initialized": s.conf.LiveSampling(),
		},
	})
}

// handleMessage is the sampling convenience endpoint: it skips the
// protocol envelope and calls the sampling adapter directly.
func (s *Service) handleMessage(c *gin.Context) {
	var req mcp.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	msg := s.mcp.GetServer().Sampling().CreateMessage(c.Request.Context(), req)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": msg,
	})
}
