package mcp

import (
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	"github.com/modelctx/modelctx/internal/mcp"
	"github.com/modelctx/modelctx/internal/modelctx/conf"
	"github.com/modelctx/modelctx/pkg/filemonitor"
	"github.com/modelctx/modelctx/pkg/version"
)

const instructions = "modelctx server ready. Use tools for weather, calculations, code execution, and more."

// Service assembles the protocol server for this deployment: the
// resource catalog backed by the data dir, the prompt templates, the
// completion vocabularies, and the watcher that turns file writes into
// resource update notifications.
type Service struct {
	conf    *conf.ServerConfig
	server  *mcp.Server
	monitor *filemonitor.FileMonitor
}

func NewService(conf *conf.ServerConfig, exec mcp.ToolExecutor, backend mcp.Sampler) *Service {
	info := mcp.ServerInfo{
		Name:            "modelctx-server",
		Version:         version.Version,
		ProtocolVersion: mcp.ProtocolVersion,
		Capabilities:    mcp.DefaultCapabilities,
	}

	s := &Service{
		conf:   conf,
		server: mcp.NewServer(info, instructions, exec, backend),
	}

	s.registerResources()
	s.registerPrompts()
	s.registerCompletions()

	return s
}

// GetServer exposes the protocol server to transports.
func (s *Service) GetServer() *mcp.Server {
	return s.server
}

// Start begins watching the resource backing files. The files need not
// exist yet; the watcher covers the data dir so later creation is still
// observed.
func (s *Service) Start() error {
	s.monitor = filemonitor.NewFileMonitor(func(uri string, event fsnotify.Event) {
		delivered := s.server.Resources().Notify(uri, "updated")
		log.Debug().Str("uri", uri).Str("file", event.Name).Int("delivered", delivered).
			Msg("resource update")
	})

	for uri, file := range resourceFiles {
		if err := s.monitor.AddFile(uri, s.dataPath(file)); err != nil {
			return err
		}
	}

	return s.monitor.Start()
}

func (s *Service) Stop() error {
	if s.monitor != nil && s.monitor.IsRunning() {
		return s.monitor.Stop()
	}
	return nil
}
