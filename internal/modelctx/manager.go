package modelctx

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/modelctx/modelctx/internal/mcp"
	"github.com/modelctx/modelctx/internal/modelctx/commander"
	"github.com/modelctx/modelctx/internal/modelctx/conf"
	"github.com/modelctx/modelctx/internal/modelctx/dataset"
	"github.com/modelctx/modelctx/internal/modelctx/http"
	mcpservice "github.com/modelctx/modelctx/internal/modelctx/mcp"
	"github.com/modelctx/modelctx/internal/modelctx/sampling"
	"github.com/modelctx/modelctx/internal/modelctx/tools"
	"github.com/modelctx/modelctx/pkg/config"
)

// Manager wires the services together for the CLI commands.
type Manager struct {
	sc  *conf.ServerConfig
	scm *config.Manager

	mcp  *mcpservice.Service
	http *http.Service
}

func New() *Manager {
	return &Manager{}
}

// CommandServer runs the protocol server until the listener fails.
func (m *Manager) CommandServer(configPath string, cmdConf map[string]any) error {

	var err error
	m.sc, m.scm, err = conf.LoadServerConfig(configPath, cmdConf)
	if err != nil {
		return err
	}

	var bridge *commander.Client
	if m.sc.CommanderURL != "" {
		bridge = commander.New(m.sc.CommanderURL, m.sc.CommanderTimeout)
	}

	exec := tools.NewExecutor(bridge)

	var backend mcp.Sampler
	if sampler := sampling.NewOpenRouter(m.sc.OpenRouterAPIKey, m.sc.OpenRouterBaseURL, m.sc.Model, exec); sampler != nil {
		backend = sampler
	} else {
		log.Warn().Msg("no OpenRouter API key configured, sampling uses mock responses")
	}

	m.mcp = mcpservice.NewService(m.sc, exec, backend)

	if _, err := os.Stat(filepath.Join(m.sc.DataDir, dataset.TrainingDataFile)); err != nil {
		log.Warn().Str("dir", m.sc.DataDir).
			Msg("dataset artifacts missing, run the dataset command to generate them")
	}

	if err := m.mcp.Start(); err != nil {
		return err
	}
	defer m.mcp.Stop()

	m.http = http.NewService(m.sc, m.mcp)

	return m.http.ListenAndServe()
}

// CommandDataset builds the dataset artifacts into the data dir.
func (m *Manager) CommandDataset(configPath string, cmdConf map[string]any) error {

	var err error
	m.sc, m.scm, err = conf.LoadServerConfig(configPath, cmdConf)
	if err != nil {
		return err
	}

	builder := dataset.NewBuilder(tools.NewExecutor(nil).Tools())
	dataset.Seed(builder)

	return builder.WriteArtifacts(m.sc.DataDir, dataset.DefaultSystemPrompt, m.sc.Model, m.sc.OpenRouterBaseURL)
}
