package conf

import (
	"encoding/json"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/modelctx/modelctx/pkg/config"
)

const (
	AppName          = "modelctx"
	ServerConfigName = "modelctx-server"
	EnvPrefix        = "MODELCTX"
	EnvConfigDir     = "MODELCTX_DIR"
)

// LoadServerConfig loads the server configuration, layering file, env
// and command-line values.
func LoadServerConfig(configPath string, cmdConf map[string]any) (*ServerConfig, *config.Manager, error) {

	if configPath == "" {
		configPath = os.Getenv(EnvConfigDir)
	}

	scm, err := config.New(AppName, configPath, ServerConfigName, EnvPrefix, false)
	if err != nil {
		log.Error().Err(err).Msg("load server config failed")
		return nil, nil, err
	}

	conf := &ServerConfig{}
	config.SetDefaults(scm.Viper, ServerDefaults)

	// Load cmd Conf
	for key, value := range cmdConf {
		scm.SetConfig(key, value)
	}

	if err := scm.Load(conf); err != nil {
		log.Error().Err(err).Msg("load server config failed")
		return nil, nil, err
	}
	conf.ConfigDir = scm.Path

	// Bare data dir falls back to <config dir>/data so the resource
	// files have a stable home on first run.
	if conf.DataDir == "" {
		conf.DataDir = scm.Path + string(os.PathSeparator) + "data"
	}
	if err := config.PrepareDir(conf.DataDir); err != nil {
		log.Error().Err(err).Msg("prepare data dir failed")
		return nil, nil, err
	}

	b, _ := json.Marshal(conf)
	log.Info().Msgf("server config: %s", string(b))

	return conf, scm, nil
}
