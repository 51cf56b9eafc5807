package modelctx

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/modelctx/modelctx/internal/modelctx"
)

func init() {
	rootCmd.AddCommand(serverCmd)
	serverCmd.Flags().StringVarP(&serverAddr, "addr", "a", "", "server address")
	serverCmd.Flags().StringVarP(&serverDataDir, "data-dir", "d", "", "data dir")
	serverCmd.Flags().StringVarP(&serverModel, "model", "m", "", "model identifier")
	serverCmd.Flags().StringVar(&serverCommanderURL, "commander-url", "", "desktop commander endpoint")
}

var (
	serverAddr         string
	serverDataDir      string
	serverModel        string
	serverCommanderURL string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the protocol server",
	Run: func(cmd *cobra.Command, args []string) {
		cmdConf := make(map[string]any)
		if serverAddr != "" {
			cmdConf["http_addr"] = serverAddr
		}
		if serverDataDir != "" {
			cmdConf["data_dir"] = serverDataDir
		}
		if serverModel != "" {
			cmdConf["model"] = serverModel
		}
		if serverCommanderURL != "" {
			cmdConf["commander_url"] = serverCommanderURL
		}

		m := modelctx.New()
		if err := m.CommandServer(ConfigPath, cmdConf); err != nil {
			log.Err(err).Msg("failed to start server")
			return
		}
	},
}
