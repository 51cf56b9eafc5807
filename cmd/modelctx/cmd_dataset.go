package modelctx

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/modelctx/modelctx/internal/modelctx"
)

func init() {
	rootCmd.AddCommand(datasetCmd)
	datasetCmd.Flags().StringVarP(&datasetDataDir, "data-dir", "d", "", "data dir")
}

var datasetDataDir string

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Build the fine-tuning dataset artifacts",
	Run: func(cmd *cobra.Command, args []string) {
		cmdConf := make(map[string]any)
		if datasetDataDir != "" {
			cmdConf["data_dir"] = datasetDataDir
		}

		m := modelctx.New()
		if err := m.CommandDataset(ConfigPath, cmdConf); err != nil {
			log.Err(err).Msg("failed to build dataset")
			return
		}
	},
}
