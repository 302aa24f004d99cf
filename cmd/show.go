package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pacemeta/pacemeta/config"
	"github.com/pacemeta/pacemeta/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <show-id>",
	Short: "Print a show's season and episode tree",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		client, err := newCatalogClient(cfg)
		if err != nil {
			log.Fatal("failed to create catalog client", zap.Error(err))
		}

		show, err := client.FetchShowTree(ctx, args[0])
		if err != nil {
			log.Fatal("failed to fetch show", zap.Error(err))
		}

		fmt.Println(show.Title)

		var rows [][]string
		for _, season := range show.Seasons {
			for _, episode := range season.Episodes {
				rows = append(rows, []string{
					strconv.Itoa(season.Number),
					strconv.Itoa(episode.Number),
					episode.Title,
					episode.AirDate,
				})
			}
		}

		fmt.Println(renderTable(
			[]string{"Season", "Episode", "Title", "Air Date"},
			rows,
			[]columnAlignment{alignRight, alignRight, alignLeft, alignLeft},
		))
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
