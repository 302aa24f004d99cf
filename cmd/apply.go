package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/pacemeta/pacemeta/config"
	"github.com/pacemeta/pacemeta/pkg/logger"
	"github.com/pacemeta/pacemeta/pkg/reconcile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// applyCmd represents the apply command
var applyCmd = &cobra.Command{
	Use:   "apply <show-id>",
	Short: "Apply curated metadata to a show",
	Long: `Apply curated titles, descriptions, and air dates to a show's seasons
and episodes. Use --dry-run to see the proposed changes without touching
the server.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		if err := cfg.Validate(); err != nil {
			log.Fatal("invalid configuration", zap.Error(err))
		}

		client, err := newCatalogClient(cfg)
		if err != nil {
			log.Fatal("failed to create catalog client", zap.Error(err))
		}

		opts := reconcile.Options{}
		opts.Title, _ = cmd.Flags().GetBool("titles")
		opts.SeasonTitle, _ = cmd.Flags().GetBool("season-titles")
		opts.Description, _ = cmd.Flags().GetBool("descriptions")
		opts.Date, _ = cmd.Flags().GetBool("dates")
		opts.Posters, _ = cmd.Flags().GetBool("posters")
		opts.DryRun, _ = cmd.Flags().GetBool("dry-run")

		engine := newEngine(cfg, client)

		res, err := engine.Run(ctx, args[0], opts)
		if err != nil {
			log.Fatal("run failed", zap.Error(err))
		}

		if opts.DryRun {
			fmt.Println(renderPlan(res))
			return
		}

		fmt.Printf("%s: %d updated, %d skipped, %d failed\n",
			res.State, res.Updated, res.Skipped, res.Failed)
	},
}

func renderPlan(res *reconcile.Result) string {
	if len(res.Proposed) == 0 {
		return "no updates needed"
	}

	rows := make([][]string, 0, len(res.Proposed))
	for _, change := range res.Proposed {
		rows = append(rows, []string{
			change.Key,
			strings.Join(change.Fields.Names(), ", "),
		})
	}

	return renderTable(
		[]string{"Item", "Fields"},
		rows,
		[]columnAlignment{alignLeft, alignLeft},
	)
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().Bool("titles", true, "update episode titles")
	applyCmd.Flags().Bool("season-titles", false, "update season titles")
	applyCmd.Flags().Bool("descriptions", false, "update descriptions")
	applyCmd.Flags().Bool("dates", false, "update air dates")
	applyCmd.Flags().Bool("posters", false, "upload season posters")
	applyCmd.Flags().Bool("dry-run", false, "log proposed changes without applying them")
}
