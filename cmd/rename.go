package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/pacemeta/pacemeta/config"
	"github.com/pacemeta/pacemeta/pkg/logger"
	"github.com/pacemeta/pacemeta/pkg/lookup"
	"github.com/pacemeta/pacemeta/pkg/rename"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// renameCmd represents the rename command
var renameCmd = &cobra.Command{
	Use:   "rename <dir>",
	Short: "Propose canonical names for local release files",
	Long: `Match video files in a directory against the curated episode lookups
and report the canonical name for each. No files are modified.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		ds, err := newSheetsClient(cfg).Datasets(ctx)
		if err != nil {
			log.Fatal("failed to fetch datasets", zap.Error(err))
		}
		set := lookup.BuildSet(ctx, ds)

		dir := args[0]
		rows, err := proposeDir(dir, set)
		if err != nil {
			log.Fatal("failed to scan directory", zap.Error(err))
		}

		if len(rows) == 0 {
			fmt.Println("no video files found")
			return
		}

		fmt.Println(renderTable(
			[]string{"File", "Proposed", "Size"},
			rows,
			[]columnAlignment{alignLeft, alignLeft, alignRight},
		))
	},
}

// proposeDir walks a directory tree and builds one table row per video file.
func proposeDir(dir string, set *lookup.Set) ([][]string, error) {
	var rows [][]string

	err := fs.WalkDir(os.DirFS(dir), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !rename.IsVideo(d.Name()) {
			return nil
		}

		size := ""
		if info, err := d.Info(); err == nil {
			size = humanize.Bytes(uint64(info.Size()))
		}

		proposed := proposeOne(d.Name(), set)
		rows = append(rows, []string{filepath.Join(dir, path), proposed, size})

		return nil
	})

	return rows, err
}

func proposeOne(name string, set *lookup.Set) string {
	p, err := rename.Propose(name, set)
	switch {
	case errors.Is(err, rename.ErrNoMatch):
		return "unrecognized"
	case err != nil:
		return err.Error()
	case p.AlreadyCorrect():
		return "already correct"
	default:
		return p.Proposed
	}
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
