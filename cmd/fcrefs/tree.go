package main

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/fcrefs-go/internal/config"
	"github.com/ukaji3/fcrefs-go/pkg/fcrefs/models"
	"github.com/ukaji3/fcrefs-go/pkg/fcrefs/output"
	"github.com/ukaji3/fcrefs-go/pkg/fcrefs/parser"
)

func newTreeCmd(flags *cliFlags) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "tree <document.FCStd>...",
		Short: "Print the cross-document references held by each document",
		Long:  "Print the cross-document references held by each document.\nA path of \"-\" reads one archive from standard input.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath, flags.configPath != "")
			if err != nil {
				return err
			}
			closer, err := setupLogging(cmd, flags, cfg)
			if err != nil {
				return err
			}
			defer closer.Close()

			for _, path := range args {
				label, root, err := loadTreeDocument(cmd.InOrStdin(), path)
				if err != nil {
					return fmt.Errorf("loading %s: %w", path, err)
				}
				if err := output.WriteTree(cmd.OutOrStdout(), label, root, all); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Show every cell and expression, not only cross-document references")
	return cmd
}

// loadTreeDocument loads path, or an archive read from stdin when path is "-".
func loadTreeDocument(stdin io.Reader, path string) (string, *models.Node, error) {
	if path != "-" {
		root, err := parser.LoadDocument(path)
		return filepath.Base(path), root, err
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", nil, fmt.Errorf("reading standard input: %w", err)
	}
	root, err := parser.LoadDocumentFrom(bytes.NewReader(data), int64(len(data)))
	return "<stdin>", root, err
}
