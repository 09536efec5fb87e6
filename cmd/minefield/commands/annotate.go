package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vancomm/minefield-annotator/internal/client"
	"github.com/vancomm/minefield-annotator/internal/mines"
)

func annotateCmd(g *globals) *cobra.Command {
	var (
		mine, empty string
		strict      bool
		server      string
	)

	cmd := &cobra.Command{
		Use:   "annotate [FILE...]",
		Short: "Print minefields with adjacent mine counts",
		Long: "Reads newline-separated rows from each FILE, or from stdin when no\n" +
			"FILE is given, and prints every empty cell as the number of mines\n" +
			"around it. Cells without adjacent mines stay blank.",
		RunE: func(cmd *cobra.Command, args []string) error {
			def := mines.DefaultMarkers()
			m, err := mines.ParseMarker(mine, def.Mine)
			if err != nil {
				return fmt.Errorf("--mine: %w", err)
			}
			e, err := mines.ParseMarker(empty, def.Empty)
			if err != nil {
				return fmt.Errorf("--empty: %w", err)
			}
			a := &mines.Annotator{
				Markers: mines.Markers{Mine: m, Empty: e},
				Strict:  strict,
			}

			var remote *client.Client
			if server != "" {
				remote = client.New(server)
			}

			inputs := args
			if len(inputs) == 0 {
				inputs = []string{"-"}
			}
			for i, name := range inputs {
				text, err := readInput(cmd, name)
				if err != nil {
					return err
				}
				rows := mines.SplitRows(text)

				var out []string
				if remote != nil {
					res, err := remote.Annotate(cmd.Context(), a, rows)
					if err != nil {
						return fmt.Errorf("%s: %w", name, err)
					}
					out = res.Rows
				} else {
					out, err = a.Annotate(rows)
					if err != nil {
						return fmt.Errorf("%s: %w", name, err)
					}
				}

				g.log.WithFields(logrus.Fields{
					"input":  name,
					"rows":   len(out),
					"remote": remote != nil,
				}).Debug("annotated minefield")

				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				if _, err := io.WriteString(cmd.OutOrStdout(), mines.JoinRows(out)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&mine, "mine", "", "mine marker (default \"*\")")
	cmd.Flags().StringVar(&empty, "empty", "", "empty cell marker (default \" \")")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject ragged rows and unknown symbols")
	cmd.Flags().StringVar(&server, "server", "", "annotate through the service at this base URL")
	return cmd
}

func readInput(cmd *cobra.Command, name string) (string, error) {
	if name == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("unable to read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("unable to read minefield: %w", err)
	}
	return string(b), nil
}
