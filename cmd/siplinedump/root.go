package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/sipline"
	"github.com/ghettovoice/sipline/internal/log"
)

func newRootCmd(fs afero.Fs) *cobra.Command {
	var dev bool

	cmd := &cobra.Command{
		Use:   "siplinedump [file]",
		Short: "Tokenize a SIP message dump",
		Long: "Reads a SIP message dump from a file or stdin and prints the " +
			"token stream. Malformed lines are reported and skipped; the dump " +
			"must not carry message bodies.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.Def
			if dev {
				logger = log.Dev
			}

			var rdr io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := fs.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				rdr = f
			}

			return dump(cmd.OutOrStdout(), rdr, logger)
		},
	}
	cmd.Flags().BoolVar(&dev, "dev", false, "use the developer log handler")
	return cmd
}

func dump(w io.Writer, rdr io.Reader, logger *slog.Logger) error {
	sp := sipline.TokenizeStream(rdr, sipline.WithStreamLogger(logger))
	for tok, err := range sp.Tokens() {
		if err != nil {
			logger.Error("tokenizing failed", "error", err)
			return err
		}
		if errLn, ok := tok.(sipline.ErrorLine); ok {
			logger.Warn("skipping malformed line", "token", errLn)
			continue
		}
		if _, err := fmt.Fprintln(w, tok); err != nil {
			return err
		}
	}
	return nil
}
