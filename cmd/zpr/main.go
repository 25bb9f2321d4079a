// Command zpr formats its arguments with a zpr format string, like printf(1).
//
//	zpr '{} is {#x} in hex' 255 255
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/bjaus/zpr"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		noNewline    bool
		upperPrefix  bool
		displayWidth bool
		cfgFile      string
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "zpr FORMAT [ARG...]",
		Short: "Format arguments with a {}-style format string",
		Long: `zpr prints FORMAT with each {} specifier replaced by the next ARG.

Arguments that parse as integers, floats or booleans are printed as such;
anything else is a string.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "zpr"})
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}

			cfg := zpr.DefaultConfig()
			if cfgFile != "" {
				loaded, err := loadConfig(cfgFile)
				if err != nil {
					logger.Error("loading config", "file", cfgFile, "error", err)
					return err
				}
				cfg = loaded
				logger.Debug("loaded config", "file", cfgFile)
			}
			if cmd.Flags().Changed("upper-prefix") {
				cfg.HexPrefixUpper = upperPrefix
			}
			if cmd.Flags().Changed("display-width") {
				cfg.DisplayWidth = displayWidth
			}

			values := make([]any, 0, len(args)-1)
			for _, arg := range args[1:] {
				v := parseArg(arg)
				logger.Debug("argument", "text", arg, "type", fmt.Sprintf("%T", v))
				values = append(values, v)
			}

			e := zpr.New(cfg)
			out := cmd.OutOrStdout()
			var err error
			if noNewline {
				_, err = e.Fprint(out, args[0], values...)
			} else {
				_, err = e.Fprintln(out, args[0], values...)
			}
			if err != nil {
				logger.Error("writing output", "error", err)
			}
			return err
		},
	}

	cmd.Flags().BoolVarP(&noNewline, "no-newline", "n", false, "do not print the trailing newline")
	cmd.Flags().BoolVar(&upperPrefix, "upper-prefix", false, "print 0X for {#X} instead of 0x")
	cmd.Flags().BoolVar(&displayWidth, "display-width", false, "measure string width in terminal columns")
	cmd.Flags().StringVar(&cfgFile, "config", "", "YAML config file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func loadConfig(path string) (zpr.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return zpr.Config{}, err
	}
	defer f.Close()
	return zpr.LoadConfig(f)
}

// parseArg types a command-line argument: signed integer, then unsigned,
// then float, then bool, else string.
func parseArg(s string) any {
	if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		return i
	}
	if u, err := strconv.ParseUint(s, 0, 64); err == nil {
		return u
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	return s
}
