// seehuhn.de/go/spanops - run-length encoded pixel regions
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


package main

import (
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"seehuhn.de/go/spanops"
)

// app holds the state shared by all subcommands.
type app struct {
	conf *viper.Viper
	log  *zap.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{
		conf: viper.New(),
		log:  zap.NewNop(),
	}

	root := &cobra.Command{
		Use:   "footprints",
		Short: "Find connected regions of equal pixel value in images",
		Long: `footprints reads an image, selects all pixels with a given value, and
splits them into connected regions ("footprints").

Flags can also be given as environment variables, for example
FOOTPRINTS_MIN_AREA=10, or in a configuration file.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
			spanops.SetLogger(nil)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden by environment variables and flags.")
	flags.BoolP("verbose", "v", false, "Log debug messages, including the library's.")
	flags.String("log-format", "console", "Log format, one of [console, json].")

	root.AddCommand(a.newDetectCommand(), a.newLabelCommand())
	return root
}

// setup reads the configuration and creates the logger.  It runs before
// every subcommand.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	conf := a.conf
	if err := conf.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "binding flags")
	}
	conf.SetEnvPrefix("FOOTPRINTS")
	conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	conf.AutomaticEnv()

	if cfg := conf.GetString("config"); cfg != "" {
		conf.SetConfigFile(cfg)
		if err := conf.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config %q", cfg)
		}
	}

	log, err := newLogger(cmd.ErrOrStderr(), conf.GetString("log-format"), conf.GetBool("verbose"))
	if err != nil {
		return err
	}
	a.log = log
	if conf.GetBool("verbose") {
		spanops.SetLogger(slog.New(newZapHandler(log)))
	}
	return nil
}

func newLogger(w io.Writer, format string, verbose bool) (*zap.Logger, error) {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	switch format {
	case "json":
		enc = zapcore.NewJSONEncoder(encCfg)
	case "console":
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	default:
		return nil, errors.Errorf("unknown log format %q", format)
	}
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level)), nil
}
