package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	frag "github.com/rmera/gofrag"
	"github.com/rmera/gofrag/config"
	"github.com/rmera/gofrag/fragplot"
)

//Version is the version of gofrag. It can be set at build time with
//-ldflags "-X main.Version=x.y.z"
var Version = "0.1.0"

//app holds what the subcommands share: the flags bound through viper, the configuration
//and the logger.
type app struct {
	v        *viper.Viper
	cfg      *config.Config
	closeLog func()
}

//execute runs gofrag with args. The logger is closed whether the command fails or not.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{v: viper.New()}
	defer a.teardown()
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "gofrag",
		Short:             "gofrag plots and analyses the results of PyFrag calculations.",
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetVersionTemplate(`{{printf "gofrag version %s\n" .Version}}`)
	pf := root.PersistentFlags()
	pf.StringP("config", "c", "", "INI file with the settings. Its values override the built-in ones")
	pf.String("log-level", "warn", "log level: debug, info, warn or error")
	pf.String("log-format", "console", "log format: console or json")
	pf.String("log-file", "", "also write the logs, as JSON, to this file")
	_ = a.v.BindPFlags(pf)
	a.v.SetEnvPrefix("GOFRAG")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(
		newPlotCmd(a),
		newInterpolateCmd(a),
		newPeaksCmd(a),
		newOverviewCmd(a),
		newVersionCmd(),
	)
	return root
}

//setup starts the logger and reads the configuration. It runs before every subcommand.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	closeLog, err := initLogger(logOptions{
		Level:  a.v.GetString("log-level"),
		Format: a.v.GetString("log-format"),
		File:   a.v.GetString("log-file"),
	}, zapcore.Lock(zapcore.AddSync(cmd.ErrOrStderr())))
	if err != nil {
		return err
	}
	a.closeLog = closeLog
	var files []string
	if f := a.v.GetString("config"); f != "" {
		files = append(files, f)
	}
	a.cfg, err = config.Load(files...)
	if err != nil {
		return err
	}
	getLogger().Debug("Configuration loaded", zap.Strings("files", files), zap.String("command", cmd.Name()))
	return nil
}

func (a *app) teardown() {
	if a.closeLog != nil {
		a.closeLog()
		a.closeLog = nil
	}
}

//settings returns the plot settings of the configuration, with the reaction coordinate
//replaced by coord, if not empty.
func (a *app) settings(coord string) (*fragplot.Settings, error) {
	s, err := fragplot.SettingsFromConfig(a.cfg)
	if err != nil {
		return nil, err
	}
	if coord != "" {
		s.Coord = coord
	}
	return s, nil
}

//load reads the systems in dirs. With recursive, each of dirs is searched, two levels
//deep, for directories holding PyFrag files.
func (a *app) load(ctx context.Context, dirs []string, recursive bool) ([]*frag.Object, error) {
	opts, err := a.cfg.ProcessOptions()
	if err != nil {
		return nil, err
	}
	if recursive {
		var found []string
		for _, d := range dirs {
			pairs, err := frag.FindPyFragFiles(d)
			if err != nil {
				return nil, err
			}
			for _, p := range pairs {
				found = append(found, filepath.Dir(p.Input))
			}
		}
		dirs = found
	}
	objs, err := frag.LoadObjects(ctx, dirs, opts)
	if err != nil {
		return nil, err
	}
	getLogger().Info("Systems loaded", zap.Int("systems", len(objs)))
	return objs, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of gofrag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "gofrag version %s\n", Version)
			return err
		},
	}
}
