package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/soypat/screw"
	"github.com/soypat/screw/report"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	rootShortDescription = `Convert rigid body twists into screw motions`
	rootLongDescription  = `twistscrew decomposes a twist (w, v) into its screw axis:
a unit direction s_hat, the axis point q closest to the origin,
the pitch h and the rate theta_dot.

A twist with w = 0 is a pure translation and has pitch NaN (infinite).
The zero twist has no screw axis and is rejected.
`
)

type app struct {
	out, errOut io.Writer
	cfgPath     string
	cfg         Config
	log         *logrus.Logger

	// Flag values. Applied over cfg only when set on the command line.
	logLevel    string
	format      string
	precision   int
	rotationTol float64
}

func (a *app) solver() screw.Solver {
	return screw.Solver{RotationTol: a.cfg.RotationTol, Log: a.log}
}

func (a *app) write(r report.Report) error {
	f, err := report.ParseFormat(a.cfg.Format)
	if err != nil {
		return err
	}
	return report.Write(a.out, r, f, a.cfg.Precision)
}

// setup loads the config file, applies flag overrides and builds the logger.
func (a *app) setup(flags *pflag.FlagSet) error {
	a.cfg = DefaultConfig()
	if a.cfgPath != "" {
		cfg, err := LoadConfig(a.cfgPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if flags.Changed("log-level") {
		a.cfg.LogLevel = a.logLevel
	}
	if flags.Changed("format") {
		a.cfg.Format = a.format
	}
	if flags.Changed("precision") {
		a.cfg.Precision = a.precision
	}
	if flags.Changed("rotation-tol") {
		a.cfg.RotationTol = a.rotationTol
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	log, err := newLogger(a.cfg.LogLevel, a.errOut)
	if err != nil {
		return err
	}
	a.log = log
	a.log.WithFields(logrus.Fields{
		"config":       a.cfgPath,
		"format":       a.cfg.Format,
		"rotation_tol": a.cfg.RotationTol,
	}).Debug("configuration loaded")
	return nil
}

func newRootCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "twistscrew",
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Flags())
		},
	}
	def := DefaultConfig()
	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgPath, "config", "", "path to a YAML config file")
	flags.StringVar(&a.logLevel, "log-level", def.LogLevel, "log level: debug, info, warn, error")
	flags.StringVarP(&a.format, "format", "f", def.Format, "output format: text or yaml")
	flags.IntVarP(&a.precision, "precision", "p", def.Precision, "decimals printed in text output")
	flags.Float64Var(&a.rotationTol, "rotation-tol", def.RotationTol,
		"treat |w| at or below this value as pure translation (0 keeps the exact split)")

	cmd.AddCommand(
		solveCommand(a),
		exampleCommand(a),
		sweepCommand(a),
	)
	return cmd
}

func solveCommand(a *app) *cobra.Command {
	var w, v []float64
	cmd := &cobra.Command{
		Use:   "solve [-- wx wy wz vx vy vz]",
		Short: "Solve the screw of one twist",
		Long: `Solve the screw of the twist with angular velocity (wx, wy, wz)
and linear velocity (vx, vy, vz). Components are given either with
--w and --v or as six arguments after "--":

  twistscrew solve --w 0,0,1 --v 0,-2,0
  twistscrew solve -- 0 0 1 0 -2 0`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 6 {
				return fmt.Errorf("want 0 or 6 arguments, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			vals := append(append([]float64{}, w...), v...)
			if len(args) == 6 {
				var err error
				vals, err = parseFloats(args)
				if err != nil {
					return err
				}
			} else if len(w) != 3 || len(v) != 3 {
				return fmt.Errorf("need 3 components for each of --w and --v, got %d and %d", len(w), len(v))
			}
			tw := screw.Twist{
				W: r3.Vec{X: vals[0], Y: vals[1], Z: vals[2]},
				V: r3.Vec{X: vals[3], Y: vals[4], Z: vals[5]},
			}
			s, err := a.solver().FromTwist(tw.W, tw.V)
			if err != nil {
				return err
			}
			return a.write(report.Report{Twist: tw, Screw: s})
		},
	}
	cmd.Flags().Float64SliceVar(&w, "w", nil, "angular velocity wx,wy,wz")
	cmd.Flags().Float64SliceVar(&v, "v", nil, "linear velocity vx,vy,vz")
	return cmd
}

func exampleCommand(a *app) *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:   "example [name...]",
		Short: "Solve built-in textbook twists",
		Long: `Solve the named textbook twists, or all of them when no name is given.
Use --list to print the available names and their sources.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			refs := screw.References()
			if list {
				tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
				for _, ref := range refs {
					fmt.Fprintf(tw, "%s\t%s\n", ref.Name, ref.Source)
				}
				return tw.Flush()
			}
			if len(args) > 0 {
				refs = refs[:0]
				for _, name := range args {
					ref, ok := screw.ReferenceByName(name)
					if !ok {
						return fmt.Errorf("unknown example %q, see --list", name)
					}
					refs = append(refs, ref)
				}
			}
			for _, ref := range refs {
				s, err := a.solver().FromTwist(ref.Twist.W, ref.Twist.V)
				if err != nil {
					return fmt.Errorf("example %s: %w", ref.Name, err)
				}
				if !ref.Confirmed {
					a.log.WithFields(logrus.Fields{
						"example": ref.Name,
						"stated":  ref.Q,
						"solved":  s.Q,
					}).Warn("source axis point is not confirmed")
				}
				err = a.write(report.Report{Name: ref.Name, Twist: ref.Twist, Screw: s})
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "list example names")
	return cmd
}

func sweepCommand(a *app) *cobra.Command {
	var (
		plotPath string
		v, axis  []float64
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Show how the screw degrades as the angular speed goes to zero",
		Long: `Solve the twists (eps·axis, v) for eps logarithmically spaced between
the configured sweep bounds and print rate, pitch and axis distance.
As eps -> 0 the rate vanishes while pitch and axis distance blow up
like 1/eps; the pseudo-inverse is ill-conditioned in that regime.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := a.cfg.Sweep
			if cmd.Flags().Changed("v") {
				if len(v) != 3 {
					return fmt.Errorf("--v needs 3 components, got %d", len(v))
				}
				copy(sc.V[:], v)
			}
			if cmd.Flags().Changed("axis") {
				if len(axis) != 3 {
					return fmt.Errorf("--axis needs 3 components, got %d", len(axis))
				}
				copy(sc.Axis[:], axis)
			}
			eps, err := screw.LogSweep(sc.Hi, sc.Lo, sc.Samples)
			if err != nil {
				return err
			}
			samples, err := a.solver().Sweep(sc.v(), sc.axis(), eps)
			if err != nil {
				return err
			}
			prec := a.cfg.Precision
			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, "eps\ttheta_dot\th\t|q|\t")
			for _, s := range samples {
				fmt.Fprintf(tw, "%.*e\t%.*e\t%.*e\t%.*e\t\n", prec, s.Eps, prec, s.ThetaDot, prec, s.H, prec, s.QNorm)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if plotPath == "" {
				return nil
			}
			fp, err := os.Create(plotPath)
			if err != nil {
				return err
			}
			defer fp.Close()
			if err := report.WriteSweepPlot(fp, samples, report.DefaultPlotConfig); err != nil {
				return err
			}
			a.log.WithField("file", plotPath).Info("sweep plot written")
			return fp.Close()
		},
	}
	cmd.Flags().StringVar(&plotPath, "plot", "", "write a PNG plot of the sweep to this file")
	cmd.Flags().Float64SliceVar(&v, "v", nil, "linear velocity vx,vy,vz (default from config)")
	cmd.Flags().Float64SliceVar(&axis, "axis", nil, "direction of the angular velocity ax,ay,az (default from config)")
	return cmd
}

func parseFloats(args []string) ([]float64, error) {
	vals := make([]float64, len(args))
	for i, s := range args {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		vals[i] = f
	}
	return vals, nil
}
