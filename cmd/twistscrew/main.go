// Command twistscrew prints the screw axis, pitch and rate of rigid body twists.
//
//	twistscrew solve --w 0,0,1 --v 0,-2,0
//	twistscrew example mr-3.23
//	twistscrew sweep --plot sweep.png
package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	a := &app{out: stdout, errOut: stderr}
	root := newRootCommand(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		log := a.log
		if log == nil {
			// Config or flags failed before the configured logger existed.
			log = logrus.New()
			log.SetOutput(stderr)
			log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
		}
		log.WithError(err).Error("twistscrew failed")
		return 1
	}
	return 0
}
