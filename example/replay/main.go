// Command replay records scripted controller inputs and verifies that independent replicas replaying a
// recording end up in exactly the same quantized positions.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/sirupsen/logrus"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  replay record -out <file> [-ticks n] [-seed n] [-config settings.toml]")
	fmt.Fprintln(os.Stderr, "  replay verify -in <file> [-parallel] [-config settings.toml] [-statsview addr]")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true}
	log.Level = logrus.InfoLevel

	var err error
	switch os.Args[1] {
	case "record":
		err = runRecord(log, os.Args[2:])
	case "verify":
		err = runVerify(log, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Errorf("%s: %v", os.Args[1], err)
		os.Exit(1)
	}
}

// startStatsView serves runtime statistics on addr until the process exits.
func startStatsView(addr string) {
	// set configurations before calling `statsview.New()` method
	viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(addr))

	mgr := statsview.New()
	go mgr.Start()
}

func parseFlags(set *flag.FlagSet, args []string) error {
	set.SetOutput(os.Stderr)
	return set.Parse(args)
}
