package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.NewEntry(logrus.New())

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	sub := os.Args[1]
	switch sub {
	case "check":
		checkCmd(os.Args[2:])
	case "inspect":
		inspectCmd(os.Args[2:])
	case "fetch":
		fetchCmd(os.Args[2:])
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand: %s\n", sub)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("relaycheck <subcommand> [flags]")
	fmt.Println("\nSubcommands:")
	fmt.Println("  check    Classify relay URLs given as arguments or on stdin")
	fmt.Println("  inspect  Tally relay URLs across kind 10002 events in a JSONL file")
	fmt.Println("  fetch    Fetch a user's relay list (kind 10002) from a relay")
	fmt.Println("\nUse '<subcommand> -h' for flags.")
}

type logOptions struct {
	level *string
	json  *bool
}

func commonFlags(fs *flag.FlagSet) logOptions {
	return logOptions{
		level: fs.String("loglevel", "info", "minimum loglevel: trace, debug, info, warn/warning, error, fatal, panic"),
		json:  fs.Bool("log-json", false, "log in JSON format instead of text"),
	}
}

// setup applies the parsed log flags. Logs go to stderr so stdout stays
// clean for results.
func (o logOptions) setup() {
	log.Logger.SetOutput(os.Stderr)
	if *o.json {
		log.Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
	lvl, err := logrus.ParseLevel(*o.level)
	if err != nil {
		log.Fatalf("invalid loglevel: %s", *o.level)
	}
	log.Logger.SetLevel(lvl)
}
