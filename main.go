package main

import (
	"flag"

	"MandelbrotExplorer/explorer"
	"MandelbrotExplorer/misc"
	"MandelbrotExplorer/worker"

	"github.com/BrugadaSyndrome/bslogger"
)

var (
	isExplorer, isWorker bool
	settingsFile         string
)

func main() {
	logger := bslogger.NewLogger("Main", bslogger.Normal, nil)
	parseArguments(logger)

	if isExplorer {
		startExplorer(logger)
	}

	if isWorker {
		startWorker()
	}
}

func parseArguments(logger bslogger.Logger) {
	flag.BoolVar(&isExplorer, "isExplorer", false, "Run the interactive explorer window")
	flag.BoolVar(&isWorker, "isWorker", false, "Run a render farm worker")
	flag.StringVar(&settingsFile, "settingsFile", "", "Json file with settings for this instance (defaults apply when omitted)")
	flag.Parse()

	if !isExplorer && !isWorker {
		logger.Fatal("Please specify if this instance is the explorer or a worker")
	}
}

func startExplorer(logger bslogger.Logger) {
	e := explorer.NewExplorer(settingsFile)
	misc.CheckError(e.Run(), logger, misc.Fatal)
}

func startWorker() {
	w := worker.NewWorker(settingsFile)

	// Serve render chunks until the coordinator goes away
	w.Wait()
}
