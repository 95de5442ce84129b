// Package worker is a render farm worker process: it serves row-chunk render requests
// over RPC and registers itself with a coordinator.
package worker

import (
	"fmt"
	"sync"
	"time"

	"MandelbrotExplorer/mandelbrot"
	"MandelbrotExplorer/misc"
	"MandelbrotExplorer/rpc"
	"MandelbrotExplorer/task"

	"github.com/BrugadaSyndrome/bslogger"
)

type Worker struct {
	chunksCompleted    int
	coordinatorAddress string
	done               chan struct{}
	logger             bslogger.Logger
	mutex              sync.Mutex
	myAddress          string
	shutdown           sync.Once

	Client rpc.TcpClient
	Server rpc.TcpServer
}

// NewWorker starts a render server on a free port and registers it with the coordinator
// named in the settings file. The worker then serves chunks until the coordinator goes
// away or Stop is called.
func NewWorker(settingsFile string) *Worker {
	settings := NewSettings(settingsFile)
	worker := &Worker{
		coordinatorAddress: settings.CoordinatorAddress,
		done:               make(chan struct{}),
		logger:             bslogger.NewLogger("Worker", bslogger.Normal, nil),
	}

	// Find a free port for this worker's render server
	address, err := misc.GetLocalAddress()
	misc.CheckError(err, worker.logger, misc.Fatal)
	port, err := misc.GetFreePort()
	misc.CheckError(err, worker.logger, misc.Fatal)
	worker.myAddress = fmt.Sprintf("%s:%d", address, port)
	worker.logger = bslogger.NewLogger(fmt.Sprintf("Worker %s", worker.myAddress), bslogger.Normal, nil)

	worker.Server = rpc.NewTcpServer(&RenderService{worker: worker}, "Worker", worker.myAddress)
	misc.CheckError(worker.Server.Run(), worker.logger, misc.Fatal)

	// Register with the coordinator
	worker.Client = rpc.NewTcpClient(settings.CoordinatorAddress, "Coordinator")
	misc.CheckError(worker.Client.Connect(), worker.logger, misc.Fatal)
	var nothing misc.Nothing
	misc.CheckError(worker.Client.Call("Coordinator.RegisterWorker", worker.myAddress, &nothing), worker.logger, misc.Fatal)
	worker.logger.Infof("Registered with coordinator at %s", settings.CoordinatorAddress)

	go worker.tickers()

	return worker
}

func (w *Worker) tickers() {
	rollCall := time.NewTicker(time.Minute)
	heartBeat := time.NewTicker(30 * time.Second)

	for {
		select {
		case <-w.done:
			return

		case <-rollCall.C:
			w.logger.Debug("Roll call ticker")
			var junk misc.Nothing
			var present bool
			if err := w.Client.Call("Coordinator.RollCall", junk, &present); err != nil {
				// Cannot reach the coordinator anymore so shut down
				w.logger.Warningf("Coordinator missed roll call: %s", err)
				w.Stop()
				return
			}

		case <-heartBeat.C:
			w.logger.Debug("Heart beat ticker")
			w.mutex.Lock()
			w.logger.Infof("Chunks [Completed: %d]", w.chunksCompleted)
			w.mutex.Unlock()
		}
	}
}

// Stop deregisters from the coordinator and shuts the render server down. Safe to call
// more than once.
func (w *Worker) Stop() {
	w.shutdown.Do(func() {
		w.logger.Info("Shutting down")
		var nothing misc.Nothing
		w.Client.Call("Coordinator.DeRegisterWorker", w.myAddress, &nothing)
		misc.CheckError(w.Client.Disconnect(), w.logger, misc.Warning)
		misc.CheckError(w.Server.Stop(), w.logger, misc.Warning)
		close(w.done)
	})
}

// Wait blocks until the worker has shut down.
func (w *Worker) Wait() {
	<-w.done
}

// RenderService is the RPC surface the coordinator calls, registered as service name
// "Worker".
type RenderService struct {
	worker *Worker
}

// RenderChunk renders the requested row range with the chunk's color scheme and
// supersampling so the pixels match a local render exactly.
func (rs *RenderService) RenderChunk(chunk task.Chunk, result *task.Result) error {
	renderer, err := mandelbrot.NewRenderer(mandelbrot.Settings{
		ColorScheme:   chunk.ColorScheme,
		SuperSampling: chunk.SuperSampling,
	})
	if err != nil {
		return err
	}

	pixels, err := renderer.RenderRows(chunk.Width, chunk.Height, chunk.View, chunk.StartRow, chunk.EndRow)
	if err != nil {
		return err
	}

	result.ID = chunk.ID
	result.StartRow = chunk.StartRow
	result.Pixels = pixels

	w := rs.worker
	w.mutex.Lock()
	w.chunksCompleted++
	w.mutex.Unlock()
	w.logger.Debugf("Rendered chunk %s", chunk.String())

	return nil
}

func (rs *RenderService) RollCall(nothing misc.Nothing, present *bool) error {
	*present = true
	return nil
}
