// Package coordinator fronts a pool of remote render workers. Workers register over RPC;
// each frame is split into contiguous row chunks fanned out to them, and anything a
// worker fails to deliver is re-rendered locally so a frame always completes.
package coordinator

import (
	"errors"
	"image"
	"sync"
	"time"

	"MandelbrotExplorer/mandelbrot"
	"MandelbrotExplorer/misc"
	"MandelbrotExplorer/rpc"
	"MandelbrotExplorer/task"

	"github.com/BrugadaSyndrome/bslogger"
)

type Coordinator struct {
	chunksFailed   uint
	chunksSent     uint
	clients        map[string]*rpc.TcpClient
	framesRendered uint
	local          mandelbrot.Renderer
	logger         bslogger.Logger
	mutex          sync.Mutex
	nextChunkID    uint
	renderSettings mandelbrot.Settings

	Server rpc.TcpServer
}

// NewCoordinator starts the registration server at serverAddress and returns a
// coordinator that renders with renderSettings, locally until workers join.
func NewCoordinator(serverAddress string, renderSettings mandelbrot.Settings) (*Coordinator, error) {
	if err := renderSettings.Verify(); err != nil {
		return nil, err
	}
	local, err := mandelbrot.NewRenderer(renderSettings)
	if err != nil {
		return nil, err
	}

	coordinator := &Coordinator{
		clients:        make(map[string]*rpc.TcpClient),
		local:          local,
		logger:         bslogger.NewLogger("Coordinator", bslogger.Normal, nil),
		renderSettings: renderSettings,
	}

	// Start up the rpc tcp server to allow workers to communicate with the coordinator
	coordinator.Server = rpc.NewTcpServer(&Registry{coordinator: coordinator}, "Coordinator", serverAddress)
	if err := coordinator.Server.Run(); err != nil {
		return nil, err
	}

	go coordinator.tickers()

	return coordinator, nil
}

// RenderFrame satisfies the explorer's frame renderer contract. The worker pool is
// snapshotted per frame; rows are split evenly across it. With no workers the frame is
// rendered in-process.
func (c *Coordinator) RenderFrame(width uint, height uint, view mandelbrot.Viewport) (*image.RGBA, error) {
	if width == 0 || height == 0 {
		return nil, errors.New("render target dimensions must be at least 1x1")
	}

	c.mutex.Lock()
	addresses := make([]string, 0, len(c.clients))
	clients := make([]*rpc.TcpClient, 0, len(c.clients))
	for address, client := range c.clients {
		addresses = append(addresses, address)
		clients = append(clients, client)
	}
	c.framesRendered++
	c.mutex.Unlock()

	if len(clients) == 0 {
		return c.local.RenderFrame(width, height, view)
	}

	chunkCount := uint(len(clients))
	if chunkCount > height {
		chunkCount = height
	}
	rowsPerChunk := height / chunkCount

	img := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	var wait sync.WaitGroup
	for i := uint(0); i < chunkCount; i++ {
		startRow := i * rowsPerChunk
		endRow := startRow + rowsPerChunk
		if i == chunkCount-1 {
			// The last chunk picks up the remainder rows
			endRow = height
		}

		chunk := task.NewChunk(c.takeChunkID(), width, height, startRow, endRow, view)
		chunk.ColorScheme = c.renderSettings.ColorScheme
		chunk.SuperSampling = c.renderSettings.SuperSampling

		wait.Add(1)
		go func(address string, client *rpc.TcpClient, chunk task.Chunk) {
			defer wait.Done()
			result, ok := c.renderChunk(address, client, chunk)
			if ok {
				c.writeChunk(img, chunk, result)
			}
		}(addresses[i], clients[i], chunk)
	}
	wait.Wait()

	return img, nil
}

// renderChunk asks one worker for a chunk, falling back to the local renderer (and
// dropping the worker from the pool) when the call fails or comes back malformed.
func (c *Coordinator) renderChunk(address string, client *rpc.TcpClient, chunk task.Chunk) (task.Result, bool) {
	c.mutex.Lock()
	c.chunksSent++
	c.mutex.Unlock()

	var result task.Result
	err := client.Call("Worker.RenderChunk", chunk, &result)
	if err == nil && uint(len(result.Pixels)) == chunk.Rows()*chunk.Width {
		return result, true
	}

	if err != nil {
		c.logger.Warningf("Worker %s failed chunk %d: %s", address, chunk.ID, err)
	} else {
		c.logger.Warningf("Worker %s returned %d pixels for chunk %d, wanted %d", address, len(result.Pixels), chunk.ID, chunk.Rows()*chunk.Width)
	}
	c.removeWorker(address)

	c.mutex.Lock()
	c.chunksFailed++
	c.mutex.Unlock()

	pixels, err := c.local.RenderRows(chunk.Width, chunk.Height, chunk.View, chunk.StartRow, chunk.EndRow)
	if err != nil {
		c.logger.Errorf("Local fallback for chunk %d failed: %s", chunk.ID, err)
		return task.Result{}, false
	}
	return task.Result{ID: chunk.ID, StartRow: chunk.StartRow, Pixels: pixels}, true
}

// writeChunk copies result pixels into the frame. Chunks cover disjoint rows, so
// concurrent writers never touch the same pixel.
func (c *Coordinator) writeChunk(img *image.RGBA, chunk task.Chunk, result task.Result) {
	for i, pixel := range result.Pixels {
		x := uint(i) % chunk.Width
		y := result.StartRow + uint(i)/chunk.Width
		img.SetRGBA(int(x), int(y), pixel)
	}
}

func (c *Coordinator) takeChunkID() uint {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	id := c.nextChunkID
	c.nextChunkID++
	return id
}

func (c *Coordinator) removeWorker(address string) {
	c.mutex.Lock()
	client, ok := c.clients[address]
	delete(c.clients, address)
	c.mutex.Unlock()

	if !ok {
		return
	}
	misc.CheckError(client.Disconnect(), c.logger, misc.Warning)
	c.logger.Infof("Worker left: %s", address)
}

func (c *Coordinator) tickers() {
	rollCall := time.NewTicker(time.Minute)
	heartBeat := time.NewTicker(30 * time.Second)

	for {
		select {
		case <-rollCall.C:
			c.logger.Debug("Roll call ticker")
			c.mutex.Lock()
			addresses := make([]string, 0, len(c.clients))
			clients := make([]*rpc.TcpClient, 0, len(c.clients))
			for address, client := range c.clients {
				addresses = append(addresses, address)
				clients = append(clients, client)
			}
			c.mutex.Unlock()

			var junk misc.Nothing
			for i, client := range clients {
				var present bool
				if err := client.Call("Worker.RollCall", junk, &present); err != nil {
					c.logger.Warningf("Worker %s missed roll call: %s", addresses[i], err)
					c.removeWorker(addresses[i])
				}
			}

		case <-heartBeat.C:
			c.logger.Debug("Heart beat ticker")
			c.mutex.Lock()
			c.logger.Infof("Workers: %d | Frames: %d | Chunks [Sent: %d] [Failed: %d]", len(c.clients), c.framesRendered, c.chunksSent, c.chunksFailed)
			c.mutex.Unlock()
		}
	}
}

// Stop disconnects every worker and shuts the registration server down.
func (c *Coordinator) Stop() error {
	c.mutex.Lock()
	addresses := make([]string, 0, len(c.clients))
	for address := range c.clients {
		addresses = append(addresses, address)
	}
	c.mutex.Unlock()

	for _, address := range addresses {
		c.removeWorker(address)
	}
	return c.Server.Stop()
}

// Registry is the RPC surface workers use to join and leave the render pool. It is
// registered as service name "Coordinator", so workers call Coordinator.RegisterWorker
// and friends.
type Registry struct {
	coordinator *Coordinator
}

// RegisterWorker dials back the worker's render server and adds it to the pool.
func (r *Registry) RegisterWorker(workerServerAddress string, reply *misc.Nothing) error {
	client := rpc.NewTcpClient(workerServerAddress, workerServerAddress)
	if err := client.Connect(); err != nil {
		return err
	}

	c := r.coordinator
	c.mutex.Lock()
	c.clients[workerServerAddress] = &client
	c.mutex.Unlock()

	c.logger.Infof("Worker joined: %s", workerServerAddress)
	return nil
}

func (r *Registry) DeRegisterWorker(workerServerAddress string, reply *misc.Nothing) error {
	r.coordinator.removeWorker(workerServerAddress)
	return nil
}

func (r *Registry) RollCall(nothing misc.Nothing, present *bool) error {
	*present = true
	return nil
}
