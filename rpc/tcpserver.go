package rpc

import (
	"net"
	"net/rpc"
	"time"

	"github.com/BrugadaSyndrome/bslogger"
)

// TcpServer serves one object's RPC methods over raw TCP. The accept loop polls with a
// short deadline so Stop can interrupt it through the shutdown channel.
type TcpServer struct {
	address     string
	listener    *net.TCPListener
	object      interface{}
	serviceName string
	shutdown    chan bool

	Logger bslogger.Logger
}

// NewTcpServer prepares a server that exposes object's methods as serviceName.Method.
func NewTcpServer(object interface{}, serviceName string, address string) TcpServer {
	return TcpServer{
		address:     address,
		object:      object,
		serviceName: serviceName,
		shutdown:    make(chan bool, 1),
		Logger:      bslogger.NewLogger(serviceName+"Server", bslogger.Normal, nil),
	}
}

func (ts *TcpServer) Run() error {
	handler := rpc.NewServer()
	err := handler.RegisterName(ts.serviceName, ts.object)
	if err != nil {
		ts.Logger.Errorf("Registering object as %s", ts.serviceName)
		return err
	}

	tcpAddress, err := net.ResolveTCPAddr("tcp", ts.address)
	if err != nil {
		ts.Logger.Errorf("Resolving tcp address %s", ts.address)
		return err
	}

	ts.listener, err = net.ListenTCP("tcp", tcpAddress)
	if err != nil {
		ts.Logger.Errorf("Listening at address %s", ts.address)
		return err
	}

	go func() {
		for {
			select {
			case <-ts.shutdown:
				err := ts.listener.Close()
				if err != nil {
					ts.Logger.Infof("Server closed connection to client - %s", err)
				}
				return
			default:
				// Poll this connection periodically
				ts.listener.SetDeadline(time.Now().Add(1 * time.Second))
			}

			conn, err := ts.listener.Accept()
			if err != nil {
				netErr, ok := err.(net.Error)
				if ok && netErr.Timeout() {
					// Deadline timeout has occurred
					continue
				}
				ts.Logger.Warningf("Accepting connection at address %s - %s", ts.address, err.Error())
				continue
			}

			ts.Logger.Infof("Server opened connection to client at address %s", conn.RemoteAddr())
			go handler.ServeConn(conn)
		}
	}()

	ts.Logger.Infof("Running server at address %s", ts.address)
	return nil
}

func (ts *TcpServer) Stop() error {
	ts.Logger.Infof("Shutting down server at address %s", ts.address)
	close(ts.shutdown)
	return nil
}
