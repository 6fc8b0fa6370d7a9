package ocrengine

import (
	"io"
	"net"
	"strings"

	"github.com/npillmayer/lectio/core"
	"github.com/npillmayer/lectio/engine/ocr"
)

// RemotePrefix marks an engine address instead of a binary path:
// "remote://host:port".
const RemotePrefix = "remote://"

// SocketEngine reaches an OCR engine over TCP, one request per
// connection: the request line is written, the write side half-closed,
// and the response read to EOF. A locally started server engine is
// supervised like a pipe engine; a remote one is just an address.
type SocketEngine struct {
	proc      *Engine // nil for a remote engine
	addr      string
	clipboard bool
}

// StartServer spawns the engine binary in server mode on a loopback port
// chosen by the engine, and parses the socket banner for the address.
func StartServer(opts Options) (*SocketEngine, error) {
	if opts.Args == nil {
		opts.Args = map[string]interface{}{}
	}
	if _, ok := opts.Args["port"]; !ok {
		opts.Args["port"] = 0
	}
	if _, ok := opts.Args["addr"]; !ok {
		opts.Args["addr"] = "loopback"
	}
	proc, err := Start(opts)
	if err != nil {
		return nil, err
	}
	line, err := proc.stdout.ReadString('\n')
	if err != nil {
		proc.Close()
		return nil, core.WrapError(err, core.ECONNECTION, "engine exited before socket init")
	}
	addr, err := parseSocketBanner(line)
	if err != nil {
		proc.Close()
		return nil, err
	}
	tracer().Infof("engine serving on %s", addr)
	return &SocketEngine{
		proc:      proc,
		addr:      addr,
		clipboard: proc.ClipboardEnabled(),
	}, nil
}

// Dial connects to an already running engine. addr accepts "host:port",
// with or without the remote:// prefix; the aliases "loopback" and "any"
// name 127.0.0.1 and 0.0.0.0. The connection is probed with an empty
// request before the engine is accepted.
func Dial(addr string) (*SocketEngine, error) {
	addr = strings.TrimPrefix(addr, RemotePrefix)
	if host, port, err := net.SplitHostPort(addr); err == nil {
		switch host {
		case "loopback":
			addr = net.JoinHostPort("127.0.0.1", port)
		case "any":
			addr = net.JoinHostPort("0.0.0.0", port)
		}
	}
	s := &SocketEngine{addr: addr}
	if _, err := s.roundTrip(request{}); err != nil {
		return nil, err
	}
	tracer().Infof("connected to engine at %s", addr)
	return s, nil
}

// parseSocketBanner extracts "ip:port" from the engine's socket banner.
func parseSocketBanner(line string) (string, error) {
	idx := strings.Index(line, bannerSocket)
	if idx < 0 {
		return "", core.Error(core.ECONNECTION, "engine did not announce a socket: %q",
			strings.TrimRight(line, "\n"))
	}
	addr := strings.TrimSpace(line[idx+len(bannerSocket):])
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return "", core.WrapError(err, core.ECONNECTION, "malformed socket banner %q", addr)
	}
	return addr, nil
}

// Addr returns the engine's TCP address.
func (s *SocketEngine) Addr() string {
	return s.addr
}

// ClipboardEnabled reports whether a locally started engine announced
// clipboard support. Always false for a remote engine.
func (s *SocketEngine) ClipboardEnabled() bool {
	return s.clipboard
}

// Recognize runs text recognition on an image file local to the engine.
func (s *SocketEngine) Recognize(imagePath string) (*ocr.Result, error) {
	return s.roundTrip(request{ImagePath: imagePath})
}

// RecognizeBase64 runs text recognition on a base64-encoded image.
func (s *SocketEngine) RecognizeBase64(imageBase64 string) (*ocr.Result, error) {
	return s.roundTrip(request{ImageBase64: imageBase64})
}

func (s *SocketEngine) roundTrip(req request) (*ocr.Result, error) {
	line, err := encodeRequest(req)
	if err != nil {
		return nil, core.WrapError(err, core.EINTERNAL, "cannot encode request")
	}
	conn, err := net.Dial("tcp", s.addr)
	if err != nil {
		return &ocr.Result{Code: ocr.CodeSendFailed, Message: err.Error()},
			core.WrapError(err, core.ECONNECTION, "cannot connect to engine at %s", s.addr)
	}
	defer conn.Close()
	if _, err := conn.Write(line); err != nil {
		return &ocr.Result{Code: ocr.CodeSendFailed, Message: err.Error()},
			core.WrapError(err, core.ECONNECTION, "cannot write to engine at %s", s.addr)
	}
	if tc, ok := conn.(*net.TCPConn); ok {
		tc.CloseWrite() // engine answers after seeing EOF on the request
	}
	resp, err := io.ReadAll(conn)
	if err != nil {
		return &ocr.Result{Code: ocr.CodeRecvFailed, Message: err.Error()},
			core.WrapError(err, core.ECONNECTION, "cannot read from engine at %s", s.addr)
	}
	return decodeResult(resp), nil
}

// Close terminates a locally started engine process; closing a remote
// engine is a no-op. Safe to call more than once.
func (s *SocketEngine) Close() error {
	if s.proc == nil {
		return nil
	}
	err := s.proc.Close()
	s.proc = nil
	return err
}
