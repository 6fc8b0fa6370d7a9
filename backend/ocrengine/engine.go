package ocrengine

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/npillmayer/lectio/core"
	"github.com/npillmayer/lectio/engine/ocr"
)

// Engine process banners scanned for during startup.
const (
	bannerReady     = "OCR init completed."
	bannerClipboard = "OCR clipboard enbaled." // the engine's spelling
	bannerSocket    = "Socket init completed. "
)

// Options configure how an engine process is started.
type Options struct {
	// ExePath locates the engine binary. The process runs with the
	// binary's directory as working directory.
	ExePath string

	// ModelsPath optionally locates the recognition models folder; when
	// empty, the engine expects it next to the binary.
	ModelsPath string

	// Args are extra engine flags, passed as --key value (booleans as
	// --key=value, which the engine requires in one token).
	Args map[string]interface{}
}

func (opts Options) argv() []string {
	argv := []string{}
	if opts.ModelsPath != "" {
		argv = append(argv, "--models_path", opts.ModelsPath)
	}
	keys := make([]string, 0, len(opts.Args))
	for k := range opts.Args {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		switch v := opts.Args[k].(type) {
		case bool:
			argv = append(argv, fmt.Sprintf("--%s=%t", k, v))
		case string:
			argv = append(argv, "--"+k, v)
		default:
			argv = append(argv, "--"+k, fmt.Sprint(v))
		}
	}
	return argv
}

// Engine is a running OCR engine subprocess in pipe mode. It is not safe
// for concurrent use: requests and responses travel over a single pair of
// pipes, strictly in lockstep.
type Engine struct {
	cmd       *exec.Cmd
	stdin     io.WriteCloser
	stdout    *bufio.Reader
	clipboard bool
}

// Start spawns the engine binary and waits for its ready banner.
func Start(opts Options) (*Engine, error) {
	cmd := exec.Command(opts.ExePath, opts.argv()...)
	cmd.Dir = filepath.Dir(opts.ExePath)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, core.WrapError(err, core.ECONNECTION, "cannot open engine stdin")
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, core.WrapError(err, core.ECONNECTION, "cannot open engine stdout")
	}
	if err := cmd.Start(); err != nil {
		return nil, core.WrapError(err, core.ECONNECTION, "cannot start engine %q", opts.ExePath)
	}
	e := &Engine{
		cmd:    cmd,
		stdin:  stdin,
		stdout: bufio.NewReader(stdout),
	}
	if err := e.awaitReady(); err != nil {
		e.Close()
		return nil, err
	}
	tracer().Infof("engine %q ready", opts.ExePath)
	return e, nil
}

// awaitReady scans startup output until the ready banner appears, noting
// capability banners along the way.
func (e *Engine) awaitReady() error {
	for {
		line, err := e.stdout.ReadString('\n')
		if err != nil {
			return core.WrapError(err, core.ECONNECTION, "engine exited during startup")
		}
		tracer().Debugf("engine: %s", strings.TrimRight(line, "\n"))
		if strings.Contains(line, bannerClipboard) {
			e.clipboard = true
		}
		if strings.Contains(line, bannerReady) {
			return nil
		}
	}
}

// ClipboardEnabled reports whether the engine announced clipboard support.
func (e *Engine) ClipboardEnabled() bool {
	return e.clipboard
}

// Recognize runs text recognition on a local image file.
func (e *Engine) Recognize(imagePath string) (*ocr.Result, error) {
	return e.roundTrip(request{ImagePath: imagePath})
}

// RecognizeBase64 runs text recognition on a base64-encoded image.
func (e *Engine) RecognizeBase64(imageBase64 string) (*ocr.Result, error) {
	return e.roundTrip(request{ImageBase64: imageBase64})
}

// RecognizeBytes runs text recognition on raw image bytes.
func (e *Engine) RecognizeBytes(image []byte) (*ocr.Result, error) {
	return e.RecognizeBase64(base64.StdEncoding.EncodeToString(image))
}

// RecognizeClipboard runs text recognition on the first image in the
// system clipboard. Fails unless the engine announced clipboard support.
func (e *Engine) RecognizeClipboard() (*ocr.Result, error) {
	if !e.clipboard {
		return nil, core.Error(core.EMISSING, "engine has no clipboard support")
	}
	return e.Recognize("clipboard")
}

// roundTrip sends one request line and reads one response line. Transport
// failures return both a client-coded result and an error; callers
// following the result codes and callers following errors see the same
// event.
func (e *Engine) roundTrip(req request) (*ocr.Result, error) {
	if e.cmd == nil {
		return &ocr.Result{Code: ocr.CodeEngineGone, Message: "engine is closed"},
			core.Error(core.ECONNECTION, "engine is closed")
	}
	line, err := encodeRequest(req)
	if err != nil {
		return nil, core.WrapError(err, core.EINTERNAL, "cannot encode request")
	}
	if _, err := e.stdin.Write(line); err != nil {
		return &ocr.Result{Code: ocr.CodeSendFailed, Message: err.Error()},
			core.WrapError(err, core.ECONNECTION, "cannot write to engine")
	}
	resp, err := e.stdout.ReadBytes('\n')
	if err != nil {
		return &ocr.Result{Code: ocr.CodeRecvFailed, Message: err.Error()},
			core.WrapError(err, core.ECONNECTION, "cannot read from engine")
	}
	return decodeResult(resp), nil
}

// Close terminates the engine process. It is safe to call more than once.
func (e *Engine) Close() error {
	if e.cmd == nil {
		return nil
	}
	e.stdin.Close()
	err := e.cmd.Process.Kill()
	e.cmd.Wait()
	e.cmd = nil
	tracer().Infof("engine closed")
	return err
}
