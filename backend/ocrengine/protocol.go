package ocrengine

import (
	"encoding/json"

	"github.com/bytedance/sonic"
	"github.com/npillmayer/lectio/engine/ocr"
)

// request is one instruction to the engine. Exactly one of the fields is
// set; an all-empty request merely probes the connection.
type request struct {
	ImagePath   string `json:"image_path,omitempty"`
	ImageBase64 string `json:"image_base64,omitempty"`
}

// encodeRequest renders a request as a newline-terminated JSON line.
func encodeRequest(req request) ([]byte, error) {
	b, err := sonic.Marshal(req)
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// envelope is the wire shape of an engine response. data is an array of
// raw blocks on success and a message string otherwise.
type envelope struct {
	Code int             `json:"code"`
	Data json.RawMessage `json:"data"`
}

// decodeResult decodes a raw response line into a result. A line that is
// not a valid envelope yields a client-side CodeBadEnvelope result rather
// than an error: the transport worked, the payload did not.
func decodeResult(raw []byte) *ocr.Result {
	var env envelope
	if err := sonic.Unmarshal(raw, &env); err != nil {
		tracer().Errorf("engine response is not JSON: %v", err)
		return &ocr.Result{
			Code:    ocr.CodeBadEnvelope,
			Message: "engine response is not valid JSON: " + string(raw),
		}
	}
	res := &ocr.Result{Code: env.Code}
	if env.Code == ocr.CodeOK {
		if err := sonic.Unmarshal(env.Data, &res.Blocks); err != nil {
			return &ocr.Result{
				Code:    ocr.CodeBadEnvelope,
				Message: "engine block list does not decode: " + err.Error(),
			}
		}
		return res
	}
	if len(env.Data) > 0 {
		// data carries a diagnostic message on failure codes
		if err := sonic.Unmarshal(env.Data, &res.Message); err != nil {
			res.Message = string(env.Data)
		}
	}
	return res
}
