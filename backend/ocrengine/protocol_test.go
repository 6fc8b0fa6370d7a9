package ocrengine

import (
	"strings"
	"testing"

	"github.com/npillmayer/lectio/core/geom"
	"github.com/npillmayer/lectio/engine/ocr"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestEncodeRequest(t *testing.T) {
	line, err := encodeRequest(request{ImagePath: "page.png"})
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(line), "\n"))
	assert.JSONEq(t, `{"image_path":"page.png"}`, strings.TrimRight(string(line), "\n"))
	//
	line, err = encodeRequest(request{})
	assert.NoError(t, err)
	assert.JSONEq(t, `{}`, strings.TrimRight(string(line), "\n"))
}

func TestDecodeResultBlocks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lectio.engine")
	defer teardown()
	//
	raw := `{"code":100,"data":[
		{"box":[[29,19],[172,19],[172,44],[29,44]],"score":0.89,"text":"text111"},
		{"box":[[29,60],[161,60],[161,86],[29,86]],"score":0.75,"text":"text222"}
	]}`
	res := decodeResult([]byte(raw))
	assert.True(t, res.Ok())
	assert.Len(t, res.Blocks, 2)
	assert.Equal(t, "text111", res.Blocks[0].Text)
	assert.Equal(t, 0.89, res.Blocks[0].Score)
	assert.Equal(t, geom.Point{X: 29, Y: 19}, res.Blocks[0].Box[geom.TopL])
	assert.Equal(t, geom.Point{X: 161, Y: 86}, res.Blocks[1].Box[geom.BotR])
}

func TestDecodeResultNoText(t *testing.T) {
	res := decodeResult([]byte(`{"code":101,"data":""}`))
	assert.False(t, res.Ok())
	assert.True(t, res.NoText())
}

func TestDecodeResultFailure(t *testing.T) {
	res := decodeResult([]byte(`{"code":200,"data":"image path does not exist"}`))
	assert.False(t, res.Ok())
	assert.Equal(t, 200, res.Code)
	assert.Equal(t, "image path does not exist", res.Message)
}

func TestDecodeResultGarbage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lectio.engine")
	defer teardown()
	//
	res := decodeResult([]byte("OCR init completed.\n"))
	assert.Equal(t, ocr.CodeBadEnvelope, res.Code)
	assert.NotEmpty(t, res.Message)
}

func TestParseSocketBanner(t *testing.T) {
	addr, err := parseSocketBanner("Socket init completed. 127.0.0.1:8697\n")
	assert.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8697", addr)
	//
	_, err = parseSocketBanner("OCR init completed.\n")
	assert.Error(t, err)
	_, err = parseSocketBanner("Socket init completed. gibberish\n")
	assert.Error(t, err)
}

func TestOptionsArgv(t *testing.T) {
	opts := Options{
		ModelsPath: "/opt/models",
		Args: map[string]interface{}{
			"port":       0,
			"addr":       "loopback",
			"use_angle":  true,
			"config_path": "zh.txt",
		},
	}
	argv := opts.argv()
	assert.Equal(t, []string{
		"--models_path", "/opt/models",
		"--addr", "loopback",
		"--config_path", "zh.txt",
		"--port", "0",
		"--use_angle=true",
	}, argv)
}
