package layout

import (
	"sort"

	"github.com/npillmayer/lectio/core"
	"github.com/npillmayer/lectio/engine/ocr"
)

// Parser is a layout parsing mode. Run re-orders the given blocks into
// reading order (mode none keeps the input order) and annotates each with
// an end separator; for the code
// mode the output may be shorter than the input, as line fragments merge.
// Blocks are annotated in place. Parsers are stateless and may be reused,
// but callers must not alias the same blocks into concurrent calls.
type Parser interface {
	Name() string
	Run(blocks []*ocr.TextBlock) ([]*ocr.TextBlock, error)
}

// parser implements Parser as a named run function.
type parser struct {
	name string
	run  func([]*ocr.TextBlock) ([]*ocr.TextBlock, error)
}

func (p parser) Name() string { return p.name }

func (p parser) Run(blocks []*ocr.TextBlock) ([]*ocr.TextBlock, error) {
	if err := validate(blocks); err != nil {
		return nil, err
	}
	tracer().Debugf("parser %q on %d blocks", p.name, len(blocks))
	return p.run(blocks)
}

var registry = map[string]parser{
	"none":        {"none", runNone},
	"multi_para":  {"multi_para", runMultiPara},
	"multi_line":  {"multi_line", runMultiLine},
	"multi_none":  {"multi_none", runMultiNone},
	"single_para": {"single_para", runSinglePara},
	"single_line": {"single_line", runSingleLine},
	"single_none": {"single_none", runSingleNone},
	"single_code": {"single_code", runSingleCode},
}

// New returns the parser registered under the given mode key.
func New(key string) (Parser, error) {
	p, ok := registry[key]
	if !ok {
		return nil, core.Error(core.EINVALID, "unknown layout parser %q", key)
	}
	return p, nil
}

// Parse runs the parser registered under the given mode key on blocks.
func Parse(key string, blocks []*ocr.TextBlock) ([]*ocr.TextBlock, error) {
	p, err := New(key)
	if err != nil {
		return nil, err
	}
	return p.Run(blocks)
}

// Modes lists the registered mode keys, sorted.
func Modes() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func validate(blocks []*ocr.TextBlock) error {
	for i, tb := range blocks {
		if tb == nil {
			return core.Error(core.EINVALID, "text block %d is missing", i)
		}
	}
	return nil
}
