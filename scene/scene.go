package scene

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"

	flexerrors "github.com/onebit/flexbridge/errors"
)

// Document is a decoded scene description.
type Document struct {
	Config ConfigSpec `toml:"config"`
	Nodes  []NodeSpec `toml:"node"`
}

// ConfigSpec carries config-level options applied to every node.
type ConfigSpec struct {
	UseWebDefaults bool `toml:"use_web_defaults"`
}

// NodeSpec is one node of the tree. Unset fields keep the backend's
// defaults.
type NodeSpec struct {
	ID     string `toml:"id"`
	Parent string `toml:"parent"`

	FlexDirection  string `toml:"flex_direction"`
	JustifyContent string `toml:"justify_content"`
	AlignItems     string `toml:"align_items"`
	AlignSelf      string `toml:"align_self"`
	AlignContent   string `toml:"align_content"`
	FlexWrap       string `toml:"flex_wrap"`
	Position       string `toml:"position"`
	Display        string `toml:"display"`

	Flex       *float64 `toml:"flex"`
	FlexGrow   *float64 `toml:"flex_grow"`
	FlexShrink *float64 `toml:"flex_shrink"`

	FlexBasis string `toml:"flex_basis"`
	Width     string `toml:"width"`
	Height    string `toml:"height"`
	MinWidth  string `toml:"min_width"`
	MinHeight string `toml:"min_height"`
	MaxWidth  string `toml:"max_width"`
	MaxHeight string `toml:"max_height"`

	Margin  map[string]string `toml:"margin"`
	Padding map[string]string `toml:"padding"`
	Border  map[string]string `toml:"border"`
	Inset   map[string]string `toml:"inset"`
}

// Parse decodes a scene document. Structural validation happens in
// Build; Parse only rejects TOML that does not decode.
func Parse(r io.Reader) (*Document, error) {
	var doc Document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, flexerrors.Wrap(flexerrors.PhaseDecode, flexerrors.KindInvalidData, err, "decode scene")
	}
	return &doc, nil
}

// ParseFile decodes a scene document from disk.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, flexerrors.Wrap(flexerrors.PhaseDecode, flexerrors.KindNotFound, err, "open scene file")
	}
	defer f.Close()
	return Parse(f)
}
