package splitpane

import "github.com/grindlemire/go-splitpane/internal/layoutfile"

// Config is the caller-facing description of a layout.
type Config struct {
	// Direction is the main axis of the root level. Nested levels alternate.
	Direction Direction `json:"direction" yaml:"direction" toml:"direction"`

	// Panes are the root siblings. Sizes that do not sum to 100 are
	// normalized when the layout is built.
	Panes []PaneConfig `json:"panes" yaml:"panes" toml:"panes"`
}

// Leaf returns the configuration of a leaf pane.
func Leaf(id string, size float64, content any) PaneConfig {
	return PaneConfig{ID: id, Size: size, Content: content}
}

// Split returns the configuration of a split pane.
func Split(id string, size float64, children ...PaneConfig) PaneConfig {
	return PaneConfig{ID: id, Size: size, Children: children}
}

// Bound returns a copy of p with min and max size bounds.
func Bound(p PaneConfig, minSize, maxSize float64) PaneConfig {
	p.MinSize = &minSize
	p.MaxSize = &maxSize
	return p
}

// LoadConfig reads a configuration from a .toml, .yaml, .yml or .json file.
func LoadConfig(path string) (Config, error) {
	doc, err := layoutfile.Load(path)
	if err != nil {
		return Config{}, err
	}
	return Config{Direction: doc.Direction, Panes: doc.Panes}, nil
}

// SaveConfig writes cfg to path in the format named by its extension.
func SaveConfig(path string, cfg Config) error {
	return layoutfile.Save(path, layoutfile.Document{Direction: cfg.Direction, Panes: cfg.Panes})
}
