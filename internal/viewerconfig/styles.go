package viewerconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"avatar-engine/internal/avatar"
)

// DefaultStylesPath is the style sheet file, relative to the working directory.
const DefaultStylesPath = "config/styles.yaml"

// StyleDef is the YAML definition for one category's appearance. Omitted
// fields keep the built-in default.
type StyleDef struct {
	Size    *float32    `yaml:"size"`
	Color   *[3]float32 `yaml:"color"`
	Opacity *float32    `yaml:"opacity"`
}

// AxisDef is the YAML definition for coordinate-frame sizing.
type AxisDef struct {
	Length *float32 `yaml:"length"`
	Width  *float32 `yaml:"width"`
}

// StyleSheet mirrors the YAML style file layout, one entry per category.
type StyleSheet struct {
	Markers     *StyleDef `yaml:"markers"`
	Contacts    *StyleDef `yaml:"contacts"`
	GlobalCoM   *StyleDef `yaml:"global_com"`
	SegmentsCoM *StyleDef `yaml:"segments_com"`
	Mesh        *StyleDef `yaml:"mesh"`
	Muscle      *StyleDef `yaml:"muscle"`
	Wrapping    *StyleDef `yaml:"wrapping"`
	RT          *AxisDef  `yaml:"rt"`
	GlobalFrame *AxisDef  `yaml:"global_frame"`
}

// LoadStyles reads a YAML style sheet from path (DefaultStylesPath when empty)
// and applies it on top of the avatar defaults. A missing file yields the
// defaults without error; a present but invalid file is an error, as is any
// value outside the avatar's accepted ranges.
func LoadStyles(path string) (avatar.Options, error) {
	opts := avatar.DefaultOptions()
	if path == "" {
		path = DefaultStylesPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, err
	}
	var sheet StyleSheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return opts, fmt.Errorf("viewerconfig: parsing %s: %w", path, err)
	}
	ApplySheet(&opts, sheet)
	if err := opts.Validate(); err != nil {
		return avatar.DefaultOptions(), fmt.Errorf("viewerconfig: %s: %w", path, err)
	}
	return opts, nil
}

// ApplySheet overlays every present sheet entry onto opts.
func ApplySheet(opts *avatar.Options, sheet StyleSheet) {
	applyStyle(&opts.Markers, sheet.Markers)
	applyStyle(&opts.Contacts, sheet.Contacts)
	applyStyle(&opts.GlobalCoM, sheet.GlobalCoM)
	applyStyle(&opts.SegmentsCoM, sheet.SegmentsCoM)
	applyStyle(&opts.Mesh, sheet.Mesh)
	applyStyle(&opts.Muscle, sheet.Muscle)
	applyStyle(&opts.Wrapping, sheet.Wrapping)
	if sheet.RT != nil {
		if sheet.RT.Length != nil {
			opts.RTLength = *sheet.RT.Length
		}
		if sheet.RT.Width != nil {
			opts.RTWidth = *sheet.RT.Width
		}
	}
	if sheet.GlobalFrame != nil {
		if sheet.GlobalFrame.Length != nil {
			opts.GlobalFrameLength = *sheet.GlobalFrame.Length
		}
		if sheet.GlobalFrame.Width != nil {
			opts.GlobalFrameWidth = *sheet.GlobalFrame.Width
		}
	}
}

func applyStyle(dst *avatar.Style, def *StyleDef) {
	if def == nil {
		return
	}
	if def.Size != nil {
		dst.Size = *def.Size
	}
	if def.Color != nil {
		dst.Color = *def.Color
	}
	if def.Opacity != nil {
		dst.Opacity = *def.Opacity
	}
}
