package schema

import (
	"fmt"

	"github.com/opencode-ai/themer/internal/format"
	"github.com/opencode-ai/themer/internal/theme"
)

// Builtin subsystem names.
const (
	SubsystemNotification  = "notification"
	SubsystemWindowManager = "window-manager"
	SubsystemCompositor    = "compositor"
	SubsystemGTK           = "gtk"
	SubsystemPalette       = "palette"
	SubsystemLockscreen    = "lockscreen"
)

// NewBuiltinRegistry returns a registry populated with the schemas for
// every subsystem the engine knows out of the box.
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()
	for _, s := range builtinSchemas() {
		if err := r.Register(s); err != nil {
			// Builtin schemas are fixed tables; a bad one is a
			// programming error.
			panic(err)
		}
	}
	return r
}

func builtinSchemas() []*Schema {
	return []*Schema{
		notificationSchema(),
		windowManagerSchema(),
		compositorSchema(),
		gtkSchema(),
		paletteSchema(),
		lockscreenSchema(),
	}
}

// notificationSchema covers the dunst-style daemon config: global
// geometry and fonts plus per-urgency color sections.
func notificationSchema() *Schema {
	return &Schema{
		Subsystem: SubsystemNotification,
		Format:    format.IniSections,
		Entries: []Entry{
			{Key: "font", Kind: theme.KindFont, Default: theme.FontSpec{Family: "Monospace", Size: 8, HasSize: true}},
			{Key: "width", Kind: theme.KindNumber, Default: theme.Number{Value: 300, Integral: true}},
			{Key: "height", Kind: theme.KindNumber, Default: theme.Number{Value: 80, Integral: true}},
			{Key: "corner_radius", Kind: theme.KindNumber, Default: theme.Number{Value: 0, Integral: true}},
			{Key: "frame_width", Kind: theme.KindNumber, Default: theme.Number{Value: 2, Integral: true}},
			{Key: "frame_color", Kind: theme.KindColor, Required: true},
			{Key: "origin", Kind: theme.KindEnum, Enum: []string{
				"top-left", "top-center", "top-right",
				"bottom-left", "bottom-center", "bottom-right",
			}, Default: theme.Enum("top-right")},
			{Key: "urgency_low.background", Kind: theme.KindColor, Required: true},
			{Key: "urgency_low.foreground", Kind: theme.KindColor, Required: true},
			{Key: "urgency_normal.background", Kind: theme.KindColor, Required: true},
			{Key: "urgency_normal.foreground", Kind: theme.KindColor, Required: true},
			{Key: "urgency_critical.background", Kind: theme.KindColor, Required: true},
			{Key: "urgency_critical.foreground", Kind: theme.KindColor, Required: true},
			{Key: "urgency_critical.frame_color", Kind: theme.KindColor},
		},
	}
}

// windowManagerSchema covers a themerc-style window manager file.
func windowManagerSchema() *Schema {
	return &Schema{
		Subsystem: SubsystemWindowManager,
		Format:    format.ShellAssignment,
		Entries: []Entry{
			{Key: "active_border_color", Kind: theme.KindColor, Required: true},
			{Key: "inactive_border_color", Kind: theme.KindColor, Required: true},
			{Key: "active_text_color", Kind: theme.KindColor, Required: true},
			{Key: "inactive_text_color", Kind: theme.KindColor, Required: true},
			{Key: "border_width", Kind: theme.KindNumber, Default: theme.Number{Value: 1, Integral: true}},
			{Key: "title_font", Kind: theme.KindFont},
			{Key: "title_alignment", Kind: theme.KindEnum, Enum: []string{"left", "center", "right"}, Default: theme.Enum("center")},
			{Key: "button_layout", Kind: theme.KindRaw},
		},
	}
}

// compositorSchema covers the compositor's $name = value theme
// variables.
func compositorSchema() *Schema {
	return &Schema{
		Subsystem: SubsystemCompositor,
		Format:    format.ShellAssignment,
		Entries: []Entry{
			{Key: "$accent", Kind: theme.KindColor, Required: true},
			{Key: "$background", Kind: theme.KindColor, Required: true},
			{Key: "$foreground", Kind: theme.KindColor, Required: true},
			{Key: "$inactive", Kind: theme.KindColor},
			{Key: "$rounding", Kind: theme.KindNumber, Default: theme.Number{Value: 10, Integral: true}, Scaled: true},
			{Key: "$border_size", Kind: theme.KindNumber, Default: theme.Number{Value: 2, Integral: true}},
			{Key: "$gaps_in", Kind: theme.KindNumber, Default: theme.Number{Value: 5, Integral: true}, Scaled: true},
			{Key: "$gaps_out", Kind: theme.KindNumber, Default: theme.Number{Value: 10, Integral: true}, Scaled: true},
			{Key: "$active_opacity", Kind: theme.KindNumber, Default: theme.Number{Value: 1, Integral: true}},
			{Key: "$inactive_opacity", Kind: theme.KindNumber, Default: theme.Number{Value: 1, Integral: true}},
		},
	}
}

// gtkSchema covers the shell-sourced GTK variable exports.
func gtkSchema() *Schema {
	return &Schema{
		Subsystem: SubsystemGTK,
		Format:    format.ShellAssignment,
		Entries: []Entry{
			{Key: "gtk_theme", Kind: theme.KindRaw, Required: true},
			{Key: "icon_theme", Kind: theme.KindRaw, Required: true},
			{Key: "cursor_theme", Kind: theme.KindRaw},
			{Key: "cursor_size", Kind: theme.KindNumber, Default: theme.Number{Value: 24, Integral: true}},
			{Key: "font_name", Kind: theme.KindFont, Required: true},
			{Key: "color_scheme", Kind: theme.KindEnum, Enum: []string{"prefer-dark", "prefer-light", "default"}, Default: theme.Enum("prefer-dark")},
		},
	}
}

// paletteSchema covers the JSON color scheme document: the sixteen
// terminal colors plus special colors.
func paletteSchema() *Schema {
	entries := []Entry{
		{Key: "background", Kind: theme.KindColor, Required: true},
		{Key: "foreground", Kind: theme.KindColor, Required: true},
		{Key: "cursor", Kind: theme.KindColor},
	}
	for i := 0; i < 16; i++ {
		entries = append(entries, Entry{
			Key:      fmt.Sprintf("color%d", i),
			Kind:     theme.KindColor,
			Required: true,
		})
	}
	return &Schema{
		Subsystem: SubsystemPalette,
		Format:    format.JSON,
		Entries:   entries,
	}
}

// lockscreenSchema covers the lock screen variable file. Sizes and
// offsets scale with the display so the layout stays balanced across
// DPIs.
func lockscreenSchema() *Schema {
	return &Schema{
		Subsystem: SubsystemLockscreen,
		Format:    format.ShellAssignment,
		Entries: []Entry{
			{Key: "$wallpaper", Kind: theme.KindPath, Required: true},
			{Key: "$profilepic", Kind: theme.KindPath},
			{Key: "$bg_color", Kind: theme.KindColor, Required: true},
			{Key: "$inner_color", Kind: theme.KindColor, Required: true},
			{Key: "$check_color", Kind: theme.KindColor, Required: true},
			{Key: "$fail_color", Kind: theme.KindColor, Required: true},
			{Key: "$label_color", Kind: theme.KindColor, Required: true},
			{Key: "$font_family", Kind: theme.KindRaw, Default: theme.Raw("JetBrains Mono")},
			{Key: "$font_size", Kind: theme.KindNumber, Default: theme.Number{Value: 16, Integral: true}, Scaled: true},
			{Key: "$input_width", Kind: theme.KindNumber, Default: theme.Number{Value: 300, Integral: true}, Scaled: true},
			{Key: "$input_height", Kind: theme.KindNumber, Default: theme.Number{Value: 50, Integral: true}, Scaled: true},
			{Key: "$pos_offset", Kind: theme.KindNumber, Default: theme.Number{Value: 120, Integral: true}, Scaled: true},
		},
	}
}
