package render

// Theme defines colors for the diagram element kinds.
type Theme struct {
	Name   string
	Colors map[string]ThemeColor
}

// ThemeColor defines fill and stroke colors for an element kind.
type ThemeColor struct {
	Fill   string
	Stroke string
	Font   string
}

// Element kinds: host, sea, etherchannel, real, virtual. The default
// palette follows the colors of the legacy PNG diagrams (steel-blue
// hosts, orange SEAs, green etherchannels, red-orange real adapters,
// violet virtual adapters).
var themes = map[string]*Theme{
	"default": {
		Name: "default",
		Colors: map[string]ThemeColor{
			"host":         {Fill: "#DBEAFE", Stroke: "#4682B4", Font: "#1E3A5F"},
			"sea":          {Fill: "#FFEDD5", Stroke: "#FFA500", Font: "#7C2D12"},
			"etherchannel": {Fill: "#DCFCE7", Stroke: "#32CD32", Font: "#166534"},
			"real":         {Fill: "#FEE2E2", Stroke: "#FF4500", Font: "#991B1B"},
			"virtual":      {Fill: "#EDE9FE", Stroke: "#8A2BE2", Font: "#5B21B6"},
		},
	},
	"dark": {
		Name: "dark",
		Colors: map[string]ThemeColor{
			"host":         {Fill: "#0C2340", Stroke: "#60A5FA", Font: "#BFDBFE"},
			"sea":          {Fill: "#431407", Stroke: "#FB923C", Font: "#FDBA74"},
			"etherchannel": {Fill: "#052E16", Stroke: "#4ADE80", Font: "#86EFAC"},
			"real":         {Fill: "#450A0A", Stroke: "#F87171", Font: "#FCA5A5"},
			"virtual":      {Fill: "#2E1065", Stroke: "#A78BFA", Font: "#C4B5FD"},
		},
	},
	"monochrome": {
		Name: "monochrome",
		Colors: map[string]ThemeColor{
			"host":         {Fill: "#E5E7EB", Stroke: "#374151", Font: "#111827"},
			"sea":          {Fill: "#F3F4F6", Stroke: "#6B7280", Font: "#374151"},
			"etherchannel": {Fill: "#F9FAFB", Stroke: "#9CA3AF", Font: "#4B5563"},
			"real":         {Fill: "#D1D5DB", Stroke: "#4B5563", Font: "#1F2937"},
			"virtual":      {Fill: "#E5E7EB", Stroke: "#6B7280", Font: "#374151"},
		},
	},
	"ocean": {
		Name: "ocean",
		Colors: map[string]ThemeColor{
			"host":         {Fill: "#E0F2FE", Stroke: "#0284C7", Font: "#075985"},
			"sea":          {Fill: "#CFFAFE", Stroke: "#0891B2", Font: "#155E75"},
			"etherchannel": {Fill: "#DBEAFE", Stroke: "#2563EB", Font: "#1E40AF"},
			"real":         {Fill: "#FEE2E2", Stroke: "#DC2626", Font: "#991B1B"},
			"virtual":      {Fill: "#C7D2FE", Stroke: "#4F46E5", Font: "#3730A3"},
		},
	},
}

// ThemeNames returns all available theme names.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	return names
}

// GetTheme returns the named theme or the default.
func GetTheme(name string) *Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["default"]
}

// ColorForElement returns the theme color for an element kind.
func (t *Theme) ColorForElement(kind string) ThemeColor {
	if c, ok := t.Colors[kind]; ok {
		return c
	}
	return ThemeColor{Fill: "#F9FAFB", Stroke: "#D1D5DB", Font: "#111827"}
}
