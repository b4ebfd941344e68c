package render

// shapeRegistry maps element kinds to D2 shapes. Hosts stay on the
// default rectangle.
var shapeRegistry = map[string]string{
	"sea":          "hexagon",
	"etherchannel": "package",
	"virtual":      "oval",
}

// LookupShape returns the D2 shape for an element kind, or empty when
// the default shape applies.
func LookupShape(kind string) string {
	return shapeRegistry[kind]
}
