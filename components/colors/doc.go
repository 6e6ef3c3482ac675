// Package colors provides the catalog of color names the downstream renderer
// accepts for its design.color field, search helpers, and a small net/http
// handler that returns JSON options for color-picker inputs.
//
// The default handler responds to GET and HEAD requests and supports query
// and limit parameters. An empty query returns the top of the palette rather
// than nothing, since pickers want the full list before the user types. The
// backing data is the embedded CSS named-color list under data/css_colors.txt.
package colors
