// Glyph sheet for the builtin block font. Lowercase letters share the
// uppercase shapes.

package figlet

// blockRows holds the builtin font's glyph rows for codes 32..126.
var blockRows = [GlyphCount][5]string{
	{"   ", "   ", "   ", "   ", "   "},
	{"█", "█", "█", " ", "█"},
	{"█ █", "█ █", "   ", "   ", "   "},
	{" █ █ ", "█████", " █ █ ", "█████", " █ █ "},
	{" ████", "█ █  ", " ███ ", "  █ █", "████ "},
	{"█   █", "   █ ", "  █  ", " █   ", "█   █"},
	{" ██  ", "█  █ ", " ██ █", "█  █ ", " ██ █"},
	{"█", "█", " ", " ", " "},
	{" █", "█ ", "█ ", "█ ", " █"},
	{"█ ", " █", " █", " █", "█ "},
	{"     ", "█ █ █", " ███ ", "█ █ █", "     "},
	{"     ", "  █  ", "█████", "  █  ", "     "},
	{"  ", "  ", "  ", " █", "█ "},
	{"    ", "    ", "████", "    ", "    "},
	{" ", " ", " ", " ", "█"},
	{"    █", "   █ ", "  █  ", " █   ", "█    "},
	{" ███ ", "█  ██", "█ █ █", "██  █", " ███ "},
	{" █ ", "██ ", " █ ", " █ ", "███"},
	{"████ ", "    █", " ███ ", "█    ", "█████"},
	{"████ ", "    █", " ███ ", "    █", "████ "},
	{"█   █", "█   █", "█████", "    █", "    █"},
	{"█████", "█    ", "████ ", "    █", "████ "},
	{" ███ ", "█    ", "████ ", "█   █", " ███ "},
	{"█████", "    █", "   █ ", "  █  ", "  █  "},
	{" ███ ", "█   █", " ███ ", "█   █", " ███ "},
	{" ███ ", "█   █", " ████", "    █", " ███ "},
	{" ", "█", " ", "█", " "},
	{"  ", " █", "  ", " █", "█ "},
	{"  █", " █ ", "█  ", " █ ", "  █"},
	{"    ", "████", "    ", "████", "    "},
	{"█  ", " █ ", "  █", " █ ", "█  "},
	{"████ ", "    █", "  ██ ", "     ", "  █  "},
	{" ███ ", "█ ███", "█ █ █", "█ ███", " ██  "},
	{" ███ ", "█   █", "█████", "█   █", "█   █"},
	{"████ ", "█   █", "████ ", "█   █", "████ "},
	{" ████", "█    ", "█    ", "█    ", " ████"},
	{"████ ", "█   █", "█   █", "█   █", "████ "},
	{"█████", "█    ", "████ ", "█    ", "█████"},
	{"█████", "█    ", "████ ", "█    ", "█    "},
	{" ████", "█    ", "█  ██", "█   █", " ████"},
	{"█   █", "█   █", "█████", "█   █", "█   █"},
	{"███", " █ ", " █ ", " █ ", "███"},
	{"    █", "    █", "    █", "█   █", " ███ "},
	{"█   █", "█  █ ", "███  ", "█  █ ", "█   █"},
	{"█    ", "█    ", "█    ", "█    ", "█████"},
	{"█   █", "██ ██", "█ █ █", "█   █", "█   █"},
	{"█   █", "██  █", "█ █ █", "█  ██", "█   █"},
	{" ███ ", "█   █", "█   █", "█   █", " ███ "},
	{"████ ", "█   █", "████ ", "█    ", "█    "},
	{" ███ ", "█   █", "█ █ █", "█  █ ", " ██ █"},
	{"████ ", "█   █", "████ ", "█  █ ", "█   █"},
	{" ████", "█    ", " ███ ", "    █", "████ "},
	{"█████", "  █  ", "  █  ", "  █  ", "  █  "},
	{"█   █", "█   █", "█   █", "█   █", " ███ "},
	{"█   █", "█   █", "█   █", " █ █ ", "  █  "},
	{"█   █", "█   █", "█ █ █", "██ ██", "█   █"},
	{"█   █", " █ █ ", "  █  ", " █ █ ", "█   █"},
	{"█   █", " █ █ ", "  █  ", "  █  ", "  █  "},
	{"█████", "   █ ", "  █  ", " █   ", "█████"},
	{"██", "█ ", "█ ", "█ ", "██"},
	{"█    ", " █   ", "  █  ", "   █ ", "    █"},
	{"██", " █", " █", " █", "██"},
	{" █ ", "█ █", "   ", "   ", "   "},
	{"    ", "    ", "    ", "    ", "████"},
	{"█ ", " █", "  ", "  ", "  "},
	{" ███ ", "█   █", "█████", "█   █", "█   █"},
	{"████ ", "█   █", "████ ", "█   █", "████ "},
	{" ████", "█    ", "█    ", "█    ", " ████"},
	{"████ ", "█   █", "█   █", "█   █", "████ "},
	{"█████", "█    ", "████ ", "█    ", "█████"},
	{"█████", "█    ", "████ ", "█    ", "█    "},
	{" ████", "█    ", "█  ██", "█   █", " ████"},
	{"█   █", "█   █", "█████", "█   █", "█   █"},
	{"███", " █ ", " █ ", " █ ", "███"},
	{"    █", "    █", "    █", "█   █", " ███ "},
	{"█   █", "█  █ ", "███  ", "█  █ ", "█   █"},
	{"█    ", "█    ", "█    ", "█    ", "█████"},
	{"█   █", "██ ██", "█ █ █", "█   █", "█   █"},
	{"█   █", "██  █", "█ █ █", "█  ██", "█   █"},
	{" ███ ", "█   █", "█   █", "█   █", " ███ "},
	{"████ ", "█   █", "████ ", "█    ", "█    "},
	{" ███ ", "█   █", "█ █ █", "█  █ ", " ██ █"},
	{"████ ", "█   █", "████ ", "█  █ ", "█   █"},
	{" ████", "█    ", " ███ ", "    █", "████ "},
	{"█████", "  █  ", "  █  ", "  █  ", "  █  "},
	{"█   █", "█   █", "█   █", "█   █", " ███ "},
	{"█   █", "█   █", "█   █", " █ █ ", "  █  "},
	{"█   █", "█   █", "█ █ █", "██ ██", "█   █"},
	{"█   █", " █ █ ", "  █  ", " █ █ ", "█   █"},
	{"█   █", " █ █ ", "  █  ", "  █  ", "  █  "},
	{"█████", "   █ ", "  █  ", " █   ", "█████"},
	{" ██", " █ ", "█  ", " █ ", " ██"},
	{"█", "█", "█", "█", "█"},
	{"██ ", " █ ", "  █", " █ ", "██ "},
	{"     ", " █   ", "█ █ █", "   █ ", "     "},
}
