package layout

import "github.com/charmbracelet/x/ansi"

const resetCode = "\x1b[0m"

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// VisibleLength returns the display width of a string in terminal cells,
// ignoring ANSI codes. Wide runes count as two.
func VisibleLength(s string) int {
	return ansi.StringWidth(s)
}

// TruncateText truncates text to maxWidth cells with ellipsis.
// Returns the truncated text and whether truncation occurred.
func TruncateText(text string, maxWidth int, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", true
	}
	if VisibleLength(text) <= maxWidth {
		return text, false
	}

	// Not enough room for any text + ellipsis, just return truncated ellipsis
	if maxWidth <= VisibleLength(cfg.Ellipsis) {
		return ansi.Truncate(cfg.Ellipsis, maxWidth, ""), true
	}

	return ansi.Truncate(text, maxWidth, cfg.Ellipsis), true
}

// TruncateWithPrefixSuffix truncates text while preserving prefix and suffix.
// Example: TruncateWithPrefixSuffix("Documentation", 12, "▸ ", "", cfg) -> "▸ Documen..."
// Returns the truncated text and whether truncation occurred.
func TruncateWithPrefixSuffix(text string, maxWidth int, prefix, suffix string, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", true
	}

	combined := prefix + text + suffix
	if VisibleLength(combined) <= maxWidth {
		return combined, false
	}

	overhead := VisibleLength(prefix) + VisibleLength(suffix) + VisibleLength(cfg.Ellipsis)
	if overhead >= maxWidth {
		// Not enough room even for prefix + ellipsis + suffix
		return TruncateText(combined, maxWidth, cfg)
	}

	available := maxWidth - VisibleLength(prefix) - VisibleLength(suffix)
	return prefix + ansi.Truncate(text, available, cfg.Ellipsis) + suffix, true
}

// TruncateANSIAware truncates styled text, preserving ANSI codes.
// Used for quick search rows where matched runes are highlighted.
// A reset code is appended when truncating to prevent style bleed.
func TruncateANSIAware(styledText string, maxWidth int, cfg TextConfig) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisibleLength(styledText) <= maxWidth {
		return styledText
	}
	if maxWidth <= VisibleLength(cfg.Ellipsis) {
		return ansi.Truncate(cfg.Ellipsis, maxWidth, "") + resetCode
	}
	return ansi.Truncate(styledText, maxWidth, cfg.Ellipsis) + resetCode
}
