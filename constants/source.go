package constants

// Source is the channel a product or facture arrived from.
type Source string

const (
	SourcePC       Source = "pc"
	SourceMobile   Source = "mobile"
	SourceWatchdog Source = "watchdog"
)

var allSources = []Source{SourcePC, SourceMobile, SourceWatchdog}

// ValidSource reports whether s is one of the known channels.
func ValidSource(s string) bool {
	for _, v := range allSources {
		if s == string(v) {
			return true
		}
	}
	return false
}

// SourcesAsStringSlice returns the allowed channel tags.
func SourcesAsStringSlice() []string {
	result := make([]string, len(allSources))
	for i, s := range allSources {
		result[i] = string(s)
	}
	return result
}
