package evt

import (
	"github.com/asaskevich/EventBus"
)

const (
	// SuffixListRefreshed fires after a new suffix list snapshot was published. Parameter: rule count
	SuffixListRefreshed = "suffixList:refreshed"

	// SuffixListRefreshFailed fires if a refresh could not fetch or parse the suffix list. Parameter: error message
	SuffixListRefreshFailed = "suffixList:refreshFailed"

	// SuffixListDownloadFailed fires if a download of a list source failed after all attempts. Parameter: link
	SuffixListDownloadFailed = "suffixList:downloadFailed"

	// SuffixListSplitCacheChanged fires if the split result cache was changed. Parameter: new cache size
	SuffixListSplitCacheChanged = "suffixList:splitCacheChanged"

	// ApplicationStarted fires on start of the application. Parameter: version number, build time
	ApplicationStarted = "application:started"
)

// nolint
var evtBus = EventBus.New()

func Bus() EventBus.Bus {
	return evtBus
}
