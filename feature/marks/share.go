package marks

import (
	"strings"
)

// SharePrefix starts the fragment of a share link.
const SharePrefix = "#share="

// EncodeShare returns the share fragment for ids.
func EncodeShare(ids []string) string {
	return SharePrefix + strings.Join(ids, ",")
}

// DecodeShare extracts ids from a share fragment or a full URL carrying one.
// Empty ids are dropped. ok is false when no share fragment is present.
func DecodeShare(link string) (ids []string, ok bool) {
	i := strings.Index(link, SharePrefix)
	if i < 0 {
		if !strings.HasPrefix(link, SharePrefix[1:]) {
			return nil, false
		}
		link = "#" + link
		i = 0
	}

	ids = make([]string, 0)
	for _, id := range strings.Split(link[i+len(SharePrefix):], ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids, true
}
