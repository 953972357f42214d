package photo

import (
	"strings"
	"time"
)

// ScanStampLayout is DDMMYYYYHHmmss, shared by photo names and att_id.
const ScanStampLayout = "02012006150405"

const defaultExt = ".jpg"

// DeriveFilename builds "<stamp>-<base><ext>" from the device scan time and
// the uploaded name. Only the last dot separates the extension; a name
// without a dot gets ".jpg".
func DeriveFilename(scanTime time.Time, original string) string {
	// cegah path traversal dari nama file klien
	clean := strings.NewReplacer("/", "_", "\\", "_").Replace(original)
	base, ext := clean, defaultExt
	if i := strings.LastIndex(clean, "."); i >= 0 {
		base, ext = clean[:i], clean[i:]
	}
	return scanTime.Format(ScanStampLayout) + "-" + base + ext
}
