package mailqueue

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"
)

// newMessageID builds an id of the form email-<unix-ms>-<base36 token>.
// The embedded timestamp makes ids sortable and debuggable by eye; the random
// suffix keeps them unique within the same millisecond.
func newMessageID(now time.Time) string {
	return fmt.Sprintf("email-%d-%s", now.UnixMilli(), strconv.FormatUint(rand.Uint64(), 36))
}
