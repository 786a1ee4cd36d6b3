package byteutils

import "time"

// Timestamp is the current-time oracle used to stamp KeyPair creation.
func Timestamp() time.Time {
	return time.Now().UTC()
}
