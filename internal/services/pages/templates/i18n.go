package templates

import (
	"fmt"

	"golang.org/x/text/message"
)

// Localizer resolves message keys for the visitor's language. A
// *message.Printer from platform/i18n satisfies it.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T translates key with loc. Without a localizer the key itself is
// formatted, so error pages still render readable text.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	keyString, ok := key.(string)
	if !ok {
		return ""
	}
	if len(args) == 0 {
		return keyString
	}
	return fmt.Sprintf(keyString, args...)
}
