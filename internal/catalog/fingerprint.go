package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// SchemaFingerprint hashes a collection's property names, types, and
// marker presence. It is order-independent: two schemas with the same
// properties in any order produce the same fingerprint. A changed
// fingerprint means the collection owner altered the schema and any
// previously confirmed mapping can no longer be trusted.
func SchemaFingerprint(props []Property) string {
	lines := make([]string, 0, len(props))
	for _, p := range props {
		lines = append(lines, fmt.Sprintf("%s\x00%s\x00%t", p.Name, p.Type, p.IsMarker()))
	}
	sort.Strings(lines)

	h := sha256.Sum256([]byte(strings.Join(lines, "\n")))
	return hex.EncodeToString(h[:])
}
