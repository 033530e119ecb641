package util
import (
	"strings"
	"path/filepath"
)

// ExtractExtension returns the suffix of filename including the
// leading dot, e.g. ".txt", or an empty string when there is none.
func ExtractExtension( filename string ) string {
	return filepath.Ext( filename )
}

// ReplaceExtension swaps whatever suffix base has for ext.
// ext carries its own leading dot and may be empty.
func ReplaceExtension( base, ext string ) string {
	return strings.TrimSuffix( base, filepath.Ext( base ) ) + ext
}
