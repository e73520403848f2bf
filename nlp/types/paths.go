package types

import (
	"path/filepath"
	"strings"
)

// NameFromFilepath derives a coder name from a file path by dropping the
// directory and the final extension: "data/coderA.tsv" -> "coderA"
func NameFromFilepath(path string) string {
	name := filepath.Base(path)
	// leading dots do not start an extension (".coder" stays ".coder")
	stem := strings.TrimLeft(name, ".")
	ext := filepath.Ext(stem)
	return strings.TrimSuffix(name, ext)
}
