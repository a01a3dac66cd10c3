// apps/go-solver/assets/embed.go
//
// Files compiled into the binary:
//   - words.txt:  default candidate list (five-letter words, one per line).
//   - sql/*.sql:  schema migrations applied in lexical order at startup.

package assets

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
)

// WordsFile is the path of the default word list inside FS.
const WordsFile = "words.txt"

//go:embed words.txt sql/*.sql
var FS embed.FS

// Migrations returns the embedded migration file names in apply order.
func Migrations() ([]string, error) {
	entries, err := fs.ReadDir(FS, "sql")
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".sql") {
			continue
		}
		out = append(out, "sql/"+e.Name())
	}
	sort.Strings(out)
	return out, nil
}
