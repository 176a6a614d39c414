//go:build !sqlite

package history

import "fmt"

func newSQLiteStore(_ string) (Store, error) {
	return nil, fmt.Errorf("sqlite history unavailable in this build; rebuild with -tags sqlite")
}
