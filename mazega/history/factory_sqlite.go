//go:build sqlite

package history

func newSQLiteStore(path string) (Store, error) {
	return NewSQLiteStore(path), nil
}
