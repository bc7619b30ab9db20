package eventlog

// Store abstracts generation history storage. FileStore keeps a flat log
// file; SQLiteStore keeps the same entries in a database.
type Store interface {
	Record(e Entry) error      // append one entry; zero Time means now
	Entries() ([]Entry, error) // all entries, oldest first
	Clear() error              // delete all data
	Path() string
	Close() error
}
