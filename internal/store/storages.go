package store

// Storages groups every storage the relay needs.
type Storages struct {
	ClipboardStorage ClipboardStorage
}

// NewStorages creates the relay storages. Nothing is persisted: a restart
// always begins with an empty clipboard.
func NewStorages(opts ...Option) *Storages {
	return &Storages{
		ClipboardStorage: NewClipboardStore(opts...),
	}
}
