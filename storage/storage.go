package storage

import "mime/multipart"

// Store abstracts image asset persistence for dependency injection and
// testing. Accept and Replace return the stored reference, or an empty
// string when the upload is rejected (bad extension, missing file) -
// rejection is not an error, the item simply ends up without an image.
type Store interface {
	Accept(fh *multipart.FileHeader) (string, error)
	Replace(oldRef string, fh *multipart.FileHeader) (string, error)
	Remove(ref string) error
}
