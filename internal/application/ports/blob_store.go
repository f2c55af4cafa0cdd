package ports

import "io"

type BlobStore interface {
	Save(src io.Reader, originalName string) (string, error)
	Delete(name string) error
	PublicURL(name string) string
}
