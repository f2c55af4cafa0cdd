package document

import (
	"userdocs-api/internal/domain/user"
)

type (
	ID       uint64
	Document struct {
		ID     ID
		UserID user.ID

		// Name is the filename as the uploader sent it, Filename is the
		// generated name the asset lives under in the uploads dir.
		Name       string
		Filename   string
		FileType   FileType
		UploadDate string

		DownloadURL string
	}
	Documents []*Document
)
