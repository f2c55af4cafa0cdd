package document

type (
	Document struct {
		ID         uint64
		UserID     uint64
		Name       string
		Filename   string
		FileType   string
		UploadDate string
	}
	Documents []*Document
)
