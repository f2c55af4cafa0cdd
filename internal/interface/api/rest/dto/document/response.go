package document

type (
	Document struct {
		ID         uint64 `json:"id"`
		Name       string `json:"name"`
		Filename   string `json:"filename"`
		FileType   string `json:"file_type"`
		UploadDate string `json:"upload_date"`
		URL        string `json:"url"`
	}
	Documents []Document
)
