package document

import (
	"userdocs-api/internal/domain/document"
)

func ToResponseDocument(dDomain document.Document) Document {
	var d = Document{
		ID:         uint64(dDomain.ID),
		Name:       dDomain.Name,
		Filename:   dDomain.Filename,
		FileType:   string(dDomain.FileType),
		UploadDate: dDomain.UploadDate,
		URL:        dDomain.DownloadURL,
	}

	return d
}

func ToResponseDocuments(dsDomain document.Documents) Documents {
	ds := make(Documents, len(dsDomain))
	for idx, d := range dsDomain {
		ds[idx] = ToResponseDocument(*d)
	}

	return ds
}
