package document

import (
	domain "userdocs-api/internal/domain/document"
	"userdocs-api/internal/domain/user"
)

func fromDBModel(model *Document) *domain.Document {
	var d = &domain.Document{
		ID:         domain.ID(model.ID),
		UserID:     user.ID(model.UserID),
		Name:       model.Name,
		Filename:   model.Filename,
		FileType:   domain.FileType(model.FileType),
		UploadDate: model.UploadDate,
	}

	return d
}

func fromDBModels(models *Documents) domain.Documents {
	ds := make(domain.Documents, len(*models))
	for idx, d := range *models {
		ds[idx] = fromDBModel(d)
	}

	return ds
}
