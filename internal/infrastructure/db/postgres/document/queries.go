package document

const (
	SelectDocuments = `
		SELECT id, user_id, name, filename, file_type, upload_date
		FROM documents
		WHERE user_id = $1
		ORDER BY id DESC
	`
	SelectDocumentByID = `
		SELECT id, user_id, name, filename, file_type, upload_date
		FROM documents
		WHERE id = $1 AND user_id = $2
	`
	InsertDocument = `
		INSERT INTO documents (user_id, name, filename, file_type, upload_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING
		  id, user_id, name, filename, file_type, upload_date
	`
	DeleteDocumentByID = `
		DELETE FROM documents
		WHERE id = $1 AND user_id = $2
	`
)
