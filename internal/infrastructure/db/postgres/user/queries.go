package user

const (
	SelectUserByID = `
		SELECT id, email, password_hash, name, avatar_url
		FROM users
		WHERE id = $1
	`
	SelectUserByEmail = `
		SELECT id, email, password_hash, name, avatar_url
		FROM users
		WHERE email = $1
	`
	InsertUser = `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		RETURNING
		  id, email, password_hash, name, avatar_url
	`
	UpdateProfileByID = `
		UPDATE users
		SET name = COALESCE($2, name),
		    avatar_url = COALESCE($3, avatar_url)
		WHERE id = $1
		RETURNING
		  id, email, password_hash, name, avatar_url
	`
)
