package userRepository

const (
	queryCreateUser = `
	INSERT INTO users (id, username, email, password, role, created_at)
	VALUES (:id, :username, :email, :password, :role, :created_at)
	`

	queryGetUserByUsername = `
	SELECT id, username, email, password, role, created_at
	FROM users
	WHERE username = :username
	`

	queryGetUserByID = `
	SELECT id, username, email, password, role, created_at
	FROM users
	WHERE id = :id
	`
)
