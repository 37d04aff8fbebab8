package mediaRepository

const (
	queryCreateMedia = `
		INSERT INTO media (
			id,
			filename,
			original_name,
			mimetype,
			size,
			url,
			alt_text,
			description,
			uploaded_at
		) VALUES (
			:id,
			:filename,
			:original_name,
			:mimetype,
			:size,
			:url,
			:alt_text,
			:description,
			:uploaded_at
		)
	`

	queryGetMediaByID = `
		SELECT
			id,
			filename,
			original_name,
			mimetype,
			size,
			url,
			alt_text,
			description,
			uploaded_at
		FROM media
		WHERE id = :id
	`

	queryGetAllMedia = `
		SELECT
			id,
			filename,
			original_name,
			mimetype,
			size,
			url,
			alt_text,
			description,
			uploaded_at
		FROM media
		ORDER BY uploaded_at DESC
	`

	queryUpdateMedia = `
		UPDATE media
		SET
			original_name = :original_name,
			alt_text = :alt_text,
			description = :description
		WHERE id = :id
	`

	queryDeleteMedia = `
		DELETE FROM media
		WHERE id = :id
	`
)
