package articleRepository

const (
	queryCreateArticle = `
		INSERT INTO articles (
			id,
			title,
			slug,
			excerpt,
			content,
			image_url,
			author,
			category_id,
			published_date,
			created_at,
			updated_at
		) VALUES (
			:id,
			:title,
			:slug,
			:excerpt,
			:content,
			:image_url,
			:author,
			:category_id,
			:published_date,
			:created_at,
			:updated_at
		)
	`

	queryGetArticleByID = `
		SELECT
			a.id,
			a.title,
			a.slug,
			a.excerpt,
			a.content,
			a.image_url,
			a.author,
			a.category_id,
			a.published_date,
			a.created_at,
			a.updated_at,
			c.id AS joined_category_id,
			c.name AS category_name,
			c.slug AS category_slug,
			c.created_at AS category_created_at
		FROM articles a
		LEFT JOIN categories c ON a.category_id = c.id
		WHERE a.id = :id
	`

	queryGetAllArticles = `
		SELECT
			a.id,
			a.title,
			a.slug,
			a.excerpt,
			a.content,
			a.image_url,
			a.author,
			a.category_id,
			a.published_date,
			a.created_at,
			a.updated_at,
			c.id AS joined_category_id,
			c.name AS category_name,
			c.slug AS category_slug,
			c.created_at AS category_created_at
		FROM articles a
		LEFT JOIN categories c ON a.category_id = c.id
		ORDER BY a.published_date DESC
	`

	queryUpdateArticle = `
		UPDATE articles
		SET
			title = :title,
			slug = :slug,
			excerpt = :excerpt,
			content = :content,
			image_url = :image_url,
			author = :author,
			category_id = :category_id,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteArticle = `
		DELETE FROM articles
		WHERE id = :id
	`

	queryCreateCategory = `
		INSERT INTO categories (
			id,
			name,
			slug,
			created_at
		) VALUES (
			:id,
			:name,
			:slug,
			:created_at
		)
	`

	queryGetAllCategories = `
		SELECT
			id,
			name,
			slug,
			created_at
		FROM categories
		ORDER BY name ASC
	`

	queryGetCategoryByID = `
		SELECT
			id,
			name,
			slug,
			created_at
		FROM categories
		WHERE id = :id
	`

	queryCreateComment = `
		INSERT INTO comments (
			id,
			article_id,
			user_id,
			username,
			content,
			created_at
		) VALUES (
			:id,
			:article_id,
			:user_id,
			:username,
			:content,
			:created_at
		)
	`

	queryGetCommentByID = `
		SELECT
			id,
			article_id,
			user_id,
			username,
			content,
			created_at
		FROM comments
		WHERE id = :id
	`

	queryGetCommentsByArticle = `
		SELECT
			id,
			article_id,
			user_id,
			username,
			content,
			created_at
		FROM comments
		WHERE article_id = :article_id
		ORDER BY created_at ASC
	`

	queryDeleteComment = `
		DELETE FROM comments
		WHERE id = :id
	`
)
