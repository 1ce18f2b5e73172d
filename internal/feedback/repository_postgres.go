package feedback

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const insertFeedbackQuery = `
	INSERT INTO feedback (name, email, message, "createdAt")
	VALUES ($1, $2, $3, $4)
	RETURNING "feedbackId"
`

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(f Feedback) (Feedback, error) {
	var id int
	err := r.db.QueryRow(
		insertFeedbackQuery,
		f.Name,
		f.Email,
		f.Message,
		f.CreatedAt,
	).Scan(&id)
	if err != nil {
		return Feedback{}, err
	}

	f.ID = id
	return f, nil
}
