package comment

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	commentColumns = `"commentId", content, "petId", "createdBy", "createdAt"`

	listCommentsByPetQuery = `SELECT ` + commentColumns + ` FROM comments WHERE "petId" = $1 ORDER BY "commentId"`
	getCommentByIDQuery    = `SELECT ` + commentColumns + ` FROM comments WHERE "commentId" = $1`

	insertCommentQuery = `
		INSERT INTO comments (content, "petId", "createdBy", "createdAt")
		VALUES ($1, $2, $3, $4)
		RETURNING "commentId"
	`
	deleteCommentQuery       = `DELETE FROM comments WHERE "commentId" = $1`
	deleteCommentsByPetQuery = `DELETE FROM comments WHERE "petId" = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByPet(petID int) []Comment {
	rows, err := r.db.Query(listCommentsByPetQuery, petID)
	if err != nil {
		return []Comment{}
	}
	defer rows.Close()

	comments := make([]Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			continue
		}
		comments = append(comments, c)
	}

	return comments
}

func (r *PostgresRepository) GetByID(id int) (Comment, error) {
	c, err := scanComment(r.db.QueryRow(getCommentByIDQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return Comment{}, ErrNotFound
		}
		return Comment{}, err
	}
	return c, nil
}

func (r *PostgresRepository) Create(c Comment) (Comment, error) {
	var id int
	err := r.db.QueryRow(
		insertCommentQuery,
		c.Content,
		c.PetID,
		c.CreatedByID,
		c.CreatedAt,
	).Scan(&id)
	if err != nil {
		return Comment{}, err
	}

	c.ID = id
	return c, nil
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteCommentQuery, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *PostgresRepository) DeleteByPet(petID int) error {
	_, err := r.db.Exec(deleteCommentsByPetQuery, petID)
	return err
}

func scanComment(scanner rowScanner) (Comment, error) {
	c := Comment{}
	var createdAt sql.NullString

	if err := scanner.Scan(
		&c.ID,
		&c.Content,
		&c.PetID,
		&c.CreatedByID,
		&createdAt,
	); err != nil {
		return Comment{}, err
	}

	c.CreatedAt = createdAt.String
	return c, nil
}
