package user

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	listUsersQuery = `
		SELECT "userId", "fullName", email, password, role, address, "createdAt"
		FROM users
		ORDER BY "userId"
	`
	getUserByIDQuery = `
		SELECT "userId", "fullName", email, password, role, address, "createdAt"
		FROM users
		WHERE "userId" = $1
	`
	getUserByEmailQuery = `
		SELECT "userId", "fullName", email, password, role, address, "createdAt"
		FROM users
		WHERE email = $1
	`
	insertUserQuery = `
		INSERT INTO users ("fullName", email, password, role, address, "createdAt")
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING "userId"
	`
	updateUserQuery = `
		UPDATE users
		SET "fullName" = $1,
			email = $2,
			password = $3,
			role = $4,
			address = $5
		WHERE "userId" = $6
	`
	deleteUserQuery = `DELETE FROM users WHERE "userId" = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []User {
	rows, err := r.db.Query(listUsersQuery)
	if err != nil {
		return []User{}
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			continue
		}
		users = append(users, u)
	}

	return users
}

func (r *PostgresRepository) GetByID(id int) (User, error) {
	u, err := scanUser(r.db.QueryRow(getUserByIDQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepository) GetByEmail(email string) (User, error) {
	u, err := scanUser(r.db.QueryRow(getUserByEmailQuery, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepository) Create(u User) (User, error) {
	var id int
	err := r.db.QueryRow(
		insertUserQuery,
		u.FullName,
		u.Email,
		u.Password,
		u.Role,
		u.Address,
		u.CreatedAt,
	).Scan(&id)
	if err != nil {
		return User{}, err
	}

	u.ID = id
	return u, nil
}

func (r *PostgresRepository) Update(id int, u User) (User, error) {
	result, err := r.db.Exec(
		updateUserQuery,
		u.FullName,
		u.Email,
		u.Password,
		u.Role,
		u.Address,
		id,
	)
	if err != nil {
		return User{}, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return User{}, err
	}
	if affected == 0 {
		return User{}, ErrNotFound
	}

	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteUserQuery, id)
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

func scanUser(scanner rowScanner) (User, error) {
	u := User{}
	var address sql.NullString
	var createdAt sql.NullString

	if err := scanner.Scan(
		&u.ID,
		&u.FullName,
		&u.Email,
		&u.Password,
		&u.Role,
		&address,
		&createdAt,
	); err != nil {
		return User{}, err
	}

	if address.Valid {
		u.Address = address.String
	}
	if createdAt.Valid {
		u.CreatedAt = createdAt.String
	}

	return u, nil
}
