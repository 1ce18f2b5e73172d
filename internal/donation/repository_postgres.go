package donation

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	donationColumns = `"donationId", name, address, age, gender, email, "contactNo", amount, "createdAt"`

	listDonationsQuery  = `SELECT ` + donationColumns + ` FROM donations ORDER BY "donationId"`
	getDonationByID     = `SELECT ` + donationColumns + ` FROM donations WHERE "donationId" = $1`
	searchDonationsText = `SELECT ` + donationColumns + ` FROM donations WHERE name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%' ORDER BY "donationId"`
	searchDonationsFull = `SELECT ` + donationColumns + ` FROM donations WHERE name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%' OR amount = $2 ORDER BY "donationId"`

	insertDonationQuery = `
		INSERT INTO donations (name, address, age, gender, email, "contactNo", amount, "createdAt")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING "donationId"
	`
	updateDonationQuery = `
		UPDATE donations
		SET name = $1,
			address = $2,
			age = $3,
			gender = $4,
			email = $5,
			"contactNo" = $6,
			amount = $7
		WHERE "donationId" = $8
	`
	deleteDonationQuery = `DELETE FROM donations WHERE "donationId" = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Donation {
	return r.queryDonations(listDonationsQuery)
}

func (r *PostgresRepository) Search(query string, amount *float64) []Donation {
	if amount != nil {
		return r.queryDonations(searchDonationsFull, query, *amount)
	}
	return r.queryDonations(searchDonationsText, query)
}

func (r *PostgresRepository) queryDonations(query string, args ...any) []Donation {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return []Donation{}
	}
	defer rows.Close()

	donations := make([]Donation, 0)
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			continue
		}
		donations = append(donations, d)
	}

	return donations
}

func (r *PostgresRepository) GetByID(id int) (Donation, error) {
	d, err := scanDonation(r.db.QueryRow(getDonationByID, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return Donation{}, ErrNotFound
		}
		return Donation{}, err
	}
	return d, nil
}

func (r *PostgresRepository) Create(d Donation) (Donation, error) {
	var id int
	err := r.db.QueryRow(
		insertDonationQuery,
		d.Name,
		d.Address,
		d.Age,
		d.Gender,
		d.Email,
		d.ContactNo,
		d.Amount,
		d.CreatedAt,
	).Scan(&id)
	if err != nil {
		return Donation{}, err
	}

	d.ID = id
	return d, nil
}

func (r *PostgresRepository) Update(id int, d Donation) (Donation, error) {
	result, err := r.db.Exec(
		updateDonationQuery,
		d.Name,
		d.Address,
		d.Age,
		d.Gender,
		d.Email,
		d.ContactNo,
		d.Amount,
		id,
	)
	if err != nil {
		return Donation{}, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return Donation{}, err
	}
	if affected == 0 {
		return Donation{}, ErrNotFound
	}

	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteDonationQuery, id)
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

func scanDonation(scanner rowScanner) (Donation, error) {
	d := Donation{}
	var address, age, gender, contact, createdAt sql.NullString

	if err := scanner.Scan(
		&d.ID,
		&d.Name,
		&address,
		&age,
		&gender,
		&d.Email,
		&contact,
		&d.Amount,
		&createdAt,
	); err != nil {
		return Donation{}, err
	}

	d.Address = address.String
	d.Age = age.String
	d.Gender = gender.String
	d.ContactNo = contact.String
	d.CreatedAt = createdAt.String

	return d, nil
}
