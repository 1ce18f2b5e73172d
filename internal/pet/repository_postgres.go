package pet

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	petColumns = `"petId", "petName", "petType", "petAge", "petMedicalHis", "petAddress", "petContactNo", "additionalInfo", "coverImageURL", "adoptionStatus", "createdBy", "createdAt"`

	listPetsQuery       = `SELECT ` + petColumns + ` FROM pets ORDER BY "petId"`
	listLatestPetsQuery = `SELECT ` + petColumns + ` FROM pets ORDER BY "createdAt" DESC LIMIT $1`
	listByCreatorQuery  = `SELECT ` + petColumns + ` FROM pets WHERE "createdBy" = $1 ORDER BY "petId"`
	countPetsQuery      = `SELECT COUNT(*) FROM pets`
	getPetByIDQuery     = `SELECT ` + petColumns + ` FROM pets WHERE "petId" = $1`

	insertPetQuery = `
		INSERT INTO pets ("petName", "petType", "petAge", "petMedicalHis", "petAddress", "petContactNo", "additionalInfo", "coverImageURL", "adoptionStatus", "createdBy", "createdAt")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING "petId"
	`
	updatePetQuery = `
		UPDATE pets
		SET "petName" = $1,
			"petType" = $2,
			"petAge" = $3,
			"petMedicalHis" = $4,
			"petAddress" = $5,
			"petContactNo" = $6,
			"additionalInfo" = $7,
			"coverImageURL" = $8,
			"adoptionStatus" = $9
		WHERE "petId" = $10
	`
	deletePetQuery = `DELETE FROM pets WHERE "petId" = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Pet {
	return r.queryPets(listPetsQuery)
}

func (r *PostgresRepository) ListLatest(limit int) []Pet {
	return r.queryPets(listLatestPetsQuery, limit)
}

func (r *PostgresRepository) ListByCreator(userID int) []Pet {
	return r.queryPets(listByCreatorQuery, userID)
}

func (r *PostgresRepository) queryPets(query string, args ...any) []Pet {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return []Pet{}
	}
	defer rows.Close()

	pets := make([]Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			continue
		}
		pets = append(pets, p)
	}

	return pets
}

func (r *PostgresRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow(countPetsQuery).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) GetByID(id int) (Pet, error) {
	p, err := scanPet(r.db.QueryRow(getPetByIDQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return Pet{}, ErrNotFound
		}
		return Pet{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Create(p Pet) (Pet, error) {
	var id int
	err := r.db.QueryRow(
		insertPetQuery,
		p.Name,
		p.Type,
		p.Age,
		p.MedicalHistory,
		p.Address,
		p.ContactNo,
		p.AdditionalInfo,
		p.CoverImageURL,
		p.AdoptionStatus,
		p.CreatedByID,
		p.CreatedAt,
	).Scan(&id)
	if err != nil {
		return Pet{}, err
	}

	p.ID = id
	return p, nil
}

func (r *PostgresRepository) Update(id int, p Pet) (Pet, error) {
	result, err := r.db.Exec(
		updatePetQuery,
		p.Name,
		p.Type,
		p.Age,
		p.MedicalHistory,
		p.Address,
		p.ContactNo,
		p.AdditionalInfo,
		p.CoverImageURL,
		p.AdoptionStatus,
		id,
	)
	if err != nil {
		return Pet{}, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return Pet{}, err
	}
	if affected == 0 {
		return Pet{}, ErrNotFound
	}

	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deletePetQuery, id)
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

func scanPet(scanner rowScanner) (Pet, error) {
	p := Pet{}
	var age, medical, address, contact, info, cover, createdAt sql.NullString

	if err := scanner.Scan(
		&p.ID,
		&p.Name,
		&p.Type,
		&age,
		&medical,
		&address,
		&contact,
		&info,
		&cover,
		&p.AdoptionStatus,
		&p.CreatedByID,
		&createdAt,
	); err != nil {
		return Pet{}, err
	}

	p.Age = age.String
	p.MedicalHistory = medical.String
	p.Address = address.String
	p.ContactNo = contact.String
	p.AdditionalInfo = info.String
	p.CoverImageURL = cover.String
	p.CreatedAt = createdAt.String

	return p, nil
}
