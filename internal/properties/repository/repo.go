package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spacia-app/property-backend/internal/properties/domain"
)

// Repo persists listings in the properties table. Save is an upsert with
// a caller-assigned id; the table generates nothing.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

const propertyCols = `
id, name, address, eircode, postal_code, description,
rent, deposit, area, available_from, energy_rating,
bedrooms, bathrooms, amenities, images, property_type,
status, posted_by, posted_on, modified_on`

func scanProperty(row pgx.Row, p *domain.Property) error {
	return row.Scan(
		&p.ID, &p.Name, &p.Address, &p.Eircode, &p.PostalCode, &p.Description,
		&p.Rent, &p.Deposit, &p.Area, &p.AvailableFrom, &p.EnergyRating,
		&p.Bedrooms, &p.Bathrooms, &p.Amenities, &p.Images, &p.PropertyType,
		&p.Status, &p.PostedBy, &p.PostedOn, &p.ModifiedOn,
	)
}

func (r *Repo) FindByStatus(ctx context.Context, status string) ([]domain.Property, error) {
	const q = `
select ` + propertyCols + `
from properties
where status = $1
order by posted_on desc;
`
	return r.query(ctx, q, status)
}

func (r *Repo) FindByStatusAndOwner(ctx context.Context, status, owner string) ([]domain.Property, error) {
	const q = `
select ` + propertyCols + `
from properties
where status = $1 and posted_by = $2
order by posted_on desc;
`
	return r.query(ctx, q, status, owner)
}

func (r *Repo) query(ctx context.Context, q string, args ...any) ([]domain.Property, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Property, 0, 16)
	for rows.Next() {
		var p domain.Property
		if err := scanProperty(rows, &p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// FindByID returns nil, nil when no listing exists with the given id.
func (r *Repo) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	const q = `
select ` + propertyCols + `
from properties
where id = $1;
`
	var p domain.Property
	err := scanProperty(r.db.QueryRow(ctx, q, id), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *Repo) Save(ctx context.Context, p *domain.Property) error {
	const q = `
insert into properties (` + propertyCols + `)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
on conflict (id) do update set
  name = excluded.name,
  address = excluded.address,
  eircode = excluded.eircode,
  postal_code = excluded.postal_code,
  description = excluded.description,
  rent = excluded.rent,
  deposit = excluded.deposit,
  area = excluded.area,
  available_from = excluded.available_from,
  energy_rating = excluded.energy_rating,
  bedrooms = excluded.bedrooms,
  bathrooms = excluded.bathrooms,
  amenities = excluded.amenities,
  images = excluded.images,
  property_type = excluded.property_type,
  status = excluded.status,
  modified_on = excluded.modified_on;
`
	_, err := r.db.Exec(ctx, q,
		p.ID, p.Name, p.Address, p.Eircode, p.PostalCode, p.Description,
		p.Rent, p.Deposit, p.Area, p.AvailableFrom, p.EnergyRating,
		p.Bedrooms, p.Bathrooms, p.Amenities, p.Images, p.PropertyType,
		p.Status, p.PostedBy, p.PostedOn, p.ModifiedOn,
	)
	return err
}

// AppendImage adds one image URL to the end of the listing's image list.
// Missing ids are ignored, matching the upload-completion contract.
func (r *Repo) AppendImage(ctx context.Context, id, url string) error {
	const q = `
update properties
set images = array_append(coalesce(images, '{}'), $2), modified_on = now()
where id = $1;
`
	_, err := r.db.Exec(ctx, q, id, url)
	return err
}
