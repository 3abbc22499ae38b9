package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

type Repository struct{ conn *pgx.Conn }

func NewRepository(conn *pgx.Conn) *Repository {
	return &Repository{conn: conn}
}

const propertyColumns = `id, name, description, street, city, state, "zipCode", country, latitude, longitude, "imageUrls", amenities, "averageRating", "reviewCount", "isActive"`

func (r *Repository) GetActiveProperties(ctx context.Context) ([]Property, error) {
	sql := fmt.Sprintf(`
            SELECT %v
            FROM daypass.property
            WHERE "isActive" = TRUE;
        `, propertyColumns)

	rows, err := r.conn.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch properties: %w", err)
	}

	defer rows.Close()

	var properties []Property

	for rows.Next() {
		property, err := scanProperty(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning property row: %w", err)
		}

		properties = append(properties, property)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating property rows: %w", err)
	}

	if err := r.attachDayPassOptions(ctx, properties); err != nil {
		return nil, err
	}

	return properties, nil
}

func (r *Repository) GetPropertyByID(ctx context.Context, id string) (Property, error) {
	sql := fmt.Sprintf(`
            SELECT %v
            FROM daypass.property
            WHERE id=$1 AND "isActive" = TRUE;
        `, propertyColumns)

	rows, err := r.conn.Query(ctx, sql, id)

	if err != nil {
		return Property{}, fmt.Errorf("failed to fetch property with id %v: %w", id, err)
	}

	property, err := pgx.CollectOneRow(rows, scanProperty)

	if errors.Is(err, pgx.ErrNoRows) {
		return Property{}, ErrPropertyNotFound
	}

	if err != nil {
		return Property{}, fmt.Errorf("failed to fetch property with id %v: %w", id, err)
	}

	properties := []Property{property}

	if err := r.attachDayPassOptions(ctx, properties); err != nil {
		return Property{}, err
	}

	return properties[0], nil
}

func (r *Repository) attachDayPassOptions(ctx context.Context, properties []Property) error {
	if len(properties) == 0 {
		return nil
	}

	ids := make([]string, 0, len(properties))

	for _, property := range properties {
		ids = append(ids, property.ID)
	}

	sql := `
            SELECT id, "propertyId", name, description, price, currency, "availableDays", "startTime", "endTime", "maxCapacity", "isActive"
            FROM daypass.day_pass_option
            WHERE "propertyId" = ANY($1);
        `

	rows, err := r.conn.Query(ctx, sql, ids)

	if err != nil {
		return fmt.Errorf("failed to fetch day pass options: %w", err)
	}

	defer rows.Close()

	byProperty := map[string][]DayPassOption{}

	for rows.Next() {
		var pass DayPassOption
		err := rows.Scan(
			&pass.ID,
			&pass.PropertyID,
			&pass.Name,
			&pass.Description,
			&pass.Price,
			&pass.Currency,
			&pass.AvailableDays,
			&pass.StartTime,
			&pass.EndTime,
			&pass.MaxCapacity,
			&pass.IsActive,
		)

		if err != nil {
			return fmt.Errorf("error scanning day pass option row: %w", err)
		}

		byProperty[pass.PropertyID] = append(byProperty[pass.PropertyID], pass)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating day pass option rows: %w", err)
	}

	for i := range properties {
		properties[i].DayPassOptions = byProperty[properties[i].ID]
	}

	return nil
}

func scanProperty(row pgx.CollectableRow) (Property, error) {
	var property Property
	err := row.Scan(
		&property.ID,
		&property.Name,
		&property.Description,
		&property.Address.Street,
		&property.Address.City,
		&property.Address.State,
		&property.Address.ZipCode,
		&property.Address.Country,
		&property.Address.Latitude,
		&property.Address.Longitude,
		&property.ImageURLs,
		&property.Amenities,
		&property.AverageRating,
		&property.ReviewCount,
		&property.IsActive,
	)

	return property, err
}
