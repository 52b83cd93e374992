package devserver

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jsoto007/nush/internal/menu"
	"github.com/jsoto007/nush/internal/restaurant"
)

// PostgresCatalog serves fixtures from the database created by
// db.ConnectPostgres, for teams that want shared local fixtures instead of
// the in-process seed. One menu document per restaurant.
type PostgresCatalog struct {
	db *pgxpool.Pool
}

func NewPostgresCatalog(db *pgxpool.Pool) *PostgresCatalog {
	return &PostgresCatalog{db: db}
}

func scanRestaurant(row pgx.Row) (*restaurant.Restaurant, error) {
	var (
		r        restaurant.Restaurant
		cuisines []byte
		phone    *string
		email    *string
	)
	err := row.Scan(&r.ID, &r.Name, &r.Status, &cuisines, &phone, &email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	_ = json.Unmarshal(cuisines, &r.Cuisines)
	if phone != nil {
		r.Phone = *phone
	}
	if email != nil {
		r.Email = *email
	}
	return &r, nil
}

func (p *PostgresCatalog) Restaurants(ctx context.Context) ([]restaurant.Restaurant, error) {
	rows, err := p.db.Query(ctx, `
		SELECT id, name, status, cuisines, phone, email
		FROM restaurants
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []restaurant.Restaurant
	for rows.Next() {
		r, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}

func (p *PostgresCatalog) Restaurant(ctx context.Context, id string) (*restaurant.Restaurant, error) {
	return scanRestaurant(p.db.QueryRow(ctx, `
		SELECT id, name, status, cuisines, phone, email
		FROM restaurants
		WHERE id = $1
	`, id))
}

func (p *PostgresCatalog) UpdateRestaurant(ctx context.Context, id string, fields map[string]any) (*restaurant.Restaurant, error) {
	current, err := p.Restaurant(ctx, id)
	if err != nil {
		return nil, err
	}
	applyRestaurantFields(current, fields)

	_, err = p.db.Exec(ctx, `
		UPDATE restaurants
		SET name = $1, status = $2, phone = $3, email = $4
		WHERE id = $5
	`, current.Name, current.Status, current.Phone, current.Email, id)
	if err != nil {
		return nil, err
	}
	return current, nil
}

func (p *PostgresCatalog) MenuFor(ctx context.Context, restaurantID string) (*menu.Menu, error) {
	var doc []byte
	err := p.db.QueryRow(ctx, `
		SELECT doc
		FROM menus
		WHERE restaurant_id = $1
	`, restaurantID).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var mn menu.Menu
	if err := json.Unmarshal(doc, &mn); err != nil {
		return nil, err
	}
	return &mn, nil
}

func (p *PostgresCatalog) ReplaceMenu(ctx context.Context, restaurantID string, mn *menu.Menu) error {
	doc, err := json.Marshal(mn)
	if err != nil {
		return err
	}

	tag, err := p.db.Exec(ctx, `
		UPDATE menus
		SET doc = $1, updated_at = now()
		WHERE restaurant_id = $2
	`, doc, restaurantID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		_, err = p.db.Exec(ctx, `
			INSERT INTO menus (restaurant_id, doc) VALUES ($1, $2)
		`, restaurantID, doc)
	}
	return err
}

func (p *PostgresCatalog) FindItem(ctx context.Context, itemID string) (*menu.Item, string, error) {
	rows, err := p.db.Query(ctx, `SELECT restaurant_id, doc FROM menus`)
	if err != nil {
		return nil, "", err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			restaurantID string
			doc          []byte
		)
		if err := rows.Scan(&restaurantID, &doc); err != nil {
			return nil, "", err
		}
		var mn menu.Menu
		if err := json.Unmarshal(doc, &mn); err != nil {
			continue
		}
		for _, category := range mn.Categories {
			for _, item := range category.Items {
				if item.ID == itemID {
					out := item
					return &out, restaurantID, nil
				}
			}
		}
	}
	return nil, "", ErrNotFound
}

func (p *PostgresCatalog) Settings(ctx context.Context, restaurantID string) (ChargeSettings, error) {
	var s ChargeSettings
	err := p.db.QueryRow(ctx, `
		SELECT tax_rate_percent, fee_flat_cents, fee_rate_percent
		FROM restaurants
		WHERE id = $1
	`, restaurantID).Scan(&s.TaxRatePercent, &s.FeeFlatCents, &s.FeeRatePercent)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ChargeSettings{}, ErrNotFound
		}
		return ChargeSettings{}, err
	}
	return s, nil
}
