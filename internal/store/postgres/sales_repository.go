package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/menulytics/menulytics/internal/models"
)

type SalesRepository struct {
	pool    *pgxpool.Pool
	profile string
}

// Append bulk-loads records with COPY, which is what makes large imports
// tolerable.
func (r *SalesRepository) Append(ctx context.Context, records []models.SalesRecord) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"sales_records"},
		[]string{"profile", "sale_date", "item_name", "sales_amount", "price", "cost", "category"},
		pgx.CopyFromSlice(len(records), func(i int) ([]interface{}, error) {
			return []interface{}{
				r.profile,
				records[i].Date,
				records[i].ItemName,
				records[i].SalesAmount,
				records[i].Price,
				records[i].Cost,
				records[i].Category,
			}, nil
		}),
	)
	return err
}

func (r *SalesRepository) GetAll(ctx context.Context) ([]models.SalesRecord, error) {
	query := `
        SELECT sale_date, item_name, sales_amount, price, cost, category
        FROM sales_records
        WHERE profile = $1
        ORDER BY seq
    `
	rows, err := r.pool.Query(ctx, query, r.profile)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.SalesRecord
	for rows.Next() {
		var rec models.SalesRecord
		if err := rows.Scan(&rec.Date, &rec.ItemName, &rec.SalesAmount, &rec.Price, &rec.Cost, &rec.Category); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *SalesRepository) Clear(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM sales_records WHERE profile = $1", r.profile)
	return err
}
