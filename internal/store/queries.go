package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/JonMunkholm/foodseed/internal/config"
	"github.com/JonMunkholm/foodseed/models"
)

// DBTX is satisfied by *sql.DB, *sql.Tx and *sql.Conn.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// FoodColumns lists the stored food columns in insert order, excluding id.
var FoodColumns = []string{
	"fdc_id",
	"brand_owner",
	"brand_name",
	"subbrand_name",
	"gtin_upc",
	"ingredients",
	"not_a_significant_source_of",
	"serving_size",
	"serving_size_unit",
	"household_serving_fulltext",
	"branded_food_category",
	"data_source",
	"package_weight",
	"modified_date",
	"available_date",
	"market_country",
	"discontinued_date",
	"preparation_state_code",
	"trade_channel",
	"short_description",
	"material_code",
	"calories",
	"protein",
	"total_fat",
	"carbohydrates",
	"fiber",
	"sugars",
	"sodium",
}

// Queries holds the catalog statements for one dialect, executed against db.
type Queries struct {
	db     DBTX
	driver string
	sb     sq.StatementBuilderType
}

// New binds the query set to db. driver selects the placeholder style.
func New(db DBTX, driver string) *Queries {
	var format sq.PlaceholderFormat = sq.Question
	if driver == config.DriverPostgres {
		format = sq.Dollar
	}
	return &Queries{
		db:     db,
		driver: driver,
		sb:     sq.StatementBuilder.PlaceholderFormat(format),
	}
}

// WithTx returns a copy of q that executes inside tx.
func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx, driver: q.driver, sb: q.sb}
}

// InsertFood stores one catalog row.
func (q *Queries) InsertFood(ctx context.Context, f models.FoodRecord) error {
	query, args, err := q.sb.Insert("foods").
		Columns(FoodColumns...).
		Values(
			f.FdcID,
			f.BrandOwner,
			f.BrandName,
			f.SubbrandName,
			f.GtinUpc,
			f.Ingredients,
			f.NotASignificantSourceOf,
			f.ServingSize,
			f.ServingSizeUnit,
			f.HouseholdServingFulltext,
			f.BrandedFoodCategory,
			f.DataSource,
			f.PackageWeight,
			f.ModifiedDate,
			f.AvailableDate,
			f.MarketCountry,
			f.DiscontinuedDate,
			f.PreparationStateCode,
			f.TradeChannel,
			f.ShortDescription,
			f.MaterialCode,
			f.Calories,
			f.Protein,
			f.TotalFat,
			f.Carbohydrates,
			f.Fiber,
			f.Sugars,
			f.Sodium,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert food: %w", err)
	}

	if _, err := q.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert food: %w", err)
	}
	return nil
}

// InsertUserIgnore inserts u unless a user with the same username or email
// already exists. It reports whether a row was written.
func (q *Queries) InsertUserIgnore(ctx context.Context, u models.User) (bool, error) {
	query, args, err := q.sb.Insert("users").
		Columns("username", "email", "password_hash").
		Values(u.Username, u.Email, u.PasswordHash).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build insert user: %w", err)
	}

	res, err := q.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("insert user: %w", err)
	}
	return affected(res)
}

// UserIDByUsername returns the id of the named user or ErrNotFound.
func (q *Queries) UserIDByUsername(ctx context.Context, username string) (int64, error) {
	query, args, err := q.sb.Select("id").
		From("users").
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build user lookup: %w", err)
	}

	var id int64
	if err := q.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("user lookup: %w", err)
	}
	return id, nil
}

// FoodIDs returns up to limit food ids in ascending order.
func (q *Queries) FoodIDs(ctx context.Context, limit int) ([]int64, error) {
	if limit <= 0 {
		return nil, nil
	}

	query, args, err := q.sb.Select("id").
		From("foods").
		OrderBy("id ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build food ids: %w", err)
	}

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("food ids: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0, limit)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan food id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ListFoods returns up to limit foods in ascending id order.
func (q *Queries) ListFoods(ctx context.Context, limit int) ([]models.FoodRecord, error) {
	cols := append([]string{"id"}, FoodColumns...)
	query, args, err := q.sb.Select(cols...).
		From("foods").
		OrderBy("id ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list foods: %w", err)
	}

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	defer rows.Close()

	var foods []models.FoodRecord
	for rows.Next() {
		var f models.FoodRecord
		if err := rows.Scan(
			&f.ID,
			&f.FdcID,
			&f.BrandOwner,
			&f.BrandName,
			&f.SubbrandName,
			&f.GtinUpc,
			&f.Ingredients,
			&f.NotASignificantSourceOf,
			&f.ServingSize,
			&f.ServingSizeUnit,
			&f.HouseholdServingFulltext,
			&f.BrandedFoodCategory,
			&f.DataSource,
			&f.PackageWeight,
			&f.ModifiedDate,
			&f.AvailableDate,
			&f.MarketCountry,
			&f.DiscontinuedDate,
			&f.PreparationStateCode,
			&f.TradeChannel,
			&f.ShortDescription,
			&f.MaterialCode,
			&f.Calories,
			&f.Protein,
			&f.TotalFat,
			&f.Carbohydrates,
			&f.Fiber,
			&f.Sugars,
			&f.Sodium,
		); err != nil {
			return nil, fmt.Errorf("scan food: %w", err)
		}
		foods = append(foods, f)
	}
	return foods, rows.Err()
}

// InsertFavoriteIgnore links a user to a food. An existing link is left
// untouched and reported as not inserted.
func (q *Queries) InsertFavoriteIgnore(ctx context.Context, fav models.Favorite) (bool, error) {
	query, args, err := q.sb.Insert("favorites").
		Columns("user_id", "food_id").
		Values(fav.UserID, fav.FoodID).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build insert favorite: %w", err)
	}

	res, err := q.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("insert favorite: %w", err)
	}
	return affected(res)
}

// CountFoods returns the number of stored foods.
func (q *Queries) CountFoods(ctx context.Context) (int64, error) {
	return q.count(ctx, q.sb.Select("COUNT(*)").From("foods"))
}

// CountFavorites returns the number of favorites held by userID.
func (q *Queries) CountFavorites(ctx context.Context, userID int64) (int64, error) {
	return q.count(ctx, q.sb.Select("COUNT(*)").From("favorites").Where(sq.Eq{"user_id": userID}))
}

// CountUsers returns the number of stored users.
func (q *Queries) CountUsers(ctx context.Context) (int64, error) {
	return q.count(ctx, q.sb.Select("COUNT(*)").From("users"))
}

// ResetFavorites deletes every favorite.
func (q *Queries) ResetFavorites(ctx context.Context) error {
	return q.deleteAll(ctx, "favorites")
}

// ResetUsers deletes every user. Favorites must be cleared first.
func (q *Queries) ResetUsers(ctx context.Context) error {
	return q.deleteAll(ctx, "users")
}

// ResetFoods deletes every food. Favorites must be cleared first.
func (q *Queries) ResetFoods(ctx context.Context) error {
	return q.deleteAll(ctx, "foods")
}

func (q *Queries) count(ctx context.Context, b sq.SelectBuilder) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var n int64
	if err := q.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

func (q *Queries) deleteAll(ctx context.Context, table string) error {
	query, args, err := q.sb.Delete(table).ToSql()
	if err != nil {
		return fmt.Errorf("build reset %s: %w", table, err)
	}
	if _, err := q.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("reset %s: %w", table, err)
	}
	return nil
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}
