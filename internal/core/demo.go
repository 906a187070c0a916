package core

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/JonMunkholm/foodseed/models"
)

// SeedDemo creates the demo user unless it already exists, then links it to
// the first FavoriteLimit foods by ascending id. Existing favorites are
// skipped; any other favorite failure is logged and counted.
func (s *Seeder) SeedDemo(ctx context.Context) (DemoOutcome, error) {
	var out DemoOutcome
	log := s.log.FromContext(ctx).WithFields("username", s.demo.Username)

	cost := s.demo.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(s.demo.Password), cost)
	if err != nil {
		return out, fmt.Errorf("hash demo password: %w", err)
	}

	q := s.db.Queries()

	created, err := q.InsertUserIgnore(ctx, models.User{
		Username:     s.demo.Username,
		Email:        s.demo.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return out, fmt.Errorf("insert demo user: %w", err)
	}
	out.UserCreated = created

	// Look the user up by name so a re-run links favorites to the
	// existing row.
	out.UserID, err = q.UserIDByUsername(ctx, s.demo.Username)
	if err != nil {
		return out, fmt.Errorf("find demo user: %w", err)
	}

	ids, err := q.FoodIDs(ctx, s.demo.FavoriteLimit)
	if err != nil {
		return out, fmt.Errorf("list foods for favorites: %w", err)
	}

	for _, foodID := range ids {
		ok, err := q.InsertFavoriteIgnore(ctx, models.Favorite{UserID: out.UserID, FoodID: foodID})
		switch {
		case err != nil:
			out.FavoriteErrors++
			log.Warn().Err(err).Int64("food_id", foodID).Msg("favorite not linked")
		case ok:
			out.FavoritesLinked++
		default:
			out.FavoritesSkipped++
		}
	}

	log.Info().
		Bool("user_created", out.UserCreated).
		Int("favorites_linked", out.FavoritesLinked).
		Int("favorites_skipped", out.FavoritesSkipped).
		Msg("demo data seeded")

	return out, nil
}
