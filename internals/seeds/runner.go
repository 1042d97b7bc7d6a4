package seeds

import (
	"context"
	_ "embed"

	"go.uber.org/zap"
	"gorm.io/gorm"

	users "schoolhub_backend/internals/seeds/users"
)

//go:embed data/users.json
var usersJSON []byte

// RunAllSeeds loads the demo accounts. Safe to run repeatedly.
func RunAllSeeds(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	log = log.Named("seed")

	//* Users
	if err := users.SeedUsersFromJSON(ctx, db, log, usersJSON); err != nil {
		return err
	}
	return nil
}
