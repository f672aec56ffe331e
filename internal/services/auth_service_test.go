package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/ticket-tracker-api/internal/models"
	"github.com/yukikurage/ticket-tracker-api/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthService(t *testing.T) (repository.UserRepository, *AuthService) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	userRepo := repository.NewUserRepository(db)
	return userRepo, NewAuthService(userRepo, 4)
}

// blindUserRepo hides existing users from the pre-insert lookup, so Register
// behaves as it would when a concurrent registration wins the race between
// the uniqueness check and the insert.
type blindUserRepo struct {
	repository.UserRepository
}

func (r blindUserRepo) FindByUsername(username string) (*models.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func TestAuthService_Register_DuplicateMapsToUsernameTaken(t *testing.T) {
	userRepo, authService := setupAuthService(t)

	_, err := authService.Register(RegisterInput{Username: "alice", Password: "secret1"})
	require.NoError(t, err)

	_, err = authService.Register(RegisterInput{Username: "alice", Password: "secret2"})
	require.ErrorIs(t, err, ErrUsernameTaken)

	// When the pre-insert check misses, the unique index still maps the
	// insert failure to the same error.
	racing := NewAuthService(blindUserRepo{userRepo}, 4)
	_, err = racing.Register(RegisterInput{Username: "alice", Password: "secret3"})
	require.ErrorIs(t, err, ErrUsernameTaken)
}
