package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"go-micropost/internal/domain"
	"go-micropost/internal/repo"
)

type testEnv struct {
	users *UserService
	rels  *RelationshipService
	posts *PostService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Follow{}, &domain.Post{}))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	userRepo := repo.NewUserRepo(db)
	followRepo := repo.NewFollowRepo(db)
	postRepo := repo.NewPostRepo(db)
	log := zap.NewNop()

	return &testEnv{
		users: NewUserService(userRepo, followRepo, postRepo, nil, log),
		rels:  NewRelationshipService(followRepo, userRepo, nil),
		posts: NewPostService(postRepo, nil),
	}
}

func signup(t *testing.T, env *testEnv, name, email string) *domain.User {
	t.Helper()
	u, _, err := env.users.Signup(SignupInput{
		Name: name, Email: email,
		Password: "foobarbazz", PasswordConfirmation: "foobarbazz",
	})
	require.NoError(t, err)
	return u
}
