package userrepo_test

import (
	"context"
	"testing"
	"time"

	"zapshift/internal/adapters/out/postgres/pgtest"
	"zapshift/internal/adapters/out/postgres/userrepo"
	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/user"
	"zapshift/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *userrepo.GormUserRepository
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background(), &userrepo.UserDTO{})
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users").Error)

	suite.repository = userrepo.NewGormUserRepository(suite.db)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) newUser(address string) *user.User {
	u, err := user.NewUser(kernel.NewUUID(), pgtest.Email(suite.T(), address), "Nadia", pgtest.BookedAt)
	suite.Require().NoError(err)
	return u
}

func (suite *UserRepositoryIntegrationTestSuite) TestAddAndGetByEmail() {
	ctx := context.Background()
	u := suite.newUser("nadia@mail.com")

	suite.Require().NoError(suite.repository.Add(ctx, u))

	got, err := suite.repository.GetByEmail(ctx, u.Email())
	suite.Require().NoError(err)
	suite.Equal(u.ID(), got.ID())
	suite.Equal(user.RoleUser, got.Role())
	suite.Equal("Nadia", got.DisplayName())
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newUser("nadia@mail.com")))

	err := suite.repository.Add(ctx, suite.newUser("nadia@mail.com"))

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *UserRepositoryIntegrationTestSuite) TestUpdate_RoleAndLogin() {
	ctx := context.Background()
	u := suite.newUser("nadia@mail.com")
	suite.Require().NoError(suite.repository.Add(ctx, u))

	suite.Require().NoError(u.ChangeRole(user.RoleAdmin))
	u.RecordLogin("Nadia R.", pgtest.BookedAt.Add(time.Hour))
	suite.Require().NoError(suite.repository.Update(ctx, u))

	got, err := suite.repository.Get(ctx, u.ID())
	suite.Require().NoError(err)
	suite.Equal(user.RoleAdmin, got.Role())
	suite.Equal("Nadia R.", got.DisplayName())
	suite.True(pgtest.BookedAt.Add(time.Hour).Equal(got.LastLoginAt()))
	suite.True(pgtest.BookedAt.Equal(got.CreatedAt()))
}

func (suite *UserRepositoryIntegrationTestSuite) TestUpdate_Missing() {
	err := suite.repository.Update(context.Background(), suite.newUser("ghost@mail.com"))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
