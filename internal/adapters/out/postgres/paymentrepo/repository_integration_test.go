package paymentrepo_test

import (
	"context"
	"testing"

	"zapshift/internal/adapters/out/postgres/paymentrepo"
	"zapshift/internal/adapters/out/postgres/pgtest"
	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/payment"
	"zapshift/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type PaymentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *paymentrepo.GormPaymentRepository
}

func (suite *PaymentRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background(), &paymentrepo.PaymentDTO{})
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db
}

func (suite *PaymentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE payments").Error)

	suite.repository = paymentrepo.NewGormPaymentRepository(suite.db)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PaymentRepositoryIntegrationTestSuite) newPayment(tx string) *payment.Payment {
	p, err := payment.NewPayment(kernel.NewUUID(), payment.Receipt{
		ParcelID:      kernel.NewUUID(),
		PayerEmail:    pgtest.Email(suite.T(), "nadia@mail.com"),
		Amount:        1500,
		Currency:      payment.DefaultCurrency,
		Method:        payment.DefaultMethod,
		TransactionID: tx,
	}, pgtest.BookedAt)
	suite.Require().NoError(err)
	return p
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestAdd() {
	ctx := context.Background()
	p := suite.newPayment("pi_123")

	suite.Require().NoError(suite.repository.Add(ctx, p))

	var stored paymentrepo.PaymentDTO
	suite.Require().NoError(suite.db.First(&stored, "id = ?", p.ID().Google()).Error)
	suite.Equal("pi_123", stored.TransactionID)
	suite.Equal(int64(1500), stored.Amount)
	suite.Equal("nadia@mail.com", stored.PayerEmail)
	suite.Equal(p.ParcelID().Google(), stored.ParcelID)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestAdd_DuplicateTransaction() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newPayment("pi_123")))

	err := suite.repository.Add(ctx, suite.newPayment("pi_123"))

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func TestPaymentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentRepositoryIntegrationTestSuite))
}
