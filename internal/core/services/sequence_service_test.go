package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/vehicleledger/vehicle_ledger_app/internal/apperrors"
	"github.com/vehicleledger/vehicle_ledger_app/internal/core/domain"
	portssvc "github.com/vehicleledger/vehicle_ledger_app/internal/core/ports/services"
	"github.com/vehicleledger/vehicle_ledger_app/internal/core/services"
)

type SequenceServiceTestSuite struct {
	suite.Suite
	mockCompanyRepo *MockCompanyRepository
	service         portssvc.SequenceSvc

	companyID string
}

func (suite *SequenceServiceTestSuite) SetupTest() {
	suite.mockCompanyRepo = new(MockCompanyRepository)
	suite.service = services.NewSequenceService(suite.mockCompanyRepo)
	suite.companyID = uuid.NewString()
}

func (suite *SequenceServiceTestSuite) TestNextNumber_PeeksWithoutMutating() {
	ctx := context.Background()
	company := domain.Company{CompanyID: suite.companyID, LastVoucherNumber: 41}
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.companyID).Return(&company, nil).Once()

	n, err := suite.service.NextNumber(ctx, suite.companyID)

	suite.Require().NoError(err)
	suite.Equal(int64(42), n)
	suite.mockCompanyRepo.AssertNotCalled(suite.T(), "SetLastVoucherNumber", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SequenceServiceTestSuite) TestNextNumber_FreshCompanyStartsAtOne() {
	ctx := context.Background()
	company := domain.Company{CompanyID: suite.companyID, LastVoucherNumber: 0}
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.companyID).Return(&company, nil).Once()

	n, err := suite.service.NextNumber(ctx, suite.companyID)

	suite.Require().NoError(err)
	suite.Equal(int64(1), n)
}

func (suite *SequenceServiceTestSuite) TestNextNumber_UnknownCompany() {
	ctx := context.Background()
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.companyID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.NextNumber(ctx, suite.companyID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *SequenceServiceTestSuite) TestAdvance_DelegatesToGuardedWrite() {
	ctx := context.Background()
	suite.mockCompanyRepo.On("SetLastVoucherNumber", ctx, suite.companyID, int64(42), mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.Advance(ctx, suite.companyID, 42)

	suite.Require().NoError(err)
	suite.mockCompanyRepo.AssertExpectations(suite.T())
}

func TestSequenceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SequenceServiceTestSuite))
}
