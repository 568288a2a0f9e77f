package user_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	userapp "github.com/ladlehq/ladle/internal/application/user"
	"github.com/ladlehq/ladle/internal/domain/user"
	"github.com/ladlehq/ladle/pkg/errors"
	"github.com/ladlehq/ladle/test/testutils"
)

// UserServiceTestSuite covers the user profile application service
type UserServiceTestSuite struct {
	suite.Suite
	userRepo *testutils.MockUserRepository
	service  *userapp.UserService
	factory  *testutils.UserFactory
	ctx      context.Context
}

func (s *UserServiceTestSuite) SetupTest() {
	s.userRepo = testutils.NewMockUserRepository()
	s.service = userapp.NewUserService(s.userRepo, zap.NewNop())
	s.factory = testutils.NewUserFactory(42)
	s.ctx = context.Background()
}

func (s *UserServiceTestSuite) TestRegisterProfile() {
	s.Run("NewEmail_ShouldCreateProfileUnderTokenID", func() {
		s.SetupTest()
		userID := uuid.New()
		s.userRepo.On("FindByEmail", s.ctx, "cook@example.com").Return(nil, user.ErrUserNotFound)
		s.userRepo.On("Create", s.ctx, mock.AnythingOfType("*user.User")).Return(nil)

		dto, err := s.service.RegisterProfile(s.ctx, userID, "Cook@Example.com", "Jamie")

		require.NoError(s.T(), err)
		assert.Equal(s.T(), userID, dto.ID)
		assert.Equal(s.T(), "cook@example.com", dto.Email)
		assert.Equal(s.T(), "Jamie", dto.Name)
		assert.Equal(s.T(), "metric", dto.MeasurementSystem)
		assert.Equal(s.T(), 4, dto.DefaultServings)
	})

	s.Run("ExistingEmail_ShouldReturnConflict", func() {
		s.SetupTest()
		existing := s.factory.ValidUser()
		s.userRepo.On("FindByEmail", s.ctx, existing.Email()).Return(existing, nil)

		_, err := s.service.RegisterProfile(s.ctx, uuid.New(), existing.Email(), "Sam")

		require.Error(s.T(), err)
		assert.True(s.T(), errors.Is(err, errors.CodeEmailAlreadyExists))
		s.userRepo.AssertNotCalled(s.T(), "Create")
	})

	s.Run("EmailLookupFails_ShouldReturnDatabaseError", func() {
		s.SetupTest()
		s.userRepo.On("FindByEmail", s.ctx, "cook@example.com").
			Return(nil, fmt.Errorf("connection reset"))

		_, err := s.service.RegisterProfile(s.ctx, uuid.New(), "cook@example.com", "Jamie")

		require.Error(s.T(), err)
		assert.True(s.T(), errors.Is(err, errors.CodeDatabaseError))
		s.userRepo.AssertNotCalled(s.T(), "Create")
	})

	s.Run("BadEmail_ShouldReturnValidationError", func() {
		s.SetupTest()

		_, err := s.service.RegisterProfile(s.ctx, uuid.New(), "not-an-email", "Sam")

		require.Error(s.T(), err)
		assert.True(s.T(), errors.Is(err, errors.CodeValidationFailed))
	})
}

func (s *UserServiceTestSuite) TestUpdateProfile() {
	s.Run("NameAndPreferences_ShouldPersist", func() {
		s.SetupTest()
		existing := s.factory.ValidUser()
		s.userRepo.On("FindByID", s.ctx, existing.ID()).Return(existing, nil)
		s.userRepo.On("Update", s.ctx, existing).Return(nil)

		dto, err := s.service.UpdateProfile(s.ctx, existing.ID(), "New Name", user.Preferences{
			MeasurementSystem: user.MeasurementSystemImperial,
			DefaultServings:   6,
		})

		require.NoError(s.T(), err)
		assert.Equal(s.T(), "New Name", dto.Name)
		assert.Equal(s.T(), "imperial", dto.MeasurementSystem)
		assert.Equal(s.T(), 6, dto.DefaultServings)
	})

	s.Run("UnknownUser_ShouldReturnNotFound", func() {
		s.SetupTest()
		userID := uuid.New()
		s.userRepo.On("FindByID", s.ctx, userID).Return(nil, user.ErrUserNotFound)

		_, err := s.service.UpdateProfile(s.ctx, userID, "Name", user.Preferences{})

		require.Error(s.T(), err)
		assert.True(s.T(), errors.Is(err, errors.CodeUserNotFound))
	})
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
