package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type CacheRepositoryTestSuite struct {
	suite.Suite
	repo *CacheRepository
	ctx  context.Context
}

func (s *CacheRepositoryTestSuite) SetupTest() {
	s.repo = NewCacheRepository()
	s.ctx = context.Background()
}

func (s *CacheRepositoryTestSuite) TestGet_ShouldReturnStoredValue() {
	// Arrange
	s.Require().NoError(s.repo.Set(s.ctx, "key", []byte("value"), time.Minute))

	// Act
	value, err := s.repo.Get(s.ctx, "key")

	// Assert
	s.Require().NoError(err)
	s.Equal([]byte("value"), value)
}

func (s *CacheRepositoryTestSuite) TestGet_ShouldMissOnUnknownKey() {
	// Act
	_, err := s.repo.Get(s.ctx, "missing")

	// Assert
	s.ErrorIs(err, ErrCacheMiss)
}

func (s *CacheRepositoryTestSuite) TestGet_ShouldMissOnExpiredKey() {
	// Arrange
	s.Require().NoError(s.repo.Set(s.ctx, "key", []byte("value"), time.Nanosecond))
	time.Sleep(5 * time.Millisecond)

	// Act
	_, err := s.repo.Get(s.ctx, "key")

	// Assert
	s.ErrorIs(err, ErrCacheMiss)
}

func (s *CacheRepositoryTestSuite) TestDelete_ShouldRemoveKey() {
	// Arrange
	s.Require().NoError(s.repo.Set(s.ctx, "key", []byte("value"), time.Minute))

	// Act
	s.Require().NoError(s.repo.Delete(s.ctx, "key"))

	// Assert
	exists, err := s.repo.Exists(s.ctx, "key")
	s.Require().NoError(err)
	s.False(exists)
}

func (s *CacheRepositoryTestSuite) TestExists_ShouldReportPresence() {
	// Arrange
	s.Require().NoError(s.repo.Set(s.ctx, "key", []byte("value"), time.Minute))

	// Act
	exists, err := s.repo.Exists(s.ctx, "key")

	// Assert
	s.Require().NoError(err)
	s.True(exists)
}

func TestCacheRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CacheRepositoryTestSuite))
}
