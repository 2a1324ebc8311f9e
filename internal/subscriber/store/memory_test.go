package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"leaders/internal/subscriber/models"
	"leaders/pkg/platform/sentinel"
)

type MemoryStoreSuite struct {
	suite.Suite
	store *Memory
	ctx   context.Context
}

func (s *MemoryStoreSuite) SetupTest() {
	s.store = NewMemory()
	s.ctx = context.Background()
}

func (s *MemoryStoreSuite) TestInsertAndCount() {
	sub := models.New("ana@example.com", time.Now())
	s.Require().NoError(s.store.Insert(s.ctx, sub))

	count, err := s.store.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *MemoryStoreSuite) TestDuplicateEmailConflicts() {
	first := models.New("ana@example.com", time.Now())
	s.Require().NoError(s.store.Insert(s.ctx, first))

	second := models.New("ana@example.com", time.Now())
	err := s.store.Insert(s.ctx, second)
	s.Require().ErrorIs(err, sentinel.ErrConflict)

	count, err := s.store.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *MemoryStoreSuite) TestDistinctEmails() {
	s.Require().NoError(s.store.Insert(s.ctx, models.New("ana@example.com", time.Now())))
	s.Require().NoError(s.store.Insert(s.ctx, models.New("luis@example.com", time.Now())))

	count, err := s.store.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, count)
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}
