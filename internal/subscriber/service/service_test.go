package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"leaders/internal/subscriber/models"
	"leaders/internal/subscriber/store"
	dErrors "leaders/pkg/domain-errors"
	"leaders/pkg/requestcontext"
)

type failingStore struct{}

func (failingStore) Insert(context.Context, *models.Subscriber) error {
	return errors.New("connection refused")
}

func (failingStore) Count(context.Context) (int, error) {
	return 0, errors.New("connection refused")
}

type capturingStore struct {
	*store.Memory
	last *models.Subscriber
}

func (c *capturingStore) Insert(ctx context.Context, sub *models.Subscriber) error {
	c.last = sub
	return c.Memory.Insert(ctx, sub)
}

type SubscribeSuite struct {
	suite.Suite
	store *store.Memory
	ctx   context.Context
}

func (s *SubscribeSuite) SetupTest() {
	s.store = store.NewMemory()
	s.ctx = context.Background()
}

func (s *SubscribeSuite) TestSubscribeNewEmail() {
	svc := New(s.store)

	outcome, err := svc.Subscribe(s.ctx, "Ana@Example.com ")
	s.Require().NoError(err)
	s.False(outcome.AlreadySubscribed)
	s.Equal("ana@example.com", outcome.Email)

	count, err := s.store.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *SubscribeSuite) TestDuplicateIsFriendlySuccess() {
	svc := New(s.store)

	_, err := svc.Subscribe(s.ctx, "ana@example.com")
	s.Require().NoError(err)

	outcome, err := svc.Subscribe(s.ctx, "ANA@example.com")
	s.Require().NoError(err)
	s.True(outcome.AlreadySubscribed)

	count, err := s.store.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *SubscribeSuite) TestInvalidEmailRejectedBeforeStore() {
	svc := New(failingStore{})

	for _, email := range []string{"", "not-an-email", "two@@example.com", "no-domain@example", "spaced @example.com"} {
		_, err := svc.Subscribe(s.ctx, email)
		s.Require().Error(err, "email %q", email)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest), "email %q", email)
		s.Contains(err.Error(), "Please provide a valid email address")
	}
}

func (s *SubscribeSuite) TestMissingStoreBinding() {
	svc := New(nil)

	_, err := svc.Subscribe(s.ctx, "ana@example.com")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
}

func (s *SubscribeSuite) TestStoreFailureWrapped() {
	svc := New(failingStore{})

	_, err := svc.Subscribe(s.ctx, "ana@example.com")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	s.Contains(err.Error(), "connection refused")
}

func (s *SubscribeSuite) TestSubscriptionPinnedToRequestTime() {
	st := &capturingStore{Memory: s.store}
	svc := New(st)

	pinned := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(s.ctx, pinned)

	_, err := svc.Subscribe(ctx, "ana@example.com")
	s.Require().NoError(err)
	s.Require().NotNil(st.last)
	s.Equal(pinned, st.last.CreatedAt)
	s.NotEqual(uuid.Nil, st.last.ID)
}

func (s *SubscribeSuite) TestHookFiresOnNewSubscription() {
	notified := make(chan string, 1)
	svc := New(s.store, WithHook(func(_ context.Context, email string) error {
		notified <- email
		return nil
	}))

	_, err := svc.Subscribe(s.ctx, "ana@example.com")
	s.Require().NoError(err)

	select {
	case email := <-notified:
		s.Equal("ana@example.com", email)
	case <-time.After(2 * time.Second):
		s.Fail("hook did not fire for a new subscription")
	}
}

func (s *SubscribeSuite) TestHookSkippedForDuplicate() {
	notified := make(chan string, 2)
	svc := New(s.store, WithHook(func(_ context.Context, email string) error {
		notified <- email
		return nil
	}))

	_, err := svc.Subscribe(s.ctx, "ana@example.com")
	s.Require().NoError(err)
	<-notified

	outcome, err := svc.Subscribe(s.ctx, "ana@example.com")
	s.Require().NoError(err)
	s.True(outcome.AlreadySubscribed)

	select {
	case email := <-notified:
		s.Failf("unexpected hook run", "got %q for a duplicate", email)
	case <-time.After(100 * time.Millisecond):
	}
}

func (s *SubscribeSuite) TestHookFailureDoesNotAffectOutcome() {
	ran := make(chan struct{}, 1)
	svc := New(s.store, WithHook(func(context.Context, string) error {
		ran <- struct{}{}
		return errors.New("smtp timeout")
	}))

	outcome, err := svc.Subscribe(s.ctx, "ana@example.com")
	s.Require().NoError(err)
	s.False(outcome.AlreadySubscribed)

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		s.Fail("hook did not run")
	}
}

func TestSubscribeSuite(t *testing.T) {
	suite.Run(t, new(SubscribeSuite))
}
