package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New(Payment)
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestWaitCleanShutdown() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.NoError(s.app.Wait(ctx, cancel))
}

func (s *ApplicationSuite) TestStartUnknownKind() {
	err := New(Kind("billing")).Start(context.Background())

	s.Require().ErrorIs(err, ErrUnknownKind)
	s.Contains(err.Error(), "billing")
}

func (s *ApplicationSuite) TestCloseStoresInReverseOrder() {
	var closed []string
	s.app.closers = []func(){
		func() { closed = append(closed, "pool") },
		func() { closed = append(closed, "client") },
	}

	s.app.closeStores()
	s.app.closeStores()

	s.Equal([]string{"client", "pool"}, closed)
	s.False(s.app.ready)
}

func (s *ApplicationSuite) TestDefaultAddresses() {
	s.Equal(":5001", defaultAddress[Identity])
	s.Equal(":5002", defaultAddress[Orders])
	s.Equal(":5003", defaultAddress[Payment])
}
