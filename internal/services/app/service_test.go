package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/KirkDiggler/rollpath/internal/common/clock"
	clockMocks "github.com/KirkDiggler/rollpath/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/rollpath/internal/common/uuid/mocks"
	"github.com/KirkDiggler/rollpath/internal/dice"
	diceMocks "github.com/KirkDiggler/rollpath/internal/dice/mocks"
	"github.com/KirkDiggler/rollpath/internal/i18n"
	"github.com/KirkDiggler/rollpath/internal/models"
	"github.com/KirkDiggler/rollpath/internal/notation"
	"github.com/KirkDiggler/rollpath/internal/services/app"
	appMocks "github.com/KirkDiggler/rollpath/internal/services/app/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockDiceRoller *diceMocks.MockRoller
	mockClock      *clockMocks.MockClock
	mockTimer      *clockMocks.MockTimer
	mockUUID       *uuidMocks.MockUUID
	mockRenderer   *appMocks.MockRenderer
	appService     app.Service
	ctx            context.Context

	// Test data
	testTime      time.Time
	testRollID    string
	testSessionID string

	// scheduled holds the last function handed to AfterFunc
	scheduled func()
}

func (s *AppServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockDiceRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockTimer = clockMocks.NewMockTimer(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.mockRenderer = appMocks.NewMockRenderer(s.mockCtrl)

	s.ctx = context.Background()
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testRollID = "test-roll-id"
	s.testSessionID = "test-channel-id"
	s.scheduled = nil

	service, err := app.New(&app.Config{
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		DiceRoller:    s.mockDiceRoller,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.appService = service
}

func (s *AppServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AppServiceTestSuite))
}

func (s *AppServiceTestSuite) expectNow() {
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
}

func (s *AppServiceTestSuite) expectAfterFunc() {
	s.mockClock.EXPECT().AfterFunc(app.DefaultRedirectDelay, gomock.Any()).
		DoAndReturn(func(d time.Duration, f func()) clock.Timer {
			s.scheduled = f
			return s.mockTimer
		})
}

// expectPage expects a full loading cycle around render
func (s *AppServiceTestSuite) expectPage(render *gomock.Call) {
	gomock.InOrder(
		s.mockRenderer.EXPECT().ShowLoading(gomock.Any()),
		render,
		s.mockRenderer.EXPECT().HideLoading(gomock.Any()),
	)
}

func (s *AppServiceTestSuite) TestNewValidatesConfig() {
	_, err := app.New(nil)
	s.ErrorIs(err, app.ErrNilConfig)

	_, err = app.New(&app.Config{Clock: s.mockClock, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, app.ErrNilRoller)

	_, err = app.New(&app.Config{DiceRoller: s.mockDiceRoller, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, app.ErrNilClock)

	_, err = app.New(&app.Config{DiceRoller: s.mockDiceRoller, Clock: s.mockClock})
	s.ErrorIs(err, app.ErrNilUUIDGenerator)
}

func (s *AppServiceTestSuite) TestNavigateHome() {
	s.expectNow()
	s.expectPage(s.mockRenderer.EXPECT().RenderHome(gomock.Any()).Return(nil))

	output, err := s.appService.Navigate(s.ctx, &app.NavigateInput{Path: "/", Renderer: s.mockRenderer})
	s.Require().NoError(err)
	s.Equal(models.RouteTypeHome, output.Route.Type)
	s.Nil(output.Outcome)
	s.NoError(output.InternalError)
}

func (s *AppServiceTestSuite) TestNavigateHelp() {
	s.expectNow()
	s.expectPage(s.mockRenderer.EXPECT().RenderHelp(gomock.Any()).Return(nil))

	output, err := s.appService.Navigate(s.ctx, &app.NavigateInput{Path: "/HELP", Renderer: s.mockRenderer})
	s.Require().NoError(err)
	s.Equal(models.RouteTypeHelp, output.Route.Type)
}

func (s *AppServiceTestSuite) TestNavigateDice() {
	s.expectNow()
	s.mockDiceRoller.EXPECT().RollMany(3, 6).Return([]int{2, 5, 6}, nil)
	s.mockDiceRoller.EXPECT().Sum([]int{2, 5, 6}).Return(13, nil)
	s.mockUUID.EXPECT().NewUUID().Return(s.testRollID)

	expected := &models.RollOutcome{
		ID:       s.testRollID,
		Spec:     models.DiceSpec{Quantity: 3, Sides: 6},
		Notation: "3d6",
		Rolls:    []int{2, 5, 6},
		Sum:      13,
		RolledAt: s.testTime,
	}
	s.expectPage(s.mockRenderer.EXPECT().RenderDice(gomock.Any(), expected).Return(nil))

	output, err := s.appService.Navigate(s.ctx, &app.NavigateInput{Path: "/3D6", Renderer: s.mockRenderer})
	s.Require().NoError(err)
	s.Equal(models.RouteTypeDice, output.Route.Type)
	s.Equal(expected, output.Outcome)
	s.False(output.RedirectScheduled)
}

func (s *AppServiceTestSuite) TestNavigateDiceRollFailure() {
	s.expectNow()
	s.mockDiceRoller.EXPECT().RollMany(2, 20).Return(nil, dice.ErrInvalidArgument)
	s.expectPage(s.mockRenderer.EXPECT().RenderError(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, routeErr *models.RouteError) error {
			s.Equal(i18n.KindRoll, routeErr.Kind)
			s.Equal(i18n.MsgRollError, routeErr.Message)
			s.False(routeErr.ShouldRedirect)
			return nil
		}))

	output, err := s.appService.Navigate(s.ctx, &app.NavigateInput{Path: "/2d20", Renderer: s.mockRenderer})
	s.Require().NoError(err)
	s.Nil(output.Outcome)
	s.NoError(output.InternalError)
}

// newEntropyStarvedService rolls with a strong reader that only has the
// bytes consumed by the source probe
func (s *AppServiceTestSuite) newEntropyStarvedService() app.Service {
	roller := dice.New(&dice.Config{Entropy: bytes.NewReader(make([]byte, 4))})
	s.Require().Equal(dice.MethodCrypto, roller.Info().Method)

	service, err := app.New(&app.Config{
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		DiceRoller:    roller,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	return service
}

func (s *AppServiceTestSuite) TestNavigateEntropyFailureShowsRollError() {
	s.expectNow()
	s.expectPage(s.mockRenderer.EXPECT().RenderError(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, routeErr *models.RouteError) error {
			s.Equal(i18n.KindRoll, routeErr.Kind)
			s.Equal(i18n.MsgRollError, routeErr.Message)
			return nil
		}))

	output, err := s.newEntropyStarvedService().Navigate(s.ctx, &app.NavigateInput{Path: "/2d6", Renderer: s.mockRenderer})
	s.Require().NoError(err)
	s.Nil(output.Outcome)
	s.NoError(output.InternalError)
}

func (s *AppServiceTestSuite) TestRollEntropyFailure() {
	_, err := s.newEntropyStarvedService().Roll(s.ctx, &app.RollInput{Notation: "2d6"})
	s.ErrorIs(err, dice.ErrEntropy)
}

func (s *AppServiceTestSuite) TestNavigateShowLoadingPanicStillRenders() {
	s.expectNow()
	gomock.InOrder(
		s.mockRenderer.EXPECT().ShowLoading(gomock.Any()).Do(func(context.Context) {
			panic("loading widget broke")
		}),
		s.mockRenderer.EXPECT().RenderHome(gomock.Any()).Return(nil),
		s.mockRenderer.EXPECT().HideLoading(gomock.Any()),
	)

	var output *app.NavigateOutput
	var err error
	s.NotPanics(func() {
		output, err = s.appService.Navigate(s.ctx, &app.NavigateInput{Path: "/", Renderer: s.mockRenderer})
	})
	s.Require().NoError(err)
	s.Equal(models.RouteTypeHome, output.Route.Type)
	s.NoError(output.InternalError)
}

func (s *AppServiceTestSuite) TestRedirectHideLoadingPanicDoesNotEscape() {
	s.expectNow()
	s.expectAfterFunc()
	s.expectPage(s.mockRenderer.EXPECT().RenderError(gomock.Any(), gomock.Any()).Return(nil))

	_, err := s.appService.Navigate(s.ctx, &app.NavigateInput{
		SessionID: s.testSessionID,
		Path:      "/abc",
		Renderer:  s.mockRenderer,
	})
	s.Require().NoError(err)
	s.Require().NotNil(s.scheduled)

	gomock.InOrder(
		s.mockRenderer.EXPECT().ShowLoading(gomock.Any()),
		s.mockRenderer.EXPECT().RenderHelp(gomock.Any()).Return(nil),
		s.mockRenderer.EXPECT().HideLoading(gomock.Any()).Do(func(context.Context) {
			panic("spinner gone")
		}),
	)

	s.NotPanics(s.scheduled)
}

func (s *AppServiceTestSuite) TestIdleSessionsAreEvicted() {
	now := s.testTime
	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time { return now }).AnyTimes()
	s.mockDiceRoller.EXPECT().Info().Return(dice.RandomInfo{}).AnyTimes()
	s.mockRenderer.EXPECT().ShowLoading(gomock.Any()).AnyTimes()
	s.mockRenderer.EXPECT().HideLoading(gomock.Any()).AnyTimes()
	s.mockRenderer.EXPECT().RenderHome(gomock.Any()).Return(nil).AnyTimes()
	s.mockRenderer.EXPECT().RenderError(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.expectAfterFunc()

	sessions := func() int {
		status, err := s.appService.GetStatus(s.ctx)
		s.Require().NoError(err)
		return status.Sessions
	}
	navigate := func(sessionID, path string) {
		_, err := s.appService.Navigate(s.ctx, &app.NavigateInput{
			SessionID: sessionID,
			Path:      path,
			Renderer:  s.mockRenderer,
		})
		s.Require().NoError(err)
	}

	navigate("idle-channel", "/")
	navigate("redirecting-channel", "/abc")
	s.Equal(2, sessions())

	now = now.Add(app.DefaultSessionIdleTimeout + time.Second)
	navigate("active-channel", "/")

	// The pending redirect keeps its session
	s.Equal(2, sessions())
	s.ErrorIs(s.appService.CloseSession(s.ctx, &app.CloseSessionInput{SessionID: "idle-channel"}), app.ErrSessionNotFound)

	// An evicted session starts over on its next navigation
	navigate("idle-channel", "/")
	s.Equal(3, sessions())
}

func (s *AppServiceTestSuite) TestNavigateRenderFailureShowsInternalError() {
	s.expectNow()
	gomock.InOrder(
		s.mockRenderer.EXPECT().ShowLoading(gomock.Any()),
		s.mockRenderer.EXPECT().RenderHome(gomock.Any()).Return(errors.New("template exploded")),
		s.mockRenderer.EXPECT().RenderError(gomock.Any(), &models.RouteError{
			Message: i18n.MsgInternalError,
			Kind:    i18n.KindInternal,
		}).Return(nil),
		s.mockRenderer.EXPECT().HideLoading(gomock.Any()),
	)

	output, err := s.appService.Navigate(s.ctx, &app.NavigateInput{Path: "/", Renderer: s.mockRenderer})
	s.Require().NoError(err)
	s.ErrorIs(output.InternalError, app.ErrInternalRender)
	s.ErrorContains(output.InternalError, "template exploded")
}

func (s *AppServiceTestSuite) TestNavigateRenderPanicShowsInternalError() {
	s.expectNow()
	gomock.InOrder(
		s.mockRenderer.EXPECT().ShowLoading(gomock.Any()),
		s.mockRenderer.EXPECT().RenderHelp(gomock.Any()).DoAndReturn(func(context.Context) error {
			panic("nil map")
		}),
		s.mockRenderer.EXPECT().RenderError(gomock.Any(), gomock.Any()).Return(nil),
		s.mockRenderer.EXPECT().HideLoading(gomock.Any()),
	)

	output, err := s.appService.Navigate(s.ctx, &app.NavigateInput{Path: "/help", Renderer: s.mockRenderer})
	s.Require().NoError(err)
	s.ErrorIs(output.InternalError, app.ErrInternalRender)
}

func (s *AppServiceTestSuite) TestNavigateLoadingClearedWhenFallbackFails() {
	s.expectNow()
	gomock.InOrder(
		s.mockRenderer.EXPECT().ShowLoading(gomock.Any()),
		s.mockRenderer.EXPECT().RenderHome(gomock.Any()).Return(errors.New("broken")),
		s.mockRenderer.EXPECT().RenderError(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, *models.RouteError) error {
				panic("still broken")
			}),
		s.mockRenderer.EXPECT().HideLoading(gomock.Any()),
	)

	output, err := s.appService.Navigate(s.ctx, &app.NavigateInput{Path: "", Renderer: s.mockRenderer})
	s.Require().NoError(err)
	s.Error(output.InternalError)
}

func (s *AppServiceTestSuite) TestNavigateErrorRouteWithoutSessionDoesNotSchedule() {
	s.expectNow()
	s.expectPage(s.mockRenderer.EXPECT().RenderError(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, routeErr *models.RouteError) error {
			s.Equal(string(notation.ErrQuantity), routeErr.Kind)
			s.True(routeErr.ShouldRedirect)
			s.Equal(models.HelpPath, routeErr.RedirectTo)
			return nil
		}))

	output, err := s.appService.Navigate(s.ctx, &app.NavigateInput{Path: "/25d10", Renderer: s.mockRenderer})
	s.Require().NoError(err)
	s.Equal(models.RouteTypeError, output.Route.Type)
	s.False(output.RedirectScheduled)
}

func (s *AppServiceTestSuite) TestNavigateErrorRouteSchedulesRedirect() {
	s.expectNow()
	s.expectAfterFunc()
	s.expectPage(s.mockRenderer.EXPECT().RenderError(gomock.Any(), gomock.Any()).Return(nil))

	output, err := s.appService.Navigate(s.ctx, &app.NavigateInput{
		SessionID: s.testSessionID,
		Path:      "/abc",
		Renderer:  s.mockRenderer,
	})
	s.Require().NoError(err)
	s.True(output.RedirectScheduled)
	s.Require().NotNil(s.scheduled)

	var events []app.RouteChangeEvent
	s.appService.OnRouteChange(func(event app.RouteChangeEvent) {
		events = append(events, event)
	})

	s.expectPage(s.mockRenderer.EXPECT().RenderHelp(gomock.Any()).Return(nil))
	s.scheduled()

	s.Require().Len(events, 1)
	s.Equal(models.RouteTypeHelp, events[0].Route.Type)
	s.True(events[0].Redirect)
	s.Equal(s.testSessionID, events[0].SessionID)
}

func (s *AppServiceTestSuite) TestNewNavigationCancelsPendingRedirect() {
	s.expectNow()
	s.expectAfterFunc()
	s.expectPage(s.mockRenderer.EXPECT().RenderError(gomock.Any(), gomock.Any()).Return(nil))

	_, err := s.appService.Navigate(s.ctx, &app.NavigateInput{
		SessionID: s.testSessionID,
		Path:      "/1d1",
		Renderer:  s.mockRenderer,
	})
	s.Require().NoError(err)
	stale := s.scheduled
	s.Require().NotNil(stale)

	s.mockTimer.EXPECT().Stop().Return(true)
	s.expectPage(s.mockRenderer.EXPECT().RenderHome(gomock.Any()).Return(nil))

	_, err = s.appService.Navigate(s.ctx, &app.NavigateInput{SessionID: s.testSessionID, Path: "/"})
	s.Require().NoError(err)

	// A timer that fired before Stop must not navigate
	stale()
}

func (s *AppServiceTestSuite) TestLiveSessionRequiresRenderer() {
	_, err := s.appService.Navigate(s.ctx, &app.NavigateInput{SessionID: "new-session", Path: "/"})
	s.ErrorIs(err, app.ErrNilRenderer)

	_, err = s.appService.Navigate(s.ctx, &app.NavigateInput{Path: "/"})
	s.ErrorIs(err, app.ErrNilRenderer)

	_, err = s.appService.Navigate(s.ctx, nil)
	s.ErrorIs(err, app.ErrNilInput)
}

func (s *AppServiceTestSuite) TestNavigateCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.appService.Navigate(ctx, &app.NavigateInput{Path: "/", Renderer: s.mockRenderer})
	s.ErrorIs(err, context.Canceled)
}

func (s *AppServiceTestSuite) TestCloseSessionStopsRedirect() {
	s.expectNow()
	s.expectAfterFunc()
	s.expectPage(s.mockRenderer.EXPECT().RenderError(gomock.Any(), gomock.Any()).Return(nil))

	_, err := s.appService.Navigate(s.ctx, &app.NavigateInput{
		SessionID: s.testSessionID,
		Path:      "/nope",
		Renderer:  s.mockRenderer,
	})
	s.Require().NoError(err)

	s.mockTimer.EXPECT().Stop().Return(true)
	s.Require().NoError(s.appService.CloseSession(s.ctx, &app.CloseSessionInput{SessionID: s.testSessionID}))

	s.scheduled()

	s.ErrorIs(s.appService.CloseSession(s.ctx, &app.CloseSessionInput{SessionID: s.testSessionID}), app.ErrSessionNotFound)
	s.ErrorIs(s.appService.CloseSession(s.ctx, nil), app.ErrNilInput)
}

func (s *AppServiceTestSuite) TestRouteListeners() {
	s.expectNow()
	s.mockRenderer.EXPECT().ShowLoading(gomock.Any()).Times(2)
	s.mockRenderer.EXPECT().RenderHome(gomock.Any()).Return(nil).Times(2)
	s.mockRenderer.EXPECT().HideLoading(gomock.Any()).Times(2)

	var order []string
	first := s.appService.OnRouteChange(func(event app.RouteChangeEvent) {
		order = append(order, "first:"+string(event.Route.Type))
	})
	s.appService.OnRouteChange(func(app.RouteChangeEvent) {
		panic("bad listener")
	})
	s.appService.OnRouteChange(func(event app.RouteChangeEvent) {
		order = append(order, "third:"+event.Path)
	})
	s.Equal(app.ListenerID(0), s.appService.OnRouteChange(nil))

	_, err := s.appService.Navigate(s.ctx, &app.NavigateInput{Path: "/home", Renderer: s.mockRenderer})
	s.Require().NoError(err)
	s.Equal([]string{"first:home", "third:/home"}, order)

	s.True(s.appService.OffRouteChange(first))
	s.False(s.appService.OffRouteChange(first))

	order = nil
	_, err = s.appService.Navigate(s.ctx, &app.NavigateInput{Path: "/", Renderer: s.mockRenderer})
	s.Require().NoError(err)
	s.Equal([]string{"third:/"}, order)
}

func (s *AppServiceTestSuite) TestNavigateOverBudgetStillRenders() {
	calls := 0
	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time {
		calls++
		return s.testTime.Add(time.Duration(calls) * 1500 * time.Millisecond)
	}).AnyTimes()
	s.mockDiceRoller.EXPECT().RollMany(1, 20).Return([]int{20}, nil)
	s.mockDiceRoller.EXPECT().Sum([]int{20}).Return(20, nil)
	s.mockUUID.EXPECT().NewUUID().Return(s.testRollID)
	s.expectPage(s.mockRenderer.EXPECT().RenderDice(gomock.Any(), gomock.Any()).Return(nil))

	output, err := s.appService.Navigate(s.ctx, &app.NavigateInput{Path: "/1d20", Renderer: s.mockRenderer})
	s.Require().NoError(err)
	s.Greater(output.Duration, app.DefaultRenderBudget)
	s.Require().NotNil(output.Outcome)
	s.Equal(20, output.Outcome.Primary())
}

func (s *AppServiceTestSuite) TestRoll() {
	s.expectNow()
	s.mockDiceRoller.EXPECT().RollMany(1, 6).Return([]int{4}, nil)
	s.mockDiceRoller.EXPECT().Sum([]int{4}).Return(4, nil)
	s.mockUUID.EXPECT().NewUUID().Return(s.testRollID)

	output, err := s.appService.Roll(s.ctx, &app.RollInput{Notation: "1d6"})
	s.Require().NoError(err)
	s.Equal("1d6", output.Outcome.Notation)
	s.Equal([]int{4}, output.Outcome.Rolls)
	s.Equal(4, output.Outcome.Sum)
	s.True(output.Outcome.IsSingle())
}

func (s *AppServiceTestSuite) TestRollInvalidNotation() {
	_, err := s.appService.Roll(s.ctx, &app.RollInput{Notation: "25d10"})
	s.ErrorIs(err, notation.ErrQuantity)

	_, err = s.appService.Roll(s.ctx, nil)
	s.ErrorIs(err, app.ErrNilInput)
}

func (s *AppServiceTestSuite) TestGetStatus() {
	s.expectNow()
	s.mockDiceRoller.EXPECT().Info().Return(dice.RandomInfo{
		UsesStrongSource: true,
		Method:           dice.MethodCrypto,
		Secure:           true,
	})
	s.appService.OnRouteChange(func(app.RouteChangeEvent) {})

	status, err := s.appService.GetStatus(s.ctx)
	s.Require().NoError(err)
	s.True(status.Initialized)
	s.True(status.Random.UsesStrongSource)
	s.Equal(0, status.Sessions)
	s.Equal(1, status.Listeners)
	s.Equal(s.testTime, status.Timestamp)
}
