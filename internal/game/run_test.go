package game_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samdwyer/torchcrawl/internal/game"
	gamemock "github.com/samdwyer/torchcrawl/internal/game/mock"
	"github.com/samdwyer/torchcrawl/internal/telemetry"
)

func newGame(t *testing.T) *game.Game {
	t.Helper()
	cfg := game.DefaultConfig()
	cfg.Seed = 2024
	g, err := game.New(context.Background(), cfg, game.WithTracer(telemetry.NoopTracer()))
	require.NoError(t, err)
	return g
}

func TestRun_RendersBeforeEveryCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	renderer := gamemock.NewMockRenderer(ctrl)
	input := gamemock.NewMockInputSource(ctrl)
	g := newGame(t)
	ctx := context.Background()

	gomock.InOrder(
		renderer.EXPECT().Render(gomock.Any()).DoAndReturn(func(view game.View) error {
			assert.Equal(t, game.DisplayNormal, view.Mode)
			assert.Equal(t, 0, view.Turn)
			return nil
		}),
		input.EXPECT().NextCommand(ctx).Return(game.CmdToggleDisplay, nil),
		renderer.EXPECT().Render(gomock.Any()).DoAndReturn(func(view game.View) error {
			assert.Equal(t, game.DisplayDetailed, view.Mode)
			return nil
		}),
		input.EXPECT().NextCommand(ctx).Return(game.CmdQuit, nil),
	)

	require.NoError(t, g.Run(ctx, renderer, input))
	assert.Equal(t, game.DisplayDetailed, g.Mode())
	assert.Equal(t, 0, g.Turn())
}

func TestRun_InputError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	renderer := gamemock.NewMockRenderer(ctrl)
	input := gamemock.NewMockInputSource(ctrl)
	g := newGame(t)
	errClosed := errors.New("screen closed")

	renderer.EXPECT().Render(gomock.Any()).Return(nil)
	input.EXPECT().NextCommand(gomock.Any()).Return(game.CmdNone, errClosed)

	err := g.Run(context.Background(), renderer, input)
	assert.ErrorIs(t, err, errClosed)
}

func TestRun_RenderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	renderer := gamemock.NewMockRenderer(ctrl)
	input := gamemock.NewMockInputSource(ctrl)
	g := newGame(t)
	errDraw := errors.New("draw failed")

	renderer.EXPECT().Render(gomock.Any()).Return(errDraw)

	err := g.Run(context.Background(), renderer, input)
	assert.ErrorIs(t, err, errDraw)
}

func TestRun_StopsOnCancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	renderer := gamemock.NewMockRenderer(ctrl)
	input := gamemock.NewMockInputSource(ctrl)
	g := newGame(t)

	ctx, cancel := context.WithCancel(context.Background())
	renderer.EXPECT().Render(gomock.Any()).Return(nil)
	input.EXPECT().NextCommand(gomock.Any()).DoAndReturn(func(context.Context) (game.Command, error) {
		cancel()
		return game.CmdNone, nil
	})

	err := g.Run(ctx, renderer, input)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_MovesAdvanceTurns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	renderer := gamemock.NewMockRenderer(ctrl)
	input := gamemock.NewMockInputSource(ctrl)
	g := newGame(t)

	renderer.EXPECT().Render(gomock.Any()).Return(nil).Times(4)
	gomock.InOrder(
		input.EXPECT().NextCommand(gomock.Any()).Return(game.CmdMoveUp, nil),
		input.EXPECT().NextCommand(gomock.Any()).Return(game.CmdMoveLeft, nil),
		input.EXPECT().NextCommand(gomock.Any()).Return(game.CmdNone, nil),
		input.EXPECT().NextCommand(gomock.Any()).Return(game.CmdQuit, nil),
	)

	require.NoError(t, g.Run(context.Background(), renderer, input))
	assert.Equal(t, 2, g.Turn(), "CmdNone does not count")
}
