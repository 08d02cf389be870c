package breakout

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/geom"
	"github.com/vovakirdan/tui-breakout/internal/physics"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// GameState constants
const (
	StateServe    = "serve"    // Balls placed, waiting for launch
	StatePlaying  = "playing"  // Balls in play
	StatePaused   = "paused"   // Game paused
	StateGameOver = "gameover" // Every ball lost
	StateWin      = "win"      // Every block cleared
)

// Minimum terminal size for a readable arena.
const (
	minScreenW = 40
	minScreenH = 15
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives session events. Discarded unless the CLI sets one, since
// writing to the terminal would corrupt the game screen.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetLogger sets the logger used by new sessions.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game is one breakout session: an arena, a paddle, bricks and balls
// advanced by the collision engine.
type Game struct {
	layout string

	runtime    core.RuntimeConfig
	cfg        config.BreakoutConfig
	difficulty *config.DifficultyManager
	log        *log.Logger

	env     *physics.Environment
	sprites *SpriteCollection
	paddle  *physics.Paddle
	balls   []*ballSprite
	blocks  map[*physics.Block]Sprite

	score           *physics.Counter
	remainingBlocks *physics.Counter
	remainingBalls  *physics.Counter
	blocksTotal     int
	ballsTotal      int

	input          core.InputFrame
	state          string
	tickCount      int
	screenTooSmall bool
}

// New creates a session with the layout from the loaded config.
func New() *Game {
	return &Game{}
}

// NewWall creates a session that always uses the wall layout.
func NewWall() *Game {
	return &Game{layout: config.LayoutWall}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.layout == config.LayoutWall {
		return "breakout_wall"
	}
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.layout == config.LayoutWall {
		return "Breakout (Wall)"
	}
	return "Breakout"
}

// Reset initializes or restarts the session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.log = logger.With("game", g.ID())

	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		g.log.Warn("using default config", "err", err)
		cfg = config.DefaultBreakoutConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	}
	g.ResetWithConfig(runtime, cfg)
}

// ResetWithConfig restarts the session from an explicit configuration.
// An invalid configuration is replaced by the defaults.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.BreakoutConfig) {
	if g.log == nil {
		g.log = logger.With("game", g.ID())
	}
	if g.layout != "" {
		cfg.Blocks.Layout = g.layout
	}
	if err := cfg.Validate(); err != nil {
		g.log.Warn("invalid config, using defaults", "err", err)
		cfg = config.DefaultBreakoutConfig()
		if g.layout != "" {
			cfg.Blocks.Layout = g.layout
		}
	}

	g.runtime = runtime
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	var opts []physics.EnvironmentOption
	if cfg.Physics.Broadphase {
		opts = append(opts, physics.WithBroadphase())
	}
	g.env = physics.NewEnvironment(opts...)
	g.sprites = &SpriteCollection{}
	g.balls = nil
	g.blocks = make(map[*physics.Block]Sprite)

	g.score = physics.NewCounter(0)
	g.remainingBlocks = physics.NewCounter(0)
	g.remainingBalls = physics.NewCounter(0)

	g.input = core.NewInputFrame()
	g.state = StateServe
	g.tickCount = 0

	g.build()

	g.log.Info("session started",
		"layout", cfg.Blocks.Layout,
		"blocks", g.blocksTotal,
		"balls", g.ballsTotal,
		"broadphase", cfg.Physics.Broadphase,
	)
}

// build populates the environment and sprites. Sprites are added in draw
// order: status line, walls, kill zone, paddle, bricks, balls.
func (g *Game) build() {
	cfg := g.cfg

	g.sprites.Add(&hudSprite{game: g})

	a := buildArena(cfg.World)
	for _, w := range a.walls {
		g.addBlock(physics.NewBlock(w.rect, w.color), BorderChar)
	}
	killZone := physics.NewKillZone(a.killZone.rect, a.killZone.color)
	killZone.AddHitListener(NewBallRemover(g, g.remainingBalls))
	g.addBlock(killZone, KillZoneChar)

	paddleColor := colorOrDefault(cfg.Paddle.Color)
	g.paddle = physics.NewPaddle(
		geom.Rect(cfg.Paddle.X, cfg.Paddle.Y, cfg.Paddle.Width, cfg.Paddle.Height),
		paddleColor, cfg.Paddle.Speed, cfg.World.Width,
	)
	g.env.Add(g.paddle)
	g.sprites.Add(&paddleSprite{paddle: g.paddle, game: g})

	blockRemover := NewBlockRemover(g, g.remainingBlocks)
	scoreListener := NewScoreTrackingListener(g.score, cfg.Scoring.HitPoints)
	hitLogger := NewLoggingHitListener(g.log)
	specs := buildLayout(cfg.Blocks, cfg.World)
	for _, spec := range specs {
		b := physics.NewBlock(spec.rect, spec.color)
		b.AddHitListener(hitLogger)
		b.AddHitListener(blockRemover)
		b.AddHitListener(scoreListener)
		g.addBlock(b, BlockChar)
		g.remainingBlocks.Increase(1)
	}
	g.blocksTotal = len(specs)

	for _, bc := range cfg.Balls {
		ball := physics.NewBall(geom.Pt(bc.X, bc.Y), bc.Radius, colorOrDefault(bc.Color))
		ball.SetVelocity(physics.NewVelocity(bc.DX, bc.DY))
		ball.SetPushback(cfg.Physics.Pushback)

		s := &ballSprite{ball: ball, baseSpeed: ball.Velocity().Speed(), game: g}
		g.balls = append(g.balls, s)
		g.sprites.Add(s)
		g.remainingBalls.Increase(1)
	}
	g.ballsTotal = len(cfg.Balls)
}

func (g *Game) addBlock(b *physics.Block, glyph rune) {
	s := &blockSprite{block: b, glyph: glyph}
	g.env.Add(b)
	g.sprites.Add(s)
	g.blocks[b] = s
}

// removeBlock takes b out of collision and drawing.
func (g *Game) removeBlock(b *physics.Block) {
	g.env.Remove(b)
	if s, ok := g.blocks[b]; ok {
		g.sprites.Remove(s)
		delete(g.blocks, b)
	}
	g.log.Debug("block destroyed", "at", b.CollisionRectangle().UpperLeft(), "remaining", g.remainingBlocks.Value())
}

// removeBall takes ball out of the session. It reports whether the ball
// was still in play.
func (g *Game) removeBall(ball *physics.Ball) bool {
	for i, s := range g.balls {
		if s.ball != ball {
			continue
		}
		g.balls = append(g.balls[:i:i], g.balls[i+1:]...)
		g.sprites.Remove(s)
		g.log.Debug("ball lost", "at", ball.Center(), "remaining", len(g.balls))
		return true
	}
	return false
}

// stepBall moves one ball and rescales its speed after a paddle bounce.
func (g *Game) stepBall(s *ballSprite) {
	info, hit := s.ball.Step(g.env)
	if !hit || info.Object != g.paddle {
		return
	}
	speed := g.difficulty.Speed(s.baseSpeed, g.score.Value(), g.tickCount)
	s.ball.SetVelocity(s.ball.Velocity().WithSpeed(speed))
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.over() {
		g.ResetWithConfig(g.runtime, g.cfg)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePlaying:
			g.state = StatePaused
		case StatePaused:
			g.state = StatePlaying
		}
	}

	if g.state == StatePaused || g.over() {
		return core.StepResult{State: g.State()}
	}

	g.input = in
	g.tickCount++

	if g.state == StateServe {
		g.paddle.Update(in.Has(core.ActionLeft), in.Has(core.ActionRight))
		if in.Has(core.ActionLaunch) {
			g.state = StatePlaying
		}
		return core.StepResult{State: g.State()}
	}

	g.sprites.NotifyAllTimePassed()
	g.checkEnd()

	return core.StepResult{State: g.State()}
}

// checkEnd applies the session rules: clearing every block wins with a
// bonus, losing every ball ends the game.
func (g *Game) checkEnd() {
	switch {
	case g.remainingBlocks.Value() <= 0:
		g.score.Increase(g.cfg.Scoring.ClearBonus)
		g.state = StateWin
		g.log.Info("all blocks cleared", "score", g.score.Value(), "ticks", g.tickCount)
	case g.remainingBalls.Value() <= 0:
		g.state = StateGameOver
		g.log.Info("game over", "score", g.score.Value(), "ticks", g.tickCount)
	}
}

func (g *Game) over() bool {
	return g.state == StateGameOver || g.state == StateWin
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score.Value(),
		GameOver: g.over(),
		Won:      g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// Summary describes the session for persistence.
func (g *Game) Summary() core.RunSummary {
	return core.RunSummary{
		GameID:        g.ID(),
		Score:         g.score.Value(),
		Won:           g.state == StateWin,
		BlocksCleared: g.blocksTotal - g.remainingBlocks.Value(),
		BallsLost:     g.ballsTotal - g.remainingBalls.Value(),
		Ticks:         g.tickCount,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	v := viewport{
		worldW: g.cfg.World.Width,
		worldH: g.cfg.World.Height,
		area:   core.NewRect(0, 1, dst.Width(), dst.Height()-1),
	}
	g.sprites.DrawAll(dst, v)
	g.renderOverlay(dst)
}

// renderHUD draws the score and remaining counts on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score.Value()))
	dst.DrawTextCentered(0, fmt.Sprintf("Blocks: %d  Balls: %d", g.remainingBlocks.Value(), g.remainingBalls.Value()))
	title := g.Title()
	dst.DrawText(dst.Width()-len(title)-1, 0, title)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateServe:
		dst.DrawTextCentered(dst.Height()-1, "Press SPACE to launch")

	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score.Value())
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateWin:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score.Value())
		g.drawCenteredBox(dst, "YOU WIN!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}

// Register the games with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
	registry.Register("breakout_wall", func() registry.Game {
		return NewWall()
	})
}
