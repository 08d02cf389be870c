package breakout

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/physics"
)

// BlockRemover takes a struck block out of the session. The ball takes the
// block's color, so it passes harmlessly over blocks of that color until it
// hits a different one.
type BlockRemover struct {
	game      *Game
	remaining *physics.Counter
}

// NewBlockRemover creates a remover that decrements remaining per block.
func NewBlockRemover(g *Game, remaining *physics.Counter) *BlockRemover {
	return &BlockRemover{game: g, remaining: remaining}
}

func (r *BlockRemover) HitEvent(beingHit *physics.Block, hitter *physics.Ball) {
	hitter.SetColor(beingHit.Color())
	beingHit.RemoveHitListener(r)
	r.remaining.Decrease(1)
	r.game.removeBlock(beingHit)
}

// BallRemover takes a ball out of the session when it reaches the kill zone.
type BallRemover struct {
	game      *Game
	remaining *physics.Counter
}

// NewBallRemover creates a remover that decrements remaining per ball.
func NewBallRemover(g *Game, remaining *physics.Counter) *BallRemover {
	return &BallRemover{game: g, remaining: remaining}
}

func (r *BallRemover) HitEvent(_ *physics.Block, hitter *physics.Ball) {
	if r.game.removeBall(hitter) {
		r.remaining.Decrease(1)
	}
}

// ScoreTrackingListener awards points for every reported hit.
type ScoreTrackingListener struct {
	score  *physics.Counter
	points int
}

// NewScoreTrackingListener awards points to score on each hit.
func NewScoreTrackingListener(score *physics.Counter, points int) *ScoreTrackingListener {
	return &ScoreTrackingListener{score: score, points: points}
}

func (l *ScoreTrackingListener) HitEvent(_ *physics.Block, _ *physics.Ball) {
	l.score.Increase(l.points)
}

// LoggingHitListener writes every reported hit to the debug log.
type LoggingHitListener struct {
	logger *log.Logger
}

// NewLoggingHitListener creates a listener that logs to logger.
func NewLoggingHitListener(logger *log.Logger) *LoggingHitListener {
	return &LoggingHitListener{logger: logger}
}

func (l *LoggingHitListener) HitEvent(beingHit *physics.Block, hitter *physics.Ball) {
	r := beingHit.CollisionRectangle()
	l.logger.Debug("block hit",
		"block", r.UpperLeft(),
		"block_color", beingHit.Color(),
		"ball_color", hitter.Color(),
		"velocity", hitter.Velocity(),
	)
}
