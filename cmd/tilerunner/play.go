package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/spf13/cobra"
	"golang.org/x/image/colornames"

	"github.com/milk9111/tilerunner/audio"
	"github.com/milk9111/tilerunner/common"
	"github.com/milk9111/tilerunner/engine"
	"github.com/milk9111/tilerunner/entity"
	"github.com/milk9111/tilerunner/levels"
	"github.com/milk9111/tilerunner/prefabs"
)

const screenWidth = 640

var (
	flagMute   bool
	flagVolume float64
	flagWatch  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open a window and play the campaign",
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume between 0 and 1")
	playCmd.Flags().BoolVar(&flagWatch, "watch", true, "Reload setup and level files when they change on disk")
}

var kindColors = map[string]color.RGBA{
	entity.KindHero:            colornames.Crimson,
	entity.KindBullet:          colornames.Orangered,
	entity.KindStar:            colornames.Yellow,
	entity.KindMushroom:        colornames.Red,
	entity.KindBallmonster:     colornames.Sienna,
	entity.KindGreenTurtle:     colornames.Green,
	entity.KindSpikedTurtle:    colornames.Darkred,
	entity.KindShell:           colornames.Darkgreen,
	entity.KindPipePlant:       colornames.Limegreen,
	entity.KindStaticPlant:     colornames.Limegreen,
	entity.KindCoin:            colornames.Gold,
	entity.KindBoxCoin:         colornames.Gold,
	entity.KindCoinBox:         colornames.Orange,
	entity.KindMultipleCoinBox: colornames.Orange,
	entity.KindStarBox:         colornames.Orange,
	entity.KindMushroomBox:     colornames.Orange,
}

const noticeDuration = 3000

// noticeText is the banner shown for a level outcome.
func noticeText(evt engine.Event) string {
	switch evt.Type {
	case engine.EventGameOver:
		return "Game over"
	case engine.EventVictory:
		return fmt.Sprintf("Level %d complete", evt.LevelID)
	case engine.EventReloaded:
		if evt.Transfer != nil {
			return fmt.Sprintf("Lives left: %d", evt.Transfer.Lives)
		}
	}
	return ""
}

type Game struct {
	level    *engine.Level
	campaign *levels.Campaign
	logger   *log.Logger
	watcher  *prefabs.Watcher
	paused   bool
	views    []engine.View

	notice      string
	noticeTicks int
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	opts := []engine.Option{engine.WithInput(keyboardInput{})}
	if !flagMute {
		sink := audio.NewToneSink(flagVolume)
		if err := sink.Init(); err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			defer sink.Close()
			opts = append(opts, engine.WithSounds(sink))
		}
	}

	l, campaign, err := newLevel(logger, opts...)
	if err != nil {
		return err
	}
	g := &Game{level: l, campaign: campaign, logger: logger}

	if flagWatch {
		if w, err := newWatcher(); err != nil {
			logger.Warn("file watching disabled", "err", err)
		} else if w != nil {
			g.watcher = w
			defer w.Close()
		}
	}

	interval := l.Config().Interval
	if interval <= 0 {
		interval = engine.DefaultConfig().Interval
	}
	ebiten.SetTPS(1000 / interval)
	ebiten.SetWindowTitle("tilerunner")
	ebiten.SetWindowSize(screenWidth, int(l.HeightPx()))

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// newWatcher watches the on-disk setup and level directories that exist.
func newWatcher() (*prefabs.Watcher, error) {
	var dirs []string
	for _, dir := range []string{"prefabs", "levels"} {
		if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) == 0 {
		return nil, nil
	}
	return prefabs.NewWatcher(dirs...)
}

func (g *Game) Update() error {
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
			return ebiten.Termination
		}
		return nil
	}

	g.level.Tick()
	if g.noticeTicks > 0 {
		g.noticeTicks--
	}
	for _, evt := range g.level.Events().Drain(engine.EventGameOver, engine.EventVictory, engine.EventReloaded) {
		g.notice = noticeText(evt)
		g.noticeTicks = g.level.Config().Ticks(noticeDuration)
		logEvent(g.logger, evt)
	}
	for _, evt := range g.level.Events().Drain() {
		logEvent(g.logger, evt)
	}
	if !g.level.Active() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reloadFile(path)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Warn("watch", "err", err)
		default:
			return
		}
	}
}

// reloadFile applies an edited setup at the next level load, and restarts
// the current level when its own file changed.
func (g *Game) reloadFile(path string) {
	if prefabs.IsSetup(path) {
		cfg, err := prefabs.LoadSetup(path)
		if err != nil {
			g.logger.Error("reload setup", "path", path, "err", err)
			return
		}
		g.level.SetConfig(cfg)
		g.logger.Info("setup reloaded", "path", path)
		return
	}
	if filepath.Ext(path) != ".json" {
		return
	}

	d, err := levels.Load(filepath.Base(path))
	if err != nil {
		g.logger.Error("reload level", "path", path, "err", err)
		return
	}
	if err := g.campaign.Replace(d); err != nil {
		g.logger.Error("reload level", "path", path, "err", err)
		return
	}
	if d.ID != g.level.ID() {
		return
	}
	if err := g.level.Swap(d); err != nil {
		g.logger.Error("reload level", "id", d.ID, "err", err)
		return
	}
	g.logger.Info("level reloaded from disk", "id", d.ID)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Skyblue)

	height := g.level.HeightPx()
	scroll := g.level.Scroll()
	g.views = g.level.Views()
	for _, v := range g.views {
		if v.Hidden {
			continue
		}
		w, h := v.W, v.H
		c, ok := kindColors[v.Kind]
		if v.Rows > 0 {
			w, h = common.TileSize, float64(v.Rows*common.TileSize)
		} else if !ok {
			c = colornames.Saddlebrown
			if v.Blocking == 0 {
				c = colornames.Darkseagreen
			}
		}
		x := v.X - scroll
		y := height - (v.Y + v.OffsetY) - h
		if x+w < 0 || x > screenWidth {
			continue
		}
		vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), c, false)
	}

	status := fmt.Sprintf("Level %d", g.level.ID())
	if hero := heroOf(g.level); hero != nil {
		status = fmt.Sprintf("Lives: %d    Coins: %d    Level %d", hero.Lives, hero.Coins, g.level.ID())
	}
	if g.noticeTicks > 0 {
		status += "\n" + g.notice
	}
	if g.paused {
		status += "\nPaused (Esc resume, Q quit)"
	}
	ebitenutil.DebugPrint(screen, status)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, int(g.level.HeightPx())
}
