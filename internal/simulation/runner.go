// Package simulation drives the inventory through a number of days and
// reports the stock after each one.
package simulation

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vyrodovalexey/gildedrose/internal/inventory"
	"github.com/vyrodovalexey/gildedrose/internal/model"
)

// ErrInvalidDays is returned when a negative number of days is requested.
var ErrInvalidDays = errors.New("days must not be negative")

// reportHeader is written above the item lines of every day.
const reportHeader = "name, sellIn, quality"

// DefaultItems returns a fresh copy of the standard stock.
func DefaultItems() []model.Item {
	return []model.Item{
		model.NewItem("+5 Dexterity Vest", 10, 20),
		model.NewItem(model.NameAgedBrie, 2, 0),
		model.NewItem("Elixir of the Mongoose", 5, 7),
		model.NewItem(model.NameSulfuras, 0, 80),
		model.NewItem(model.NameSulfuras, -1, 80),
		model.NewItem(model.NameBackstagePass, 15, 20),
		model.NewItem(model.NameBackstagePass, 10, 49),
		model.NewItem(model.NameBackstagePass, 5, 49),
		// no dedicated rule yet, decays like an ordinary item
		model.NewItem("Conjured Mana Cake", 3, 6),
	}
}

// Runner applies daily updates to a shop and writes a report per day.
type Runner struct {
	shop     *inventory.Shop
	logger   *zap.Logger
	recorder *Recorder
	runID    string
}

// NewRunner creates a Runner. A nil recorder disables metrics.
func NewRunner(shop *inventory.Shop, logger *zap.Logger, recorder *Recorder) *Runner {
	return &Runner{
		shop:     shop,
		logger:   logger,
		recorder: recorder,
		runID:    uuid.New().String(),
	}
}

// RunID returns the identifier attached to every log entry of this runner.
func (r *Runner) RunID() string {
	return r.runID
}

// Run writes days+1 snapshots to w, applying one update between consecutive
// snapshots. The context is checked before each update.
func (r *Runner) Run(ctx context.Context, days int, w io.Writer) error {
	if days < 0 {
		return ErrInvalidDays
	}

	logger := r.logger.With(zap.String("run_id", r.runID))
	logger.Info("simulation started",
		zap.Int("days", days),
		zap.Int("items", len(r.shop.Items)),
	)

	r.observe()

	for day := 0; ; day++ {
		if err := writeDay(w, day, r.shop.Items); err != nil {
			return fmt.Errorf("write day %d: %w", day, err)
		}
		r.logDay(logger, day)

		if day == days {
			break
		}

		select {
		case <-ctx.Done():
			logger.Warn("simulation cancelled", zap.Int("day", day))
			return fmt.Errorf("advance day %d: %w", day+1, ctx.Err())
		default:
		}

		r.shop.UpdateQuality()
		if r.recorder != nil {
			r.recorder.DayAdvanced()
		}
		r.observe()
	}

	logger.Info("simulation finished", zap.Int("days", days))
	return nil
}

func (r *Runner) observe() {
	if r.recorder != nil {
		r.recorder.Observe(r.shop.Items)
	}
}

func (r *Runner) logDay(logger *zap.Logger, day int) {
	if logger.Check(zap.DebugLevel, "item state") == nil {
		return
	}

	for _, item := range r.shop.Items {
		logger.Debug("item state",
			zap.Int("day", day),
			zap.String("name", item.Name),
			zap.Stringer("variant", item.Variant()),
			zap.Int("sell_in", item.SellIn),
			zap.Int("quality", item.Quality),
			zap.Bool("expired", item.Expired()),
		)
	}
}

func writeDay(w io.Writer, day int, items []model.Item) error {
	if _, err := fmt.Fprintf(w, "-------- day %d --------\n%s\n", day, reportHeader); err != nil {
		return err
	}
	for _, item := range items {
		if _, err := fmt.Fprintln(w, item.String()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
