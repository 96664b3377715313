package warmup

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/baditaflorin/go_text_frequency/internal/core/domain"
	"github.com/baditaflorin/go_text_frequency/internal/ports"
)

// WarmupConfig defines configuration for warming up the system
type WarmupConfig struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of passes over every option combination per routine
	Iterations int
	// Sample text size for warmup
	SampleTextSize int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency:    runtime.NumCPU(),
		Iterations:     2,
		SampleTextSize: 1000,
		Duration:       30 * time.Second,
		ForceGC:        true,
	}
}

// Manager handles system warmup operations
type Manager struct {
	logger    ports.Logger
	analyzers []ports.FrequencyAnalyzer
	config    WarmupConfig
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterAnalyzer adds an analyzer to be warmed up
func (wm *Manager) RegisterAnalyzer(a ports.FrequencyAnalyzer) {
	wm.analyzers = append(wm.analyzers, a)
}

// WarmUp runs a sample document through every registered analyzer with every
// option combination, so dictionaries and tagger models are loaded before
// the first real request. It returns the number of completed analyses.
func (wm *Manager) WarmUp(ctx context.Context) int {
	startTime := time.Now()
	wm.logger.Info("Starting system warmup",
		"components", len(wm.analyzers),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	// Create a context with timeout if duration is specified
	warmupCtx := ctx
	if wm.config.Duration > 0 {
		var cancel context.CancelFunc
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	}

	completed := wm.warmUpAnalyzers(warmupCtx)

	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	wm.logger.Info("System warmup completed",
		"duration", time.Since(startTime),
		"analyses", completed,
	)
	return completed
}

func (wm *Manager) warmUpAnalyzers(ctx context.Context) int {
	if len(wm.analyzers) == 0 {
		return 0
	}

	sampleText := generateSampleText(wm.config.SampleTextSize)
	combos := optionCombinations()
	concurrency := max(1, wm.config.Concurrency)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		completed int
	)
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(routineID int) {
			defer wg.Done()

			done := 0
			defer func() {
				mu.Lock()
				completed += done
				mu.Unlock()
			}()

			for j := 0; j < wm.config.Iterations; j++ {
				for k := range combos {
					// Start each routine at a different combination
					opts := combos[(k+routineID)%len(combos)]
					for _, a := range wm.analyzers {
						if ctx.Err() != nil {
							return
						}
						if _, err := a.Analyze(ctx, sampleText, opts); err != nil {
							wm.logger.Warn("Warmup analysis failed", "options", opts.String(), "error", err)
							continue
						}
						done++
					}
				}
			}
		}(i)
	}

	wg.Wait()
	return completed
}

// optionCombinations returns all 32 settings of the five option flags.
func optionCombinations() []domain.Options {
	out := make([]domain.Options, 0, 32)
	for mask := 0; mask < 32; mask++ {
		out = append(out, domain.Options{
			Stem:              mask&1 != 0,
			Lemmatize:         mask&2 != 0,
			Lowercase:         mask&4 != 0,
			RemoveStopwords:   mask&8 != 0,
			RemovePunctuation: mask&16 != 0,
		})
	}
	return out
}

// generateSampleText creates sample prose of roughly the specified size
func generateSampleText(size int) string {
	sentences := []string{
		"The quick brown fox jumps over the lazy dog.",
		"Cats were running faster than the mice, weren't they?",
		"She said “better late than never” … and left.",
		"Children played happily in the gardens -- all day long!",
		"Analysts are analyzing the studies; results vary.",
	}

	var sb strings.Builder
	for i := 0; sb.Len() < size; i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(sentences[i%len(sentences)])
	}
	return sb.String()
}
