// Package stats collects per-episode training statistics and persists them
// as CSV records.
package stats

import (
	"time"

	"github.com/rs/zerolog/log"
)

// EpisodeRecord is one episode's outcome.
type EpisodeRecord struct {
	ID       int
	Score    int
	MaxCell  int
	Moves    int
	Duration time.Duration
}

// Collector accumulates episode records and logs a summary of every
// completed block.
type Collector struct {
	block   int
	records []EpisodeRecord
}

// NewCollector returns a collector that summarizes every block episodes.
func NewCollector(block int) *Collector {
	if block <= 0 {
		panic("block size must be positive")
	}
	return &Collector{block: block}
}

// Add appends one episode record, logging a block summary when the record
// completes a block.
func (c *Collector) Add(r EpisodeRecord) {
	c.records = append(c.records, r)
	if len(c.records)%c.block == 0 {
		c.summarize()
	}
}

// Records returns every episode record collected so far.
func (c *Collector) Records() []EpisodeRecord {
	return c.records
}

func (c *Collector) summarize() {
	blockRecords := c.records[len(c.records)-c.block:]

	totalScore := 0
	maxScore := 0
	maxCell := 0
	cellCounts := make(map[int]int)
	for _, r := range blockRecords {
		totalScore += r.Score
		if r.Score > maxScore {
			maxScore = r.Score
		}
		if r.MaxCell > maxCell {
			maxCell = r.MaxCell
		}
		cellCounts[r.MaxCell]++
	}

	avg := float64(totalScore) / float64(len(blockRecords))
	log.Info().
		Int("episodes", len(c.records)).
		Float64("avg_score", avg).
		Int("max_score", maxScore).
		Int("max_cell", maxCell).
		Msgf("block summary: avg=%.1f max=%d", avg, maxScore)

	// Share of episodes reaching each top tile rank, highest first
	reached := 0
	for rank := maxCell; rank >= 1 && reached < len(blockRecords); rank-- {
		count := cellCounts[rank]
		if count == 0 {
			continue
		}
		reached += count
		log.Debug().Msgf("tile rank %d: %d episodes (%.1f%%)",
			rank, count, 100*float64(count)/float64(len(blockRecords)))
	}
}
