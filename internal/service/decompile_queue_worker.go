package service

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"arbos/internal/decompiler"
	"arbos/internal/domain"
	"arbos/internal/port"
)

// DecompileQueueConfig holds settings for the decompile queue worker.
type DecompileQueueConfig struct {
	PollInterval time.Duration
	Concurrency  int
}

// DecompileQueueWorker polls for queued reports and runs the breakdown
// pipeline on them in the background.
type DecompileQueueWorker struct {
	reportRepo port.ReportRepository
	dec        *decompiler.Decompiler
	cfg        DecompileQueueConfig
	wg         sync.WaitGroup
}

// NewDecompileQueueWorker creates a new DecompileQueueWorker.
func NewDecompileQueueWorker(reportRepo port.ReportRepository, dec *decompiler.Decompiler, cfg DecompileQueueConfig) *DecompileQueueWorker {
	return &DecompileQueueWorker{
		reportRepo: reportRepo,
		dec:        dec,
		cfg:        cfg,
	}
}

// Start runs the polling loop until ctx is canceled. It blocks until all
// in-flight decompilations have finished.
func (w *DecompileQueueWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	sem := make(chan struct{}, w.cfg.Concurrency)

	log.Printf("decompileQueueWorker: started (poll=%s, concurrency=%d)",
		w.cfg.PollInterval, w.cfg.Concurrency)

	for {
		select {
		case <-ctx.Done():
			log.Printf("decompileQueueWorker: shutting down, waiting for in-flight work...")
			w.wg.Wait()
			log.Printf("decompileQueueWorker: shutdown complete")
			return
		case <-ticker.C:
			available := w.cfg.Concurrency - len(sem)
			if available <= 0 {
				continue
			}

			reports, err := w.reportRepo.ClaimQueued(ctx, available)
			if err != nil {
				if ctx.Err() != nil {
					// Context canceled during poll, exit on the next tick.
					continue
				}
				log.Printf("decompileQueueWorker: ClaimQueued error: %v", err)
				continue
			}

			for i := range reports {
				report := reports[i] // copy for goroutine

				sem <- struct{}{} // acquire
				w.wg.Add(1)
				go func() {
					defer w.wg.Done()
					defer func() { <-sem }() // release

					// Use a fresh context independent of the poll context
					// so in-flight work completes even during shutdown.
					workCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
					defer cancel()

					w.process(workCtx, &report)
				}()
			}
		}
	}
}

// Process runs the breakdown on a single claimed report and persists the
// outcome. Exported for use by tests; the polling loop is the normal
// entry point.
func (w *DecompileQueueWorker) Process(ctx context.Context, report *domain.Report) {
	w.process(ctx, report)
}

func (w *DecompileQueueWorker) process(ctx context.Context, report *domain.Report) {
	log.Printf("decompileQueueWorker: decompiling report %s", report.ID)

	result := w.dec.Decompile(report.RawText, decompiler.FormatText)
	breakdown, err := json.Marshal(result)

	now := time.Now()
	if err != nil {
		report.Status = domain.ReportStatusFailed
		report.DecompileError = err.Error()
		report.Breakdown = nil
		report.DecompiledAt = nil
	} else {
		report.Status = domain.ReportStatusDecompiled
		report.Breakdown = breakdown
		report.DecompileError = ""
		report.DecompiledAt = &now
	}

	if err := w.reportRepo.UpdateBreakdown(ctx, report); err != nil {
		log.Printf("decompileQueueWorker: storing breakdown for report %s: %v", report.ID, err)
	}
}
