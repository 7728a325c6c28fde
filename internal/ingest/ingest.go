// Package ingest loads addresses into the resolution queue from files dropped
// into an inbox directory. Two formats are understood: tab-separated files
// with a single unnamed address column, and PDF documents whose page text
// holds one address per line.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oterra/waypoint/internal/metrics"
	"github.com/oterra/waypoint/internal/pdftext"
	"github.com/oterra/waypoint/internal/repository"
)

// doneSuffix marks inbox files that have already been loaded. A rename keeps
// the scan pass idempotent without tracking state elsewhere. If the rename
// fails after the addresses were enqueued, the file is picked up again on the
// next scan; the queue suppresses duplicate pending addresses, so the retry
// only repeats the rename.
const doneSuffix = ".done"

// Ingestor scans an inbox directory on a ticker and enqueues the addresses it
// finds there.
type Ingestor struct {
	log       *slog.Logger
	repo      repository.Interface
	extractor *pdftext.Extractor
	metrics   *metrics.Metrics
	dir       string
	interval  time.Duration
}

// NewIngestor creates an Ingestor scanning dir every interval.
func NewIngestor(
	log *slog.Logger,
	repo repository.Interface,
	extractor *pdftext.Extractor,
	metrics *metrics.Metrics,
	dir string,
	interval time.Duration,
) *Ingestor {
	return &Ingestor{
		log:       log,
		repo:      repo,
		extractor: extractor,
		metrics:   metrics,
		dir:       dir,
		interval:  interval,
	}
}

// Run scans the inbox once at startup and then on every tick until the
// context is canceled.
func (in *Ingestor) Run(ctx context.Context) {
	ticker := time.NewTicker(in.interval)
	defer ticker.Stop()

	in.log.InfoContext(ctx, "Ingest service started...", "dir", in.dir)
	in.scan(ctx)

	for {
		select {
		case <-ctx.Done():
			in.log.InfoContext(ctx, "Ingest service stopped.")
			return
		case <-ticker.C:
			in.scan(ctx)
		}
	}
}

// scan processes every unprocessed .tsv and .pdf file in the inbox. Each file
// succeeds or fails on its own; a failed file is left in place for the next
// scan.
func (in *Ingestor) scan(ctx context.Context) {
	for _, pattern := range []string{"*.tsv", "*.pdf"} {
		matches, err := filepath.Glob(filepath.Join(in.dir, pattern))
		if err != nil {
			in.log.ErrorContext(ctx, "Failed to scan inbox", "pattern", pattern, "error", err)
			continue
		}

		for _, path := range matches {
			if err := in.processFile(ctx, path); err != nil {
				in.log.ErrorContext(ctx, "Failed to ingest file", "path", path, "error", err)
				in.metrics.FilesIngested.WithLabelValues("failure").Inc()
				continue
			}
			in.metrics.FilesIngested.WithLabelValues("success").Inc()
		}
	}
}

// processFile loads the addresses of one inbox file into the queue and
// renames the file so it is not picked up again. Enqueueing is safe to repeat,
// so a rename failure leaves the file to be retried rather than losing it.
func (in *Ingestor) processFile(ctx context.Context, path string) error {
	var (
		addresses []string
		source    string
		err       error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv":
		source = "tsv"
		addresses, err = readTSV(path)
	case ".pdf":
		source = "pdf"
		addresses, err = in.pdfAddresses(path)
	default:
		return fmt.Errorf("unsupported inbox file: %s", path)
	}
	if err != nil {
		return err
	}

	inserted, err := in.repo.InsertAddresses(ctx, addresses)
	if err != nil {
		return fmt.Errorf("failed to enqueue addresses from %s: %w", path, err)
	}
	in.metrics.AddressesIngested.WithLabelValues(source).Add(float64(inserted))

	if err = os.Rename(path, path+doneSuffix); err != nil {
		return fmt.Errorf("failed to mark file as processed: %w", err)
	}

	in.log.InfoContext(ctx, "Ingested inbox file", "path", path, "source", source, "addresses", inserted)

	return nil
}

// pdfAddresses extracts the page texts of a PDF and splits them into address
// candidates.
func (in *Ingestor) pdfAddresses(path string) ([]string, error) {
	pages, err := in.extractor.Extract(path)
	if err != nil {
		return nil, err
	}

	var addresses []string
	for _, page := range pages {
		addresses = append(addresses, splitPageText(page.Text)...)
	}

	return addresses, nil
}
