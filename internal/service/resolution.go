package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/oterra/waypoint/internal/geocoding"
	"github.com/oterra/waypoint/internal/metrics"
	"github.com/oterra/waypoint/internal/models"
	"github.com/oterra/waypoint/internal/repository"
)

// batchSize is the maximum number of queued addresses pulled per polling cycle.
const batchSize = 100

// ResolutionService periodically drains the address queue through the
// configured geocoding provider. Each address fails or succeeds on its own;
// a failed resolution is recorded and the batch moves on.
type ResolutionService struct {
	log          *slog.Logger         // Logger for logging service activities
	repo         repository.Interface // Interface for the address queue
	provider     geocoding.Provider   // Geocoding provider for external services
	providerName string               // Name of the provider for metrics labeling
	metrics      *metrics.Metrics     // Metrics for tracking service performance
	numWorkers   int                  // Number of concurrent workers for processing
	pollInterval time.Duration        // Interval for polling the queue
	addrPrefix   string               // Optional prefix for more accurate geocoding (country, city, etc.)
}

// NewResolutionService creates a new instance of ResolutionService.
// It takes a logger, a repository interface, a geocoding provider, the provider
// name for metrics labeling, metrics, the number of workers to use, a polling
// interval, and an optional address prefix.
func NewResolutionService(
	log *slog.Logger,
	repo repository.Interface,
	provider geocoding.Provider,
	providerName string,
	metrics *metrics.Metrics,
	numWorkers int,
	pollInterval time.Duration,
	addrPrefix string,
) *ResolutionService {
	return &ResolutionService{
		log:          log,
		repo:         repo,
		provider:     provider,
		providerName: providerName,
		metrics:      metrics,
		numWorkers:   numWorkers,
		pollInterval: pollInterval,
		addrPrefix:   addrPrefix,
	}
}

// Run starts the resolution service, which periodically polls the queue for
// addresses to resolve. It listens for a cancellation signal from the context
// to gracefully stop the service.
func (rs *ResolutionService) Run(ctx context.Context) {
	ticker := time.NewTicker(rs.pollInterval)
	defer ticker.Stop()

	rs.log.InfoContext(ctx, "Resolution service started...")

	for {
		select {
		case <-ctx.Done():
			rs.log.InfoContext(ctx, "Resolution service stopped.")
			return
		case <-ticker.C:
			rs.log.InfoContext(ctx, "Polling the queue for addresses to resolve...")
			rs.processBatch(ctx)
		}
	}
}

// processBatch fetches pending addresses from the queue, starts a worker pool
// to resolve them, and waits for all workers to finish.
func (rs *ResolutionService) processBatch(ctx context.Context) {
	tasks, err := rs.repo.FetchPending(ctx, batchSize)
	if err != nil {
		rs.log.ErrorContext(ctx, "Failed to fetch pending addresses", "error", err)
		return
	}
	if len(tasks) == 0 {
		rs.log.InfoContext(ctx, "No addresses to process.")
		return
	}

	rs.log.InfoContext(
		ctx,
		"Found addresses to process. Starting worker pool.",
		"jobs",
		len(tasks),
		"num_workers",
		rs.numWorkers,
	)

	jobs := make(chan models.Task, len(tasks))
	var wgr sync.WaitGroup

	for i := 1; i <= rs.numWorkers; i++ {
		wgr.Add(1)
		go rs.worker(ctx, i, &wgr, jobs)
	}

	for _, task := range tasks {
		jobs <- task
	}
	close(jobs)

	wgr.Wait()
	rs.log.InfoContext(ctx, "Processing batch finished")
}

// worker resolves tasks from the jobs channel one at a time. A provider error
// increments the task's failure count and the loop continues with the next
// task; a successful resolution stores the coordinates.
func (rs *ResolutionService) worker(ctx context.Context, idx int, wg *sync.WaitGroup, jobs <-chan models.Task) {
	defer wg.Done()
	for task := range jobs {
		var err error

		rs.metrics.ActiveWorkers.Inc()
		rs.log.DebugContext(ctx, "Processing task", "worker", idx, "task", task.ID)

		address := rs.addrPrefix + task.Address
		startTime := time.Now()
		coords, err := rs.provider.Geocode(ctx, address)
		duration := time.Since(startTime).Seconds()
		rs.metrics.RequestSeconds.WithLabelValues(rs.providerName).Observe(duration)

		if err != nil {
			rs.log.ErrorContext(ctx, "Failed to geocode", "worker", idx, "task", task.ID, "error", err)
			rs.metrics.TaskProcessed.WithLabelValues("failure").Inc()
			rs.metrics.APIErrors.Inc()

			if err = rs.repo.MarkFailed(ctx, task.ID, err.Error()); err != nil {
				rs.log.ErrorContext(
					ctx,
					"Could not update failure count for task",
					"worker", idx,
					"task", task.ID,
					"error", err,
				)
			}
			rs.metrics.ActiveWorkers.Dec()
			continue
		}

		rs.metrics.TaskProcessed.WithLabelValues("success").Inc()

		if err = rs.repo.SaveCoordinates(ctx, task.ID, *coords); err != nil {
			rs.log.ErrorContext(
				ctx,
				"Failed to save coordinates for task",
				"worker", idx,
				"task", task.ID,
				"error", err,
			)
		} else {
			rs.log.DebugContext(ctx, "Worker successfully processed the task", "worker", idx, "task", task.ID)
		}

		rs.metrics.ActiveWorkers.Dec()
	}
}
