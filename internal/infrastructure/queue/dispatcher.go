package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/asset-management/internal/api/metrics"
	"github.com/99minutos/asset-management/internal/core/domain"
	"github.com/99minutos/asset-management/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	publishTimeout = 5 * time.Second
	drainTimeout   = 5 * time.Second
)

// Dispatcher routes audit events to a fixed set of workers using consistent
// hashing on the asset id, guaranteeing per-asset event ordering. Each worker
// delivers an event to every sink in turn.
type Dispatcher struct {
	workers []chan domain.AuditEvent
	sinks   []ports.AuditSink
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sinks []ports.AuditSink, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AuditEvent, numWorkers),
		sinks:   sinks,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. When ctx is cancelled each worker
// delivers what is already buffered, bounded by drainTimeout, and returns.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Enqueue hands an event to the worker responsible for its asset. It never
// blocks: when that worker's buffer is full the event is dropped and logged.
func (d *Dispatcher) Enqueue(event domain.AuditEvent) {
	idx := d.shardIndex(event.AssetID)
	select {
	case d.workers[idx] <- event:
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.AuditEventsPublishedTotal.WithLabelValues("queue", "dropped").Inc()
		d.log.Warn().
			Str("event_id", event.ID).
			Str("type", string(event.Type)).
			Int64("asset_id", event.AssetID).
			Int("worker_id", idx).
			Msg("audit queue full, event dropped")
	}
}

// shardIndex maps an asset id deterministically to a worker index.
func (d *Dispatcher) shardIndex(assetID int64) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strconv.FormatInt(assetID, 10)))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEvent) {
	defer d.wg.Done()
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			d.drain(id, ch)
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			metrics.AuditQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
			d.deliver(ctx, id, event)
		}
	}
}

// drain flushes the events buffered at shutdown. Whatever is left once the
// drain deadline passes is dropped and counted.
func (d *Dispatcher) drain(id int, ch <-chan domain.AuditEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	workerID := strconv.Itoa(id)
	for {
		select {
		case event, ok := <-ch:
			if !ok {
				return
			}
			if ctx.Err() != nil {
				dropped := 1 + len(ch)
				metrics.AuditEventsPublishedTotal.WithLabelValues("queue", "dropped").Add(float64(dropped))
				d.log.Warn().Int("worker_id", id).Int("dropped", dropped).Msg("audit drain timed out")
				return
			}
			metrics.AuditQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
			d.deliver(ctx, id, event)
		default:
			return
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, workerID int, event domain.AuditEvent) {
	for _, sink := range d.sinks {
		start := time.Now()
		sctx, cancel := context.WithTimeout(ctx, publishTimeout)
		err := sink.Publish(sctx, event)
		cancel()
		metrics.AuditPublishDuration.WithLabelValues(sink.Name()).Observe(time.Since(start).Seconds())

		if err != nil {
			metrics.AuditEventsPublishedTotal.WithLabelValues(sink.Name(), "error").Inc()
			d.log.Error().Err(err).
				Str("sink", sink.Name()).
				Str("event_id", event.ID).
				Int64("asset_id", event.AssetID).
				Int("worker_id", workerID).
				Msg("audit delivery failed")
			continue
		}
		metrics.AuditEventsPublishedTotal.WithLabelValues(sink.Name(), "ok").Inc()
	}
}
