package mailqueue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Sender performs the actual transport for one message. Implementations talk
// to SMTP or a provider API; the dispatcher owns timeouts and retries around
// them.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SenderFunc adapts a plain function to the Sender interface.
type SenderFunc func(ctx context.Context, msg Message) error

func (f SenderFunc) Send(ctx context.Context, msg Message) error {
	return f(ctx, msg)
}

// DropHandler is invoked when a message exhausts its delivery attempts and is
// dropped from the queue. It receives the final message state and the last
// transport error.
type DropHandler func(msg Message, lastErr error)

// Dispatcher is the consumer loop in front of a Queue: it polls Dequeue,
// hands messages to a Sender, records successes in the ledger, and schedules
// retries for failures.
type Dispatcher struct {
	queue    *Queue
	recorder SendRecorder
	sender   Sender
	onDrop   DropHandler

	id  uuid.UUID
	sem chan struct{}
	wg  sync.WaitGroup
	mu  sync.Mutex

	pollInterval time.Duration
	sendTimeout  time.Duration
	retryDelay   time.Duration
	logger       *slog.Logger

	ctx      context.Context
	cancel   context.CancelFunc
	stopMu   sync.Mutex // serializes stopping state against WaitGroup adds
	stopping atomic.Bool
}

// NewDispatcher wires a dispatcher to its queue, ledger write side, and
// transport.
func NewDispatcher(queue *Queue, recorder SendRecorder, sender Sender, opts ...DispatcherOption) (*Dispatcher, error) {
	if queue == nil {
		return nil, ErrQueueNil
	}
	if recorder == nil {
		return nil, ErrRecorderNil
	}
	if sender == nil {
		return nil, ErrSenderNil
	}

	options := &dispatcherOptions{
		pollInterval:  5 * time.Second,
		sendTimeout:   time.Minute,
		maxConcurrent: 1,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	return &Dispatcher{
		queue:        queue,
		recorder:     recorder,
		sender:       sender,
		onDrop:       options.onDrop,
		id:           uuid.New(),
		sem:          make(chan struct{}, options.maxConcurrent),
		pollInterval: options.pollInterval,
		sendTimeout:  options.sendTimeout,
		retryDelay:   options.retryDelay,
		logger:       options.logger,
	}, nil
}

// Start begins polling the queue in the background.
func (d *Dispatcher) Start(ctx context.Context) error {
	d.mu.Lock()
	if d.cancel != nil {
		d.mu.Unlock()
		return fmt.Errorf("dispatcher already started")
	}
	d.ctx, d.cancel = context.WithCancel(ctx)
	d.mu.Unlock()

	d.stopping.Store(false)

	go d.run()

	d.logger.Info("dispatcher started",
		slog.String("dispatcher_id", d.id.String()),
		slog.Duration("poll_interval", d.pollInterval),
		slog.Int("max_concurrent", cap(d.sem)))

	return nil
}

// Stop cancels polling and waits for in-flight sends to finish.
func (d *Dispatcher) Stop() error {
	d.mu.Lock()
	if d.cancel == nil {
		d.mu.Unlock()
		return fmt.Errorf("dispatcher not started")
	}

	d.stopMu.Lock()
	d.stopping.Store(true)
	d.stopMu.Unlock()

	cancel := d.cancel
	d.cancel = nil
	d.mu.Unlock()

	cancel()
	d.wg.Wait()

	d.logger.Info("dispatcher stopped", slog.String("dispatcher_id", d.id.String()))
	return nil
}

// Run returns a function suitable for errgroup: it starts the dispatcher,
// blocks until the context ends, then stops it.
func (d *Dispatcher) Run(ctx context.Context) func() error {
	return func() error {
		if err := d.Start(ctx); err != nil {
			return err
		}
		<-ctx.Done()
		return d.Stop()
	}
}

func (d *Dispatcher) run() {
	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-d.ctx.Done():
			return
		case <-ticker.C:
			select {
			case d.sem <- struct{}{}:
				// Don't add to the WaitGroup once Stop has begun waiting.
				d.stopMu.Lock()
				if d.stopping.Load() {
					d.stopMu.Unlock()
					<-d.sem
					return
				}
				d.wg.Add(1)
				d.stopMu.Unlock()

				go func() {
					defer d.wg.Done()
					defer func() { <-d.sem }()
					d.deliverNext()
				}()
			default:
				d.logger.Debug("all delivery slots busy, skipping tick",
					slog.String("dispatcher_id", d.id.String()))
			}
		}
	}
}

// deliverNext pulls one message and attempts transport. A nil Dequeue result
// means the queue is empty, nothing is due, or sending is rate-blocked; all
// are normal steady-state conditions.
func (d *Dispatcher) deliverNext() {
	msg := d.queue.Dequeue()
	if msg == nil {
		return
	}

	err := d.send(msg)
	if err == nil {
		d.recorder.RecordSent(msg.Recipient)
		d.logger.Info("email delivered",
			slog.String("dispatcher_id", d.id.String()),
			slog.String("message_id", msg.ID),
			slog.String("recipient", msg.Recipient))
		return
	}

	if d.queue.RequeueForRetry(msg, d.retryDelay) {
		d.logger.Error("delivery failed, retry scheduled",
			slog.String("dispatcher_id", d.id.String()),
			slog.String("message_id", msg.ID),
			slog.String("recipient", msg.Recipient),
			slog.Int("attempts", msg.Attempts),
			slog.String("error", err.Error()))
		return
	}

	d.logger.Warn("message dropped after exhausting delivery attempts",
		slog.String("dispatcher_id", d.id.String()),
		slog.String("message_id", msg.ID),
		slog.String("recipient", msg.Recipient),
		slog.Int("attempts", msg.Attempts),
		slog.String("error", err.Error()))

	if d.onDrop != nil {
		d.onDrop(*msg, err)
	}
}

// send runs the transport with a timeout detached from the dispatcher
// lifecycle, so graceful shutdown lets in-flight sends complete. Panics in
// the sender are converted into ordinary delivery failures.
func (d *Dispatcher) send(msg *Message) (retErr error) {
	defer func() {
		if r := recover(); r != nil {
			retErr = fmt.Errorf("panic in sender: %v", r)
			d.logger.Error("sender panicked",
				slog.String("dispatcher_id", d.id.String()),
				slog.String("message_id", msg.ID),
				slog.Any("panic", r))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), d.sendTimeout)
	defer cancel()

	return d.sender.Send(ctx, *msg)
}
