package keymaps

import "context"

// Publisher hands table snapshots to slow consumers (disk, overlay) without
// blocking the caller. Pending snapshots are coalesced: only the latest one
// is delivered.
type Publisher struct {
	sinks   []func(Snapshot)
	pending chan Snapshot
	done    chan struct{}
}

// NewPublisher creates a publisher delivering to sinks in order.
func NewPublisher(sinks ...func(Snapshot)) *Publisher {
	return &Publisher{
		sinks:   sinks,
		pending: make(chan Snapshot, 1),
		done:    make(chan struct{}),
	}
}

// Publish queues s, replacing any snapshot not yet delivered.
func (p *Publisher) Publish(s Snapshot) {
	for {
		select {
		case p.pending <- s:
			return
		default:
		}
		select {
		case <-p.pending:
		default:
		}
	}
}

// Run delivers snapshots until ctx is done, then flushes the last pending
// one so a final save is not lost.
func (p *Publisher) Run(ctx context.Context) {
	defer close(p.done)
	for {
		select {
		case s := <-p.pending:
			p.deliver(s)
		case <-ctx.Done():
			select {
			case s := <-p.pending:
				p.deliver(s)
			default:
			}
			return
		}
	}
}

// Wait blocks until Run has returned.
func (p *Publisher) Wait() {
	<-p.done
}

func (p *Publisher) deliver(s Snapshot) {
	for _, sink := range p.sinks {
		sink(s)
	}
}
