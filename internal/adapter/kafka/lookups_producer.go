package kafka

import (
	"context"
	"log/slog"

	"github.com/phoenix-pos/stock-display/internal/core/domain"
	"github.com/phoenix-pos/stock-display/internal/core/port"
	"github.com/phoenix-pos/stock-display/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.LookupEventsProducer = (*LookupEventsProducer)(nil)

// A LookupEventsProducer publishes stock lookup audit events, keyed by
// product code.
type LookupEventsProducer struct {
	cl      ProducerClient
	encoder Encoder
}

func NewLookupEventsProducer(
	opts ...ProducerOpt,
) (LookupEventsProducer, error) {
	const op = "NewLookupEventsProducer"

	if len(opts) != 2 {
		panic(opErr(ErrTooFewOpts, op)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return LookupEventsProducer{}, opErr(err, op)
		}
	}
	return LookupEventsProducer{options.cl, options.encoder}, nil
}

func (p LookupEventsProducer) Close() {
	const op = "LookupEventsProducer.Close"
	log := slog.With("op", op)
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p LookupEventsProducer) ProduceLookupEvent(
	ctx context.Context, e domain.LookupEvent,
) error {
	const op = "LookupEventsProducer.ProduceLookupEvent"

	if err := ctx.Err(); err != nil {
		return opErr(err, op)
	}

	r, err := p.createRecord(e)
	if err != nil {
		return opErr(err, op)
	}

	res := p.cl.ProduceSync(ctx, r)
	if err := res.FirstErr(); err != nil {
		return opErr(err, op)
	}

	return nil
}

func (p LookupEventsProducer) createRecord(
	e domain.LookupEvent,
) (*kgo.Record, error) {
	const op = "LookupEventsProducer.createRecord"

	s := p.toSchema(e)
	v, err := p.encoder.Encode(s)
	if err != nil {
		return nil, opErr(err, op)
	}

	return &kgo.Record{Key: []byte(s.ProductCode), Value: v}, nil
}

func (LookupEventsProducer) toSchema(
	e domain.LookupEvent,
) (s schema.LookupEventV1) {
	s.ProductCode = e.ProductCode
	s.LookedUpAt = e.LookedUpAt.UnixMilli()

	s.Lines = make([]schema.StockLineV1, len(e.Records))
	for i := range e.Records {
		s.Lines[i].LocationCode = e.Records[i].LocationCode
		s.Lines[i].Qty = int64(e.Records[i].Qty)
	}
	return s
}
