package seqkmer

import (
	"encoding/binary"
	"io"
	"sync"
)

// Reader yields batches of records in source order. Next returns nil,
// nil on clean EOF; it never returns a non-nil empty batch.
// Implementations must be safe to hand to exactly one goroutine (the
// pipeline producer owns the Reader exclusively).
type Reader interface {
	Next() ([]Base[[]byte], error)
}

// ParallelItem wraps one value pulled off a ParallelResult.
type ParallelItem[P any] struct {
	value P
}

// Value unwraps the inner value.
func (p ParallelItem[P]) Value() P {
	return p.value
}

// ParallelResult is the collector-side handle on a pipeline's output
// channel.
type ParallelResult[P any] struct {
	recv <-chan P
}

// Next retrieves the next item, or ok=false once every worker has
// finished and the channel has drained.
func (r *ParallelResult[P]) Next() (ParallelItem[P], bool) {
	v, ok := <-r.recv
	return ParallelItem[P]{value: v}, ok
}

// pipelineSizes returns the worker count and channel capacity, the
// empirical sweet spot for this workload: one thread is the producer, one is the collector, the rest
// are workers, and channels are sized a little beyond the worker count
// to keep the pipeline from stalling on small hiccups.
func pipelineSizes(nThreads int) (workers, capacity int) {
	if nThreads <= 2 {
		panic("seqkmer: n_threads must be > 2")
	}
	return nThreads - 2, nThreads + 2
}

// ReadParallel streams batches from reader, scans each record into
// minimizer iterators, and runs work over every scanned batch across
// n_threads-2 worker goroutines; collect drains the results. Output order
// is the order workers finish, not the order batches were produced —
// callers needing determinism must embed an index in O and sort in collect.
func ReadParallel[O any, Out any](
	reader Reader,
	nThreads int,
	meros *Meros,
	work func([]Base[*MinimizerIterator]) O,
	collect func(*ParallelResult[O]) Out,
) Out {
	workers, capacity := pipelineSizes(nThreads)

	in := make(chan []Base[[]byte], capacity)
	out := make(chan O, capacity)

	var workersWG sync.WaitGroup
	workersWG.Add(workers)

	go func() {
		for {
			batch, err := reader.Next()
			if err != nil || batch == nil {
				break
			}
			in <- batch
		}
		close(in)
	}()

	for i := 0; i < workers; i++ {
		go func() {
			defer workersWG.Done()
			for batch := range in {
				scanned := make([]Base[*MinimizerIterator], len(batch))
				for i := range batch {
					scanned[i] = ScanSequence(&batch[i], meros)
				}
				out <- work(scanned)
			}
		}()
	}

	go func() {
		workersWG.Wait()
		close(out)
	}()

	result := &ParallelResult[O]{recv: out}
	return collect(result)
}

// binaryOrder is the wire byte order for BufferReadParallel's fixed-width
// records, matching the teacher's file.go framing.
var binaryOrder = binary.BigEndian

// readRecordBatch fills a batch of up to bufferSize fixed-width records
// of type D from r. A record is read with binary.Read, so D must be a
// fixed-size type (no pointers, strings, or slices). The batch may be
// shorter than bufferSize on a final, clean EOF; a trailing read that
// stops mid-record (io.ErrUnexpectedEOF) discards that partial record
// and ends the batch rather than erroring.
func readRecordBatch[D any](r io.Reader, bufferSize int) ([]D, error) {
	batch := make([]D, 0, bufferSize)
	for i := 0; i < bufferSize; i++ {
		var rec D
		err := binary.Read(r, binaryOrder, &rec)
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return batch, nil
		}
		if err != nil {
			return batch, err
		}
		batch = append(batch, rec)
	}
	return batch, nil
}

// BufferReadParallel reads fixed-size batches of binary records of type
// D from r (wire-compatible binary framing: no padding, no length
// prefix, one fixed-width record after another). bufferSize is the
// batch size in records; a short trailing read is truncated to whole
// records and any partial tail is discarded.
func BufferReadParallel[D any, O any, Out any](
	r io.Reader,
	nThreads int,
	bufferSize int,
	work func([]D) O,
	collect func(*ParallelResult[O]) Out,
) Out {
	workers, capacity := pipelineSizes(nThreads)

	in := make(chan []D, capacity)
	out := make(chan O, capacity)

	var workersWG sync.WaitGroup
	workersWG.Add(workers)

	go func() {
		defer close(in)
		for {
			batch, err := readRecordBatch[D](r, bufferSize)
			if len(batch) > 0 {
				in <- batch
			}
			if err != nil || len(batch) < bufferSize {
				return
			}
		}
	}()

	for i := 0; i < workers; i++ {
		go func() {
			defer workersWG.Done()
			for batch := range in {
				out <- work(batch)
			}
		}()
	}

	go func() {
		workersWG.Wait()
		close(out)
	}()

	result := &ParallelResult[O]{recv: out}
	return collect(result)
}

// BufferMapParallel iterates m, sending one (key, values) pair per entry
// to n_threads-2 workers running work.
func BufferMapParallel[K comparable, D any, O any, Out any](
	m map[K][]D,
	nThreads int,
	work func(K, []D) O,
	collect func(*ParallelResult[O]) Out,
) Out {
	workers, capacity := pipelineSizes(nThreads)

	type entry struct {
		key    K
		values []D
	}
	in := make(chan entry, capacity)
	out := make(chan O, capacity)

	var workersWG sync.WaitGroup
	workersWG.Add(workers)

	go func() {
		for k, v := range m {
			in <- entry{key: k, values: v}
		}
		close(in)
	}()

	for i := 0; i < workers; i++ {
		go func() {
			defer workersWG.Done()
			for e := range in {
				out <- work(e.key, e.values)
			}
		}()
	}

	go func() {
		workersWG.Wait()
		close(out)
	}()

	result := &ParallelResult[O]{recv: out}
	return collect(result)
}
