package importer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lewisallan/titan-jobs/internal/entity"
)

type fakeJobStore struct {
	chunks [][]*entity.Job
	failAt int // chunk index to fail on, -1 for never
}

func (f *fakeJobStore) CreateBatch(_ context.Context, jobs []*entity.Job) (int, error) {
	if f.failAt >= 0 && len(f.chunks) == f.failAt {
		return 0, errors.New("storage unavailable")
	}
	f.chunks = append(f.chunks, jobs)
	return len(jobs), nil
}

type fakeCustomerStore struct {
	created []*entity.Customer
}

func (f *fakeCustomerStore) CreateBatch(_ context.Context, cs []*entity.Customer) (int, error) {
	f.created = append(f.created, cs...)
	return len(cs), nil
}

type fakeBatchLog struct {
	started  []string
	finished []*entity.ImportBatch
	lastErr  string
}

func (f *fakeBatchLog) Start(_ context.Context, sourceName string) (*entity.ImportBatch, error) {
	f.started = append(f.started, sourceName)
	return &entity.ImportBatch{ID: uuid.New(), SourceName: sourceName}, nil
}

func (f *fakeBatchLog) Finish(_ context.Context, batch *entity.ImportBatch, errMsg string) error {
	f.finished = append(f.finished, batch)
	f.lastErr = errMsg
	return nil
}

func newTestService(jobs *fakeJobStore, chunkSize int) (*Service, *fakeBatchLog) {
	batches := &fakeBatchLog{}
	return NewService(nil, jobs, &fakeCustomerStore{}, batches, chunkSize, nil), batches
}

func TestImportJobs(t *testing.T) {
	store := &fakeJobStore{failAt: -1}
	svc, batches := newTestService(store, 2)

	src := strings.Join([]string{
		"Customer,Job Address,Cost,Balance,Notes",
		"John Smith,1 Rd,£45.00,,Cash please",
		"Jane Doe,2 Ave,30,30,",
		"Unknown,,,,",
		"Bob Hope,3 St,£20,,",
	}, "\n")

	res, err := svc.ImportJobs(context.Background(), "all_jobs.csv", strings.NewReader(src), FormatCSV)
	require.NoError(t, err)

	assert.Equal(t, 4, res.Scanned)
	assert.Equal(t, 1, res.Rejected)
	assert.Equal(t, 3, res.Persisted)
	require.Len(t, store.chunks, 2, "3 jobs at chunk size 2")
	assert.Len(t, store.chunks[0], 2)
	assert.Len(t, store.chunks[1], 1)

	first := store.chunks[0][0]
	assert.Equal(t, "John Smith", first.Name)
	assert.Equal(t, "45.00", first.Price)
	assert.Equal(t, "Cash", first.PaymentMethod)

	require.Len(t, batches.finished, 1)
	assert.Equal(t, 3, batches.finished[0].RowsPersisted)
	assert.Empty(t, batches.lastErr)
}

func TestImportJobsPartialFailure(t *testing.T) {
	store := &fakeJobStore{failAt: 1}
	svc, batches := newTestService(store, 1)

	src := strings.Join([]string{
		"Name,Address",
		"A,1 Rd",
		"B,2 Rd",
		"C,3 Rd",
	}, "\n")

	res, err := svc.ImportJobs(context.Background(), "jobs.csv", strings.NewReader(src), FormatCSV)
	require.Error(t, err)

	// First chunk persisted and stays persisted; the failure is reported, not
	// swallowed.
	assert.Equal(t, 1, res.Persisted)
	assert.Len(t, store.chunks, 1)
	assert.Contains(t, batches.lastErr, "storage unavailable")
}

func TestImportCustomers(t *testing.T) {
	customers := &fakeCustomerStore{}
	svc := NewService(nil, &fakeJobStore{failAt: -1}, customers, &fakeBatchLog{}, 0, nil)

	src := strings.Join([]string{
		"Reference,Name,Address,Phone",
		"C001,John Smith,1 Rd,07700900000",
		",,,",
		"C002,,5 Rd,", // no name, skipped
		"C003,Jane Doe,2 Ave,",
	}, "\n")

	res, err := svc.ImportCustomers(context.Background(), "customers.csv", strings.NewReader(src), FormatCSV)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Scanned)
	assert.Equal(t, 1, res.Rejected)
	assert.Equal(t, 2, res.Persisted)
	require.Len(t, customers.created, 2)
	assert.Equal(t, "C001", customers.created[0].Reference)
	assert.Equal(t, "Jane Doe", customers.created[1].Name)
}

func TestPreviewSource(t *testing.T) {
	svc, _ := newTestService(&fakeJobStore{failAt: -1}, 0)

	src := strings.Join([]string{
		"Name,Address",
		"A,1 Rd",
		"B,2 Rd",
		"C,3 Rd",
		"D,4 Rd",
	}, "\n")

	p, err := svc.PreviewSource(strings.NewReader(src), FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Address"}, p.Columns)
	assert.Equal(t, 4, p.Scanned)
	assert.Equal(t, 0, p.Rejected)
	assert.Len(t, p.SampleRows, 3, "capped at three sample rows")
	require.Len(t, p.Sample, 3)
	assert.Equal(t, "A", p.Sample[0].Name)
}

func TestPreviewSourceCountsRejected(t *testing.T) {
	svc, _ := newTestService(&fakeJobStore{failAt: -1}, 0)

	src := strings.Join([]string{
		"Name,Address",
		"A,1 Rd",
		"Unknown,",
	}, "\n")

	p, err := svc.PreviewSource(strings.NewReader(src), FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Scanned)
	assert.Equal(t, 1, p.Rejected)
	assert.Len(t, p.Sample, 1)
}
