package postgrest

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/hakambing/bikebuddy-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string, pageSize int) *Client {
	t.Helper()

	client, err := NewClient(Config{
		BaseURL:  baseURL,
		Table:    "maintenance_logs",
		APIKey:   testAPIKey,
		PageSize: pageSize,
	})
	require.NoError(t, err)
	return client
}

func sampleRecord(date string, maintenanceType string) domain.Record {
	return domain.Record{
		Date:            date,
		MaintenanceType: maintenanceType,
		Price:           "45.50",
		Location:        "Sports Motor Woodlands",
		Remarks:         "-",
		TotalMileage:    "12345",
	}
}

func TestNewClientValidatesConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "missing url", cfg: Config{Table: "logs", APIKey: "k"}},
		{name: "bad scheme", cfg: Config{BaseURL: "ftp://example.com", Table: "logs", APIKey: "k"}},
		{name: "missing host", cfg: Config{BaseURL: "https://", Table: "logs", APIKey: "k"}},
		{name: "missing table", cfg: Config{BaseURL: "https://example.com", APIKey: "k"}},
		{name: "missing key", cfg: Config{BaseURL: "https://example.com", Table: "logs"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewClient(tt.cfg)
			require.Error(t, err)
		})
	}
}

func TestBuildTableURL(t *testing.T) {
	t.Parallel()

	got, err := buildTableURL("https://abc.supabase.co", "maintenance_logs")
	require.NoError(t, err)
	assert.Equal(t, "https://abc.supabase.co/rest/v1/maintenance_logs", got)

	got, err = buildTableURL("https://abc.supabase.co/rest/v1/?x=1", "maintenance_logs")
	require.NoError(t, err)
	assert.Equal(t, "https://abc.supabase.co/rest/v1/maintenance_logs", got)
}

func TestEscapeLike(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `Engine Oil`, escapeLike("Engine Oil"))
	assert.Equal(t, `100\% synth\_oil \\ x`, escapeLike(`100% synth_oil \ x`))
}

func TestClientCreateThenFetch(t *testing.T) {
	t.Parallel()

	table, server := newFakeTable(t)
	client := newTestClient(t, server.URL, 0)
	ctx := context.Background()

	id, err := client.Create(ctx, sampleRecord("2025-06-09", "Engine Oil"))
	require.NoError(t, err)
	assert.Equal(t, domain.RecordID("1"), id)

	stored, ok := table.lookup("1")
	require.True(t, ok)
	assert.Equal(t, "Engine Oil", stored["maintenance_type"])
	assert.Equal(t, "12345", stored["total_mileage"])

	got, err := client.FetchByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "45.50", got.Price)
	assert.Equal(t, "Sports Motor Woodlands", got.Location)

	post := table.recorded()[0]
	assert.Equal(t, http.MethodPost, post.Method)
	assert.Equal(t, "return=representation", post.Header.Get("Prefer"))
	assert.Equal(t, "application/json", post.Header.Get("Content-Type"))
	assert.Equal(t, "/rest/v1/maintenance_logs", post.URL.Path)
}

func TestClientLatestByFilter(t *testing.T) {
	t.Parallel()

	table, server := newFakeTable(t)
	client := newTestClient(t, server.URL, 0)
	ctx := context.Background()

	table.insert(map[string]string{"date": "2025-06-01", "maintenance_type": "Brake Pad"})
	table.insert(map[string]string{"date": "2025-06-05", "maintenance_type": "Engine Oil"})

	got, err := client.LatestByFilter(ctx, "brake pad")
	require.NoError(t, err)
	assert.Equal(t, "Brake Pad", got.MaintenanceType)
	assert.Equal(t, domain.RecordID("1"), got.ID)

	got, err = client.LatestByFilter(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "Engine Oil", got.MaintenanceType)

	_, err = client.LatestByFilter(ctx, "Coolant Flush")
	require.ErrorIs(t, err, domain.ErrRecordNotFound)

	requests := table.recorded()
	last := requests[len(requests)-1]
	assert.Equal(t, "ilike.Coolant Flush", last.URL.Query().Get("maintenance_type"))
	assert.Equal(t, "created_at.desc,id.desc", last.URL.Query().Get("order"))
	assert.Equal(t, "1", last.URL.Query().Get("limit"))
}

func TestClientLatestByFilterTreatsWildcardsLiterally(t *testing.T) {
	t.Parallel()

	table, server := newFakeTable(t)
	client := newTestClient(t, server.URL, 0)

	table.insert(map[string]string{"maintenance_type": "Engine Oil"})
	table.insert(map[string]string{"maintenance_type": "100% Oil_Change"})

	_, err := client.LatestByFilter(context.Background(), "%")
	require.ErrorIs(t, err, domain.ErrRecordNotFound)

	got, err := client.LatestByFilter(context.Background(), "100% oil_change")
	require.NoError(t, err)
	assert.Equal(t, "100% Oil_Change", got.MaintenanceType)
}

func TestClientLatestByFilterTreatsAsteriskLiterally(t *testing.T) {
	t.Parallel()

	table, server := newFakeTable(t)
	client := newTestClient(t, server.URL, 0)
	ctx := context.Background()

	table.insert(map[string]string{"maintenance_type": "Brake Pad"})
	table.insert(map[string]string{"maintenance_type": "Brake Flush"})

	_, err := client.LatestByFilter(ctx, "Brake*")
	require.ErrorIs(t, err, domain.ErrRecordNotFound)

	requests := table.recorded()
	assert.Equal(t, `imatch.^Brake\*$`, requests[len(requests)-1].URL.Query().Get("maintenance_type"))

	table.insert(map[string]string{"maintenance_type": "Chain (O*Ring)"})
	table.insert(map[string]string{"maintenance_type": "Chain Lube"})

	got, err := client.LatestByFilter(ctx, "chain (o*ring)")
	require.NoError(t, err)
	assert.Equal(t, "Chain (O*Ring)", got.MaintenanceType)
}

func TestClientLatestOrderFollowsCreatedColumn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		column string
		want   string
	}{
		{name: "default", column: "", want: "created_at.desc,id.desc"},
		{name: "custom", column: "inserted_at", want: "inserted_at.desc,id.desc"},
		{name: "id only", column: NoCreatedColumn, want: "id.desc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, err := NewClient(Config{
				BaseURL:       "https://example.com",
				Table:         "maintenance_logs",
				APIKey:        testAPIKey,
				CreatedColumn: tt.column,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, client.latestOrder)
		})
	}
}

func TestClientFetchByIDNotFound(t *testing.T) {
	t.Parallel()

	_, server := newFakeTable(t)
	client := newTestClient(t, server.URL, 0)

	_, err := client.FetchByID(context.Background(), "404")
	require.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestClientUpdateField(t *testing.T) {
	t.Parallel()

	table, server := newFakeTable(t)
	client := newTestClient(t, server.URL, 0)
	ctx := context.Background()

	id := table.insert(map[string]string{"price": "10", "location": "Myself"})

	require.NoError(t, client.UpdateField(ctx, domain.RecordID(id), domain.FieldPrice, "25"))

	stored, ok := table.lookup(id)
	require.True(t, ok)
	assert.Equal(t, "25", stored["price"])
	assert.Equal(t, "Myself", stored["location"])

	err := client.UpdateField(ctx, "99", domain.FieldPrice, "25")
	require.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestClientUpdateFieldRejectsUnknownFieldWithoutRequest(t *testing.T) {
	t.Parallel()

	table, server := newFakeTable(t)
	client := newTestClient(t, server.URL, 0)

	err := client.UpdateField(context.Background(), "1", domain.Field("colour"), "red")
	require.ErrorIs(t, err, domain.ErrUnknownField)
	assert.Empty(t, table.recorded())
}

func TestClientDelete(t *testing.T) {
	t.Parallel()

	table, server := newFakeTable(t)
	client := newTestClient(t, server.URL, 0)
	ctx := context.Background()

	id := table.insert(map[string]string{"maintenance_type": "Coolant Flush"})
	table.insert(map[string]string{"maintenance_type": "Spark Plug"})

	require.NoError(t, client.Delete(ctx, domain.RecordID(id)))

	_, ok := table.lookup(id)
	assert.False(t, ok)
	_, ok = table.lookup("2")
	assert.True(t, ok)

	err := client.Delete(ctx, domain.RecordID(id))
	require.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestClientListAllPagesNewestFirst(t *testing.T) {
	t.Parallel()

	table, server := newFakeTable(t)
	client := newTestClient(t, server.URL, 2)

	table.insert(map[string]string{"date": "2025-01-01", "maintenance_type": "Spark Plug"})
	table.insert(map[string]string{"date": "2025-03-01", "maintenance_type": "Engine Oil"})
	table.insert(map[string]string{"date": "2025-02-01", "maintenance_type": "Air Filter"})
	table.insert(map[string]string{"date": "2025-03-01", "maintenance_type": "Brake Pad"})

	var types []string
	for record, err := range client.ListAll(context.Background()) {
		require.NoError(t, err)
		types = append(types, record.MaintenanceType)
	}

	assert.Equal(t, []string{"Brake Pad", "Engine Oil", "Air Filter", "Spark Plug"}, types)
	requests := table.recorded()
	assert.Len(t, requests, 3)
	assert.Equal(t, "2", requests[1].URL.Query().Get("offset"))
}

func TestClientListAllIsSingleUse(t *testing.T) {
	t.Parallel()

	table, server := newFakeTable(t)
	client := newTestClient(t, server.URL, 0)
	table.insert(map[string]string{"maintenance_type": "Engine Oil"})

	records := client.ListAll(context.Background())
	for _, err := range records {
		require.NoError(t, err)
	}

	var secondErr error
	for _, err := range records {
		secondErr = err
	}
	require.ErrorIs(t, secondErr, errSequenceConsumed)
}

func TestClientListAllStopsEarly(t *testing.T) {
	t.Parallel()

	table, server := newFakeTable(t)
	client := newTestClient(t, server.URL, 1)
	table.insert(map[string]string{"date": "2025-01-01"})
	table.insert(map[string]string{"date": "2025-01-02"})

	for _, err := range client.ListAll(context.Background()) {
		require.NoError(t, err)
		break
	}
	assert.Len(t, table.recorded(), 1)
}

func TestClientMapsRemoteFailures(t *testing.T) {
	t.Parallel()

	table, server := newFakeTable(t)
	client := newTestClient(t, server.URL, 0)
	ctx := context.Background()
	table.fail(http.StatusInternalServerError)

	_, err := client.LatestByFilter(ctx, "")
	require.ErrorIs(t, err, domain.ErrRemoteRead)
	assert.Contains(t, err.Error(), "status 500: upstream failure (XX000)")

	_, err = client.Create(ctx, sampleRecord("2025-06-09", "Engine Oil"))
	require.ErrorIs(t, err, domain.ErrRemoteWrite)

	err = client.Delete(ctx, "1")
	require.ErrorIs(t, err, domain.ErrRemoteWrite)

	for _, err := range client.ListAll(ctx) {
		require.ErrorIs(t, err, domain.ErrRemoteRead)
	}
}

func TestClientRejectsWrongKey(t *testing.T) {
	t.Parallel()

	_, server := newFakeTable(t)
	client, err := NewClient(Config{BaseURL: server.URL, Table: "maintenance_logs", APIKey: "wrong"})
	require.NoError(t, err)

	_, err = client.FetchByID(context.Background(), "1")
	require.ErrorIs(t, err, domain.ErrRemoteRead)
	assert.Contains(t, err.Error(), "Invalid API key")
}

func TestClientHonoursContextCancellation(t *testing.T) {
	t.Parallel()

	_, server := newFakeTable(t)
	client := newTestClient(t, server.URL, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchByID(ctx, "1")
	require.ErrorIs(t, err, domain.ErrRemoteRead)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRequestContextKeepsCallerDeadline(t *testing.T) {
	t.Parallel()

	client := &Client{requestTimeout: time.Second}
	parent, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	ctx, release := client.requestContext(parent)
	defer release()

	parentDeadline, _ := parent.Deadline()
	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.Equal(t, parentDeadline, deadline)
}

func TestCellDecodesNumbersAndNulls(t *testing.T) {
	t.Parallel()

	var value cell
	require.NoError(t, value.UnmarshalJSON([]byte(`42.5`)))
	assert.Equal(t, cell("42.5"), value)

	require.NoError(t, value.UnmarshalJSON([]byte(`null`)))
	assert.Equal(t, cell(""), value)

	require.NoError(t, value.UnmarshalJSON([]byte(`"Myself"`)))
	assert.Equal(t, cell("Myself"), value)

	require.Error(t, value.UnmarshalJSON([]byte(`{}`)))
}
