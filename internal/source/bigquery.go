package source

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"
)

// BigQuery loads inputs from a table with columns (input_key STRING, day
// INT64, line_no INT64, line STRING).
type BigQuery struct {
	Project  string
	Table    string // dataset.table
	Location string
	// Key selects one of several inputs stored for the same day.
	Key string
}

func (b BigQuery) query() string {
	return fmt.Sprintf("SELECT line FROM `%s.%s` WHERE day = @day AND input_key = @key ORDER BY line_no", b.Project, b.Table)
}

func (b BigQuery) Lines(ctx context.Context, day int) ([]string, error) {
	client, err := bigquery.NewClient(ctx, b.Project)
	if err != nil {
		return nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	defer client.Close()

	q := client.Query(b.query())
	q.Location = b.Location
	if q.Location == "" {
		q.Location = "US"
	}
	q.Parameters = []bigquery.QueryParameter{
		{Name: "day", Value: day},
		{Name: "key", Value: b.Key},
	}

	job, err := q.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.Run: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Wait: %w", err)
	}
	if err := status.Err(); err != nil {
		return nil, fmt.Errorf("status.Err: %w", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Read: %w", err)
	}
	lines, err := readRows(it)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w for day %d under key %q", ErrNoInput, day, b.Key)
	}
	return lines, nil
}

// rowIterator is the part of *bigquery.RowIterator the loader reads from.
type rowIterator interface {
	Next(dst any) error
}

func readRows(it rowIterator) ([]string, error) {
	var lines []string
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("it.Next: %w", err)
		}
		if len(row) != 1 {
			return nil, fmt.Errorf("row has %d columns, want 1", len(row))
		}
		switch v := row[0].(type) {
		case string:
			lines = append(lines, v)
		case nil:
			lines = append(lines, "")
		default:
			return nil, fmt.Errorf("row[0] is not a string: %v", row[0])
		}
	}
	return lines, nil
}
