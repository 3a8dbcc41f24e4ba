package sink

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/cariantohs/xaut-trading-bot/internal/model"
)

// SheetsSink appends report rows to a Google spreadsheet, one worksheet
// per UTC day. The partition lookup is an explicit found/not-found
// branch: list the sheets, create the worksheet plus header row when
// missing, then append.
type SheetsSink struct {
	svc           *sheets.Service
	spreadsheetID string
	log           *zap.SugaredLogger

	mu    sync.Mutex
	known map[string]bool // partitions ensured by this process
}

// NewSheetsSink authenticates with service-account credentials and
// verifies the spreadsheet is reachable.
func NewSheetsSink(ctx context.Context, spreadsheetID string, credentials []byte, log *zap.SugaredLogger) (*SheetsSink, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(credentials),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("init sheets service: %w", err)
	}
	s := &SheetsSink{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		log:           log,
		known:         make(map[string]bool),
	}
	if _, err := svc.Spreadsheets.Get(spreadsheetID).Fields("spreadsheetId").Context(ctx).Do(); err != nil {
		return nil, fmt.Errorf("open spreadsheet %s: %w", spreadsheetID, err)
	}
	return s, nil
}

func (s *SheetsSink) Append(ctx context.Context, rec *model.ReportRecord) error {
	day := Partition(rec.Timestamp)
	if err := s.ensurePartition(ctx, day); err != nil {
		return fmt.Errorf("ensure partition %s: %w", day, err)
	}

	vr := &sheets.ValueRange{Values: [][]interface{}{Row(rec)}}
	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, fmt.Sprintf("'%s'!A1", day), vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append row: %w", err)
	}
	return nil
}

// ensurePartition creates the day's worksheet with the header row if it
// does not exist yet.
func (s *SheetsSink) ensurePartition(ctx context.Context, day string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.known[day] {
		return nil
	}

	sp, err := s.svc.Spreadsheets.Get(s.spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("list worksheets: %w", err)
	}
	found := false
	for _, sh := range sp.Sheets {
		if sh.Properties != nil && sh.Properties.Title == day {
			found = true
			break
		}
	}

	if !found {
		req := &sheets.BatchUpdateSpreadsheetRequest{
			Requests: []*sheets.Request{{
				AddSheet: &sheets.AddSheetRequest{
					Properties: &sheets.SheetProperties{
						Title: day,
						GridProperties: &sheets.GridProperties{
							RowCount:    1000,
							ColumnCount: 20,
						},
					},
				},
			}},
		}
		if _, err := s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do(); err != nil {
			return fmt.Errorf("create worksheet: %w", err)
		}

		header := make([]interface{}, len(Header))
		for i, h := range Header {
			header[i] = h
		}
		vr := &sheets.ValueRange{Values: [][]interface{}{header}}
		_, err := s.svc.Spreadsheets.Values.
			Append(s.spreadsheetID, fmt.Sprintf("'%s'!A1", day), vr).
			ValueInputOption("RAW").
			InsertDataOption("INSERT_ROWS").
			Context(ctx).
			Do()
		if err != nil {
			return fmt.Errorf("write header: %w", err)
		}
		s.log.Infow("created daily worksheet", "day", day)
	}

	s.known[day] = true
	return nil
}

func (s *SheetsSink) Close() error { return nil }
