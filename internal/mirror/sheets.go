package mirror

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/roomdesk/meeting-room-backend/internal/pkg/apperror"
)

// SheetsMirror appends audit records as rows of a Google Sheets worksheet,
// authenticated with a service account.
type SheetsMirror struct {
	svc           *sheets.Service
	spreadsheetID string
	worksheet     string
}

// NewSheetsMirror builds a mirror writing to the given worksheet of the given
// spreadsheet. credentialsJSON is the raw service-account key JSON.
func NewSheetsMirror(ctx context.Context, credentialsJSON []byte, spreadsheetID, worksheet string) (*SheetsMirror, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheets client failed: %w", err)
	}
	return &SheetsMirror{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		worksheet:     worksheet,
	}, nil
}

func (m *SheetsMirror) Append(ctx context.Context, rec Record) error {
	row := make([]any, 0, len(rec.Fields)+1)
	row = append(row, rec.Kind)
	for _, f := range rec.Fields {
		row = append(row, f)
	}

	vr := &sheets.ValueRange{Values: [][]any{row}}
	_, err := m.svc.Spreadsheets.Values.Append(m.spreadsheetID, m.worksheet, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return apperror.Wrap(err, http.StatusBadGateway, "append to spreadsheet failed")
	}
	return nil
}

func (m *SheetsMirror) Records(ctx context.Context) ([]Record, error) {
	resp, err := m.svc.Spreadsheets.Values.Get(m.spreadsheetID, m.worksheet).
		Context(ctx).
		Do()
	if err != nil {
		return nil, apperror.Wrap(err, http.StatusBadGateway, "read spreadsheet failed")
	}

	records := make([]Record, 0, len(resp.Values))
	for _, row := range resp.Values {
		if len(row) == 0 {
			continue
		}
		rec := Record{Kind: fmt.Sprint(row[0])}
		for _, cell := range row[1:] {
			rec.Fields = append(rec.Fields, fmt.Sprint(cell))
		}
		records = append(records, rec)
	}
	return records, nil
}
