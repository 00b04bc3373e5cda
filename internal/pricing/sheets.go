package pricing

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Fetch reads the configured spreadsheet range and builds the price
// lookup. Called once during run composition; the map is immutable for
// the duration of a run.
func Fetch(ctx context.Context, cfg *Config, logger *slog.Logger) (System, error) {
	jwt, err := google.JWTConfigFromJSON([]byte(cfg.Credentials), sheets.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("parse service account credentials: %w", err)
	}

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(jwt.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	res, err := svc.Spreadsheets.Values.Get(cfg.SheetID, cfg.Range).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	system := FromRows(res.Values)
	logger.InfoContext(ctx, "journal prices fetched", "rows", len(res.Values))
	return system, nil
}

func parsePrice(v any) (int, error) {
	switch value := v.(type) {
	case string:
		return strconv.Atoi(value)
	case float64:
		return int(value), nil
	case int:
		return value, nil
	default:
		return 0, fmt.Errorf("unsupported price type %T", v)
	}
}
