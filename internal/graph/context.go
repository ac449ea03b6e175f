package graph

import (
	"context"
	"fmt"
	"strconv"

	"artisan-market-be/internal/transport"
)

func GetUserIDFromContext(ctx context.Context) (int, bool) {
	return transport.UserIDFromContext(ctx)
}

// parseID coerces a GraphQL ID argument into the integer primary keys the
// data layer uses.
func parseID(v interface{}) (int, error) {
	id, err := strconv.Atoi(fmt.Sprint(v))
	if err != nil {
		return 0, fmt.Errorf("invalid id: %v", v)
	}
	return id, nil
}
