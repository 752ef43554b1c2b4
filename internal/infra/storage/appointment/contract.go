package appointment

import (
	"github.com/Tsolgiun/office-plus-booking/pkg/dbmetrics"
)

// Reuse the dbmetrics executor interface, so the repository works on
// *sql.DB, *sql.Tx and their metered wrappers alike.
type DBExecutor = dbmetrics.DBExecutor
