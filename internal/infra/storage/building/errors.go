package building

import "errors"

var (
	// ErrBuildingNotFound is returned when the building does not exist
	ErrBuildingNotFound = errors.New("building.repository: building not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("building.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("building.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("building.repository: failed to scan row")
)
