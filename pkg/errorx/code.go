package errorx

type Code int

var Unknown = Error{Code: 100000, Message: "Request failed"}

const (
	// Common codes
	BadRequest     Code = 100001
	NotFound       Code = 100004
	Internal       Code = 100007
	NotImplemented Code = 100009

	// Configuration codes
	UnknownEnvironment Code = 200001
	InvalidConfig      Code = 200002

	// Migration codes
	InvalidCatalog      Code = 300001
	MigrationFailed     Code = 300002
	RollbackFailed      Code = 300003
	DestructiveRollback Code = 300004
	LockFailed          Code = 300005
)
