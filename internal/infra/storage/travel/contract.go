package travel

import "github.com/m04kA/SMC-StaffPortal/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
