package database

type LoadRunRepository interface {
	RecordRun(run LoadRun) error
	GetLatestRun(resource string) (*LoadRun, error)
	GetRunStats() ([]RunStats, error)
}
