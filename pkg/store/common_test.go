package store

import (
	"bufio"
	"encoding/json"
	"io"

	"pondlink.io/starterbox-settings-service/pkg/db"
)

func newTestStore() *Store {
	dbInstance := db.GetInstance(db.UseMemorySqliteDialector()) // ensure migrations
	storeInstance := &Store{Db: *dbInstance}
	storeInstance.WithServices(ServiceOpts{
		Settings: storeInstance.GetISettings(),
		Limits:   storeInstance.GetILimits(),
		History:  storeInstance.GetIHistory(),
	})
	return storeInstance
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
