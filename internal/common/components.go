package common

const (
	ComponentIndexer     = "indexer"
	ComponentLogFetcher  = "log-fetcher"
	ComponentStore       = "store"
	ComponentResolver    = "resolver"
	ComponentMaintenance = "maintenance"
	ComponentAPI         = "api"
	ComponentRPC         = "rpc"
)

var AllComponents = map[string]struct{}{
	ComponentIndexer:     {},
	ComponentLogFetcher:  {},
	ComponentStore:       {},
	ComponentResolver:    {},
	ComponentMaintenance: {},
	ComponentAPI:         {},
	ComponentRPC:         {},
}
