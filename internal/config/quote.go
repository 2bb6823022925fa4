package config

type Quote struct {
	BulkMaxItems    int `env:"QUOTE_BULK_MAX_ITEMS" envDefault:"100"`
	BulkConcurrency int `env:"QUOTE_BULK_CONCURRENCY" envDefault:"8"`
}
