package parser

// Option configures a Parser at construction time, in the style of
// earley.Option/StoreTokens/GenerateTree.
type Option func(*Parser)

// TraceItems enables a debug dump of every Earley set to the trace log
// as it is produced. Off by default; turn on when diagnosing why a
// parse rejects input it shouldn't.
func TraceItems(on bool) Option {
	return func(p *Parser) {
		p.traceItems = on
	}
}

