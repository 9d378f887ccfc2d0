package webpilot

// Config for connecting to a driver endpoint
type Config struct {
	// Endpoint is the driver websocket URL (ws:// or wss://)
	Endpoint string `toml:"endpoint"`
	// TimeoutMS default per-call timeout in milliseconds
	TimeoutMS float64 `toml:"timeout_ms"`
	// TraceDir when set records all protocol traffic under this path
	TraceDir string `toml:"trace_dir"`
}
