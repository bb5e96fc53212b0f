package bootstrap

// =============================================================================
// Logger Messages
// =============================================================================

const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingBot         = "Starting magic crit bot"
	LogMsgConfigurationLoaded = "Configuration loaded"
)

// =============================================================================
// Startup Messages
// =============================================================================

const (
	LogMsgCommandsRegistered = "Commands added to registry"
	LogMsgCommandSyncFailed  = "Failed to register commands"
	LogMsgForceCommandUpdate = "Force command update enabled via environment variable"
	LogMsgKeepAliveDisabled  = "Keep-alive disabled, no KEEPALIVE_URL configured"
	ErrMsgFailedStartDiscord = "failed to start discord bot"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDown         = "Shutting down..."
	LogMsgServerForcedShutdown = "Liveness server forced to shutdown"
	LogMsgStopped              = "Bot stopped"
)
