package static

// Directory Constants
const (
	ROOTDIR     = ".apictl"
	CONFIGFILE  = "config.yaml"
	ENV_PREFIX  = "APICTL"
	CLI_NAME    = "apictl"
	METRICS_NS  = "apimethod"
	DOTENV_FILE = ".env"
)

// Default Log Level
const DEFAULT_LOG_LEVEL = "info"

// Request Defaults
const (
	HEADER_CONTENT_TYPE  = "Content-Type"
	HEADER_CACHE_CONTROL = "Cache-Control"
	CONTENT_TYPE_JSON    = "application/json"
)

// Envelope Defaults
const (
	DEFAULT_ERROR_STATUS  = 500
	UNKNOWN_ERROR_MESSAGE = "Unknown error occurred"
	MESSAGE_FIELD         = "message"
)

// Image Loader Defaults
const DEFAULT_IMAGE_QUALITY = 75
